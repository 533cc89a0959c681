package bitmap

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
)

// Containers travel as ordinary image files, because not every deployment
// target can ship arbitrary binary files. A set pixel corresponds to ink,
// i.e. a dark image pixel.

// FromImage converts an image to a bitmap. A pixel is set when its
// luminance is below 50%.
func FromImage(img image.Image) *Bitmap {
	bounds := img.Bounds()
	b := New(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			b.Set(x-bounds.Min.X, y-bounds.Min.Y, g.Y < 0x80)
		}
	}
	return b
}

// ToImage converts b to a grayscale image, set pixels black, clear pixels
// white.
func (b *Bitmap) ToImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.At(x, y) {
				img.SetGray(x, y, color.Gray{Y: 0x00})
			} else {
				img.SetGray(x, y, color.Gray{Y: 0xff})
			}
		}
	}
	return img
}

// EncodePNG writes b as a PNG image.
func (b *Bitmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, b.ToImage())
}

// DecodePNG reads a PNG image and converts it to a bitmap.
func DecodePNG(r io.Reader) (*Bitmap, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

// EncodeBMP writes b as a BMP image.
func (b *Bitmap) EncodeBMP(w io.Writer) error {
	return bmp.Encode(w, b.ToImage())
}

// DecodeBMP reads a BMP image and converts it to a bitmap.
func DecodeBMP(r io.Reader) (*Bitmap, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

// DecodeImage reads any registered image format (PNG and BMP are linked in
// by this package) and converts it to a bitmap.
func DecodeImage(r io.Reader) (*Bitmap, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("decoded container image, format %s", format)
	return FromImage(img), nil
}
