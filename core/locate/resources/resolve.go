package resources

import (
	"context"
	"os"
	"path/filepath"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/glyphbits/core"
	"github.com/npillmayer/glyphbits/core/bitmap"
	"github.com/npillmayer/glyphbits/core/font"
	"github.com/npillmayer/glyphbits/core/font/container"
	"github.com/npillmayer/glyphbits/core/font/fontregistry"
	"github.com/npillmayer/schuko/gconf"
)

// RasterProvider obtains the container raster for a font identifier, or
// reports it unavailable. The renderer depends on nothing more than this.
type RasterProvider interface {
	Raster(ident string) (*bitmap.Bitmap, error)
}

// ProviderFunc adapts a plain function to a RasterProvider.
type ProviderFunc func(ident string) (*bitmap.Bitmap, error)

func (p ProviderFunc) Raster(ident string) (*bitmap.Bitmap, error) {
	return p(ident)
}

// containerExts are the image formats a container may travel as.
var containerExts = []string{".png", ".bmp"}

// --- Container resolving ----------------------------------------------------

type rasterPlusErr struct {
	raster *bitmap.Bitmap
	err    error
}

// ContainerPromise delivers a container raster, blocking until resolving
// has completed.
type ContainerPromise interface {
	Raster() (*bitmap.Bitmap, error)
}

type containerLoader struct {
	await func(ctx context.Context) (*bitmap.Bitmap, error)
}

func (loader containerLoader) Raster() (*bitmap.Bitmap, error) {
	return loader.await(context.Background())
}

// ResolveContainer resolves the container raster for a font name. It tries,
// in order: the user's cache directory, container images in the system's
// font directories, and the remote container repository configured as
// `container-base-url`.
func ResolveContainer(name string) ContainerPromise {
	ch := make(chan rasterPlusErr)
	go func(ch chan<- rasterPlusErr) {
		result := rasterPlusErr{}
		result.raster, result.err = acquireContainer(font.NormalizeFontname(name))
		ch <- result
		close(ch)
	}(ch)
	return containerLoader{
		await: func(ctx context.Context) (*bitmap.Bitmap, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case r := <-ch:
				return r.raster, r.err
			}
		},
	}
}

func acquireContainer(ident string) (*bitmap.Bitmap, error) {
	if cachedir, err := CacheDirPath("containers"); err == nil {
		for _, ext := range containerExts {
			if bm, err := loadContainerFile(filepath.Join(cachedir, ident+ext)); err == nil {
				tracer().Debugf("found container for %s in user cache", ident)
				return bm, nil
			}
		}
	}
	for _, ext := range containerExts {
		fpath, err := findfont.Find(ident + ext) // container dropped into a font directory
		if err != nil || fpath == "" {
			continue
		}
		if bm, err := loadContainerFile(fpath); err == nil {
			tracer().Debugf("found container for %s as %s", ident, fpath)
			return bm, nil
		}
	}
	return downloadContainer(ident)
}

func downloadContainer(ident string) (*bitmap.Bitmap, error) {
	base := gconf.GetString("container-base-url")
	if base == "" {
		return nil, core.Error(core.EMISSING,
			"no container for font %s found locally and no container repository configured", ident)
	}
	cachedir, err := CacheDirPath("containers")
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot create container cache")
	}
	target := filepath.Join(cachedir, ident+".png")
	if err := DownloadCachedFile(target, base+"/"+ident+".png"); err != nil {
		return nil, core.WrapError(err, core.ECONNECTION,
			"could not get container for font %s from repository", ident)
	}
	tracer().Infof("downloaded container for font %s", ident)
	return loadContainerFile(target)
}

func loadContainerFile(path string) (*bitmap.Bitmap, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return bitmap.DecodeImage(file)
}

// Provider returns the default acquisition strategy as an injectable
// provider.
func Provider() RasterProvider {
	return ProviderFunc(acquireContainer)
}

// FontLoader turns a raster provider into a loader for the font registry:
// acquire the raster, then decode it with the container codec.
func FontLoader(provider RasterProvider) fontregistry.LoaderFunc {
	return func(ident string) (*font.Font, error) {
		raster, err := provider.Raster(ident)
		if err != nil {
			return nil, err
		}
		return container.Decode(ident, raster)
	}
}
