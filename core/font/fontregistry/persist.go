package fontregistry

import (
	"bytes"

	"github.com/npillmayer/glyphbits/core"
	"github.com/npillmayer/glyphbits/core/bitmap"
	"github.com/npillmayer/glyphbits/core/font"
	"github.com/npillmayer/glyphbits/core/font/container"
)

// BlobStore is an injectable persistent store for encoded fonts. Keys are
// opaque strings; blobs round-trip whatever the container codec produced.
// Implementations are provided by the application (a file cache, a
// key-value database, anything).
type BlobStore interface {
	Get(key string) ([]byte, error)
	Put(key string, blob []byte) error
}

func blobKey(namespace, ident string) string {
	return namespace + "/" + ident
}

// SaveFont encodes a font into a raster container, wraps it as a PNG image
// and puts it into the store under the namespace and the font's
// identifier.
func SaveFont(store BlobStore, namespace string, f *font.Font) error {
	raster, err := container.Encode(f)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := raster.EncodePNG(&buf); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot wrap container for font %s", f.Ident)
	}
	tracer().Debugf("persisting font %s, %d bytes", f.Ident, buf.Len())
	return store.Put(blobKey(namespace, f.Ident), buf.Bytes())
}

// LoadFont is the inverse of SaveFont.
func LoadFont(store BlobStore, namespace, name string) (*font.Font, error) {
	ident := font.NormalizeFontname(name)
	blob, err := store.Get(blobKey(namespace, ident))
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "no persisted container for font %s", ident)
	}
	raster, err := bitmap.DecodePNG(bytes.NewReader(blob))
	if err != nil {
		return nil, core.WrapError(err, core.EMALFORMED, "persisted container for font %s unreadable", ident)
	}
	return container.Decode(name, raster)
}

// StoreLoader adapts a blob store into a loader usable with
// Registry.Table.
func StoreLoader(store BlobStore, namespace string) LoaderFunc {
	return func(ident string) (*font.Font, error) {
		return LoadFont(store, namespace, ident)
	}
}
