package fontregistry

import (
	"sync"

	"github.com/derekparker/trie"
	"github.com/npillmayer/glyphbits/core"
	"github.com/npillmayer/glyphbits/core/font"
)

// LoaderFunc produces a font for a normalized identifier. Loaders usually
// wrap the acquisition layer and may block on I/O.
type LoaderFunc func(ident string) (*font.Font, error)

// Registry is a cache of font tables, keyed by normalized font
// identifier. Use GlobalRegistry for the application-wide instance.
type Registry struct {
	mu      sync.Mutex
	tables  map[string]*font.Table
	loading map[string]*inflight
	index   *trie.Trie
}

type inflight struct {
	done  chan struct{}
	table *font.Table
	err   error
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton holding the decoded
// font tables. It lives until process exit.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry()
	})
	return globalFontRegistry
}

// NewRegistry creates an empty registry. The builtin fallback font is
// always registered.
func NewRegistry() *Registry {
	fr := &Registry{
		tables:  make(map[string]*font.Table),
		loading: make(map[string]*inflight),
		index:   trie.New(),
	}
	fr.tables[font.FallbackIdent] = font.FallbackTable()
	fr.index.Add(font.FallbackIdent, font.FallbackFont())
	return fr
}

// StoreFont derives a table from a font and registers it, if its
// identifier is not taken yet. It returns the registered table, which may
// stem from an earlier registration.
func (fr *Registry) StoreFont(f *font.Font) *font.Table {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return font.FallbackTable()
	}
	fr.mu.Lock()
	defer fr.mu.Unlock()
	if t, ok := fr.tables[f.Ident]; ok {
		return t
	}
	tracer().Debugf("registry stores font %s as %s", f.Name, f.Ident)
	t := font.NewTable(f)
	fr.tables[f.Ident] = t
	fr.index.Add(f.Ident, f)
	return t
}

// Table returns the table for a font name, loading and caching the font on
// first use. Loading for a given identifier executes at most once;
// concurrent callers for the same identifier wait for the first one.
//
// If no table can be produced, Table falls back to the builtin fallback
// font and returns its table together with a recoverable error. Callers
// may treat that error as a warning, since the input may still be
// renderable with the fallback's glyph set.
func (fr *Registry) Table(name string, load LoaderFunc) (*font.Table, error) {
	ident := font.NormalizeFontname(name)
	tracer().Debugf("registry searches for font %s", ident)
	fr.mu.Lock()
	if t, ok := fr.tables[ident]; ok {
		fr.mu.Unlock()
		return t, nil
	}
	if fl, ok := fr.loading[ident]; ok {
		fr.mu.Unlock()
		<-fl.done
		if fl.err != nil {
			return font.FallbackTable(), fl.err
		}
		return fl.table, nil
	}
	if load == nil {
		fr.mu.Unlock()
		tracer().Infof("registry does not contain font %s, using fallback", ident)
		return font.FallbackTable(),
			core.Error(core.EMISSING, "font %s not found in registry", name)
	}
	fl := &inflight{done: make(chan struct{})}
	fr.loading[ident] = fl
	fr.mu.Unlock()
	//
	f, err := load(ident)
	fr.mu.Lock()
	delete(fr.loading, ident)
	if err != nil || f == nil {
		fr.mu.Unlock()
		fl.err = core.WrapError(err, core.EMISSING,
			"font %s could not be loaded, falling back to builtin font", name)
		close(fl.done)
		tracer().Infof("registry falls back for font %s: %v", ident, err)
		return font.FallbackTable(), fl.err
	}
	t := font.NewTable(f)
	fr.tables[ident] = t
	fr.index.Add(ident, f)
	fl.table = t
	fr.mu.Unlock()
	close(fl.done)
	tracer().Infof("registry caches font %s, %d glyphs", ident, f.GlyphCount())
	return t, nil
}

// SuggestFonts returns the registered identifiers starting with prefix.
func (fr *Registry) SuggestFonts(prefix string) []string {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	return fr.index.PrefixSearch(prefix)
}

// KnownFonts returns all registered identifiers.
func (fr *Registry) KnownFonts() []string {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	return fr.index.Keys()
}

// LogFontList dumps the registered fonts to the trace (log-level Info).
func (fr *Registry) LogFontList() {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	tracer().Infof("--- registered fonts ---")
	for k, v := range fr.tables {
		f := v.Font()
		tracer().Infof("font [%s] = %v, %d glyphs, %dx%d", k, f.Name,
			f.GlyphCount(), f.Height(), f.Width())
	}
	tracer().Infof("------------------------")
}
