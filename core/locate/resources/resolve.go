package resources

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/gfxedit/core"
	"github.com/npillmayer/gfxedit/core/font"
	"github.com/npillmayer/gfxedit/core/font/fontregistry"
)

// NotFound returns an application error for a missing font.
func NotFound(name string) error {
	e := fmt.Errorf("resource missing: %v", name)
	return core.WrapError(e, core.EMISSING, "font not found: %s, using fallback font", name)
}

type fontPlusErr struct {
	font *font.TypeCase
	err  error
}

// TypeCasePromise is the result of ResolveTypeCase.
type TypeCasePromise interface {
	// TypeCase blocks until the typecase is loaded.
	TypeCase() (*font.TypeCase, error)
	// Await blocks until the typecase is loaded or ctx is done.
	Await(ctx context.Context) (*font.TypeCase, error)
}

type fontLoader struct {
	await func(ctx context.Context) (*font.TypeCase, error)
}

func (loader fontLoader) TypeCase() (*font.TypeCase, error) {
	return loader.await(context.Background())
}

func (loader fontLoader) Await(ctx context.Context) (*font.TypeCase, error) {
	return loader.await(ctx)
}

// ResolveTypeCase resolves a font typecase with a given size. name is either
// the name of a font or the path of a font file.
//
// Fonts are searched in the global font registry first, then as a file and
// finally as a system font. If nothing is found, the promise delivers a
// typecase of the fallback font, together with an error.
func ResolveTypeCase(name string, size float64) TypeCasePromise {
	ch := make(chan fontPlusErr, 1)
	go func(ch chan<- fontPlusErr) {
		defer close(ch)
		result := fontPlusErr{}
		normalized := fontregistry.NormalizeFontname(filepath.Base(name))
		registry := fontregistry.GlobalRegistry()
		if t, err := registry.TypeCase(normalized, size); err == nil {
			result.font = t
			ch <- result
			return
		}
		f := loadFontFile(name)
		if f == nil {
			if fpath, err := findfont.Find(name); err == nil && fpath != "" {
				tracer().Debugf("%s is a system font at %s", name, fpath)
				f, result.err = font.LoadOpenTypeFont(fpath)
			}
		}
		if f == nil {
			// the registry delivers the fallback font
			result.font, _ = registry.TypeCase(normalized, size)
			if result.err == nil {
				result.err = NotFound(name)
			}
			ch <- result
			return
		}
		if f.Fontname == "" {
			f.Fontname = name
		}
		registry.StoreFont(normalized, f)
		result.font, result.err = registry.TypeCase(normalized, size)
		ch <- result
	}(ch)
	return fontLoader{
		await: func(ctx context.Context) (*font.TypeCase, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case r := <-ch:
				return r.font, r.err
			}
		},
	}
}

// loadFontFile loads name if it denotes a TrueType or OpenType file.
func loadFontFile(name string) *font.ScalableFont {
	ext := strings.ToLower(filepath.Ext(name))
	if ext != ".ttf" && ext != ".otf" {
		return nil
	}
	if _, err := os.Stat(name); err != nil {
		return nil
	}
	f, err := font.LoadOpenTypeFont(name)
	if err != nil {
		tracer().Errorf("cannot load font file %s: %v", name, err)
		return nil
	}
	tracer().Debugf("loaded font file %s", name)
	return f
}
