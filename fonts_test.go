package atxt

import "os"
import "errors"
import "io/fs"
import "testing"
import "testing/fstest"
import "path/filepath"

import "golang.org/x/image/font/gofont/gomono"
import "golang.org/x/image/font/gofont/goregular"

import "github.com/tinne26/atxt/font"

func TestFontsLoad(t *testing.T) {
	fonts := NewDefaultFonts()
	if len(fonts.Faces()) != 0 { t.Fatal("expected no faces") }

	err := fonts.LoadFontBytes(goregular.TTF)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	err = fonts.LoadFontBytesWithScale(gomono.TTF, 32)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if len(fonts.Faces()) != 2 { t.Fatalf("expected 2 faces, got %d", len(fonts.Faces())) }

	regular, ok := fonts.Faces()[0].(*font.Font)
	if !ok { t.Fatalf("expected *font.Font, got %T", fonts.Faces()[0]) }
	if regular.Scale() != font.DefaultScale { t.Fatalf("expected default scale, got %f", regular.Scale()) }
	mono := fonts.Faces()[1].(*font.Font)
	if mono.Scale() != 32 { t.Fatalf("expected scale 32, got %f", mono.Scale()) }

	// failed loads leave the list untouched
	err = fonts.LoadFontBytes([]byte("not a font at all"))
	if !errors.Is(err, font.ErrMalformedFont) { t.Fatalf("expected ErrMalformedFont, got '%v'", err) }
	err = fonts.LoadFontBytes(append([]byte("ttcf"), make([]byte, 64)...))
	if !errors.Is(err, font.ErrUnsupportedFont) { t.Fatalf("expected ErrUnsupportedFont, got '%v'", err) }
	var loadErr *font.LoadError
	if !errors.As(err, &loadErr) { t.Fatalf("expected *font.LoadError, got %T", err) }
	if len(fonts.Faces()) != 2 { t.Fatalf("expected 2 faces after failures, got %d", len(fonts.Faces())) }
}

func TestFontsLoadFromPathAndFS(t *testing.T) {
	fonts := NewFonts(Config{ FontScale: 64 })

	dir := t.TempDir()
	path := filepath.Join(dir, "regular.ttf")
	err := os.WriteFile(path, goregular.TTF, 0o644)
	if err != nil { t.Fatalf("setup: %s", err) }
	err = fonts.LoadFontFromPath(path)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if fonts.Faces()[0].(*font.Font).Scale() != 64 { t.Fatal("expected configured scale to be used") }

	err = fonts.LoadFontFromPath(filepath.Join(dir, "missing.ttf"))
	if !errors.Is(err, fs.ErrNotExist) { t.Fatalf("expected fs.ErrNotExist, got '%v'", err) }

	filesys := fstest.MapFS{ "mono.ttf": &fstest.MapFile{ Data: gomono.TTF } }
	err = fonts.LoadFontFromFS(filesys, "mono.ttf")
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	err = fonts.LoadFontFromFS(filesys, "mono.woff")
	if !errors.Is(err, font.ErrUnsupportedFont) { t.Fatalf("expected ErrUnsupportedFont, got '%v'", err) }
	if len(fonts.Faces()) != 2 { t.Fatalf("expected 2 faces, got %d", len(fonts.Faces())) }
}

func TestFontsLookupFallback(t *testing.T) {
	faceA := newFakeFace(map[rune]font.Metrics{ 'a': {}, 'c': {} })
	faceB := newFakeFace(map[rune]font.Metrics{ 'b': {}, 'c': {} })
	fonts := NewDefaultFonts()
	fonts.AddFace(faceA)
	fonts.AddFace(faceB)

	faceIndex, index := fonts.LookupGlyphIndex('a')
	if faceIndex != 0 || index != faceA.GlyphIndex('a') { t.Fatalf("'a': got (%d, %d)", faceIndex, index) }
	faceIndex, index = fonts.LookupGlyphIndex('b')
	if faceIndex != 1 || index != faceB.GlyphIndex('b') { t.Fatalf("'b': got (%d, %d)", faceIndex, index) }
	faceIndex, index = fonts.LookupGlyphIndex('c')
	if faceIndex != 0 || index != faceA.GlyphIndex('c') { t.Fatalf("'c': got (%d, %d)", faceIndex, index) }
	faceIndex, index = fonts.LookupGlyphIndex('z')
	if faceIndex != -1 || index != 0 { t.Fatalf("'z': got (%d, %d)", faceIndex, index) }

	if !fonts.Contains('b') { t.Fatal("expected 'b' to be contained") }
	if fonts.Contains('z') { t.Fatal("didn't expect 'z' to be contained") }
}

func TestFontsRasterize(t *testing.T) {
	fonts := NewDefaultFonts()
	metrics, bitmap := fonts.Rasterize('A', 20)
	if metrics != (font.Metrics{}) || bitmap != nil { t.Fatal("expected zero result without faces") }

	face := newLatinFakeFace()
	fonts.AddFace(face)
	metrics, bitmap = fonts.Rasterize('B', 20)
	if metrics.AdvanceWidth != 12 || len(bitmap) != 9*14 { t.Fatalf("unexpected 'B' result %+v", metrics) }
	if fonts.CachedGlyphs() != 0 { t.Fatal("Rasterize must not touch the cache") }
}

func TestFontsAddFacePanics(t *testing.T) {
	fonts := NewDefaultFonts()
	if doesNotPanic(func() { fonts.AddFace(nil) }) {
		t.Fatal("expected panic on nil face")
	}
}

func TestConfigDefaults(t *testing.T) {
	config := NewFonts(Config{ Scaling: 99, AtlasPadding: -3 }).Config()
	expected := DefaultConfig()
	if config != expected { t.Fatalf("expected %+v, got %+v", expected, config) }

	custom := Config{ Scaling: ScalingNearest, AtlasSize: 64, AtlasPadding: 0, FontScale: 12, NormalizeText: true }
	if NewFonts(custom).Config() != custom { t.Fatal("valid config values must be kept") }
}
