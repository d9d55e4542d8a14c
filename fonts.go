package atxt

import "io/fs"
import "log/slog"

import "github.com/tinne26/atxt/atlas"
import "github.com/tinne26/atxt/font"

// Fonts holds an ordered list of font faces, the glyph atlas and the
// cache of glyph entries, and uses them to measure and draw text.
//
// The order in which faces are loaded is the lookup order: when a
// character is missing in the first face, the second one is tried,
// and so on. Characters missing in every face are drawn as empty
// glyphs with zero advance.
//
// Fonts is not safe for concurrent use.
type Fonts struct {
	faces   []font.Face
	atlas   *atlas.Atlas
	glyphs  map[glyphKey]Glyph
	missing map[glyphKey]struct{} // cached keys no face could resolve
	config  Config
	logger  *slog.Logger
}

// Creates a new [Fonts] with the given configuration and no faces.
func NewFonts(config Config) *Fonts {
	config = config.withDefaults()
	logger := Logger()
	return &Fonts{
		atlas: atlas.New(atlas.Options{
			Width:   config.AtlasSize,
			Height:  config.AtlasSize,
			Padding: config.AtlasPadding,
			Logger:  logger,
		}),
		glyphs:  make(map[glyphKey]Glyph, 128),
		missing: make(map[glyphKey]struct{}),
		config:  config,
		logger:  logger,
	}
}

// Same as NewFonts(DefaultConfig()).
func NewDefaultFonts() *Fonts {
	return NewFonts(DefaultConfig())
}

// Returns the configuration in use, with defaults applied.
func (self *Fonts) Config() Config { return self.config }

// Returns the faces currently loaded, in lookup order. The returned
// slice must not be modified.
func (self *Fonts) Faces() []font.Face { return self.faces }

// Returns the glyph atlas. Mostly useful for debugging.
func (self *Fonts) Atlas() *atlas.Atlas { return self.atlas }

// Parses a font from the given bytes using the configured scale hint
// (see [Config].FontScale) and appends it to the lookup list. The
// bytes may be gzipped and must not be modified while the font is in
// use.
//
// On failure, the returned error is a [*font.LoadError] and the list
// of faces is not modified.
func (self *Fonts) LoadFontBytes(fontBytes []byte) error {
	return self.LoadFontBytesWithScale(fontBytes, self.config.FontScale)
}

// Same as [Fonts.LoadFontBytes](), but with an explicit scale hint: the
// size in pixels per em the font is expected to be mostly used at.
func (self *Fonts) LoadFontBytesWithScale(fontBytes []byte, scale float32) error {
	loaded, err := font.ParseBytes(fontBytes, scale)
	if err != nil { return err }
	self.addFont(loaded, "")
	return nil
}

// Parses the font at the given path and appends it to the lookup list.
// Supported formats are .ttf, .otf, .ttf.gz and .otf.gz.
func (self *Fonts) LoadFontFromPath(path string) error {
	loaded, err := font.ParseFromPath(path, self.config.FontScale)
	if err != nil { return err }
	self.addFont(loaded, path)
	return nil
}

// Same as [Fonts.LoadFontFromPath](), but for filesystems. This is
// mainly provided to support [embed.FS] and embedded fonts.
func (self *Fonts) LoadFontFromFS(filesys fs.FS, path string) error {
	loaded, err := font.ParseFromFS(filesys, path, self.config.FontScale)
	if err != nil { return err }
	self.addFont(loaded, path)
	return nil
}

// Appends a face to the lookup list. This allows using faces other
// than [*font.Font]. Nil faces will panic.
//
// Glyphs already cached are not affected, even if the new face would
// have resolved them differently.
func (self *Fonts) AddFace(face font.Face) {
	if face == nil { panic("nil face") }
	self.faces = append(self.faces, face)
}

// Returns the index of the first face containing the given character
// and the glyph index within that face. If no face contains it, the
// returned values are (-1, 0).
func (self *Fonts) LookupGlyphIndex(codePoint rune) (int, font.GlyphIndex) {
	for i, face := range self.faces {
		index := face.GlyphIndex(codePoint)
		if index != 0 { return i, index }
	}
	return -1, 0
}

// Returns whether any of the loaded faces contains the given character.
func (self *Fonts) Contains(codePoint rune) bool {
	_, index := self.LookupGlyphIndex(codePoint)
	return index != 0
}

// Rasterizes the given character at the given size in pixels, using
// the first face that contains it. If none does, the returned metrics
// are zero and the bitmap is nil.
//
// This doesn't touch the cache; see [Fonts.CacheGlyph]() for that.
func (self *Fonts) Rasterize(codePoint rune, px float32) (font.Metrics, []byte) {
	faceIndex, index := self.LookupGlyphIndex(codePoint)
	if faceIndex < 0 { return font.Metrics{}, nil }
	return self.faces[faceIndex].RasterizeIndexed(index, px)
}

func (self *Fonts) addFont(loaded *font.Font, path string) {
	self.faces = append(self.faces, loaded)
	self.logger.Info("font loaded",
		"name", loaded.String(),
		"glyphs", loaded.NumGlyphs(),
		"scale", loaded.Scale(),
		"path", path,
		"priority", len(self.faces) - 1)
}
