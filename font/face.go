package font

import "golang.org/x/image/font/sfnt"

// Index of a glyph within a font. Zero means the glyph is not present.
type GlyphIndex = sfnt.GlyphIndex

// Layout metrics of a rasterized glyph, in pixels.
//
// The coverage bitmap has Width*Height bytes, stored row by row
// starting from the top row. XMin and YMin locate the bottom-left corner
// of the bitmap relative to the glyph origin on the baseline, with y
// growing upwards: YMin is negative for glyphs with descenders.
type Metrics struct {
	Width  int
	Height int
	XMin   int
	YMin   int
	AdvanceWidth float32
}

// Returns whether the metrics describe a glyph without any pixels.
func (self Metrics) Empty() bool {
	return self.Width <= 0 || self.Height <= 0
}

// A Face maps characters to glyphs and rasterizes them at arbitrary
// pixel sizes. Both operations are total: missing glyphs are reported
// through a zero [GlyphIndex] and glyphs that can't be drawn result in
// empty metrics and a nil bitmap.
//
// Faces can't be used concurrently unless the implementation says
// otherwise.
type Face interface {
	// Returns the glyph index for the given code point, or 0 if the
	// face doesn't contain it.
	GlyphIndex(codePoint rune) GlyphIndex

	// Rasterizes the given glyph at the given size in pixels per em.
	// The returned bitmap has one coverage byte per pixel.
	RasterizeIndexed(index GlyphIndex, px float32) (Metrics, []byte)
}
