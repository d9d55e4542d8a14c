package font

import "math"
import "image"
import "image/draw"

import "golang.org/x/image/vector"
import "golang.org/x/image/math/fixed"
import "golang.org/x/image/font/sfnt"
import xfont "golang.org/x/image/font"

var _ Face = (*Font)(nil)

// The default scale hint used when none is specified, in pixels per em.
const DefaultScale float32 = 100

// A Font is a [Face] backed by an [sfnt.Font], rasterizing glyph
// outlines with a [vector.Rasterizer].
//
// Fonts keep their own sfnt buffer and rasterizer, so they can't be
// used concurrently.
type Font struct {
	sfnt *sfnt.Font
	buffer sfnt.Buffer
	rasterizer vector.Rasterizer
	name string
	scale float32
}

// Wraps an already parsed [sfnt.Font]. The scale is only a hint
// indicating the size in pixels per em the font is expected to be
// used at; non-positive values are replaced by [DefaultScale].
func NewFont(sfntFont *sfnt.Font, scale float32) *Font {
	if sfntFont == nil { panic("nil sfnt font") }
	if scale <= 0 { scale = DefaultScale }
	font := &Font{ sfnt: sfntFont, scale: scale }
	name, err := font.Name()
	if err == nil { font.name = name }
	return font
}

// Returns the underlying [sfnt.Font].
func (self *Font) Sfnt() *sfnt.Font { return self.sfnt }

// Returns the scale hint the font was loaded with.
func (self *Font) Scale() float32 { return self.scale }

// Returns the number of glyphs in the font.
func (self *Font) NumGlyphs() int { return self.sfnt.NumGlyphs() }

// Returns the font name, or an empty string if the font doesn't
// declare one. See also [Font.Name]().
func (self *Font) String() string { return self.name }

// Implements [Face].GlyphIndex(...)
func (self *Font) GlyphIndex(codePoint rune) GlyphIndex {
	index, err := self.sfnt.GlyphIndex(&self.buffer, codePoint)
	if err != nil { return 0 }
	return index
}

// Implements [Face].RasterizeIndexed(...)
//
// Glyphs whose outlines can't be loaded (e.g. colored glyphs, which
// sfnt doesn't support) keep their advance but have no pixels.
func (self *Font) RasterizeIndexed(index GlyphIndex, px float32) (Metrics, []byte) {
	if px <= 0 || math.IsNaN(float64(px)) { return Metrics{}, nil }
	ppem := fixed.Int26_6(math.Round(float64(px)*64))

	var metrics Metrics
	advance, err := self.sfnt.GlyphAdvance(&self.buffer, index, ppem, xfont.HintingNone)
	if err != nil { return metrics, nil }
	metrics.AdvanceWidth = float32(advance)/64

	outline, err := self.sfnt.LoadGlyph(&self.buffer, index, ppem, nil)
	if err != nil || !hasDrawingOps(outline) { return metrics, nil }

	// sfnt coordinates grow downwards, so the outline's min y is
	// the top of the glyph and its max y the bottom
	bounds := outline.Bounds()
	left, top := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	right, bottom := bounds.Max.X.Ceil(), bounds.Max.Y.Ceil()
	width, height := right - left, bottom - top
	if width <= 0 || height <= 0 { return metrics, nil }

	self.rasterizer.Reset(width, height)
	self.rasterizer.DrawOp = draw.Src
	self.traceOutline(outline, fixed.I(-left), fixed.I(-top))
	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	self.rasterizer.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	metrics.Width  = width
	metrics.Height = height
	metrics.XMin   = left
	metrics.YMin   = -bottom
	return metrics, mask.Pix
}

// Feeds the outline segments to the rasterizer, shifted so the
// outline bounds start at (0, 0).
func (self *Font) traceOutline(outline sfnt.Segments, dx, dy fixed.Int26_6) {
	for _, segment := range outline {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			x, y := shiftToFloat32s(segment.Args[0], dx, dy)
			self.rasterizer.MoveTo(x, y)
		case sfnt.SegmentOpLineTo:
			x, y := shiftToFloat32s(segment.Args[0], dx, dy)
			self.rasterizer.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			cx, cy := shiftToFloat32s(segment.Args[0], dx, dy)
			x , y  := shiftToFloat32s(segment.Args[1], dx, dy)
			self.rasterizer.QuadTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			cax, cay := shiftToFloat32s(segment.Args[0], dx, dy)
			cbx, cby := shiftToFloat32s(segment.Args[1], dx, dy)
			x  , y   := shiftToFloat32s(segment.Args[2], dx, dy)
			self.rasterizer.CubeTo(cax, cay, cbx, cby, x, y)
		default:
			panic("unexpected segment.Op case")
		}
	}
}

func shiftToFloat32s(point fixed.Point26_6, dx, dy fixed.Int26_6) (float32, float32) {
	return float32(point.X + dx)/64, float32(point.Y + dy)/64
}

// Outlines made only of move ops (e.g. spaces) don't draw anything.
func hasDrawingOps(outline sfnt.Segments) bool {
	for _, segment := range outline {
		if segment.Op != sfnt.SegmentOpMoveTo { return true }
	}
	return false
}
