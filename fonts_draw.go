package atxt

import "image"
import "image/color"

import "github.com/tinne26/atxt/atlas"

// Determines which point of the text the (x, y) coordinates passed to
// the drawing functions refer to.
type DrawFrom uint8

const (
	// The coordinates refer to the top-left corner of the text line:
	// the baseline ends up one size below y.
	DrawFromTopLeft DrawFrom = iota

	// The coordinates refer to the left end of the baseline.
	DrawFromBottomLeft
)

// Parameters for [Fonts.DrawTextEx]() and [Fonts.Traverse]().
type TextParams struct {
	Text  string
	X, Y  float32
	Size  uint16      // in pixels
	Color color.Color // nil is drawn as white
	Draw  DrawFrom
}

// Returns the default text parameters: size 22, white, drawn
// from the top-left, at (0, 0) and with empty text.
func DefaultTextParams() TextParams {
	return TextParams{
		Size:  22,
		Color: color.RGBA{255, 255, 255, 255},
		Draw:  DrawFromTopLeft,
	}
}

// A positioned glyph, as computed by [Fonts.Traverse]().
type GlyphQuad struct {
	Char rune
	X, Y float32 // top-left corner of the destination
	Width, Height float32
	Source image.Rectangle // sprite rectangle within the atlas texture
}

// Calls the given function for each character of the text, in order,
// with the quad where the glyph would be drawn. Glyphs without pixels
// are also reported, with an empty Source rectangle. Missing glyphs are
// cached before the first call.
//
// Each glyph is placed at the pen position plus its horizontal offset.
// Vertically, the quad's top is y - height - OffsetY, to which the text
// size is added when drawing from [DrawFromTopLeft].
//
// This is a low level function, mostly useful to implement custom
// drawing or effects; see [Fonts.DrawTextEx]() for regular drawing.
func (self *Fonts) Traverse(params TextParams, quadFunc func(GlyphQuad)) {
	text := self.prepareText(params.Text)
	self.cacheText(text, params.Size) // atlas can't grow during the traversal

	var penX float32
	for _, char := range text {
		glyph := self.CacheGlyph(char, params.Size)
		sprite, _ := self.atlas.Get(glyph.ID)
		width, height := float32(sprite.Width()), float32(sprite.Height())

		y := params.Y - height - glyph.OffsetY
		if params.Draw == DrawFromTopLeft {
			y += float32(params.Size)
		}

		quadFunc(GlyphQuad{
			Char: char,
			X: params.X + penX + glyph.OffsetX,
			Y: y,
			Width: width,
			Height: height,
			Source: sprite.Rect,
		})
		penX += glyph.Advance
	}
}

// Draws the given text from its top-left corner. See [Fonts.DrawTextEx]()
// for more options.
func (self *Fonts) DrawText(target TargetImage, text string, x, y float32, size uint16, textColor color.Color) {
	self.DrawTextEx(target, TextParams{
		Text: text, X: x, Y: y, Size: size, Color: textColor, Draw: DrawFromTopLeft,
	})
}

// Draws text on the given target according to the given parameters.
// Each glyph with pixels results in one draw call sourcing its atlas
// sprite, tinted with the text color.
func (self *Fonts) DrawTextEx(target TargetImage, params TextParams) {
	textColor := params.Color
	if textColor == nil { textColor = color.RGBA{255, 255, 255, 255} }

	var texture atlas.Texture
	self.Traverse(params, func(quad GlyphQuad) {
		if quad.Source.Empty() { return }
		if texture == nil { texture = self.atlas.Texture() }
		self.drawQuad(target, texture, quad, textColor)
	})
}
