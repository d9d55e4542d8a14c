package atxt

// Text dimensions as returned by [Fonts.Measure]().
//
// Height is the distance between the lowest and the highest pixel of
// the glyphs in the text, while OffsetY is the highest extent above the
// baseline. OffsetY can be used to place the baseline of a text whose
// top needs to be at a specific position.
type TextDimensions struct {
	Width   float32
	Height  float32
	OffsetY float32
}

// Measures the given text at the given size, caching any missing
// glyphs. The measurements use the same glyph entries as drawing,
// so they are always consistent with the rendered output.
//
// Glyphs without pixels that a face does contain (e.g. spaces) count
// as a zero height extent at their vertical offset, usually the
// baseline. Characters missing in all the fonts are ignored.
func (self *Fonts) Measure(text string, size uint16) TextDimensions {
	var width float32
	var minY, maxY float32
	var hasExtents bool

	for _, char := range self.prepareText(text) {
		glyph := self.CacheGlyph(char, size)
		width += glyph.Advance

		if self.isMissing(char, size) { continue }
		_, height := self.glyphSize(glyph)
		bottom := glyph.OffsetY
		top := glyph.OffsetY + float32(height)
		if !hasExtents {
			minY, maxY = bottom, top
			hasExtents = true
			continue
		}
		if bottom < minY { minY = bottom }
		if top > maxY { maxY = top }
	}

	return TextDimensions{
		Width:   width,
		Height:  maxY - minY,
		OffsetY: maxY,
	}
}
