package atxt

import "sort"

import "github.com/tinne26/atxt/font"

var _ font.Face = (*fakeFace)(nil)

// A face with fixed metrics per character, fully covered bitmaps and
// a rasterization counter. Metrics don't depend on the requested size.
type fakeFace struct {
	indices map[rune]font.GlyphIndex
	metrics []font.Metrics // by glyph index - 1
	rasterizeCalls int
}

func newFakeFace(glyphs map[rune]font.Metrics) *fakeFace {
	chars := make([]rune, 0, len(glyphs))
	for char := range glyphs { chars = append(chars, char) }
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })

	face := &fakeFace{ indices: make(map[rune]font.GlyphIndex, len(chars)) }
	for i, char := range chars {
		face.indices[char] = font.GlyphIndex(i + 1)
		face.metrics = append(face.metrics, glyphs[char])
	}
	return face
}

func (self *fakeFace) GlyphIndex(char rune) font.GlyphIndex {
	return self.indices[char]
}

func (self *fakeFace) RasterizeIndexed(index font.GlyphIndex, _ float32) (font.Metrics, []byte) {
	self.rasterizeCalls += 1
	if index == 0 || int(index) > len(self.metrics) { return font.Metrics{}, nil }
	metrics := self.metrics[index - 1]
	if metrics.Empty() { return metrics, nil }
	bitmap := make([]byte, metrics.Width*metrics.Height)
	for i := range bitmap { bitmap[i] = 255 }
	return metrics, bitmap
}

// 'A' and 'B' sit on the baseline, 'g' descends, '-' floats above the
// baseline and ' ' has no pixels.
func newLatinFakeFace() *fakeFace {
	return newFakeFace(map[rune]font.Metrics{
		'A': { Width: 8, Height: 14, XMin: 1, YMin:  0, AdvanceWidth: 10 },
		'B': { Width: 9, Height: 14, XMin: 1, YMin:  0, AdvanceWidth: 12 },
		'g': { Width: 8, Height: 15, XMin: 0, YMin: -4, AdvanceWidth:  9 },
		'-': { Width: 6, Height:  2, XMin: 0, YMin:  5, AdvanceWidth:  6 },
		' ': { AdvanceWidth: 5 },
	})
}

func doesNotPanic(function func()) (didNotPanic bool) {
	didNotPanic = true
	defer func() { didNotPanic = (recover() == nil) }()
	function()
	return
}
