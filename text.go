package atxt

import "golang.org/x/text/unicode/norm"

// Returns the text to iterate when measuring or drawing.
func (self *Fonts) prepareText(text string) string {
	if !self.config.NormalizeText { return text }
	return norm.NFC.String(text)
}

// Caches all the glyphs required to draw the given text.
func (self *Fonts) cacheText(text string, size uint16) {
	for _, char := range text {
		self.CacheGlyph(char, size)
	}
}
