package font

import "errors"

import "golang.org/x/image/font/sfnt"

var ErrNotFound = errors.New("font property not found or empty")

// Returns the requested font property. The returned property string
// might be empty even when error is nil. If the property is missing,
// [ErrNotFound] will be returned.
func (self *Font) Property(property sfnt.NameID) (string, error) {
	str, err := self.sfnt.Name(&self.buffer, property)
	if err == sfnt.ErrNotFound { return "", ErrNotFound }
	return str, err
}

// Returns the full name of the font. If the information is missing,
// [ErrNotFound] will be returned. Other errors are also possible (e.g.,
// if the font naming table is invalid).
func (self *Font) Name() (string, error) {
	return self.Property(sfnt.NameIDFull)
}

// Returns the family name of the font, or [ErrNotFound].
func (self *Font) Family() (string, error) {
	return self.Property(sfnt.NameIDFamily)
}

// Returns the subfamily name of the font, or [ErrNotFound].
//
// In most cases, the subfamily value will be one of:
//  - Regular, Italic, Bold, Bold Italic
func (self *Font) Subfamily() (string, error) {
	return self.Property(sfnt.NameIDSubfamily)
}

// Returns the runes in the given text that can't be represented by the
// font. If runes are repeated in the input text, the returned slice may
// contain them multiple times too.
//
// When loading multiple fonts as fallbacks, this can be used to check
// that the combined set covers all the characters the program needs.
func (self *Font) MissingRunes(text string) []rune {
	var missing []rune
	for _, codePoint := range text {
		if self.GlyphIndex(codePoint) == 0 {
			missing = append(missing, codePoint)
		}
	}
	return missing
}
