package atxt

import "image"

// A cached glyph entry. The ID identifies the glyph sprite within
// the [Fonts.Atlas](); the offsets locate the bottom-left corner of the
// sprite relative to the glyph origin on the baseline (y grows upwards,
// so OffsetY is negative for descenders).
//
// Entries are created once per (character, size) pair and never change.
type Glyph struct {
	ID      uint64
	OffsetX float32
	OffsetY float32
	Advance float32
}

type glyphKey struct {
	char rune
	size uint16
}

// Returns the cached entry for the given character and size, caching
// it first if necessary. Calling this directly is rarely needed, as
// measuring and drawing cache glyphs automatically, but it can be used
// to warm up the cache, e.g. on loading screens.
//
// On a miss, the character is rasterized with the first face that
// contains it and its bitmap is packed into the atlas. Characters
// missing in every face are cached as empty glyphs with zero advance.
// On a hit, nothing is modified.
func (self *Fonts) CacheGlyph(char rune, size uint16) Glyph {
	key := glyphKey{ char, size }
	glyph, found := self.glyphs[key]
	if found { return glyph }

	faceIndex, index := self.LookupGlyphIndex(char)
	var sprite *image.NRGBA
	if faceIndex < 0 {
		self.logger.Warn("character missing in all fonts", "char", string(char), "code", int(char))
		sprite = coverageToNRGBA(0, 0, nil)
		self.missing[key] = struct{}{}
	} else {
		metrics, bitmap := self.faces[faceIndex].RasterizeIndexed(index, float32(size))
		sprite = coverageToNRGBA(metrics.Width, metrics.Height, bitmap)
		glyph.OffsetX = float32(metrics.XMin)
		glyph.OffsetY = float32(metrics.YMin)
		glyph.Advance = metrics.AdvanceWidth
	}

	glyph.ID = self.atlas.NewUniqueID()
	self.atlas.CacheSprite(glyph.ID, sprite)
	self.glyphs[key] = glyph
	self.logger.Debug("glyph cached",
		"char", string(char), "size", size, "face", faceIndex, "id", glyph.ID)
	return glyph
}

// Returns the cached entry for the given character and size without
// modifying the cache. The bool is false if the glyph hasn't been
// cached yet.
func (self *Fonts) Glyph(char rune, size uint16) (Glyph, bool) {
	glyph, found := self.glyphs[glyphKey{ char, size }]
	return glyph, found
}

// Whether the glyph was cached without any face containing it.
func (self *Fonts) isMissing(char rune, size uint16) bool {
	_, missing := self.missing[glyphKey{ char, size }]
	return missing
}

// Returns the number of cached glyph entries.
func (self *Fonts) CachedGlyphs() int { return len(self.glyphs) }

// Returns the glyph sprite size in pixels. Glyphs without pixels
// have zero size.
func (self *Fonts) glyphSize(glyph Glyph) (int, int) {
	sprite, found := self.atlas.Get(glyph.ID)
	if !found { panic("glyph entry without atlas sprite") }
	return sprite.Width(), sprite.Height()
}

// Expands a coverage bitmap into a 4-channel image with saturated color
// channels and the coverage in the alpha channel, so tinting the sprite
// when drawing gives the final glyph color. Bitmaps that don't match
// the given dimensions result in an empty image.
func coverageToNRGBA(width, height int, bitmap []byte) *image.NRGBA {
	if width <= 0 || height <= 0 || len(bitmap) != width*height {
		return image.NewNRGBA(image.Rectangle{})
	}
	nrgba := image.NewNRGBA(image.Rect(0, 0, width, height))
	pixels := nrgba.Pix
	index := 0
	for _, coverage := range bitmap {
		pixels[index + 0] = 255
		pixels[index + 1] = 255
		pixels[index + 2] = 255
		pixels[index + 3] = coverage
		index += 4
	}
	return nrgba
}
