package atxt

import "github.com/tinne26/atxt/atlas"
import "github.com/tinne26/atxt/font"

// Scaling modes determine how glyph sprites are filtered when drawn.
type ScalingMode uint8

const (
	ScalingLinear  ScalingMode = iota // smooth (default)
	ScalingNearest                    // pixelated, for pixel-art fonts
)

// Configuration for [NewFonts]. Use [DefaultConfig]() as a starting
// point; zero or invalid values are replaced by the defaults.
type Config struct {
	// Filtering applied when drawing glyph sprites.
	Scaling ScalingMode

	// Initial atlas side, in pixels. Default: 512. The atlas
	// grows as needed.
	AtlasSize int

	// Empty pixels between glyphs in the atlas. Default: 2.
	// Negative values are replaced by the default.
	AtlasPadding int

	// Scale hint for [Fonts.LoadFontBytes]() and the other loading
	// methods that don't take an explicit scale. Default: 100.
	FontScale float32

	// Whether text is NFC-normalized before being measured or drawn,
	// so decomposed sequences (e.g. "e" + combining acute) resolve to
	// the precomposed glyphs most fonts include. Default: false.
	NormalizeText bool
}

// Returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Scaling:      ScalingLinear,
		AtlasSize:    atlas.DefaultSize,
		AtlasPadding: atlas.DefaultPadding,
		FontScale:    font.DefaultScale,
	}
}

func (self Config) withDefaults() Config {
	if self.Scaling > ScalingNearest { self.Scaling = ScalingLinear }
	if self.AtlasSize <= 0 { self.AtlasSize = atlas.DefaultSize }
	if self.AtlasPadding < 0 { self.AtlasPadding = atlas.DefaultPadding }
	if self.FontScale <= 0 { self.FontScale = font.DefaultScale }
	return self
}
