// The font subpackage defines the [Face] contract used by atxt to
// rasterize glyphs and provides [Font], a default implementation built
// on top of [golang.org/x/image/font/sfnt] and [golang.org/x/image/vector].
//
// Fonts can be parsed from raw bytes, paths or filesystems (including
// gzipped .ttf.gz and .otf.gz files). Parsing failures are reported as
// [*LoadError] values, which can be classified with errors.Is and the
// [ErrMalformedFont] and [ErrUnsupportedFont] sentinels.
package font
