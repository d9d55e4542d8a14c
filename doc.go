// atxt is a package for drawing text with Ebitengine through a glyph
// atlas: each (character, size) pair is rasterized once, packed into a
// shared texture and drawn from there on every later frame.
//
// Usage revolves around a single type, [Fonts]. First you create it and
// load your fonts. The loading order is the lookup order, so later fonts
// act as fallbacks for characters missing in the earlier ones:
//   fonts := atxt.NewDefaultFonts()
//   err := fonts.LoadFontBytes(notoSans)
//   if err != nil { ... }
//   err = fonts.LoadFontBytes(notoSansJP)
//   if err != nil { ... }
//
// Then you draw from your game's Draw method:
//   fonts.DrawText(screen, "Nice 良い", 20, 20, 32, color.White)
//
// Glyphs are cached automatically the first time they are measured or
// drawn. [Fonts] is not safe for concurrent use; like the rest of an
// Ebitengine game, it's meant to be used from the update/draw goroutine.
package atxt
