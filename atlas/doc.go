// The atlas subpackage implements the texture atlas where atxt stores
// rasterized glyphs: many small sprites packed into a single surface
// so drawing text doesn't need to switch textures between glyphs.
//
// Sprites are placed with a [ShelfPacker]. When a sprite doesn't fit,
// the [Atlas] doubles its dimensions and repacks everything, so sprite
// rectangles must always be read through [Atlas.Get]() instead of being
// kept around.
package atlas
