//go:build !gtxt

package atxt

import "image/color"

import "github.com/hajimehoshi/ebiten/v2"
import "github.com/tinne26/atxt/atlas"

// Alias to allow compiling the package without Ebitengine (gtxt version).
//
// Without Ebitengine, TargetImage defaults to [image/draw.Image].
type TargetImage = *ebiten.Image

func (self ScalingMode) filter() ebiten.Filter {
	if self == ScalingNearest { return ebiten.FilterNearest }
	return ebiten.FilterLinear
}

// Draws the quad's source rectangle from the atlas texture into the
// target, scaled to the quad size and tinted by the given color.
func (self *Fonts) drawQuad(target TargetImage, texture atlas.Texture, quad GlyphQuad, tint color.Color) {
	source := texture.SubImage(quad.Source).(*ebiten.Image)
	srcWidth, srcHeight := float32(quad.Source.Dx()), float32(quad.Source.Dy())

	var opts ebiten.DrawImageOptions
	if quad.Width != srcWidth || quad.Height != srcHeight {
		opts.GeoM.Scale(float64(quad.Width/srcWidth), float64(quad.Height/srcHeight))
	}
	opts.GeoM.Translate(float64(quad.X), float64(quad.Y))
	opts.ColorScale.ScaleWithColor(tint)
	opts.Filter = self.config.Scaling.filter()
	target.DrawImage(source, &opts)
}
