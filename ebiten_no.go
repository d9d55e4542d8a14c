//go:build gtxt

package atxt

import "math"
import "image"
import "image/color"

import "golang.org/x/image/draw"
import "github.com/tinne26/atxt/atlas"

type TargetImage = draw.Image

func (self ScalingMode) interpolator() draw.Interpolator {
	if self == ScalingNearest { return draw.NearestNeighbor }
	return draw.ApproxBiLinear
}

// Quads are snapped to the pixel grid; the atlas alpha channel is used
// as the mask for a uniform source of the tint color.
func (self *Fonts) drawQuad(target TargetImage, texture atlas.Texture, quad GlyphQuad, tint color.Color) {
	x := int(math.Round(float64(quad.X)))
	y := int(math.Round(float64(quad.Y)))
	width  := int(math.Round(float64(quad.Width)))
	height := int(math.Round(float64(quad.Height)))
	targetRect := image.Rect(x, y, x + width, y + height)

	var mask image.Image = texture
	maskPoint := quad.Source.Min
	if width != quad.Source.Dx() || height != quad.Source.Dy() {
		scaled := image.NewRGBA(image.Rect(0, 0, width, height))
		self.config.Scaling.interpolator().Scale(scaled, scaled.Bounds(), texture, quad.Source, draw.Src, nil)
		mask, maskPoint = scaled, image.Point{}
	}
	draw.DrawMask(target, targetRect, image.NewUniform(tint), image.Point{}, mask, maskPoint, draw.Over)
}
