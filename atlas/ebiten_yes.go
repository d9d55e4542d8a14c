//go:build !gtxt

package atlas

import "github.com/hajimehoshi/ebiten/v2"

// The drawable form of the atlas surface.
//
// Without Ebitengine (gtxt version), Texture is [*image.RGBA].
type Texture = *ebiten.Image

type gpuTexture struct {
	image *ebiten.Image
}

// Returns the atlas surface as an Ebitengine image, uploading the
// pixels first if the surface changed since the last call. After the
// atlas grows, the previous image is disposed and a new one is created,
// so previously returned textures must not be used anymore.
func (self *Atlas) Texture() Texture {
	bounds := self.surface.Rect
	if self.texture.image == nil || self.texture.image.Bounds() != bounds {
		if self.texture.image != nil { self.texture.image.Dispose() }
		self.texture.image = ebiten.NewImage(bounds.Dx(), bounds.Dy())
		self.dirty = true
	}
	if self.dirty {
		self.texture.image.WritePixels(self.surface.Pix)
		self.dirty = false
	}
	return self.texture.image
}
