//go:build gtxt

package atlas

import "image"

type Texture = *image.RGBA

// nothing to sync without a gpu
type gpuTexture struct{}

func (self *Atlas) Texture() Texture {
	self.dirty = false
	return self.surface
}
