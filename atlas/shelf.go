package atlas

// A ShelfPacker implements shelf-based rectangle packing.
//
// Rectangles are placed left to right on horizontal "shelves". Each
// shelf is as tall as the tallest rectangle placed on it so far, and a
// new shelf is started below the last one when none has room left.
// This works well for glyphs, which tend to have similar heights.
type ShelfPacker struct {
	width   int
	height  int
	padding int
	shelves []shelf
	usedArea int
}

type shelf struct {
	y      int // top of the shelf
	height int // tallest item so far
	x      int // next free x position
}

// Creates a new packer for a surface of the given size. Padding is the
// empty space left between rectangles to avoid sampling bleed.
// Negative values will panic.
func NewShelfPacker(width, height, padding int) *ShelfPacker {
	if width < 0 || height < 0 || padding < 0 {
		panic("negative ShelfPacker dimensions") // likely a dev mistake
	}
	return &ShelfPacker{
		width:   width,
		height:  height,
		padding: padding,
		shelves: make([]shelf, 0, 16),
	}
}

// Finds space for a rectangle of the given size. Returns its top-left
// position and true, or -1, -1, false if there's no room left.
func (self *ShelfPacker) Allocate(w, h int) (x, y int, ok bool) {
	paddedW := w + self.padding
	paddedH := h + self.padding

	for i := range self.shelves {
		shelf := &self.shelves[i]
		if shelf.x + paddedW > self.width { continue }

		if h > shelf.height {
			// only the last shelf can grow, and only if there's room below
			if i != len(self.shelves) - 1 { continue }
			if shelf.y + paddedH > self.height { continue }
			shelf.height = h
		}

		x, y = shelf.x, shelf.y
		shelf.x += paddedW
		self.usedArea += w*h
		return x, y, true
	}

	// start a new shelf
	newY := 0
	if len(self.shelves) > 0 {
		last := self.shelves[len(self.shelves) - 1]
		newY = last.y + last.height + self.padding
	}
	if newY + paddedH > self.height || paddedW > self.width {
		return -1, -1, false
	}
	self.shelves = append(self.shelves, shelf{ y: newY, height: h, x: paddedW })
	self.usedArea += w*h
	return 0, newY, true
}

// Clears all the allocations, keeping the surface size.
func (self *ShelfPacker) Reset() {
	self.shelves  = self.shelves[ : 0]
	self.usedArea = 0
}

// Returns the surface size the packer works with.
func (self *ShelfPacker) Size() (width, height int) {
	return self.width, self.height
}

// Returns the fraction of the surface covered by allocations,
// between 0 and 1. Padding is not counted.
func (self *ShelfPacker) Utilization() float64 {
	if self.width <= 0 || self.height <= 0 { return 0 }
	return float64(self.usedArea)/float64(self.width*self.height)
}

// Returns the number of shelves currently in use.
func (self *ShelfPacker) ShelfCount() int {
	return len(self.shelves)
}
