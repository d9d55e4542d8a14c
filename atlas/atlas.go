package atlas

import "io"
import "math"
import "image"
import "image/draw"
import "log/slog"

// Default atlas dimensions and padding between sprites.
const (
	DefaultSize    = 512
	DefaultPadding = 2
)

// Options for [New].
type Options struct {
	// Initial surface size. Non-positive values are replaced
	// by [DefaultSize]. The atlas doubles both dimensions each
	// time it runs out of space.
	Width  int
	Height int

	// Empty pixels left between sprites. Negative values will panic.
	Padding int

	// Logger for growth events. Nil disables logging.
	Logger *slog.Logger
}

// Used when [Options].Logger is nil. No record reaches its level.
var nopLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{ Level: slog.Level(math.MaxInt32) }))

// Returns the default atlas options.
func DefaultOptions() Options {
	return Options{ Width: DefaultSize, Height: DefaultSize, Padding: DefaultPadding }
}

// A packed sprite within an [Atlas]. Empty sprites have an
// empty rectangle and don't take any space in the surface.
type Sprite struct {
	Rect image.Rectangle
}

// Returns the sprite width in pixels.
func (self Sprite) Width() int { return self.Rect.Dx() }

// Returns the sprite height in pixels.
func (self Sprite) Height() int { return self.Rect.Dy() }

// An Atlas owns a single RGBA surface and a mapping from sprite ids
// to the rectangles they occupy within it.
//
// Atlases are not safe for concurrent use. The surface is only written
// by [Atlas.CacheSprite](), and read by [Atlas.Texture]() and draw
// calls; both must happen from the same goroutine.
type Atlas struct {
	surface *image.RGBA
	packer  *ShelfPacker
	sprites map[uint64]Sprite
	order   []uint64 // insertion order, used when repacking
	padding int
	nextID  uint64
	growths int
	dirty   bool // surface changed since the last texture sync
	texture gpuTexture
	logger  *slog.Logger
}

// Creates a new, empty atlas.
func New(opts Options) *Atlas {
	if opts.Padding < 0 { panic("opts.Padding < 0") } // likely a dev mistake
	if opts.Width  <= 0 { opts.Width  = DefaultSize }
	if opts.Height <= 0 { opts.Height = DefaultSize }
	logger := opts.Logger
	if logger == nil { logger = nopLogger }

	return &Atlas{
		surface: image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height)),
		packer:  NewShelfPacker(opts.Width, opts.Height, opts.Padding),
		sprites: make(map[uint64]Sprite, 128),
		padding: opts.Padding,
		dirty:   true,
		logger:  logger,
	}
}

// Returns an id that hasn't been returned before by this atlas.
// Ids are never reused, even if the atlas repacks its sprites.
func (self *Atlas) NewUniqueID() uint64 {
	id := self.nextID
	self.nextID += 1
	return id
}

// Packs the given image into the atlas under the given id. Images
// are converted to the premultiplied RGBA surface format, so glyph
// sprites are typically [*image.NRGBA] with saturated color channels
// and the coverage as alpha. If the id was already in use, the previous
// sprite is replaced, but its old region is only reclaimed on the next
// repack.
//
// If the sprite doesn't fit, the atlas grows and all sprites are
// repacked, which may change the rectangles of existing sprites.
func (self *Atlas) CacheSprite(id uint64, sprite image.Image) {
	if sprite == nil { panic("nil sprite") }

	_, replacing := self.sprites[id]
	if !replacing { self.order = append(self.order, id) }

	bounds := sprite.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		self.sprites[id] = Sprite{}
		return
	}

	x, y := self.place(width, height)
	rect := image.Rect(x, y, x + width, y + height)
	draw.Draw(self.surface, rect, sprite, bounds.Min, draw.Src)
	self.sprites[id] = Sprite{ Rect: rect }
	self.dirty = true
}

// Returns the sprite with the given id, if present.
func (self *Atlas) Get(id uint64) (Sprite, bool) {
	sprite, found := self.sprites[id]
	return sprite, found
}

// Returns the number of sprites in the atlas.
func (self *Atlas) Len() int { return len(self.sprites) }

// Returns the current surface size.
func (self *Atlas) Size() (width, height int) {
	return self.surface.Rect.Dx(), self.surface.Rect.Dy()
}

// Returns how many times the atlas has grown.
func (self *Atlas) Growths() int { return self.growths }

// Returns the CPU side surface. The image must not be modified, and
// it's replaced by a bigger one each time the atlas grows.
func (self *Atlas) Image() *image.RGBA { return self.surface }

// Returns the fraction of the surface taken by sprites, between 0 and 1.
func (self *Atlas) Utilization() float64 { return self.packer.Utilization() }

// ---- internal ----

func (self *Atlas) place(width, height int) (int, int) {
	for {
		x, y, ok := self.packer.Allocate(width, height)
		if ok { return x, y }
		self.grow()
	}
}

func (self *Atlas) grow() {
	width, height := self.Size()
	for {
		width, height = width*2, height*2
		if self.repack(width, height) { break }
	}
	self.growths += 1
	self.logger.Debug("atlas grown",
		"width", width, "height", height, "sprites", len(self.sprites))
}

// Places all sprites on a new surface of the given size, in insertion
// order. Returns false without modifying anything if they don't fit.
func (self *Atlas) repack(width, height int) bool {
	packer := NewShelfPacker(width, height, self.padding)
	placed := make(map[uint64]Sprite, len(self.sprites))
	for _, id := range self.order {
		sprite, found := self.sprites[id]
		if !found { continue } // id being inserted right now
		if sprite.Rect.Empty() {
			placed[id] = sprite
			continue
		}
		w, h := sprite.Width(), sprite.Height()
		x, y, ok := packer.Allocate(w, h)
		if !ok { return false }
		placed[id] = Sprite{ Rect: image.Rect(x, y, x + w, y + h) }
	}

	surface := image.NewRGBA(image.Rect(0, 0, width, height))
	for id, sprite := range placed {
		if sprite.Rect.Empty() { continue }
		draw.Draw(surface, sprite.Rect, self.surface, self.sprites[id].Rect.Min, draw.Src)
	}

	self.surface = surface
	self.packer  = packer
	self.sprites = placed
	self.dirty   = true
	return true
}
