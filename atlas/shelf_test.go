package atlas

import "testing"

func TestShelfPacker(t *testing.T) {
	packer := NewShelfPacker(32, 32, 2)

	x, y, ok := packer.Allocate(10, 8)
	if !ok || x != 0 || y != 0 { t.Fatalf("expected (0, 0), got (%d, %d, %t)", x, y, ok) }
	x, y, ok = packer.Allocate(10, 6)
	if !ok || x != 12 || y != 0 { t.Fatalf("expected (12, 0), got (%d, %d, %t)", x, y, ok) }

	// taller item on the last shelf grows the shelf
	x, y, ok = packer.Allocate(6, 10)
	if !ok || x != 24 || y != 0 { t.Fatalf("expected (24, 0), got (%d, %d, %t)", x, y, ok) }
	if packer.ShelfCount() != 1 { t.Fatalf("expected 1 shelf, got %d", packer.ShelfCount()) }

	// no horizontal room left, new shelf below the 10px tall one
	x, y, ok = packer.Allocate(10, 10)
	if !ok || x != 0 || y != 12 { t.Fatalf("expected (0, 12), got (%d, %d, %t)", x, y, ok) }
	if packer.ShelfCount() != 2 { t.Fatalf("expected 2 shelves, got %d", packer.ShelfCount()) }

	// too big
	_, _, ok = packer.Allocate(40, 4)
	if ok { t.Fatal("didn't expect a 40px wide item to fit") }
	_, _, ok = packer.Allocate(4, 40)
	if ok { t.Fatal("didn't expect a 40px tall item to fit") }

	expected := float64(10*8 + 10*6 + 6*10 + 10*10)/float64(32*32)
	if packer.Utilization() != expected {
		t.Fatalf("expected utilization %f, got %f", expected, packer.Utilization())
	}

	packer.Reset()
	if packer.ShelfCount() != 0 || packer.Utilization() != 0 { t.Fatal("expected empty packer after reset") }
	x, y, ok = packer.Allocate(10, 10)
	if !ok || x != 0 || y != 0 { t.Fatalf("expected (0, 0) after reset, got (%d, %d, %t)", x, y, ok) }
}

func TestShelfPackerNoOverlap(t *testing.T) {
	packer := NewShelfPacker(64, 64, 1)
	type rect struct{ x, y, w, h int }
	var placed []rect
	for i := 0; i < 200; i++ {
		w, h := 3 + i%5, 4 + i%7
		x, y, ok := packer.Allocate(w, h)
		if !ok { break }
		if x + w > 64 || y + h > 64 { t.Fatalf("item %d out of bounds at (%d, %d)", i, x, y) }
		for j, other := range placed {
			if x < other.x + other.w && other.x < x + w && y < other.y + other.h && other.y < y + h {
				t.Fatalf("item %d overlaps item %d", i, j)
			}
		}
		placed = append(placed, rect{x, y, w, h})
	}
	if len(placed) < 20 { t.Fatalf("expected at least 20 items to fit, got %d", len(placed)) }
}

func TestShelfPackerPanics(t *testing.T) {
	defer func() {
		if recover() == nil { t.Fatal("expected panic on negative padding") }
	}()
	NewShelfPacker(8, 8, -1)
}
