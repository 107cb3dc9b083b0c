package anvil

// BoundBox is an axis-aligned rectangle in pixel coordinates.
// Width and Height are never negative; a box lying fully outside the
// buffer is tolerated by every operation that accepts one.
type BoundBox struct {
	X, Y          int
	Width, Height int
}

// Area returns Width*Height in pixels.
func (b BoundBox) Area() int {
	return b.Width * b.Height
}

// Empty reports whether the box covers no pixels.
func (b BoundBox) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Intersect returns the intersection of two boxes.
// The result is the zero box when they do not overlap.
func (b BoundBox) Intersect(o BoundBox) BoundBox {
	x0 := max(b.X, o.X)
	y0 := max(b.Y, o.Y)
	x1 := min(b.X+b.Width, o.X+o.Width)
	y1 := min(b.Y+b.Height, o.Y+o.Height)
	if x1 <= x0 || y1 <= y0 {
		return BoundBox{}
	}
	return BoundBox{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Contains reports whether the point (x, y) lies inside the box.
func (b BoundBox) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// TileIndex addresses one tile of the dirty-tracking grid.
type TileIndex struct {
	Row, Col int
}
