// Package tile tracks which coarse tiles of a pixel buffer are dirty.
//
// A renderer reads the dirty set to decide which sub-rectangles need
// re-uploading after edits. Tiles form a fixed lattice of
// tileSize*tileSize squares; edge tiles may be smaller.
package tile

// wordBits is the dirty bitset word width.
const wordBits = 32

// Index addresses one tile of the grid.
type Index struct {
	Row, Col int
}

// Grid is a dirty bitset over the tile lattice covering a
// width*height pixel area.
type Grid struct {
	tileSize int
	width    int
	height   int
	rows     int
	cols     int
	dirty    []uint32
}

// New creates a grid for a width*height pixel area. tileSize must be
// positive; rows and cols round up so edge tiles cover the remainder.
func New(width, height, tileSize int) *Grid {
	if tileSize < 1 {
		tileSize = 1
	}
	g := &Grid{tileSize: tileSize}
	g.alloc(width, height)
	return g
}

func (g *Grid) alloc(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g.width = width
	g.height = height
	g.cols = (width + g.tileSize - 1) / g.tileSize
	g.rows = (height + g.tileSize - 1) / g.tileSize
	g.dirty = make([]uint32, (g.rows*g.cols+wordBits-1)/wordBits)
}

// TileSize returns the tile edge length in pixels.
func (g *Grid) TileSize() int { return g.tileSize }

// Rows returns the number of tile rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of tile columns.
func (g *Grid) Cols() int { return g.cols }

// Valid reports whether the index addresses a tile of this grid.
func (g *Grid) Valid(idx Index) bool {
	return idx.Row >= 0 && idx.Row < g.rows && idx.Col >= 0 && idx.Col < g.cols
}

// PixelToTile maps a pixel coordinate to its tile index.
// The result is only meaningful for in-bounds pixels.
func (g *Grid) PixelToTile(x, y int) Index {
	return Index{Row: y / g.tileSize, Col: x / g.tileSize}
}

// TileBounds returns the pixel rectangle covered by the tile.
// Edge tiles are clipped to the pixel area. Out-of-range indices
// return all zeros.
func (g *Grid) TileBounds(idx Index) (x, y, w, h int) {
	if !g.Valid(idx) {
		return 0, 0, 0, 0
	}
	x = idx.Col * g.tileSize
	y = idx.Row * g.tileSize
	w = min(g.tileSize, g.width-x)
	h = min(g.tileSize, g.height-y)
	return x, y, w, h
}

// IsDirty reports whether the tile is marked dirty.
// Out-of-range indices return false.
func (g *Grid) IsDirty(idx Index) bool {
	if !g.Valid(idx) {
		return false
	}
	bit := idx.Row*g.cols + idx.Col
	return g.dirty[bit/wordBits]&(1<<(bit%wordBits)) != 0
}

// SetDirty marks or clears one tile. Out-of-range indices are ignored.
func (g *Grid) SetDirty(idx Index, dirty bool) {
	if !g.Valid(idx) {
		return
	}
	bit := idx.Row*g.cols + idx.Col
	if dirty {
		g.dirty[bit/wordBits] |= 1 << (bit % wordBits)
	} else {
		g.dirty[bit/wordBits] &^= 1 << (bit % wordBits)
	}
}

// MarkDirtyByPixel marks the tile containing pixel (x, y) dirty.
// Negative coordinates are ignored.
func (g *Grid) MarkDirtyByPixel(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	g.SetDirty(g.PixelToTile(x, y), true)
}

// MarkRectDirty marks every tile intersecting the pixel rectangle
// dirty, clipped to the grid.
func (g *Grid) MarkRectDirty(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	r0 := max(0, y/g.tileSize)
	c0 := max(0, x/g.tileSize)
	r1 := min(g.rows-1, (y+h-1)/g.tileSize)
	c1 := min(g.cols-1, (x+w-1)/g.tileSize)
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			g.SetDirty(Index{Row: r, Col: c}, true)
		}
	}
}

// ClearAll clears every dirty flag.
func (g *Grid) ClearAll() {
	for i := range g.dirty {
		g.dirty[i] = 0
	}
}

// SetAll marks every tile dirty. Bits beyond rows*cols stay zero so
// popcount-style scans over the words remain exact.
func (g *Grid) SetAll() {
	total := g.rows * g.cols
	for i := range g.dirty {
		g.dirty[i] = ^uint32(0)
	}
	if rem := total % wordBits; rem != 0 && len(g.dirty) > 0 {
		g.dirty[len(g.dirty)-1] = (1 << rem) - 1
	}
}

// DirtyIndices returns the dirty tile indices in row-major order.
func (g *Grid) DirtyIndices() []Index {
	var out []Index
	total := g.rows * g.cols
	for bit := 0; bit < total; bit++ {
		if g.dirty[bit/wordBits]&(1<<(bit%wordBits)) != 0 {
			out = append(out, Index{Row: bit / g.cols, Col: bit % g.cols})
		}
	}
	return out
}

// Resize recomputes the lattice for a new pixel area, preserving dirty
// flags for tiles present in both the old and new grids.
func (g *Grid) Resize(width, height int) {
	oldRows, oldCols := g.rows, g.cols
	oldDirty := g.dirty

	g.alloc(width, height)

	rows := min(oldRows, g.rows)
	cols := min(oldCols, g.cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			bit := r*oldCols + c
			if oldDirty[bit/wordBits]&(1<<(bit%wordBits)) != 0 {
				g.SetDirty(Index{Row: r, Col: c}, true)
			}
		}
	}
}
