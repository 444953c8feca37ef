package physics

import "math"

// SpatialGrid is a uniform grid for broad-phase collision detection over the
// play area. Items are inserted by bounding rect and index; a rect query then
// visits only items sharing at least one cell with it.
//
// Rects reaching outside the area are clamped to the edge cells. Clamping is
// monotonic, so two overlapping rects always share a cell.
type SpatialGrid struct {
	cellSize    float64
	invCellSize float64 // 1 / cellSize (precomputed to avoid division)
	cols        int
	rows        int
	cells       []gridCell

	// Per-query visit marks so an item spanning several cells is reported once.
	seen     []uint32
	queryGen uint32
}

// gridCell stores the indices of objects that fall within a grid cell.
// The slice is reused between frames (reset to [:0]) to avoid allocations.
type gridCell struct {
	items []int
}

// NewSpatialGrid creates a spatial grid covering the given area dimensions.
func NewSpatialGrid(areaW, areaH, cellSize float64) *SpatialGrid {
	cols := int(math.Ceil(areaW / cellSize))
	rows := int(math.Ceil(areaH / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	return &SpatialGrid{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([]gridCell, cols*rows),
	}
}

// Clear removes all items from the grid without deallocating cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// InsertRect adds an item (identified by index) to every cell r touches.
func (g *SpatialGrid) InsertRect(r Rect, index int) {
	c0, r0, c1, r1 := g.span(r)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			idx := row*g.cols + col
			g.cells[idx].items = append(g.cells[idx].items, index)
		}
	}
	if index >= len(g.seen) {
		grown := make([]uint32, index+1, 2*(index+1))
		copy(grown, g.seen)
		g.seen = grown
	}
}

// QueryRect calls fn once for each item index sharing a cell with r.
// If fn returns true, iteration stops early (useful for "find first" queries).
func (g *SpatialGrid) QueryRect(r Rect, fn func(index int) bool) {
	g.queryGen++
	if g.queryGen == 0 {
		clear(g.seen)
		g.queryGen = 1
	}

	c0, r0, c1, r1 := g.span(r)
	for row := r0; row <= r1; row++ {
		rowOffset := row * g.cols
		for col := c0; col <= c1; col++ {
			for _, itemIdx := range g.cells[rowOffset+col].items {
				if g.seen[itemIdx] == g.queryGen {
					continue
				}
				g.seen[itemIdx] = g.queryGen
				if fn(itemIdx) {
					return
				}
			}
		}
	}
}

// span returns the inclusive cell range covered by r.
func (g *SpatialGrid) span(r Rect) (c0, r0, c1, r1 int) {
	c0, r0 = g.posToCell(r.Left(), r.Top())
	c1, r1 = g.posToCell(r.Right(), r.Bottom())
	return c0, r0, c1, r1
}

// posToCell converts area coordinates to grid cell coordinates.
// Clamps to valid range for positions outside the area.
func (g *SpatialGrid) posToCell(x, y float64) (col, row int) {
	col = int(math.Floor(x * g.invCellSize))
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}

	row = int(math.Floor(y * g.invCellSize))
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}

	return col, row
}
