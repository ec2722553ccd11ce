package model

import (
	"crypto/md5"
	"fmt"

	"github.com/rifqialf/gameoflife/rules"
)

// Grid is a bounded board of width x height cells indexed by (row, col).
// A grid is treated as immutable once a step or the decoder hands it out;
// every step writes into a separate grid.
type Grid struct {
	width  int
	height int
	cells  [][]bool
}

// NewGrid creates a new all-dead grid with the specified dimensions
func NewGrid(width, height int) *Grid {
	width, height = max(width, 0), max(height, 0)
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Reset resizes the grid and kills every cell
func (g *Grid) Reset(width, height int) {
	width, height = max(width, 0), max(height, 0)
	g.width = width
	g.height = height

	if len(g.cells) != height {
		g.cells = make([][]bool, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]bool, width)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear kills every cell
func (g *Grid) Clear() {
	for y := range g.cells {
		clear(g.cells[y])
	}
}

// Set sets a cell to alive (true) or dead (false). Out-of-range positions are
// ignored. Only meant for building a grid before it is handed out.
func (g *Grid) Set(row, col int, alive bool) {
	if g.InBounds(row, col) {
		g.cells[row][col] = alive
	}
}

// Get returns the state of a cell; positions outside the grid are dead
func (g *Grid) Get(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.cells[row][col]
}

// InBounds reports whether (row, col) lies inside the grid
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// CountLiveNeighbors counts live cells among the 8 neighbors of (row, col).
// Neighbors outside the grid count as dead; there is no wraparound.
func (g *Grid) CountLiveNeighbors(row, col int) int {
	count := 0

	minRow := max(0, row-1)
	maxRow := min(g.height-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.width-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if g.cells[r][c] {
				count++
			}
		}
	}

	return count
}

// nextState applies the rule to one cell of g
func (g *Grid) nextState(row, col int) bool {
	return rules.ApplyConwayRules(g.CountLiveNeighbors(row, col), g.cells[row][col])
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	next := NewGrid(g.width, g.height)
	for y := range g.cells {
		copy(next.cells[y], g.cells[y])
	}
	return next
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// GetGridHash returns an MD5 digest of the grid's dimensions and cells
func (g *Grid) GetGridHash() string {
	h := md5.New()
	fmt.Fprintf(h, "%d %d\n", g.width, g.height)
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// activeBounds is the bounding box of living cells, inclusive
type activeBounds struct {
	minRow, maxRow, minCol, maxCol int
	valid                          bool
}

// liveBounds calculates the bounding box of living cells
func (g *Grid) liveBounds() (b activeBounds) {
	for y := range g.height {
		for x := range g.width {
			if !g.cells[y][x] {
				continue
			}
			if !b.valid {
				b = activeBounds{minRow: y, maxRow: y, minCol: x, maxCol: x, valid: true}
				continue
			}
			b.minRow = min(b.minRow, y)
			b.maxRow = max(b.maxRow, y)
			b.minCol = min(b.minCol, x)
			b.maxCol = max(b.maxCol, x)
		}
	}
	return
}

// GetBoundingBoxSize returns the size of the live region
func (g *Grid) GetBoundingBoxSize() int {
	b := g.liveBounds()
	if !b.valid {
		return 0
	}
	return (b.maxRow - b.minRow + 1) * (b.maxCol - b.minCol + 1)
}
