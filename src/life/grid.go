package life

import (
	"github.com/pkg/errors"
)

//Grid is a toroidal Game of Life board
//cells are stored in a flat row-major buffer, cell (r, c) lives at index r*cols+c
type Grid struct {
	rows, cols int
	cells      []bool
	stepImpl   func()
}

//NewGrid creates a grid with all cells dead
//the default step strategy is the two-pass kill/spawn list, see BuffGrid
//for the double-buffer variant
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, errors.Errorf("grid dimensions must be positive, got %vx%v", rows, cols)
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]bool, rows*cols)}
	g.stepImpl = g.stepLists
	return g, nil
}

//Rows returns the number of rows
func (g *Grid) Rows() int { return g.rows }

//Cols returns the number of columns
func (g *Grid) Cols() int { return g.cols }

//index maps (r, c) to the position in the flat buffer
func (g *Grid) index(r, c int) int { return r*g.cols + c }

//Alive reports whether the cell at (r, c) is live
func (g *Grid) Alive(r, c int) bool { return g.cells[g.index(r, c)] }

//Set assigns the liveness of the cell at (r, c)
func (g *Grid) Set(r, c int, alive bool) { g.cells[g.index(r, c)] = alive }

//Settle marks the given [row, col] coordinate pairs live
//a pair outside the grid bounds fails the whole call, nothing is written
func (g *Grid) Settle(coords [][2]int) error {
	for _, p := range coords {
		if p[0] < 0 || p[0] >= g.rows || p[1] < 0 || p[1] >= g.cols {
			return errors.Errorf("coordinate (%v, %v) outside %vx%v grid", p[0], p[1], g.rows, g.cols)
		}
	}
	for _, p := range coords {
		g.cells[g.index(p[0], p[1])] = true
	}
	return nil
}

//NeighborCount sums the live cells among the 8 torus-adjacent positions
//a wrapped position is skipped only when it lands exactly on (r, c), so on
//grids with rows or cols <= 2 a neighbor can coincide with another one and
//be counted twice; that follows from the modulo wrap and is kept as is
func (g *Grid) NeighborCount(r, c int) int {
	alive := 0
	for i := g.rows + r - 1; i <= g.rows+r+1; i++ {
		for j := g.cols + c - 1; j <= g.cols+c+1; j++ {
			if i%g.rows == r && j%g.cols == c {
				continue
			}
			if g.cells[(i%g.rows)*g.cols+j%g.cols] {
				alive++
			}
		}
	}
	return alive
}

//LiveCells counts the live cells on the whole grid
func (g *Grid) LiveCells() int {
	n := 0
	for _, alive := range g.cells {
		if alive {
			n++
		}
	}
	return n
}

//Step advances the grid by one generation
//every neighbor count is taken from the pre-step state, all transitions
//apply at once
func (g *Grid) Step() { g.stepImpl() }

//stepLists is the default strategy: a first pass collects the indexes of
//cells to kill and cells to spawn, a second pass applies both sets
func (g *Grid) stepLists() {
	var kill, spawn []int
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			idx := g.index(r, c)
			next := nextState(g.cells[idx], g.NeighborCount(r, c))
			if g.cells[idx] && !next {
				kill = append(kill, idx)
			} else if !g.cells[idx] && next {
				spawn = append(spawn, idx)
			}
		}
	}
	for _, idx := range kill {
		g.cells[idx] = false
	}
	for _, idx := range spawn {
		g.cells[idx] = true
	}
}

//Snapshot returns a read-only copy of the current state
func (g *Grid) Snapshot() Snapshot {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	return Snapshot{rows: g.rows, cols: g.cols, cells: cells}
}

//Snapshot is an immutable view of one grid generation
type Snapshot struct {
	rows, cols int
	cells      []bool
}

//Rows returns the number of rows
func (s Snapshot) Rows() int { return s.rows }

//Cols returns the number of columns
func (s Snapshot) Cols() int { return s.cols }

//Alive reports whether the cell at (r, c) was live when the snapshot was taken
func (s Snapshot) Alive(r, c int) bool { return s.cells[r*s.cols+c] }

//LiveCells counts the live cells in the snapshot
func (s Snapshot) LiveCells() int {
	n := 0
	for _, alive := range s.cells {
		if alive {
			n++
		}
	}
	return n
}
