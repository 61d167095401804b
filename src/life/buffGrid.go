package life

/*
	Grid variant with a double-buffer step strategy
	the next generation is computed into a spare buffer which is then swapped
	with the live one, so no transition is visible before all counts are taken
*/
type BuffGrid struct {
	*Grid
	next []bool
}

//NewBuffGrid creates a grid using the double-buffer strategy
func NewBuffGrid(rows, cols int) (*BuffGrid, error) {
	g, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	bg := &BuffGrid{Grid: g, next: make([]bool, rows*cols)}
	//redefine the step strategy
	bg.Grid.stepImpl = bg.stepBuffered
	return bg, nil
}

func (bg *BuffGrid) stepBuffered() {
	for r := 0; r < bg.rows; r++ {
		for c := 0; c < bg.cols; c++ {
			idx := bg.index(r, c)
			bg.next[idx] = nextState(bg.cells[idx], bg.NeighborCount(r, c))
		}
	}
	bg.cells, bg.next = bg.next, bg.cells
}
