package config

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

//Seed is a parsed initial configuration: the grid dimensions plus the
//coordinate pairs that start out live
type Seed struct {
	Rows, Cols int
	Live       [][2]int
}

//Load reads a seed file
//the format is whitespace-separated integers: rows and cols, then the
//number of coordinate pairs, then that many row/col pairs
func Load(path string) (*Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open file: %v", path)
	}
	defer f.Close()
	return parse(f)
}

//parse reads the seed format from in
//every coordinate pair is validated against the grid bounds, an
//out-of-range pair fails the load instead of producing a corrupt grid
func parse(in io.Reader) (*Seed, error) {
	var rows, cols, n int
	if _, err := fmt.Fscan(in, &rows, &cols, &n); err != nil {
		return nil, errors.Wrap(err, "reading grid dimensions")
	}
	if rows < 1 || cols < 1 {
		return nil, errors.Errorf("grid dimensions must be positive, got %vx%v", rows, cols)
	}
	if n < 0 {
		return nil, errors.Errorf("cell count must be non-negative, got %v", n)
	}
	seed := &Seed{Rows: rows, Cols: cols, Live: make([][2]int, 0, n)}
	for i := 0; i < n; i++ {
		var r, c int
		if _, err := fmt.Fscan(in, &r, &c); err != nil {
			return nil, errors.Wrapf(err, "reading coordinate pair %v of %v", i+1, n)
		}
		if r < 0 || r >= rows || c < 0 || c >= cols {
			return nil, errors.Errorf("coordinate (%v, %v) outside %vx%v grid", r, c, rows, cols)
		}
		seed.Live = append(seed.Live, [2]int{r, c})
	}
	return seed, nil
}
