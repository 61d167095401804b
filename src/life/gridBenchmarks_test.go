package life

import (
	"sort"
	"testing"
)

var (
	benchSample = [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 3}, {4, 2}, {4, 3}, {5, 3}}

	benchEngines = map[string]func(rows, cols int) (*Grid, error){
		"lists": NewGrid,
		"buffered": func(rows, cols int) (*Grid, error) {
			bg, err := NewBuffGrid(rows, cols)
			if err != nil {
				return nil, err
			}
			return bg.Grid, nil
		},
	}
)

const (
	benchRows = 200
	benchCols = 200
)

func benchEngineNames() (names []string) {
	names = make([]string, 0, len(benchEngines))
	for k := range benchEngines {
		names = append(names, k)
	}
	sort.Strings(names)
	return
}

func Benchmark_Step(b *testing.B) {
	for _, e := range benchEngineNames() {
		b.Run(e, func(b *testing.B) {
			g, err := benchEngines[e](benchRows, benchCols)
			if err != nil {
				b.Fatal(err)
			}
			if err = g.Settle(benchSample); err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g.Step()
			}
		})
	}
}

func Benchmark_NeighborCount(b *testing.B) {
	g, err := NewGrid(benchRows, benchCols)
	if err != nil {
		b.Fatal(err)
	}
	if err = g.Settle(benchSample); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.NeighborCount(i%benchRows, i%benchCols)
	}
}
