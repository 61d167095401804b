package life

import (
	"time"

	"github.com/pkg/errors"
)

//Cadence selects how often a snapshot is handed to the renderer during a run
type Cadence int

const (
	CadenceNone  Cadence = iota //never render
	CadenceFinal                //render once, after the last step
	CadenceEvery                //render after every step
)

//DefaultFrameDelay paces animated output so it is viewable by a human
const DefaultFrameDelay = 100 * time.Millisecond

//CadenceFromVerbosity maps the verbosity argument to a cadence
//0 is no output, 1 is final output only, 2 is animated output
func CadenceFromVerbosity(v int) (Cadence, error) {
	if v < 0 || v > 2 {
		return CadenceNone, errors.Errorf("verbosity must be 0, 1, or 2, got %v", v)
	}
	return Cadence(v), nil
}

//Board is the surface the simulator drives
type Board interface {
	Step()
	Snapshot() Snapshot
}

//Renderer consumes snapshots, it owns all output side effects
type Renderer interface {
	Render(s Snapshot)
}

//Simulator advances a board a fixed number of generations and reports
//snapshots to the renderer at the requested cadence
type Simulator struct {
	board    Board
	renderer Renderer
	delay    time.Duration //pause between animated frames, 0 disables pacing
}

//NewSimulator creates a simulator driving board and reporting to renderer
func NewSimulator(board Board, renderer Renderer, delay time.Duration) *Simulator {
	return &Simulator{board: board, renderer: renderer, delay: delay}
}

//Run steps the board iterations times
//zero iterations performs no steps and emits nothing, the board's final
//state stays inspectable by the caller afterwards
func (s *Simulator) Run(iterations int, cadence Cadence) {
	for i := 0; i < iterations; i++ {
		s.board.Step()
		switch cadence {
		case CadenceEvery:
			s.renderer.Render(s.board.Snapshot())
			if s.delay > 0 {
				time.Sleep(s.delay)
			}
		case CadenceFinal:
			if i == iterations-1 {
				s.renderer.Render(s.board.Snapshot())
			}
		}
	}
}
