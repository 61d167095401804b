package life

import (
	"testing"
)

//recordingRenderer keeps every snapshot it is handed, in order
type recordingRenderer struct {
	frames []Snapshot
}

func (r *recordingRenderer) Render(s Snapshot) {
	r.frames = append(r.frames, s)
}

func blinkerGrid(t *testing.T) *Grid {
	t.Helper()
	return mustGrid(t, 5, 5, [][2]int{{2, 1}, {2, 2}, {2, 3}})
}

func TestRunZeroIterations(t *testing.T) {
	for _, cadence := range []Cadence{CadenceNone, CadenceFinal, CadenceEvery} {
		g := blinkerGrid(t)
		before := g.Snapshot()
		r := &recordingRenderer{}

		NewSimulator(g, r, 0).Run(0, cadence)

		if len(r.frames) != 0 {
			t.Fatalf("cadence %v: %d frames emitted, expected 0", cadence, len(r.frames))
		}
		if !sameSnapshot(before, g.Snapshot()) {
			t.Fatalf("cadence %v: grid mutated by a zero-iteration run", cadence)
		}
	}
}

func TestRunNoneEmitsNothing(t *testing.T) {
	g := blinkerGrid(t)
	want := blinkerGrid(t)
	for i := 0; i < 3; i++ {
		want.Step()
	}
	r := &recordingRenderer{}

	NewSimulator(g, r, 0).Run(3, CadenceNone)

	if len(r.frames) != 0 {
		t.Fatalf("%d frames emitted, expected 0", len(r.frames))
	}
	if !sameSnapshot(want.Snapshot(), g.Snapshot()) {
		t.Fatal("grid did not advance 3 generations")
	}
}

func TestRunFinalOnlyEmitsOneSnapshot(t *testing.T) {
	g := blinkerGrid(t)
	want := blinkerGrid(t)
	for i := 0; i < 5; i++ {
		want.Step()
	}
	r := &recordingRenderer{}

	NewSimulator(g, r, 0).Run(5, CadenceFinal)

	if len(r.frames) != 1 {
		t.Fatalf("%d frames emitted, expected 1", len(r.frames))
	}
	if !sameSnapshot(want.Snapshot(), r.frames[0]) {
		t.Fatal("emitted frame is not the state after the 5th step")
	}
}

func TestRunEveryStepEmitsEachGeneration(t *testing.T) {
	g := blinkerGrid(t)
	want := blinkerGrid(t)
	r := &recordingRenderer{}

	NewSimulator(g, r, 0).Run(5, CadenceEvery)

	if len(r.frames) != 5 {
		t.Fatalf("%d frames emitted, expected 5", len(r.frames))
	}
	for i, frame := range r.frames {
		want.Step()
		if !sameSnapshot(want.Snapshot(), frame) {
			t.Fatalf("frame %d does not match generation %d", i, i+1)
		}
	}
}

func TestCadenceFromVerbosity(t *testing.T) {
	for v, want := range map[int]Cadence{0: CadenceNone, 1: CadenceFinal, 2: CadenceEvery} {
		got, err := CadenceFromVerbosity(v)
		if err != nil {
			t.Fatalf("CadenceFromVerbosity(%d): %v", v, err)
		}
		if got != want {
			t.Fatalf("CadenceFromVerbosity(%d) = %v, expected %v", v, got, want)
		}
	}
	for _, v := range []int{-1, 3, 42} {
		if _, err := CadenceFromVerbosity(v); err == nil {
			t.Fatalf("CadenceFromVerbosity(%d) succeeded, expected an error", v)
		}
	}
}

//the snapshot must not alias the live buffer
func TestSnapshotIsImmutable(t *testing.T) {
	g := blinkerGrid(t)
	s := g.Snapshot()
	g.Step()
	if !s.Alive(2, 1) || !s.Alive(2, 2) || !s.Alive(2, 3) {
		t.Fatal("snapshot changed when the grid stepped")
	}
}
