package view

import (
	"bytes"
	"strings"
	"testing"

	"toruslife/src/life"
)

func testSnapshot(t *testing.T) life.Snapshot {
	t.Helper()
	g, err := life.NewGrid(2, 3)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if err = g.Settle([][2]int{{0, 0}, {1, 2}}); err != nil {
		t.Fatalf("Settle: %v", err)
	}
	return g.Snapshot()
}

func TestRenderGlyphs(t *testing.T) {
	var buf bytes.Buffer
	NewConsoleOut(&buf, false, false).Render(testSnapshot(t))

	want := "@ - - \n- - @ \n"
	if buf.String() != want {
		t.Fatalf("rendered %q, expected %q", buf.String(), want)
	}
}

func TestRenderClearsScreenFirst(t *testing.T) {
	var buf bytes.Buffer
	NewConsoleOut(&buf, true, false).Render(testSnapshot(t))

	if !strings.HasPrefix(buf.String(), clearSeq) {
		t.Fatalf("frame does not start with the clear sequence: %q", buf.String())
	}
	if !strings.HasSuffix(buf.String(), "@ - - \n- - @ \n") {
		t.Fatalf("unexpected frame body: %q", buf.String())
	}
}

func TestRenderColorsLiveCells(t *testing.T) {
	var buf bytes.Buffer
	NewConsoleOut(&buf, false, true).Render(testSnapshot(t))

	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatal("color output contains no escape sequences")
	}
}
