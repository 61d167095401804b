package view

import (
	"bytes"
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"

	"toruslife/src/life"
)

const (
	liveGlyph = "@ "
	deadGlyph = "- "
	clearSeq  = "\x1b[2J\x1b[H" //clear screen, cursor home
)

//ConsoleOut renders snapshots as text, one line per row
type ConsoleOut struct {
	out   io.Writer
	clear bool //write a full screen clear before each frame
	live  string
	dead  string
}

//NewConsoleOut creates a renderer writing to out
//when color is set the live cells are drawn green
func NewConsoleOut(out io.Writer, clear bool, color bool) *ConsoleOut {
	c := &ConsoleOut{out: out, clear: clear, live: liveGlyph, dead: deadGlyph}
	if color {
		c.live = aurora.Green(liveGlyph).String()
	}
	return c
}

//Render writes one frame
func (c *ConsoleOut) Render(s life.Snapshot) {
	var b bytes.Buffer
	if c.clear {
		b.WriteString(clearSeq)
	}
	for r := 0; r < s.Rows(); r++ {
		for col := 0; col < s.Cols(); col++ {
			if s.Alive(r, col) {
				b.WriteString(c.live)
			} else {
				b.WriteString(c.dead)
			}
		}
		b.WriteByte('\n')
	}
	_, _ = fmt.Fprint(c.out, b.String())
}
