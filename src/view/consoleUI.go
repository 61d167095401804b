package view

import (
	"bytes"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"toruslife/src/life"
)

type keyBinding struct {
	key     interface{}
	name    string
	descr   string
	handler func() error
}

//ConsoleUI is the interactive terminal frontend
//the board can be stepped by hand or run through its remaining
//iterations at the configured interval
type ConsoleUI struct {
	g *gocui.Gui
	k []keyBinding

	mu        sync.Mutex
	board     life.Board
	remaining int
	stepsDone int
	running   bool

	interval   time.Duration
	liveFiller string
	deadFiller string
}

//NewConsoleUI creates the terminal application for a board with
//iterations steps left to run
func NewConsoleUI(board life.Board, iterations int, interval time.Duration) *ConsoleUI {
	t := &ConsoleUI{
		board:      board,
		remaining:  iterations,
		interval:   interval,
		liveFiller: aurora.Green("█").String(),
		deadFiller: "░",
	}

	var err error
	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}

	t.k = []keyBinding{
		{gocui.KeyCtrlC,
			"^C",
			"Exit",
			t.cmdQuit},
		{'n',
			"N",
			"Next step",
			t.cmdStep},
		{'r',
			"R",
			"Run",
			t.cmdRun},
		{'s',
			"S",
			"Stop",
			t.cmdStop},
	}
	t.g.SetManagerFunc(t.layout)
	t.initKeyBindings()
	return t
}

func (t *ConsoleUI) initKeyBindings() {
	for _, kb := range t.k {
		h := kb.handler
		if err := t.g.SetKeybinding("", kb.key, gocui.ModNone, func(*gocui.Gui, *gocui.View) error { return h() }); err != nil {
			log.Panicln(err)
		}
	}
}

//Start runs the UI main loop until quit
func (t *ConsoleUI) Start() {
	defer t.g.Close()
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
}

func (t *ConsoleUI) cmdQuit() error {
	t.mu.Lock()
	t.running = false
	t.mu.Unlock()
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdStep() error {
	t.mu.Lock()
	if !t.running && t.remaining > 0 {
		t.board.Step()
		t.remaining--
		t.stepsDone++
	}
	t.mu.Unlock()
	t.refresh()
	return nil
}

//cmdRun steps through the remaining iterations at the configured interval
//until they run out or Stop is pressed
func (t *ConsoleUI) cmdRun() error {
	t.mu.Lock()
	if t.running || t.remaining == 0 {
		t.mu.Unlock()
		return nil
	}
	t.running = true
	t.mu.Unlock()

	go func() {
		for {
			t.mu.Lock()
			if !t.running || t.remaining == 0 {
				t.running = false
				t.mu.Unlock()
				t.refresh()
				return
			}
			t.board.Step()
			t.remaining--
			t.stepsDone++
			t.mu.Unlock()
			t.refresh()
			if t.interval > 0 {
				time.Sleep(t.interval)
			}
		}
	}()
	return nil
}

func (t *ConsoleUI) cmdStop() error {
	t.mu.Lock()
	t.running = false
	t.mu.Unlock()
	t.refresh()
	return nil
}

//refresh schedules a redraw, safe to call from any goroutine
func (t *ConsoleUI) refresh() {
	t.g.Update(func(g *gocui.Gui) error {
		t.draw(g)
		return nil
	})
}

//draw fills the status and board views, must run on the UI thread
func (t *ConsoleUI) draw(g *gocui.Gui) {
	t.mu.Lock()
	s := t.board.Snapshot()
	stepsDone, remaining, running := t.stepsDone, t.remaining, t.running
	t.mu.Unlock()

	mode := aurora.Colorize("waiting", aurora.BlueFg).String()
	if running {
		mode = aurora.Colorize("running", aurora.CyanFg).String()
	}
	if remaining == 0 {
		mode = aurora.Colorize("done", aurora.RedFg).String()
	}

	if v, e := g.View("status"); e == nil {
		v.Clear()
		_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", s.Rows(), s.Cols()))
		_, _ = fmt.Fprintln(v, t.renderProp("Step", "%v", stepsDone))
		_, _ = fmt.Fprintln(v, t.renderProp("Remaining", "%v", remaining))
		_, _ = fmt.Fprintln(v, t.renderProp("Live cells", "%v", s.LiveCells()))
		_, _ = fmt.Fprintln(v, t.renderProp("Interval", "%v", t.interval))
		_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", mode))
	}
	if v, e := g.View("board"); e == nil {
		v.Clear()
		_, _ = fmt.Fprint(v, t.renderBoard(v, s))
	}
}

func (t *ConsoleUI) renderBoard(v *gocui.View, s life.Snapshot) string {
	maxW, maxH := v.Size()
	crop := s.Cols() > maxW || s.Rows() > maxH

	var b bytes.Buffer
	for r := 0; r < s.Rows(); r++ {
		//discard the rows outside the view area
		if r >= maxH {
			break
		}
		//line feed char
		if r != 0 {
			b.WriteByte(10)
		}
		if crop && r == maxH-1 {
			b.WriteString(aurora.Red("The board is larger than the viewing area").String())
			break
		}
		for c := 0; c < s.Cols(); c++ {
			if c >= maxW {
				break
			}
			if s.Alive(r, c) {
				b.WriteString(t.liveFiller)
			} else {
				b.WriteString(t.deadFiller)
			}
		}
	}
	return b.String()
}

func (t *ConsoleUI) renderProp(name string, valueFormat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueFormat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 24

	if v, err := g.SetView("status", 0, 0, leftColumnWidth, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
	}

	if v, err := g.SetView("board", leftColumnWidth+1, 0, maxX-1, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Board"
		v.Frame = true
	}

	if v, err := g.SetView("help", -1, maxY-3, maxX, maxY-1); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	t.draw(g)
	return nil
}
