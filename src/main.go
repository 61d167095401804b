package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/integrii/flaggy"

	"toruslife/src/config"
	"toruslife/src/life"
	"toruslife/src/view"
)

var engines = map[string]func(rows, cols int) (*life.Grid, error){
	"lists": life.NewGrid,
	"buffered": func(rows, cols int) (*life.Grid, error) {
		bg, err := life.NewBuffGrid(rows, cols)
		if err != nil {
			return nil, err
		}
		return bg.Grid, nil
	},
}

type options struct {
	configPath  string
	iterations  int
	cadence     life.Cadence
	engine      string
	interval    time.Duration
	interactive bool
}

func main() {
	o := initOptions()

	seed, err := config.Load(o.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not load configuration: %v\n", err)
		os.Exit(1)
	}

	grid, err := engines[o.engine](seed.Rows, seed.Cols)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not create grid: %v\n", err)
		os.Exit(1)
	}
	if err = grid.Settle(seed.Live); err != nil {
		fmt.Fprintf(os.Stderr, "Could not settle grid: %v\n", err)
		os.Exit(1)
	}

	if o.interactive {
		view.NewConsoleUI(grid, o.iterations, o.interval).Start()
		return
	}

	renderer := view.NewConsoleOut(os.Stdout, true, true)
	life.NewSimulator(grid, renderer, o.interval).Run(o.iterations, o.cadence)
}

func initOptions() *options {
	o := &options{engine: "lists", interval: life.DefaultFrameDelay}

	engineNames := make([]string, 0, len(engines))
	for k := range engines {
		engineNames = append(engineNames, k)
	}
	sort.Strings(engineNames)

	var iterArg, verbArg string
	flaggy.SetName("toruslife")
	flaggy.SetDescription("Conway's Game of Life on a toroidal grid")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.AddPositionalValue(&o.configPath, "config", 1, true, "Path to the configuration file")
	flaggy.AddPositionalValue(&iterArg, "iterations", 2, true, "Number of steps to run the simulation")
	flaggy.AddPositionalValue(&verbArg, "verbosity", 3, true, "0 (no output), 1 (final output) or 2 (animated output)")
	flaggy.String(&o.engine, "e", "engine", "Step strategy to use ["+strings.Join(engineNames, "|")+"]")
	flaggy.Duration(&o.interval, "i", "interval", "Delay between animated frames in format the number with 'ms' suffix, for example 100ms")
	flaggy.Bool(&o.interactive, "n", "interactive", "Start interactive mode")
	flaggy.Parse()

	iterations, err := strconv.Atoi(iterArg)
	if err != nil || iterations < 0 {
		flaggy.ShowHelpAndExit("iterations must be a non-negative integer")
	}
	o.iterations = iterations

	verbosity, err := strconv.Atoi(verbArg)
	if err != nil {
		flaggy.ShowHelpAndExit("verbosity must be an integer")
	}
	if o.cadence, err = life.CadenceFromVerbosity(verbosity); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	if _, ok := engines[o.engine]; !ok {
		flaggy.ShowHelpAndExit("unknown engine")
	}
	return o
}
