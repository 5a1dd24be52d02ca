// Package game composes the simulation: registry, scheduler, resolver,
// physics, ledger, and telemetry, stepped at a fixed dt. The graphical
// front-end is a thin layer over the same step.
package game

import (
	"log/slog"
	"math/rand"

	"github.com/pixelfilm44/StuntFrogsRunner-sub005/camera"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/collision"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/components"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/config"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/events"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/ledger"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/persistence"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/physics"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/player"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/spawn"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/telemetry"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/world"
)

// Movement constants outside the physics config.
const (
	floatDriftSpeed = 26.0 // forward drift while floating
	startPadX       = 0.0
)

// Options configures game construction.
type Options struct {
	Seed        int64
	OutputDir   string
	ProfilePath string
	LogStats    bool
	Headless    bool
}

// Game holds the complete simulation state.
type Game struct {
	cfg *config.Config
	rng *rand.Rand

	reg       *world.Registry
	window    world.ActiveWindow
	current   *world.Current
	scheduler *spawn.Scheduler
	resolver  *collision.Resolver
	queue     *events.Queue
	cam       *camera.Camera

	frog   *player.Frog
	vitals *player.Vitals

	ledger  *ledger.Ledger
	profile *persistence.Profile

	collector *telemetry.Collector
	output    *telemetry.OutputManager

	opts Options
	seed int64

	frame    int64
	runFrame int64
	run      int
	paused   bool

	// Run state
	progress float32 // furthest lateral distance reached this run
	score    int
	biome    components.Biome
	weather  components.Weather

	weatherTimer float32

	// Drag input: world anchor fixed at press, current pull point.
	dragging   bool
	dragAnchor physics.Vec2
	dragPoint  physics.Vec2

	// Flight steering intent for the frame, in [-1, 1].
	steer float32

	debugMode bool
}

// NewGame creates a game with the given options. The first run starts
// immediately.
func NewGame(opts Options) (*Game, error) {
	cfg := config.Cfg()

	profile, err := persistence.LoadProfile(opts.ProfilePath)
	if err != nil {
		return nil, err
	}
	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, err
	}

	g := &Game{
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(opts.Seed)),
		queue:     events.NewQueue(),
		ledger:    ledger.New(cfg.Ledger.PackSize, cfg.Ledger.PerRunCap, slog.Default()),
		profile:   profile,
		collector: telemetry.NewCollector(cfg.Telemetry.WindowFrames, cfg.Derived.DT32),
		output:    output,
		opts:      opts,
		seed:      opts.Seed,
	}
	if err := profile.ApplyToLedger(g.ledger); err != nil {
		output.Close()
		return nil, err
	}
	if err := g.beginRun(); err != nil {
		output.Close()
		return nil, err
	}
	return g, nil
}

// Frame returns the global frame counter across runs.
func (g *Game) Frame() int64 {
	return g.frame
}

// Run returns the current run number, starting at 1.
func (g *Game) Run() int {
	return g.run
}

// Score returns the current run's score.
func (g *Game) Score() int {
	return g.score
}

// Progress returns the furthest distance reached this run.
func (g *Game) Progress() float32 {
	return g.progress
}

// UpdateHeadless runs one simulation step without touching input or graphics.
func (g *Game) UpdateHeadless() {
	g.step()
}

// Update runs input handling and one simulation step.
func (g *Game) Update() {
	g.handleInput()
	if g.paused {
		return
	}
	g.step()
}

// Unload flushes outputs and persists the profile.
func (g *Game) Unload() {
	// A run in progress settles as-is so consumables never leak.
	if g.ledger.State() == ledger.Loaded {
		g.endRun("aborted")
	}
	if err := g.output.Close(); err != nil {
		slog.Error("closing output", "error", err)
	}
	if g.opts.ProfilePath != "" {
		if err := g.profile.Save(g.opts.ProfilePath); err != nil {
			slog.Error("saving profile", "error", err)
		}
	}
}
