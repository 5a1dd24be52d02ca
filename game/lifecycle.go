package game

import (
	"log/slog"

	"github.com/pixelfilm44/StuntFrogsRunner-sub005/components"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/difficulty"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/spawn"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/world"
)

// beginRun builds the run-scoped state: a fresh registry and scheduler, a new
// frog and vitals, and a loaded consumable snapshot. The ledger is settled
// first in case a previous run terminated abnormally.
func (g *Game) beginRun() error {
	if err := g.ledger.EnsureSettled(g.currentBuffCounts()); err != nil {
		return err
	}

	g.run++
	g.runFrame = 0
	g.progress = 0
	g.score = 0
	g.weatherTimer = 0
	g.weather = components.WeatherClear
	g.dragging = false
	g.steer = 0

	cfg := g.cfg
	g.reg = world.NewRegistry(cfg.World.PadCap, cfg.World.HazardCap, cfg.World.ObstacleCap, cfg.World.CollectibleCap)
	g.current = world.NewCurrent(g.seed+int64(g.run), cfg.World.CurrentScale, cfg.World.CurrentSpeed)
	g.scheduler = spawn.NewScheduler(cfg, g.reg, g.seed+int64(g.run), startPadX+float32(cfg.World.SlotSpacing))
	g.resolver = g.newResolver()

	g.cam = newFollowCamera(cfg)
	g.biome = cfg.Derived.BiomeAt(0)

	g.frog = newStartingFrog(cfg)
	g.vitals = newStartingVitals(cfg)

	loaded, err := g.ledger.Load()
	if err != nil {
		return err
	}
	g.vitals.LoadBuffs(loaded)

	// The starting pad is always there; everything else rolls.
	startID := g.reg.NextID()
	g.reg.SpawnPad(startPadX, components.Pad{ID: startID, HalfWidth: 60, AnchorX: startPadX})
	g.frog.OnPadID = startID
	_, upper := g.cam.Band()
	g.scheduler.FillAhead(upper, 0)

	slog.Info("run started",
		"run", g.run,
		"seed", g.seed+int64(g.run),
		"biome", g.biome.String(),
	)
	return nil
}

// endRun settles the ledger, folds the run into the profile, and emits the
// run summary.
func (g *Game) endRun(cause string) {
	if err := g.ledger.Settle(g.currentBuffCounts()); err != nil {
		slog.Error("settling ledger", "error", err)
	}
	g.profile.CaptureLedger(g.ledger)
	g.profile.RecordRun(g.score, float64(g.progress), g.biome.String())

	level := difficulty.Level(g.progress, g.cfg.Difficulty.ScalingInterval)
	summary := g.collector.FlushRun(g.run, g.runFrame, float64(g.progress), g.score, level, cause)
	if err := g.output.WriteRun(summary); err != nil {
		slog.Error("writing run summary", "error", err)
	}

	slog.Info("run ended",
		"run", g.run,
		"cause", cause,
		"frames", g.runFrame,
		"progress", g.progress,
		"score", g.score,
		"level", level,
		"high_score", g.profile.HighScore,
	)
	if g.opts.ProfilePath != "" {
		if err := g.profile.Save(g.opts.ProfilePath); err != nil {
			slog.Error("saving profile", "error", err)
		}
	}
}

// currentBuffCounts returns the vitals' buff counts, or zeroes before the
// first run has started.
func (g *Game) currentBuffCounts() [components.NumBuffKinds]int {
	if g.vitals == nil {
		return [components.NumBuffKinds]int{}
	}
	return g.vitals.BuffCounts()
}
