package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pixelfilm44/StuntFrogsRunner-sub005/components"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/config"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/persistence"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/physics"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/player"
)

func TestMain(m *testing.M) {
	config.MustInit("")
	os.Exit(m.Run())
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := NewGame(Options{Seed: 12345, Headless: true})
	if err != nil {
		t.Fatalf("creating game: %v", err)
	}
	t.Cleanup(g.Unload)
	return g
}

func TestGroundedFrogIdlesIndefinitely(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 600; i++ {
		g.UpdateHeadless()
	}
	if g.Frame() != 600 {
		t.Errorf("frame = %d, want 600", g.Frame())
	}
	if g.Run() != 1 {
		t.Errorf("run = %d, want 1 while idling on the start pad", g.Run())
	}
	if g.frog.Mode != player.ModeGrounded {
		t.Errorf("mode = %v, want grounded", g.frog.Mode)
	}
}

// A pure-horizontal drag of 63.64 units pulls the frog exactly one slot
// forward (63.64 * 2.2 = 140), landing it on the next pad's center.
func TestHopToNextPadLands(t *testing.T) {
	g := newTestGame(t)
	if !g.CommitLaunch(physics.Vec2{X: -63.64, Y: 0}) {
		t.Fatal("launch rejected")
	}
	if g.frog.Mode != player.ModeHopping {
		t.Fatalf("mode = %v, want hopping", g.frog.Mode)
	}
	for i := 0; i < 60 && g.frog.Mode == player.ModeHopping; i++ {
		g.UpdateHeadless()
	}
	if g.frog.Mode != player.ModeGrounded {
		t.Fatalf("mode = %v, want grounded after hop", g.frog.Mode)
	}
	if g.frog.OnPadID == 0 {
		t.Error("frog grounded but not on a pad")
	}
	if g.frog.X < 130 || g.frog.X > 150 {
		t.Errorf("frog.X = %v, want the pad at 140", g.frog.X)
	}
}

// Dragging the pointer backward from the press point slings the frog forward.
func TestBackwardPointerPullHopsForward(t *testing.T) {
	g := newTestGame(t)
	g.dragAnchor = physics.Vec2{X: g.frog.X, Y: 0}
	g.dragPoint = physics.Vec2{X: g.frog.X - 63.64, Y: 0}

	drag := g.currentDrag()
	if drag.X >= 0 {
		t.Fatalf("backward pull drag.X = %v, want negative", drag.X)
	}
	if !g.CommitLaunch(drag) {
		t.Fatal("launch rejected")
	}
	if v := g.frog.Hop.Launch.HorizontalVel; v <= 0 {
		t.Fatalf("horizontal vel = %v, want forward (positive)", v)
	}
	for i := 0; i < 60 && g.frog.Mode == player.ModeHopping; i++ {
		g.UpdateHeadless()
	}
	if g.frog.X < 130 || g.frog.X > 150 {
		t.Errorf("frog.X = %v, want the pad at 140", g.frog.X)
	}
}

// Super mode composes its multiplier into the committed launch, not only the
// coin score.
func TestSuperModeStretchesLaunchDistance(t *testing.T) {
	g := newTestGame(t)
	base, ok := physics.ComputeLaunch(&g.cfg.Physics, physics.Vec2{X: -63.64, Y: 0}, 1)
	if !ok {
		t.Fatal("base launch rejected")
	}
	baseDist := base.HorizontalVel * base.Duration

	g.vitals.StartSuper(float32(g.cfg.Player.SuperDuration))
	if !g.CommitLaunch(physics.Vec2{X: -63.64, Y: 0}) {
		t.Fatal("launch rejected")
	}
	got := g.frog.Hop.Launch.HorizontalVel * g.frog.Hop.Launch.Duration
	want := baseDist * float32(g.cfg.Player.SuperMultiplier)
	if got < want*0.99 || got > want*1.01 {
		t.Errorf("super hop distance = %v, want %v (%vx of %v)", got, want, g.cfg.Player.SuperMultiplier, baseDist)
	}
}

func TestDeadZoneDragDoesNotLaunch(t *testing.T) {
	g := newTestGame(t)
	if g.CommitLaunch(physics.Vec2{X: -5, Y: 3}) {
		t.Fatal("dead-zone drag launched")
	}
	if g.frog.Mode != player.ModeGrounded {
		t.Errorf("mode = %v, want grounded", g.frog.Mode)
	}
}

// A drag that lands in the gap between pads drowns a vestless frog and the
// next run starts automatically.
func TestGapLandingDrownsAndRestartsRun(t *testing.T) {
	g := newTestGame(t)
	if !g.CommitLaunch(physics.Vec2{X: -95.45, Y: 0}) { // lands at 210, between pads
		t.Fatal("launch rejected")
	}
	for i := 0; i < 120 && g.Run() == 1; i++ {
		g.UpdateHeadless()
	}
	if g.Run() != 2 {
		t.Fatalf("run = %d, want 2 after drowning", g.Run())
	}
	if g.frog.Mode != player.ModeGrounded || g.frog.X != startPadX {
		t.Errorf("new run frog at %v mode %v, want grounded on start pad", g.frog.X, g.frog.Mode)
	}
	if g.Score() != 0 || g.Progress() != 0 {
		t.Errorf("score/progress not reset: %d/%v", g.Score(), g.Progress())
	}
}

func TestVestConvertsGapLandingToFloat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte("buffs:\n  vest:\n    inventory: 4\n"), 0644); err != nil {
		t.Fatal(err)
	}
	g, err := NewGame(Options{Seed: 12345, Headless: true, ProfilePath: path})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(g.Unload)

	if g.vitals.Buff(components.BuffVest) == 0 {
		t.Fatal("vest not loaded from profile")
	}
	if !g.CommitLaunch(physics.Vec2{X: -95.45, Y: 0}) {
		t.Fatal("launch rejected")
	}
	for i := 0; i < 120 && g.frog.Mode == player.ModeHopping; i++ {
		g.UpdateHeadless()
	}
	if g.Run() != 1 {
		t.Fatalf("run = %d, want 1 (vest saved the frog)", g.Run())
	}
	if g.frog.Mode != player.ModeFloating {
		t.Errorf("mode = %v, want floating", g.frog.Mode)
	}
}

func TestProfilePersistsHighScoreAcrossUnload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	g, err := NewGame(Options{Seed: 12345, Headless: true, ProfilePath: path})
	if err != nil {
		t.Fatal(err)
	}
	g.score = 777
	g.CommitLaunch(physics.Vec2{X: -95.45, Y: 0})
	for i := 0; i < 120 && g.Run() == 1; i++ {
		g.UpdateHeadless()
	}
	g.Unload()

	p, err := persistence.LoadProfile(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.HighScore != 777 {
		t.Errorf("high score = %d, want 777", p.HighScore)
	}
	if p.TotalRuns == 0 {
		t.Error("total runs not recorded")
	}
}

func TestOutputDirProducesTelemetryFiles(t *testing.T) {
	dir := t.TempDir()
	g, err := NewGame(Options{Seed: 12345, Headless: true, OutputDir: dir})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		g.UpdateHeadless()
	}
	g.Unload()

	for _, name := range []string{"telemetry.csv", "runs.csv", "config.yaml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing output file %s: %v", name, err)
		}
	}
}
