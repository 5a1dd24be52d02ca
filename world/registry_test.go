package world

import (
	"testing"

	"github.com/pixelfilm44/StuntFrogsRunner-sub005/components"
)

func newTestRegistry() *Registry {
	return NewRegistry(64, 64, 64, 64)
}

func spawnPads(r *Registry, xs ...float32) {
	for _, x := range xs {
		r.SpawnPad(x, components.Pad{ID: r.NextID(), Subtype: components.PadStatic, HalfWidth: 40, AnchorX: x})
	}
}

func TestWindowContainsExactlyInBandEntities(t *testing.T) {
	r := newTestRegistry()
	spawnPads(r, 100, 300, 500, 700, 900, 1100)

	var win ActiveWindow
	r.BuildWindow(250, 950, 400, &win)

	if len(win.Pads) != 4 {
		t.Fatalf("window pads = %d, want 4", len(win.Pads))
	}
	for _, e := range win.Pads {
		x := r.Position(e).X
		if x < 250 || x > 950 {
			t.Errorf("entity at %v outside [250, 950]", x)
		}
	}
}

func TestWindowBackwardCameraStillFindsSkippedEntities(t *testing.T) {
	r := newTestRegistry()
	spawnPads(r, 100, 300, 500, 700)

	var win ActiveWindow
	// Forward: skips 100 and 300.
	r.BuildWindow(450, 800, 400, &win)
	if len(win.Pads) != 2 {
		t.Fatalf("forward window pads = %d, want 2", len(win.Pads))
	}
	// Camera moves backward; skipped entities must reappear.
	r.BuildWindow(50, 400, 400, &win)
	if len(win.Pads) != 2 {
		t.Fatalf("backward window pads = %d, want 2", len(win.Pads))
	}
	for _, e := range win.Pads {
		x := r.Position(e).X
		if x != 100 && x != 300 {
			t.Errorf("unexpected pad at %v after backward move", x)
		}
	}
}

func TestWindowScanStopsPastUpperPlusMargin(t *testing.T) {
	r := newTestRegistry()
	spawnPads(r, 100, 500, 2000, 2100, 2200)

	var win ActiveWindow
	r.BuildWindow(0, 600, 400, &win)
	if len(win.Pads) != 2 {
		t.Fatalf("window pads = %d, want 2", len(win.Pads))
	}
}

func TestEvictBehindRemovesOnlyPastRetention(t *testing.T) {
	r := newTestRegistry()
	spawnPads(r, 100, 300, 500, 700)
	r.SpawnHazard(200, components.Hazard{ID: r.NextID(), Subtype: components.HazardLog, HalfWidth: 60, Direction: 1, Speed: 30})

	removed := r.EvictBehind(350)
	if removed != 3 {
		t.Fatalf("removed = %d, want 3", removed)
	}
	if got := r.LiveCount(components.KindPad); got != 2 {
		t.Errorf("live pads = %d, want 2", got)
	}
	if got := r.LiveCount(components.KindHazard); got != 0 {
		t.Errorf("live hazards = %d, want 0", got)
	}

	// Evicted entities never reappear, even if the camera backs up.
	var win ActiveWindow
	r.BuildWindow(0, 1000, 400, &win)
	if len(win.Pads) != 2 {
		t.Errorf("window pads after evict = %d, want 2", len(win.Pads))
	}
}

func TestEnforceCapsEvictsOldestFirst(t *testing.T) {
	r := NewRegistry(64, 2, 64, 64)
	r.SpawnHazard(100, components.Hazard{ID: 1, Subtype: components.HazardBee, HalfWidth: 20, Direction: 1})
	r.SpawnHazard(300, components.Hazard{ID: 2, Subtype: components.HazardBee, HalfWidth: 20, Direction: 1})
	r.SpawnHazard(500, components.Hazard{ID: 3, Subtype: components.HazardBee, HalfWidth: 20, Direction: 1})
	r.SpawnHazard(700, components.Hazard{ID: 4, Subtype: components.HazardBee, HalfWidth: 20, Direction: 1})

	removed := r.EnforceCaps()
	if removed != 2 {
		t.Fatalf("removed = %d, want 2", removed)
	}
	var win ActiveWindow
	r.BuildWindow(0, 1000, 400, &win)
	if len(win.Hazards) != 2 {
		t.Fatalf("live hazards = %d, want 2", len(win.Hazards))
	}
	for _, e := range win.Hazards {
		id := r.Hazard(e).ID
		if id != 3 && id != 4 {
			t.Errorf("survivor ID = %d, want the two newest (3, 4)", id)
		}
	}
}

func TestLiveCountSubTracksSpawnAndRemove(t *testing.T) {
	r := newTestRegistry()
	r.SpawnHazard(100, components.Hazard{ID: 1, Subtype: components.HazardBee, Direction: 1})
	r.SpawnHazard(200, components.Hazard{ID: 2, Subtype: components.HazardLog, Direction: 1})
	r.SpawnHazard(300, components.Hazard{ID: 3, Subtype: components.HazardBee, Direction: -1})

	if got := r.LiveCountSub(components.KindHazard, uint8(components.HazardBee)); got != 2 {
		t.Fatalf("live bees = %d, want 2", got)
	}
	r.EvictBehind(150) // removes the first bee
	if got := r.LiveCountSub(components.KindHazard, uint8(components.HazardBee)); got != 1 {
		t.Errorf("live bees after evict = %d, want 1", got)
	}
	if got := r.LiveCountSub(components.KindHazard, uint8(components.HazardLog)); got != 1 {
		t.Errorf("live logs = %d, want 1", got)
	}
}

func TestDispatchMovingPadOscillatesAroundAnchor(t *testing.T) {
	r := newTestRegistry()
	e := r.SpawnPad(400, components.Pad{
		ID: 1, Subtype: components.PadMoving, HalfWidth: 40,
		AnchorX: 400, Amplitude: 50,
	})
	cur := NewCurrent(7, 0, 0)
	var win ActiveWindow
	dt := float32(1.0 / 60.0)
	for i := 0; i < 600; i++ {
		r.BuildWindow(0, 800, 400, &win)
		r.Dispatch(&win, cur, float64(i)*float64(dt), dt)
		x := r.Position(e).X
		if x < 350-1e-3 || x > 450+1e-3 {
			t.Fatalf("moving pad at %v outside anchor±amplitude", x)
		}
	}
}

func TestDispatchLogDriftStaysWithinClamp(t *testing.T) {
	r := newTestRegistry()
	e := r.SpawnHazard(600, components.Hazard{
		ID: 1, Subtype: components.HazardLog, HalfWidth: 60,
		Direction: 1, Speed: 120,
	})
	cur := NewCurrent(7, 0, 0)
	var win ActiveWindow
	dt := float32(1.0 / 60.0)
	for i := 0; i < 1800; i++ {
		r.BuildWindow(0, 1200, 400, &win)
		r.Dispatch(&win, cur, float64(i)*float64(dt), dt)
		x := r.Position(e).X
		if x < 600-logDriftClamp-1 || x > 600+logDriftClamp+1 {
			t.Fatalf("log drifted to %v, clamp is ±%v around 600", x, float32(logDriftClamp))
		}
	}
}

func TestDispatchCrocJawCycles(t *testing.T) {
	r := newTestRegistry()
	e := r.SpawnHazard(400, components.Hazard{
		ID: 1, Subtype: components.HazardCroc, HalfWidth: 70, Direction: 1,
	})
	cur := NewCurrent(7, 0, 0)
	var win ActiveWindow
	dt := float32(1.0 / 60.0)
	opened, closed := false, false
	for i := 0; i < 600; i++ {
		r.BuildWindow(0, 800, 400, &win)
		r.Dispatch(&win, cur, float64(i)*float64(dt), dt)
		if r.Hazard(e).JawOpen {
			opened = true
		} else {
			closed = true
		}
	}
	if !opened || !closed {
		t.Errorf("jaw cycle incomplete over 10s: opened=%v closed=%v", opened, closed)
	}
}

func TestDispatchFleeingObstacleDespawns(t *testing.T) {
	r := newTestRegistry()
	e := r.SpawnObstacle(400, components.Obstacle{
		ID: 1, Subtype: components.ObstacleSnake, HalfWidth: 30,
		AnchorX: 400, Range: 20,
	})
	r.Obstacle(e).Fleeing = true

	cur := NewCurrent(7, 0, 0)
	var win ActiveWindow
	dt := float32(1.0 / 60.0)
	for i := 0; i < 200; i++ {
		r.BuildWindow(-1000, 800, 400, &win)
		r.Dispatch(&win, cur, float64(i)*float64(dt), dt)
	}
	if got := r.LiveCount(components.KindObstacle); got != 0 {
		t.Errorf("live obstacles = %d, want 0 after flee expiry", got)
	}
}

func TestHighestKeyTracksDeadEntries(t *testing.T) {
	r := newTestRegistry()
	if _, ok := r.HighestKey(components.KindPad); ok {
		t.Fatal("HighestKey on empty list should report !ok")
	}
	spawnPads(r, 100, 500)
	r.EvictBehind(1000)
	key, ok := r.HighestKey(components.KindPad)
	if !ok || key != 500 {
		t.Errorf("HighestKey = %v, %v; want 500, true", key, ok)
	}
}
