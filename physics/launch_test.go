package physics

import (
	"math"
	"testing"

	"github.com/pixelfilm44/StuntFrogsRunner-sub005/config"
)

func testConstants(t *testing.T) *config.PhysicsConfig {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	return &cfg.Physics
}

func TestDeadZoneProducesNoLaunch(t *testing.T) {
	p := testConstants(t)

	// Magnitude just under the dead zone threshold.
	drag := Vec2{X: float32(p.MinPullDistance) * 0.9, Y: 0}
	if _, ok := ComputeLaunch(p, drag, 1.0); ok {
		t.Error("expected no launch below dead zone")
	}

	if _, ok := ComputeLaunch(p, Vec2{}, 1.0); ok {
		t.Error("expected no launch for zero drag")
	}
}

func TestPullDistanceClamped(t *testing.T) {
	p := testConstants(t)

	atMax, ok := ComputeLaunch(p, Vec2{X: 0, Y: -float32(p.MaxPullDistance)}, 1.0)
	if !ok {
		t.Fatal("expected launch at max pull")
	}
	beyond, ok := ComputeLaunch(p, Vec2{X: 0, Y: -float32(p.MaxPullDistance) * 3}, 1.0)
	if !ok {
		t.Fatal("expected launch beyond max pull")
	}

	if beyond.V0 != atMax.V0 || beyond.HorizontalVel != atMax.HorizontalVel {
		t.Errorf("pull beyond max must clamp: got v0 %f vs %f", beyond.V0, atMax.V0)
	}
}

func TestDistanceMultiplierScalesDisplacement(t *testing.T) {
	p := testConstants(t)
	drag := Vec2{X: -80, Y: -60}

	base, ok := ComputeLaunch(p, drag, 1.0)
	if !ok {
		t.Fatal("expected launch")
	}
	boosted, ok := ComputeLaunch(p, drag, 1.5)
	if !ok {
		t.Fatal("expected boosted launch")
	}

	baseDist := LandingX(base, 0)
	boostedDist := LandingX(boosted, 0)
	if math.Abs(float64(boostedDist-baseDist*1.5)) > 0.01 {
		t.Errorf("expected 1.5x displacement, got %f vs base %f", boostedDist, baseDist)
	}
}

func TestHopLandsAtDuration(t *testing.T) {
	p := testConstants(t)
	launch, ok := ComputeLaunch(p, Vec2{X: -100, Y: -120}, 1.0)
	if !ok {
		t.Fatal("expected launch")
	}

	var hop Hop
	hop.Start(launch, 50)

	dt := float32(p.DT)
	var landed bool
	steps := 0
	for !landed && steps < 10000 {
		landed = hop.Step(dt)
		if h := hop.Height(); h < -0.001 {
			t.Fatalf("height went negative mid-hop: %f", h)
		}
		steps++
	}
	if !landed {
		t.Fatal("hop never landed")
	}

	wantX := LandingX(launch, 50)
	if math.Abs(float64(hop.X()-wantX)) > 0.01 {
		t.Errorf("expected landing at %f, got %f", wantX, hop.X())
	}
	if math.Abs(float64(hop.Height())) > 0.001 {
		t.Errorf("expected height 0 at landing, got %f", hop.Height())
	}
}

func TestHopResetClearsAllState(t *testing.T) {
	p := testConstants(t)
	launch, _ := ComputeLaunch(p, Vec2{X: -100, Y: -120}, 1.0)

	var hop Hop
	hop.Start(launch, 50)
	hop.Step(float32(p.DT))
	hop.Reset()

	if hop.Active || hop.T != 0 || hop.OriginX != 0 || hop.Launch.V0 != 0 {
		t.Errorf("reset left partial state: %+v", hop)
	}
}

func TestPreviewMatchesExecutedHop(t *testing.T) {
	p := testConstants(t)
	origin := Vec2{X: 200, Y: 0}

	drags := []Vec2{
		{X: -60, Y: -40},
		{X: -150, Y: -150},
		{X: -30, Y: -200},
		{X: 40, Y: -90},
	}
	for _, drag := range drags {
		points := Preview(p, drag, 1.0, origin)
		if len(points) == 0 {
			t.Fatalf("drag %+v: expected preview points", drag)
		}
		if len(points) > p.PreviewPoints {
			t.Errorf("drag %+v: %d points exceeds configured %d", drag, len(points), p.PreviewPoints)
		}

		launch, ok := ComputeLaunch(p, drag, 1.0)
		if !ok {
			t.Fatalf("drag %+v: expected launch", drag)
		}

		last := points[len(points)-1]
		wantX := LandingX(launch, origin.X)
		if math.Abs(float64(last.X-wantX)) > 0.01 {
			t.Errorf("drag %+v: preview lands at %f, executed hop at %f", drag, last.X, wantX)
		}
		if math.Abs(float64(last.Y-origin.Y)) > 0.01 {
			t.Errorf("drag %+v: preview end height %f, want %f", drag, last.Y, origin.Y)
		}
	}
}

func TestPreviewDeadZoneReturnsNil(t *testing.T) {
	p := testConstants(t)
	if pts := Preview(p, Vec2{X: 1, Y: 1}, 1.0, Vec2{}); pts != nil {
		t.Errorf("expected nil preview inside dead zone, got %d points", len(pts))
	}
}

func TestFlightTimerExpires(t *testing.T) {
	p := testConstants(t)
	c := FlightConstants{
		Gravity:    float32(p.FlightGravity),
		Friction:   float32(p.Friction),
		SteerAccel: float32(p.FlightSteerAccel),
		MaxSpeed:   float32(p.FlightMaxSpeed),
		Duration:   float32(p.FlightDuration),
	}

	var f Flight
	f.Start(120, 40)

	dt := float32(p.DT)
	expired := false
	steps := 0
	for !expired && steps < 100000 {
		_, _, expired = f.Step(c, 0, dt)
		steps++
	}
	if !expired {
		t.Fatal("flight never expired")
	}
	elapsed := float32(steps) * dt
	if math.Abs(float64(elapsed-c.Duration)) > float64(dt)*2 {
		t.Errorf("expired after %f seconds, want about %f", elapsed, c.Duration)
	}
}

func TestFlightSpeedClamped(t *testing.T) {
	p := testConstants(t)
	c := FlightConstants{
		Gravity:    float32(p.FlightGravity),
		Friction:   1.0, // isolate the clamp
		SteerAccel: 10000,
		MaxSpeed:   float32(p.FlightMaxSpeed),
		Duration:   float32(p.FlightDuration),
	}

	var f Flight
	f.Start(0, 0)
	dt := float32(p.DT)
	for i := 0; i < 300; i++ {
		f.Step(c, 1, dt)
	}
	speed := math.Hypot(float64(f.VX), float64(f.VY))
	if speed > float64(c.MaxSpeed)+0.01 {
		t.Errorf("speed %f exceeds max %f", speed, c.MaxSpeed)
	}
}
