package camera

import (
	"math"
	"testing"
)

func TestBandIsFractionOfViewport(t *testing.T) {
	cam := New(1000, 1280, 720, 0.6, 400, 0.12)

	lower, upper := cam.Band()
	if lower != 1000-768 || upper != 1000+768 {
		t.Errorf("expected band (232, 1768), got (%f, %f)", lower, upper)
	}
}

func TestRetentionBandExtendsBand(t *testing.T) {
	cam := New(1000, 1280, 720, 0.6, 400, 0.12)

	lower, upper := cam.RetentionBand()
	bandLower, bandUpper := cam.Band()
	if lower != bandLower-400 || upper != bandUpper+400 {
		t.Errorf("expected retention (%f, %f), got (%f, %f)",
			bandLower-400, bandUpper+400, lower, upper)
	}
}

func TestFollowEasesTowardTarget(t *testing.T) {
	cam := New(0, 1280, 720, 0.6, 400, 0.5)

	cam.Follow(100)
	if cam.X != 50 {
		t.Errorf("expected X 50 after one follow, got %f", cam.X)
	}

	// Backward target moves the camera backward too.
	cam.Follow(-100)
	if cam.X >= 50 {
		t.Errorf("expected camera to move backward, got %f", cam.X)
	}
}

func TestWorldToScreenCentered(t *testing.T) {
	cam := New(500, 1280, 720, 0.6, 400, 0.12)

	sx, sy := cam.WorldToScreen(500, 0)
	if math.Abs(float64(sx-640)) > 0.01 {
		t.Errorf("expected screen x 640 at camera center, got %f", sx)
	}
	if math.Abs(float64(sy-504)) > 0.01 {
		t.Errorf("expected water line at screen y 504, got %f", sy)
	}

	// Height moves up the screen.
	_, syUp := cam.WorldToScreen(500, 50)
	if syUp >= sy {
		t.Errorf("expected higher world y to be above water line, got %f vs %f", syUp, sy)
	}
}

func TestScreenToWorldInvertsWorldToScreen(t *testing.T) {
	cam := New(1234, 1280, 720, 0.6, 400, 0.12)

	for _, p := range [][2]float32{{1234, 0}, {900, 80}, {1700, -15}} {
		sx, sy := cam.WorldToScreen(p[0], p[1])
		wx, wy := cam.ScreenToWorld(sx, sy)
		if math.Abs(float64(wx-p[0])) > 0.01 || math.Abs(float64(wy-p[1])) > 0.01 {
			t.Errorf("round trip of (%f, %f) gave (%f, %f)", p[0], p[1], wx, wy)
		}
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(1000, 1280, 720, 0.6, 400, 0.12)

	if !cam.IsVisible(1000, 10) {
		t.Error("center should be visible")
	}
	if cam.IsVisible(2000, 10) {
		t.Error("far point should not be visible")
	}
	if !cam.IsVisible(1650, 20) {
		t.Error("edge point with half-extent should be visible")
	}
}
