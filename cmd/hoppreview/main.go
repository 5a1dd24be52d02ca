// Hop trajectory preview tool - interactive tuning with sliders.
//
// Usage: go run ./cmd/hoppreview
//
// With -csv the tool instead samples one trajectory and writes it to stdout
// for offline comparison.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/gocarina/gocsv"

	"github.com/pixelfilm44/StuntFrogsRunner-sub005/config"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/physics"
)

const (
	windowWidth  = 1100
	windowHeight = 720
	panelWidth   = 300
	groundY      = windowHeight * 0.75
)

// samplePoint is one row of -csv output.
type samplePoint struct {
	T float64 `csv:"t"`
	X float64 `csv:"x"`
	Y float64 `csv:"y"`
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	csvMode := flag.Bool("csv", false, "Dump one sampled trajectory as CSV to stdout and exit")
	dragX := flag.Float64("drag-x", -120, "Drag vector X for -csv mode")
	dragY := flag.Float64("drag-y", 60, "Drag vector Y for -csv mode")

	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	phys := config.Cfg().Physics

	if *csvMode {
		if err := dumpCSV(&phys, physics.Vec2{X: float32(*dragX), Y: float32(*dragY)}); err != nil {
			slog.Error("writing trajectory", "error", err)
			os.Exit(1)
		}
		return
	}

	rl.InitWindow(windowWidth, windowHeight, "Hop Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	gravity := float32(phys.Gravity)
	pullScale := float32(phys.PullScale)
	impulseScale := float32(phys.ImpulseScale)
	maxPull := float32(phys.MaxPullDistance)

	var dragging bool
	var anchor, point rl.Vector2

	for !rl.WindowShouldClose() {
		phys.Gravity = float64(gravity)
		phys.PullScale = float64(pullScale)
		phys.ImpulseScale = float64(impulseScale)
		phys.MaxPullDistance = float64(maxPull)

		mouse := rl.GetMousePosition()
		if mouse.X < windowWidth-panelWidth {
			if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
				dragging = true
				anchor = mouse
				point = mouse
			}
			if dragging && rl.IsMouseButtonDown(rl.MouseLeftButton) {
				point = mouse
			}
		}
		if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
			dragging = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(12, 16, 24, 255))
		rl.DrawLine(0, groundY, windowWidth-panelWidth, groundY, rl.DarkGray)

		if dragging {
			drag := physics.Vec2{X: point.X - anchor.X, Y: anchor.Y - point.Y} // screen Y points down
			origin := physics.Vec2{X: anchor.X, Y: 0}
			path := physics.Preview(&phys, drag, 1, origin)
			rl.DrawLineV(anchor, point, rl.Fade(rl.White, 0.4))
			for _, p := range path {
				rl.DrawCircle(int32(p.X), int32(groundY-p.Y), 3, rl.SkyBlue)
			}
			if l, ok := physics.ComputeLaunch(&phys, drag, 1); ok {
				rl.DrawText(fmt.Sprintf("dist %.0f  dur %.2fs  v0 %.1f",
					l.HorizontalVel*l.Duration, l.Duration, l.V0), 10, 10, 18, rl.RayWhite)
			}
		} else {
			rl.DrawText("drag to preview a hop", 10, 10, 18, rl.Gray)
		}

		// Parameter panel
		px := float32(windowWidth - panelWidth + 10)
		py := float32(20)
		rl.DrawText("Launch Parameters", int32(px), int32(py), 20, rl.RayWhite)
		py += 35

		gravity = slider(px, &py, "Gravity (hop arc)", "%.1f", gravity, 5, 120)
		pullScale = slider(px, &py, "Pull scale (drag -> distance)", "%.2f", pullScale, 0.5, 6)
		impulseScale = slider(px, &py, "Impulse scale (drag -> v0)", "%.3f", impulseScale, 0.02, 0.6)
		maxPull = slider(px, &py, "Max pull distance", "%.0f", maxPull, 50, 500)

		rl.EndDrawing()
	}
}

// slider draws one labeled SliderBar row and advances the panel cursor.
func slider(px float32, py *float32, label, format string, value, min, max float32) float32 {
	rl.DrawText(label, int32(px), int32(*py), 14, rl.Gray)
	*py += 18
	out := gui.SliderBar(
		rl.Rectangle{X: px, Y: *py, Width: panelWidth - 90, Height: 20},
		fmt.Sprintf("%.0f", min), fmt.Sprintf("%.0f", max),
		value, min, max,
	)
	rl.DrawText(fmt.Sprintf(format, out), int32(px+panelWidth-80), int32(*py+2), 16, rl.RayWhite)
	*py += 35
	return out
}

// dumpCSV samples one trajectory at the simulation dt and writes it to
// stdout.
func dumpCSV(phys *config.PhysicsConfig, drag physics.Vec2) error {
	l, ok := physics.ComputeLaunch(phys, drag, 1)
	if !ok {
		return fmt.Errorf("drag inside dead zone")
	}
	dt := float32(phys.DT)
	var rows []samplePoint
	for t := float32(0); t <= l.Duration; t += dt {
		rows = append(rows, samplePoint{
			T: float64(t),
			X: float64(l.HorizontalVel * t),
			Y: float64(physics.HeightAt(l, t)),
		})
	}
	rows = append(rows, samplePoint{T: float64(l.Duration), X: float64(l.HorizontalVel * l.Duration), Y: 0})
	return gocsv.Marshal(rows, os.Stdout)
}
