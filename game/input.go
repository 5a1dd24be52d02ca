package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pixelfilm44/StuntFrogsRunner-sub005/physics"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/player"
)

// handleInput processes keyboard and mouse input. Only the graphical
// front-end calls this; headless runs drive the simulation directly.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyD) {
		g.debugMode = !g.debugMode
	}

	// Flight steering intent.
	g.steer = 0
	if g.frog.Mode == player.ModeFlying {
		if rl.IsKeyDown(rl.KeyLeft) || rl.IsKeyDown(rl.KeyA) {
			g.steer -= 1
		}
		if rl.IsKeyDown(rl.KeyRight) {
			g.steer += 1
		}
	}

	g.handleDrag()
}

// handleDrag runs the slingshot gesture. The anchor is fixed in world space
// at press, so camera drift during the gesture cannot change the pull vector.
func (g *Game) handleDrag() {
	if !g.canLaunch() {
		g.dragging = false
		return
	}

	mouse := rl.GetMousePosition()
	wx, wy := g.screenToWorld(mouse.X, mouse.Y)

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		g.dragging = true
		g.dragAnchor = physics.Vec2{X: wx, Y: wy}
		g.dragPoint = g.dragAnchor
		return
	}
	if !g.dragging {
		return
	}
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		g.dragPoint = physics.Vec2{X: wx, Y: wy}
		return
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		drag := g.currentDrag()
		g.dragging = false
		g.CommitLaunch(drag)
	}
}

// currentDrag returns the live pull vector, from the press anchor to the
// current point. The launch opposes it: pulling backward hops forward.
func (g *Game) currentDrag() physics.Vec2 {
	return physics.Vec2{
		X: g.dragPoint.X - g.dragAnchor.X,
		Y: g.dragPoint.Y - g.dragAnchor.Y,
	}
}

// canLaunch reports whether the frog can accept a launch right now.
func (g *Game) canLaunch() bool {
	switch g.frog.Mode {
	case player.ModeGrounded, player.ModeFloating, player.ModeRiding:
		return true
	}
	return false
}

// launchMultiplier composes the active distance multipliers. Super mode
// stretches every hop; the preview reads the same value so it stays honest.
func (g *Game) launchMultiplier() float32 {
	if g.vitals.SuperActive() {
		return float32(g.cfg.Player.SuperMultiplier)
	}
	return 1
}

// CommitLaunch converts a drag vector into a hop. Drags inside the dead zone
// are ignored. Returns true when a hop started.
func (g *Game) CommitLaunch(drag physics.Vec2) bool {
	if !g.canLaunch() {
		return false
	}
	l, ok := physics.ComputeLaunch(&g.cfg.Physics, drag, g.launchMultiplier())
	if !ok {
		return false
	}
	if g.frog.Mode == player.ModeRiding {
		g.frog.RideRemaining = 0
		g.frog.RideEntityID = 0
	}
	g.frog.BeginHop(l)
	g.collector.RecordHop(float64(l.HorizontalVel) * float64(l.Duration))
	return true
}

// PreviewPath returns the sampled trajectory for the current drag, nil when
// not dragging or inside the dead zone. The preview runs the same launch
// math as the committed hop.
func (g *Game) PreviewPath() []physics.Vec2 {
	if !g.dragging {
		return nil
	}
	origin := physics.Vec2{X: g.frog.X, Y: g.frog.Y}
	return physics.Preview(&g.cfg.Physics, g.currentDrag(), g.launchMultiplier(), origin)
}

// screenToWorld inverts the camera transform for mouse input.
func (g *Game) screenToWorld(sx, sy float32) (wx, wy float32) {
	return g.cam.ScreenToWorld(sx, sy)
}
