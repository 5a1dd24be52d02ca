package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pixelfilm44/StuntFrogsRunner-sub005/components"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/difficulty"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/player"
)

var biomeWater = map[components.Biome]rl.Color{
	components.BiomePond:    rl.NewColor(24, 61, 92, 255),
	components.BiomeDesert:  rl.NewColor(84, 68, 36, 255),
	components.BiomeGlacier: rl.NewColor(40, 78, 110, 255),
}

// Draw renders the debug view of the simulation.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(12, 16, 24, 255))

	g.drawWater()
	g.drawEntities()
	g.drawFrog()
	g.drawPreview()
	g.drawHUD()
	if g.debugMode {
		g.drawDebug()
	}

	rl.EndDrawing()
}

func (g *Game) drawWater() {
	_, waterY := g.cam.WorldToScreen(g.cam.X, 0)
	color := biomeWater[g.biome]
	rl.DrawRectangle(0, int32(waterY), int32(g.cam.ViewportW), int32(g.cam.ViewportH-waterY), color)
	if g.weather == components.WeatherFog {
		rl.DrawRectangle(0, 0, int32(g.cam.ViewportW), int32(g.cam.ViewportH), rl.NewColor(200, 200, 210, 60))
	}
}

func (g *Game) drawEntities() {
	for _, e := range g.window.Pads {
		pad := g.reg.Pad(e)
		pos := g.reg.Position(e)
		if !g.cam.IsVisible(pos.X, pad.HalfWidth) {
			continue
		}
		sx, sy := g.cam.WorldToScreen(pos.X, 0)
		color := rl.NewColor(58, 148, 74, 255)
		switch pad.Subtype {
		case components.PadMoving:
			color = rl.NewColor(76, 168, 128, 255)
		case components.PadShrinking:
			color = rl.NewColor(148, 148, 62, 255)
		case components.PadUnstable:
			color = rl.NewColor(148, 96, 62, 255)
		}
		if pad.Sunk {
			color = rl.Fade(color, 0.3)
		}
		rl.DrawRectangle(int32(sx-pad.HalfWidth), int32(sy-6), int32(pad.HalfWidth*2), 12, color)
	}

	for _, e := range g.window.Hazards {
		hz := g.reg.Hazard(e)
		pos := g.reg.Position(e)
		sx, sy := g.cam.WorldToScreen(pos.X, pos.Y)
		switch hz.Subtype {
		case components.HazardBee:
			rl.DrawCircle(int32(sx), int32(sy), hz.HalfWidth, rl.NewColor(222, 188, 40, 255))
		case components.HazardLog:
			rl.DrawRectangle(int32(sx-hz.HalfWidth), int32(sy-hz.HalfHeight), int32(hz.HalfWidth*2), int32(hz.HalfHeight*2), rl.NewColor(112, 78, 46, 255))
		case components.HazardCroc:
			color := rl.NewColor(60, 105, 52, 255)
			if hz.JawOpen {
				color = rl.NewColor(130, 60, 46, 255)
			}
			rl.DrawRectangle(int32(sx-hz.HalfWidth), int32(sy-hz.HalfHeight), int32(hz.HalfWidth*2), int32(hz.HalfHeight*2), color)
		}
	}

	for _, e := range g.window.Obstacles {
		ob := g.reg.Obstacle(e)
		pos := g.reg.Position(e)
		sx, sy := g.cam.WorldToScreen(pos.X, pos.Y)
		color := rl.NewColor(150, 92, 140, 255)
		if ob.Subtype == components.ObstacleSpikes {
			color = rl.NewColor(130, 130, 140, 255)
		}
		if ob.Fleeing {
			color = rl.Fade(color, 0.5)
		}
		rl.DrawRectangle(int32(sx-ob.HalfWidth), int32(sy-ob.HalfHeight), int32(ob.HalfWidth*2), int32(ob.HalfHeight*2), color)
	}

	for _, e := range g.window.Collectibles {
		c := g.reg.Collectible(e)
		pos := g.reg.Position(e)
		sx, sy := g.cam.WorldToScreen(pos.X, pos.Y)
		color := rl.Gold
		switch c.Subtype {
		case components.CollectibleFly:
			color = rl.NewColor(120, 200, 120, 255)
		case components.CollectibleTadpole:
			color = rl.NewColor(120, 160, 220, 255)
		case components.CollectibleDragonfly:
			color = rl.NewColor(200, 120, 220, 255)
		}
		rl.DrawCircle(int32(sx), int32(sy), c.Radius, color)
	}
}

func (g *Game) drawFrog() {
	sx, sy := g.cam.WorldToScreen(g.frog.X, g.frog.Y)
	color := rl.NewColor(96, 200, 96, 255)
	if !g.frog.Vulnerable() {
		color = rl.Fade(color, 0.5)
	}
	if g.vitals.SuperActive() {
		rl.DrawCircle(int32(sx), int32(sy), g.frog.HalfWidth+6, rl.Fade(rl.Gold, 0.4))
	}
	rl.DrawCircle(int32(sx), int32(sy), g.frog.HalfWidth, color)
}

func (g *Game) drawPreview() {
	path := g.PreviewPath()
	for _, p := range path {
		sx, sy := g.cam.WorldToScreen(p.X, p.Y)
		rl.DrawCircle(int32(sx), int32(sy), 3, rl.Fade(rl.White, 0.7))
	}
}

func (g *Game) drawHUD() {
	level := difficulty.Level(g.progress, g.cfg.Difficulty.ScalingInterval)
	rl.DrawText(fmt.Sprintf("score %d  hp %d/%d  lvl %d  %s/%s",
		g.score, g.vitals.Health, g.vitals.MaxHealth, level, g.biome, g.weather), 10, 10, 20, rl.RayWhite)

	y := int32(36)
	for kind := components.BuffKind(0); kind < components.NumBuffKinds; kind++ {
		if n := g.vitals.Buff(kind); n > 0 {
			rl.DrawText(fmt.Sprintf("%s x%d", kind, n), 10, y, 16, rl.LightGray)
			y += 18
		}
	}
	if g.frog.Mode == player.ModeFlying {
		rl.DrawText("FLIGHT", 10, y, 16, rl.SkyBlue)
	}
	if g.paused {
		rl.DrawText("PAUSED", int32(g.cam.ViewportW/2)-40, 10, 20, rl.Orange)
	}
}

func (g *Game) drawDebug() {
	lower, upper := g.cam.Band()
	lx, _ := g.cam.WorldToScreen(lower, 0)
	ux, _ := g.cam.WorldToScreen(upper, 0)
	rl.DrawLine(int32(lx), 0, int32(lx), int32(g.cam.ViewportH), rl.Fade(rl.Red, 0.5))
	rl.DrawLine(int32(ux), 0, int32(ux), int32(g.cam.ViewportH), rl.Fade(rl.Red, 0.5))

	rl.DrawText(fmt.Sprintf("frame %d  run %d  window %d  live p%d h%d o%d c%d",
		g.frame, g.run, g.window.Total(),
		g.reg.LiveCount(components.KindPad),
		g.reg.LiveCount(components.KindHazard),
		g.reg.LiveCount(components.KindObstacle),
		g.reg.LiveCount(components.KindCollectible)),
		10, int32(g.cam.ViewportH)-24, 16, rl.Lime)
}
