package game

import (
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/camera"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/collision"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/config"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/physics"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/player"
)

func newFollowCamera(cfg *config.Config) *camera.Camera {
	return camera.New(
		startPadX,
		float32(cfg.Screen.Width),
		float32(cfg.Screen.Height),
		float32(cfg.Camera.BandFraction),
		float32(cfg.Camera.RetentionMargin),
		float32(cfg.Camera.FollowLerp),
	)
}

func newStartingFrog(cfg *config.Config) *player.Frog {
	return player.NewFrog(startPadX, float32(cfg.Player.HalfWidth))
}

func newStartingVitals(cfg *config.Config) *player.Vitals {
	return player.NewVitals(cfg.Player.MaxHealth)
}

func (g *Game) newResolver() *collision.Resolver {
	return collision.NewResolver(g.cfg, g.reg, g.queue, g.seed+int64(g.run)*7919)
}

// flightConstants maps the shared physics config into the flight stepper.
func (g *Game) flightConstants() physics.FlightConstants {
	p := &g.cfg.Physics
	return physics.FlightConstants{
		Gravity:    float32(p.FlightGravity),
		Friction:   float32(p.Friction),
		SteerAccel: float32(p.FlightSteerAccel),
		MaxSpeed:   float32(p.FlightMaxSpeed),
		Duration:   float32(p.FlightDuration),
	}
}
