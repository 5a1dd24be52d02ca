package game

import (
	"log/slog"

	"github.com/pixelfilm44/StuntFrogsRunner-sub005/components"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/events"
)

// logEvent emits notable events via slog. High-frequency events (landings,
// coin pickups) stay out of the log; telemetry covers those.
func (g *Game) logEvent(ev events.Event) {
	switch ev.Type {
	case events.Drowned, events.Defeated:
		slog.Info(ev.Type.String(), "run", g.run, "frame", g.runFrame, "x", ev.X)
	case events.Slipped:
		slog.Debug("slipped", "run", g.run, "pad", ev.EntityID)
	case events.BuffConsumed:
		slog.Info("buff consumed", "run", g.run, "buff", ev.Buff.String(), "remaining", g.vitals.Buff(ev.Buff))
	case events.BuffGranted:
		slog.Info("buff granted", "run", g.run, "buff", ev.Buff.String(), "amount", ev.Amount)
	case events.SuperStarted:
		slog.Info("super started", "run", g.run, "frame", g.runFrame)
	case events.SuperEnded:
		slog.Debug("super ended", "run", g.run)
	case events.RideAttached:
		slog.Info("ride attached", "run", g.run, "croc", ev.EntityID)
	case events.RideEnded:
		slog.Debug("ride ended", "run", g.run, "x", ev.X)
	case events.FlightStarted:
		slog.Info("flight started", "run", g.run, "x", ev.X)
	case events.FlightEnded:
		slog.Debug("flight ended", "run", g.run, "x", ev.X)
	case events.BiomeChanged:
		slog.Info("biome changed", "run", g.run, "biome", components.Biome(ev.Sub).String(), "progress", g.progress)
	case events.WeatherChanged:
		slog.Info("weather changed", "run", g.run, "weather", components.Weather(ev.Sub).String())
	case events.HazardDefeated:
		slog.Debug("hazard defeated", "run", g.run, "hazard", ev.EntityID)
	case events.Repelled:
		slog.Debug("obstacle repelled", "run", g.run, "obstacle", ev.EntityID)
	}
}
