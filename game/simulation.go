package game

import (
	"log/slog"

	"github.com/pixelfilm44/StuntFrogsRunner-sub005/collision"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/components"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/difficulty"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/events"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/player"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/world"
)

// step advances the simulation one frame. Order within the frame is fixed:
// timers, environment, camera, spawning, behavior dispatch, frog motion,
// contact resolution, eviction, then event drain and telemetry.
func (g *Game) step() {
	dt := g.cfg.Derived.DT32
	g.frame++
	g.runFrame++
	g.queue.BeginFrame(g.frame)

	g.frog.TickTimers(dt)
	if g.vitals.TickSuper(dt) {
		g.queue.Push(events.Event{Type: events.SuperEnded})
	}
	g.tickEnvironment(dt)

	g.cam.Follow(g.frog.X)
	lower, upper := g.cam.Band()

	filled := g.scheduler.FillAhead(upper, g.progress)
	g.collector.RecordSpawns(filled)

	g.reg.BuildWindow(lower, upper, g.cam.RetentionMargin, &g.window)
	g.reg.Dispatch(&g.window, g.current, float64(g.frame)*float64(dt), dt)

	outcome := g.stepFrog(dt)
	if outcome == collision.OutcomeNone {
		outcome = g.resolver.Resolve(g.frame, g.frog, g.vitals, &g.window)
	}

	retentionLower, _ := g.cam.RetentionBand()
	evicted := g.reg.EvictBehind(retentionLower)
	evicted += g.reg.EnforceCaps()
	g.collector.RecordEvictions(evicted)

	if g.frog.X > g.progress {
		g.progress = g.frog.X
	}

	g.drainEvents(outcome)

	if outcome != collision.OutcomeNone {
		g.endRun(outcome.String())
		if err := g.beginRun(); err != nil {
			slog.Error("starting next run", "error", err)
			g.paused = true
		}
		return
	}

	if g.collector.ShouldFlush(g.runFrame) {
		g.flushTelemetry()
	}
}

// stepFrog advances the frog's movement regime and resolves hop or flight
// landings.
func (g *Game) stepFrog(dt float32) collision.Outcome {
	switch g.frog.Mode {
	case player.ModeHopping:
		landed := g.frog.Hop.Step(dt)
		g.frog.X = g.frog.Hop.X()
		g.frog.Y = g.frog.Hop.Height()
		if landed {
			return g.resolver.ResolveLanding(g.frog, g.vitals, &g.window, g.biome, g.weather)
		}

	case player.ModeFlying:
		dx, dy, expired := g.frog.Flight.Step(g.flightConstants(), g.steer, dt)
		g.frog.X += dx
		g.frog.Y += dy
		if g.frog.Y <= 0 || expired {
			g.frog.Y = 0
			g.queue.Push(events.Event{Type: events.FlightEnded, X: g.frog.X})
			return g.resolver.ResolveLanding(g.frog, g.vitals, &g.window, g.biome, g.weather)
		}

	case player.ModeRiding:
		carry := float32(g.cfg.Player.RideSpeed) * dt
		if carry > g.frog.RideRemaining {
			carry = g.frog.RideRemaining
		}
		g.frog.X += carry
		g.frog.RideRemaining -= carry
		if g.frog.RideRemaining <= 0 {
			g.queue.Push(events.Event{Type: events.RideEnded, X: g.frog.X})
			g.frog.RideEntityID = 0
			g.frog.Mode = player.ModeFloating
			g.frog.FloatTimer = 0
		}

	case player.ModeFloating:
		g.frog.X += (floatDriftSpeed + g.current.Sample(float64(g.frog.X), float64(g.frame)*float64(dt))) * dt

	case player.ModeGrounded:
		return g.followGroundPad()
	}
	return collision.OutcomeNone
}

// followGroundPad keeps a grounded frog glued to its pad: moving pads carry
// the frog, sinking pads dump it into the water.
func (g *Game) followGroundPad() collision.Outcome {
	if g.frog.OnPadID == 0 {
		return collision.OutcomeNone
	}
	for _, e := range g.window.Pads {
		pad := g.reg.Pad(e)
		if pad.ID != g.frog.OnPadID {
			continue
		}
		if pad.Sunk {
			// The pad went under; the splash path decides float or drown.
			g.frog.OnPadID = 0
			g.frog.Hop.Reset()
			return g.resolver.ResolveLanding(g.frog, g.vitals, &g.window, g.biome, g.weather)
		}
		g.frog.X = g.reg.Position(e).X
		return collision.OutcomeNone
	}
	return collision.OutcomeNone
}

// tickEnvironment advances biome and weather. Biome follows the frog's
// furthest distance; weather re-rolls on a fixed interval.
func (g *Game) tickEnvironment(dt float32) {
	if b := g.cfg.Derived.BiomeAt(g.progress); b != g.biome {
		g.biome = b
		g.queue.Push(events.Event{Type: events.BiomeChanged, Sub: uint8(b)})
	}

	g.weatherTimer += dt
	if g.weatherTimer < float32(g.cfg.Environment.WeatherInterval) {
		return
	}
	g.weatherTimer = 0
	next := g.rollWeather()
	if next != g.weather {
		g.weather = next
		g.queue.Push(events.Event{Type: events.WeatherChanged, Sub: uint8(next)})
	}
}

// rollWeather picks a weather mode by normalized weight.
func (g *Game) rollWeather() components.Weather {
	kinds := g.cfg.Derived.WeatherKinds
	weights := g.cfg.Derived.WeatherWeights
	if len(kinds) == 0 {
		return components.WeatherClear
	}
	var total float32
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return kinds[0]
	}
	target := g.rng.Float32() * total
	var accum float32
	for i, w := range weights {
		accum += w
		if target < accum {
			return kinds[i]
		}
	}
	return kinds[len(kinds)-1]
}

// drainEvents consumes this frame's events: telemetry counters, score
// accumulation, and notable-event logging.
func (g *Game) drainEvents(outcome collision.Outcome) {
	if outcome != collision.OutcomeNone {
		g.queue.Push(events.Event{Type: events.RunEnded, X: g.frog.X})
	}
	evs := g.queue.Events()
	g.collector.Observe(evs)
	for _, ev := range evs {
		if ev.Type == events.Collected {
			g.score += int(ev.Amount)
		}
		g.logEvent(ev)
	}
}

// flushTelemetry emits the completed stats window.
func (g *Game) flushTelemetry() {
	level := difficulty.Level(g.progress, g.cfg.Difficulty.ScalingInterval)
	live := 0
	for kind := components.Kind(0); kind < world.NumKinds; kind++ {
		live += g.reg.LiveCount(kind)
	}
	stats := g.collector.Flush(g.runFrame, float64(g.progress), g.score, level, g.vitals.Health, live, g.window.Total())
	if g.opts.LogStats {
		slog.Info("stats", "window", stats)
	}
	if err := g.output.WriteTelemetry(stats); err != nil {
		slog.Error("writing telemetry", "error", err)
	}
}
