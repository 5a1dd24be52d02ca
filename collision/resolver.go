// Package collision resolves contacts between the frog and the active window,
// in three cadence tiers. Critical contacts run every frame; collectible and
// environmental contacts run on alternating cadences. At most one terminal
// outcome latches per frame, and critical contacts run first so their outcome
// takes precedence.
package collision

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pixelfilm44/StuntFrogsRunner-sub005/components"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/config"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/events"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/player"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/world"
)

// Cadences, in frames. Critical contacts are never skipped.
const (
	collectibleCadence = 2
	environmentCadence = 3
)

const (
	coinScore      = 10
	tadpoleScore   = 25
	dragonflyScore = 15

	// Chance of slipping off a pad on a rainy glacier landing.
	iceSlipChance = 0.15

	// Vertical reach for contacts with hovering entities.
	frogHalfHeight = 14.0
)

// Outcome is the terminal result of a frame's contacts.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeDrowned
	OutcomeDefeated
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeDrowned:
		return "drowned"
	case OutcomeDefeated:
		return "defeated"
	}
	return "unknown"
}

// Resolver runs the tiered contact checks.
type Resolver struct {
	cfg   *config.Config
	reg   *world.Registry
	queue *events.Queue
	rng   *rand.Rand

	terminal Outcome
}

// NewResolver creates a resolver over the given registry and event queue.
func NewResolver(cfg *config.Config, reg *world.Registry, queue *events.Queue, seed int64) *Resolver {
	return &Resolver{cfg: cfg, reg: reg, queue: queue, rng: rand.New(rand.NewSource(seed))}
}

// Resolve runs this frame's contact tiers. The returned outcome is terminal:
// OutcomeNone means the run continues.
func (r *Resolver) Resolve(frame int64, frog *player.Frog, vitals *player.Vitals, win *world.ActiveWindow) Outcome {
	r.terminal = OutcomeNone

	r.criticalTier(frog, vitals, win)
	// A latched terminal outcome skips the remaining tiers for the frame.
	if r.terminal == OutcomeNone && frame%collectibleCadence == 0 {
		r.collectibleTier(frog, vitals, win)
	}
	if r.terminal == OutcomeNone && frame%environmentCadence == 0 {
		r.environmentTier(frog, vitals, win)
	}
	return r.terminal
}

// ResolveLanding settles a completed hop: onto a pad, onto a croc, or into
// the water. Returns the terminal outcome, OutcomeNone when the frog
// survives.
func (r *Resolver) ResolveLanding(frog *player.Frog, vitals *player.Vitals, win *world.ActiveWindow, biome components.Biome, weather components.Weather) Outcome {
	r.terminal = OutcomeNone

	for _, e := range win.Pads {
		pad := r.reg.Pad(e)
		if pad.Sunk || pad.BeingRemoved {
			continue
		}
		pos := r.reg.Position(e)
		if !frog.Intersects(pos.X, pad.HalfWidth) {
			continue
		}
		// Rain makes unstable pads give way on contact; the landing goes to
		// the water instead.
		if pad.Subtype == components.PadUnstable && weather == components.WeatherRain {
			continue
		}
		if biome == components.BiomeGlacier && weather == components.WeatherRain && r.rng.Float32() < iceSlipChance {
			r.push(events.Event{Type: events.Slipped, EntityID: pad.ID, X: frog.X})
			break // slipped off; fall through to the water checks
		}
		pad.Stepped = true
		frog.Land(pad.ID, frog.X)
		r.push(events.Event{Type: events.Landed, EntityID: pad.ID, Kind: components.KindPad, Sub: uint8(pad.Subtype), X: frog.X})
		return OutcomeNone
	}

	// No pad: a croc back can still catch the frog.
	for _, e := range win.Hazards {
		hz := r.reg.Hazard(e)
		if hz.Subtype != components.HazardCroc || hz.Defeated {
			continue
		}
		pos := r.reg.Position(e)
		if !frog.Intersects(pos.X, hz.HalfWidth) {
			continue
		}
		if vitals.ConsumeBuff(components.BuffHoney) {
			frog.Hop.Reset()
			frog.Mode = player.ModeRiding
			frog.RideEntityID = hz.ID
			frog.RideRemaining = float32(r.cfg.Player.RideDistance)
			frog.Y = 0
			r.push(events.Event{Type: events.BuffConsumed, Buff: components.BuffHoney})
			r.push(events.Event{Type: events.RideAttached, EntityID: hz.ID, X: frog.X})
			return OutcomeNone
		}
		if hz.JawOpen {
			r.damageFrog(frog, vitals, 1, hz.ID)
			if r.terminal != OutcomeNone {
				return r.terminal
			}
		}
		break
	}

	return r.splash(frog, vitals)
}

// splash is the into-the-water path: a vest converts it to floating, otherwise
// the run ends by drowning.
func (r *Resolver) splash(frog *player.Frog, vitals *player.Vitals) Outcome {
	frog.AbortAirborne()
	if vitals.ConsumeBuff(components.BuffVest) {
		frog.Mode = player.ModeFloating
		frog.FloatTimer = 0
		r.push(events.Event{Type: events.BuffConsumed, Buff: components.BuffVest})
		r.push(events.Event{Type: events.Floated, X: frog.X})
		return OutcomeNone
	}
	r.push(events.Event{Type: events.Drowned, X: frog.X})
	r.terminal = OutcomeDrowned
	return r.terminal
}

// criticalTier checks hazard contacts. Runs every frame.
func (r *Resolver) criticalTier(frog *player.Frog, vitals *player.Vitals, win *world.ActiveWindow) {
	for _, e := range win.Hazards {
		if r.terminal != OutcomeNone {
			return
		}
		hz := r.reg.Hazard(e)
		if hz.Defeated {
			continue
		}
		pos := r.reg.Position(e)
		switch hz.Subtype {
		case components.HazardBee:
			if !frog.Airborne() {
				continue
			}
			if !frog.Intersects(pos.X, hz.HalfWidth) || !verticalOverlap(frog.Y, pos.Y, hz.HalfHeight) {
				continue
			}
			if vitals.SuperActive() || vitals.ConsumeBuff(components.BuffSwatter) {
				if !vitals.SuperActive() {
					r.push(events.Event{Type: events.BuffConsumed, Buff: components.BuffSwatter})
				}
				r.defeatHazard(e, hz)
				continue
			}
			r.damageFrog(frog, vitals, 1, hz.ID)
			if r.terminal == OutcomeNone && frog.Airborne() {
				// The hit knocks the frog out of the air.
				r.splash(frog, vitals)
			}
		case components.HazardLog:
			if frog.Mode != player.ModeFloating || !frog.Intersects(pos.X, hz.HalfWidth) {
				continue
			}
			if vitals.ConsumeBuff(components.BuffAxe) {
				r.push(events.Event{Type: events.BuffConsumed, Buff: components.BuffAxe})
				r.defeatHazard(e, hz)
				continue
			}
			r.damageFrog(frog, vitals, 1, hz.ID)
		case components.HazardCroc:
			if frog.Mode == player.ModeRiding && frog.RideEntityID == hz.ID {
				continue
			}
			if frog.Mode != player.ModeFloating || !frog.Intersects(pos.X, hz.HalfWidth) {
				continue
			}
			if hz.JawOpen {
				r.damageFrog(frog, vitals, 2, hz.ID)
			}
		}
	}
}

// collectibleTier checks pickups. Runs every other frame; a pickup can sit
// one extra frame before collection, which is imperceptible.
func (r *Resolver) collectibleTier(frog *player.Frog, vitals *player.Vitals, win *world.ActiveWindow) {
	for _, e := range win.Collectibles {
		c := r.reg.Collectible(e)
		if c.Collected {
			continue
		}
		pos := r.reg.Position(e)
		if !frog.Intersects(pos.X, c.Radius) || !verticalOverlap(frog.Y, pos.Y, c.Radius) {
			continue
		}
		c.Collected = true
		switch c.Subtype {
		case components.CollectibleCoin:
			amount := int32(coinScore)
			if vitals.SuperActive() {
				amount = int32(float64(amount) * r.cfg.Player.SuperMultiplier)
			}
			r.push(events.Event{Type: events.Collected, EntityID: c.ID, Kind: components.KindCollectible, Sub: uint8(c.Subtype), Amount: amount, X: pos.X, Y: pos.Y})
		case components.CollectibleFly:
			r.push(events.Event{Type: events.Collected, EntityID: c.ID, Kind: components.KindCollectible, Sub: uint8(c.Subtype), X: pos.X, Y: pos.Y})
			if vitals.AddSuperMeter(r.cfg.Player.SuperThreshold) {
				vitals.StartSuper(float32(r.cfg.Player.SuperDuration))
				r.push(events.Event{Type: events.SuperStarted})
			}
		case components.CollectibleTadpole:
			// A rescued tadpole rewards a bonus vest on top of score. Bonus
			// units are run-scoped; the ledger clamps them out at settle.
			vitals.GrantBuff(components.BuffVest, 1)
			r.push(events.Event{Type: events.Collected, EntityID: c.ID, Kind: components.KindCollectible, Sub: uint8(c.Subtype), Amount: tadpoleScore, X: pos.X, Y: pos.Y})
			r.push(events.Event{Type: events.BuffGranted, Buff: components.BuffVest, Amount: 1})
		case components.CollectibleDragonfly:
			r.push(events.Event{Type: events.Collected, EntityID: c.ID, Kind: components.KindCollectible, Sub: uint8(c.Subtype), Amount: dragonflyScore, X: pos.X, Y: pos.Y})
			frog.BeginFlight()
			r.push(events.Event{Type: events.FlightStarted, X: frog.X, Y: frog.Y})
		}
		r.reg.Despawn(components.KindCollectible, e)
	}
}

// environmentTier checks ground obstacles. Runs every third frame and only
// while the frog is grounded; airborne frogs clear these by height.
func (r *Resolver) environmentTier(frog *player.Frog, vitals *player.Vitals, win *world.ActiveWindow) {
	if frog.Mode != player.ModeGrounded {
		return
	}
	for _, e := range win.Obstacles {
		if r.terminal != OutcomeNone {
			return
		}
		ob := r.reg.Obstacle(e)
		if ob.Fleeing || ob.BeingRemoved {
			continue
		}
		pos := r.reg.Position(e)
		if !frog.Intersects(pos.X, ob.HalfWidth) {
			continue
		}
		switch ob.Subtype {
		case components.ObstacleSnake, components.ObstacleScorpion:
			if vitals.ConsumeBuff(components.BuffCross) {
				ob.Fleeing = true
				ob.FleeTimer = 0
				r.push(events.Event{Type: events.BuffConsumed, Buff: components.BuffCross})
				r.push(events.Event{Type: events.Repelled, EntityID: ob.ID, Kind: components.KindObstacle, Sub: uint8(ob.Subtype), X: pos.X})
				continue
			}
			r.damageFrog(frog, vitals, 1, ob.ID)
		case components.ObstacleSpikes:
			r.damageFrog(frog, vitals, 1, ob.ID)
		}
	}
}

// damageFrog applies damage with invulnerability gating and latches the
// defeat outcome at zero health.
func (r *Resolver) damageFrog(frog *player.Frog, vitals *player.Vitals, n int, sourceID uint32) {
	if !frog.Vulnerable() {
		return
	}
	remaining := vitals.Damage(n)
	frog.InvulnTimer = float32(r.cfg.Player.InvulnDuration)
	r.push(events.Event{Type: events.Damaged, EntityID: sourceID, Amount: int32(-n), X: frog.X, Y: frog.Y})
	r.push(events.Event{Type: events.HealthChanged, Amount: int32(remaining)})
	if remaining == 0 {
		r.push(events.Event{Type: events.Defeated, X: frog.X})
		r.terminal = OutcomeDefeated
	}
}

func (r *Resolver) defeatHazard(e ecs.Entity, hz *components.Hazard) {
	hz.Defeated = true
	r.push(events.Event{Type: events.HazardDefeated, EntityID: hz.ID, Kind: components.KindHazard, Sub: uint8(hz.Subtype)})
	r.reg.Despawn(components.KindHazard, e)
}

func (r *Resolver) push(ev events.Event) {
	r.queue.Push(ev)
}

func verticalOverlap(frogY, centerY, halfHeight float32) bool {
	d := frogY - centerY
	if d < 0 {
		d = -d
	}
	return d <= frogHalfHeight+halfHeight
}
