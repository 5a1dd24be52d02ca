package world

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pixelfilm44/StuntFrogsRunner-sub005/components"
)

// Behavior constants. Drift clamps stay well below the camera retention
// margin so the ordered-scan bound in BuildWindow holds.
const (
	movingPadOmega = 1.4 // rad/s for pad oscillation

	shrinkRate = 6.0 // half-width units/s once stepped
	sinkDelay  = 1.2 // seconds from first step to sunk

	beeBobOmega   = 3.1
	beeBobAmp     = 10.0
	beeDriftSpeed = 34.0

	logDriftClamp = 260.0 // max drift from spawn slot

	crocJawOpen   = 1.6 // seconds jaws stay open
	crocJawClosed = 2.4 // seconds jaws stay closed
	crocBobOmega  = 0.9
	crocBobAmp    = 4.0

	patrolOmega = 0.8
	fleeSpeed   = 180.0
	fleeTime    = 1.5 // seconds before a repelled obstacle despawns

	collectibleBobOmega = 2.2
	collectibleBobAmp   = 6.0
)

// Dispatch advances behavior for every entity in the active window. Entities
// outside the window are frozen; their phases pick up from where they were
// left, which is indistinguishable on screen from continuous motion.
func (r *Registry) Dispatch(win *ActiveWindow, cur *Current, t float64, dt float32) {
	for _, e := range win.Pads {
		r.tickPad(e, dt)
	}
	for _, e := range win.Hazards {
		r.tickHazard(e, cur, t, dt)
	}
	for _, e := range win.Obstacles {
		r.tickObstacle(e, dt)
	}
	for _, e := range win.Collectibles {
		r.tickCollectible(e, dt)
	}
	// Flee expiry despawns; done after the loop so window slices stay valid.
	for _, e := range win.Obstacles {
		if ob := r.obstacleMap.Get(e); ob.BeingRemoved {
			r.Despawn(components.KindObstacle, e)
		}
	}
}

func (r *Registry) tickPad(e ecs.Entity, dt float32) {
	pad := r.padMap.Get(e)
	pos := r.posMap.Get(e)

	switch pad.Subtype {
	case components.PadMoving:
		pad.Phase += movingPadOmega * dt
		pos.X = pad.AnchorX + pad.Amplitude*float32(math.Sin(float64(pad.Phase)))
	case components.PadShrinking:
		if pad.Stepped && pad.HalfWidth > pad.MinHalf {
			pad.HalfWidth -= shrinkRate * dt
			if pad.HalfWidth < pad.MinHalf {
				pad.HalfWidth = pad.MinHalf
			}
		}
	case components.PadUnstable:
		if pad.Stepped && !pad.Sunk {
			pad.SinkTimer += dt
			if pad.SinkTimer >= sinkDelay {
				pad.Sunk = true
			}
		}
	}
}

func (r *Registry) tickHazard(e ecs.Entity, cur *Current, t float64, dt float32) {
	hz := r.hazardMap.Get(e)
	if hz.Defeated {
		return
	}
	pos := r.posMap.Get(e)

	switch hz.Subtype {
	case components.HazardBee:
		hz.Phase += beeBobOmega * dt
		pos.Y = hz.AnchorY + beeBobAmp*float32(math.Sin(float64(hz.Phase)))
		pos.X += hz.Direction * beeDriftSpeed * dt
		clampDrift(pos, hz.AnchorX, logDriftClamp, hz)
	case components.HazardLog:
		pos.X += (hz.Direction*hz.Speed + cur.Sample(float64(pos.X), t)) * dt
		clampDrift(pos, hz.AnchorX, logDriftClamp, hz)
	case components.HazardCroc:
		hz.JawTimer += dt
		if hz.JawOpen && hz.JawTimer >= crocJawOpen {
			hz.JawOpen = false
			hz.JawTimer = 0
		} else if !hz.JawOpen && hz.JawTimer >= crocJawClosed {
			hz.JawOpen = true
			hz.JawTimer = 0
		}
		hz.Phase += crocBobOmega * dt
		pos.Y = hz.AnchorY + crocBobAmp*float32(math.Sin(float64(hz.Phase)))
	}
}

// clampDrift bounces a drifting hazard back toward its spawn slot once it has
// strayed the clamp distance, keeping actual position within the retention
// margin of the slot key.
func clampDrift(pos *components.Position, key, clamp float32, hz *components.Hazard) {
	if pos.X > key+clamp {
		pos.X = key + clamp
		hz.Direction = -1
	} else if pos.X < key-clamp {
		pos.X = key - clamp
		hz.Direction = 1
	}
}

func (r *Registry) tickObstacle(e ecs.Entity, dt float32) {
	ob := r.obstacleMap.Get(e)
	pos := r.posMap.Get(e)

	if ob.Fleeing {
		pos.X -= fleeSpeed * dt
		ob.FleeTimer += dt
		if ob.FleeTimer >= fleeTime {
			ob.BeingRemoved = true
		}
		return
	}

	switch ob.Subtype {
	case components.ObstacleSnake, components.ObstacleScorpion:
		ob.Phase += patrolOmega * dt
		pos.X = ob.AnchorX + ob.Range*float32(math.Sin(float64(ob.Phase)))
	case components.ObstacleSpikes:
		// static
	}
}

func (r *Registry) tickCollectible(e ecs.Entity, dt float32) {
	c := r.collectibleMap.Get(e)
	if c.Collected {
		return
	}
	pos := r.posMap.Get(e)
	c.Phase += collectibleBobOmega * dt
	pos.Y = c.AnchorY + collectibleBobAmp*float32(math.Sin(float64(c.Phase)))
}
