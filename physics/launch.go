// Package physics provides the stateless launch, hop, and continuous-flight
// math. Every function reads the one shared constants object
// (config.PhysicsConfig), so committed jumps, trajectory previews, and flight
// can never diverge.
package physics

import (
	"math"

	"github.com/pixelfilm44/StuntFrogsRunner-sub005/config"
)

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float32
}

// Launch is a committed hop impulse: a linear horizontal displacement over the
// hop duration, and an initial vertical velocity for the decoupled height arc
// h(t) = v0*t - 0.5*g*t^2.
type Launch struct {
	HorizontalVel float32 // world units per second
	V0            float32 // initial hop-height velocity
	Duration      float32 // 2*v0/g, time until height returns to 0
	Gravity       float32 // snapshot of the hop gravity constant
}

// ComputeLaunch converts a drag vector (release point minus input start) into
// a launch impulse opposing it. distanceMultiplier composes the power-up and super-mode
// multipliers. Returns false when the drag magnitude is inside the dead zone:
// "no launch" is not an error.
func ComputeLaunch(p *config.PhysicsConfig, drag Vec2, distanceMultiplier float32) (Launch, bool) {
	mag := float32(math.Hypot(float64(drag.X), float64(drag.Y)))
	if mag < float32(p.MinPullDistance) {
		return Launch{}, false
	}

	pull := mag
	if pull > float32(p.MaxPullDistance) {
		pull = float32(p.MaxPullDistance)
	}
	angle := math.Atan2(float64(drag.Y), float64(drag.X))

	// Slingshot: displacement opposes the drag direction.
	dx := -float32(math.Cos(angle)) * pull * float32(p.PullScale) * distanceMultiplier
	dy := -float32(math.Sin(angle)) * pull * float32(p.PullScale) * distanceMultiplier

	g := float32(p.Gravity)
	v0 := dy * float32(p.ImpulseScale)
	// A flat or downward drag still produces a minimal arc.
	if minV0 := g * 0.15; v0 < minV0 {
		v0 = minV0
	}
	duration := 2 * v0 / g

	return Launch{
		HorizontalVel: dx / duration,
		V0:            v0,
		Duration:      duration,
		Gravity:       g,
	}, true
}

// Hop is the in-flight state of a committed discrete hop. The zero value is
// inactive; Reset restores it in a single assignment so abnormal termination
// never leaves partial state.
type Hop struct {
	Active  bool
	T       float32
	Launch  Launch
	OriginX float32
}

// Start begins a hop from the given lateral origin.
func (h *Hop) Start(l Launch, originX float32) {
	*h = Hop{Active: true, Launch: l, OriginX: originX}
}

// Reset clears all hop state atomically.
func (h *Hop) Reset() {
	*h = Hop{}
}

// Step advances the hop by dt. Returns true on the step where the height arc
// returns to zero (landing); the hop stays clamped at its endpoint.
func (h *Hop) Step(dt float32) (landed bool) {
	if !h.Active {
		return false
	}
	h.T += dt
	if h.T >= h.Launch.Duration {
		h.T = h.Launch.Duration
		return true
	}
	return false
}

// Height returns the current hop height.
func (h *Hop) Height() float32 {
	return HeightAt(h.Launch, h.T)
}

// X returns the current lateral position.
func (h *Hop) X() float32 {
	return h.OriginX + h.Launch.HorizontalVel*h.T
}

// Progress returns the fraction of the hop completed, in [0, 1].
func (h *Hop) Progress() float32 {
	if !h.Active || h.Launch.Duration <= 0 {
		return 0
	}
	return h.T / h.Launch.Duration
}

// HeightAt evaluates the hop height arc at time t.
func HeightAt(l Launch, t float32) float32 {
	return l.V0*t - 0.5*l.Gravity*t*t
}

// LandingX returns the lateral coordinate where the launch will land.
func LandingX(l Launch, originX float32) float32 {
	return originX + l.HorizontalVel*l.Duration
}
