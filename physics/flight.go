package physics

import "math"

// Flight is the continuous-flight state entered via a power-up. Unlike the
// discrete hop, horizontal and vertical velocities persist frame to frame
// under a lower gravity and friction, with steering input added each frame.
// The zero value is inactive; Reset restores it atomically.
type Flight struct {
	Active bool
	T      float32
	VX, VY float32
}

// FlightConstants is the subset of the shared constants object the flight
// stepper reads. Callers fill it from the same config.PhysicsConfig that
// drives hops.
type FlightConstants struct {
	Gravity    float32 // flight gravity, typically lower than hop gravity
	Friction   float32 // per-second velocity retention
	SteerAccel float32
	MaxSpeed   float32
	Duration   float32
}

// Start enters flight with an initial carry-over velocity.
func (f *Flight) Start(vx, vy float32) {
	*f = Flight{Active: true, VX: vx, VY: vy}
}

// Reset clears all flight state atomically.
func (f *Flight) Reset() {
	*f = Flight{}
}

// Step advances flight by dt with the given steering input in [-1, 1].
// Returns the position delta for this frame and whether the flight timer
// expired. Landing (height reaching zero) is resolved by the caller.
func (f *Flight) Step(c FlightConstants, steer, dt float32) (dx, dy float32, expired bool) {
	if !f.Active {
		return 0, 0, false
	}

	f.VX += steer * c.SteerAccel * dt
	f.VY -= c.Gravity * dt

	// Exponential friction keeps the decay rate independent of dt.
	decay := float32(math.Pow(float64(c.Friction), float64(dt)))
	f.VX *= decay
	f.VY *= decay

	speed := float32(math.Hypot(float64(f.VX), float64(f.VY)))
	if speed > c.MaxSpeed {
		scale := c.MaxSpeed / speed
		f.VX *= scale
		f.VY *= scale
	}

	f.T += dt
	return f.VX * dt, f.VY * dt, f.T >= c.Duration
}
