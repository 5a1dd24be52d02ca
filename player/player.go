// Package player holds the frog actor and its run-scoped vitals. Both are
// explicitly constructed at run start and passed into the components that
// need them; there is no global player state.
package player

import (
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/components"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/physics"
)

// Mode is the frog's movement regime.
type Mode uint8

const (
	ModeGrounded Mode = iota
	ModeHopping
	ModeFlying
	ModeRiding
	ModeFloating // vest float after a missed landing
)

func (m Mode) String() string {
	switch m {
	case ModeGrounded:
		return "grounded"
	case ModeHopping:
		return "hopping"
	case ModeFlying:
		return "flying"
	case ModeRiding:
		return "riding"
	case ModeFloating:
		return "floating"
	}
	return "unknown"
}

// Frog is the single player-controlled actor.
type Frog struct {
	X, Y      float32 // Y is height above the water line
	HalfWidth float32

	Mode   Mode
	Hop    physics.Hop
	Flight physics.Flight

	// Riding state: remaining carry distance on a croc's back.
	RideRemaining float32
	RideEntityID  uint32

	// Floating drifts the frog forward slowly until the next launch.
	FloatTimer float32

	InvulnTimer float32 // seconds of post-damage immunity remaining
	OnPadID     uint32  // pad the frog is grounded on, 0 if none
}

// NewFrog creates a grounded frog at the starting pad position.
func NewFrog(x float32, halfWidth float32) *Frog {
	return &Frog{X: x, HalfWidth: halfWidth, Mode: ModeGrounded}
}

// BeginHop commits a launch. Any in-flight state is discarded first so the
// physics fields can never mix regimes.
func (f *Frog) BeginHop(l physics.Launch) {
	f.Hop.Reset()
	f.Flight.Reset()
	f.Mode = ModeHopping
	f.OnPadID = 0
	f.Hop.Start(l, f.X)
}

// BeginFlight enters continuous flight, carrying over the hop's horizontal
// velocity when one is active.
func (f *Frog) BeginFlight() {
	vx := float32(0)
	if f.Hop.Active {
		vx = f.Hop.Launch.HorizontalVel
	}
	f.Hop.Reset()
	f.Mode = ModeFlying
	f.OnPadID = 0
	f.Flight.Start(vx, 0)
}

// Land settles the frog on a pad, resetting hop and flight state atomically.
func (f *Frog) Land(padID uint32, x float32) {
	f.Hop.Reset()
	f.Flight.Reset()
	f.Mode = ModeGrounded
	f.OnPadID = padID
	f.X = x
	f.Y = 0
}

// AbortAirborne terminates any hop or flight without landing, e.g. when a
// collision outcome interrupts it. All physics state resets in one call.
func (f *Frog) AbortAirborne() {
	f.Hop.Reset()
	f.Flight.Reset()
	f.RideRemaining = 0
	f.RideEntityID = 0
	f.Y = 0
}

// Airborne reports whether the frog is in a hop or flight.
func (f *Frog) Airborne() bool {
	return f.Mode == ModeHopping || f.Mode == ModeFlying
}

// Intersects reports horizontal overlap with a footprint centered at cx.
func (f *Frog) Intersects(cx, halfWidth float32) bool {
	d := f.X - cx
	if d < 0 {
		d = -d
	}
	return d <= f.HalfWidth+halfWidth
}

// Vulnerable reports whether damage applies this frame.
func (f *Frog) Vulnerable() bool {
	return f.InvulnTimer <= 0
}

// TickTimers advances invulnerability and float timers.
func (f *Frog) TickTimers(dt float32) {
	if f.InvulnTimer > 0 {
		f.InvulnTimer -= dt
		if f.InvulnTimer < 0 {
			f.InvulnTimer = 0
		}
	}
	if f.Mode == ModeFloating {
		f.FloatTimer += dt
	}
}

// Vitals is the run-scoped health and buff container. Created at run start,
// mutated only through these operations, discarded at run end.
type Vitals struct {
	Health    int
	MaxHealth int

	buffs [components.NumBuffKinds]int

	SuperMeter  int // flies collected toward super mode
	SuperTimer  float32
	superActive bool
}

// NewVitals creates a vitals container at full health.
func NewVitals(maxHealth int) *Vitals {
	return &Vitals{Health: maxHealth, MaxHealth: maxHealth}
}

// LoadBuffs installs the ledger's loaded snapshot.
func (v *Vitals) LoadBuffs(loaded [components.NumBuffKinds]int) {
	v.buffs = loaded
}

// Buff returns the current count for one buff type.
func (v *Vitals) Buff(kind components.BuffKind) int {
	return v.buffs[kind]
}

// BuffCounts returns all buff counts, for ledger settling.
func (v *Vitals) BuffCounts() [components.NumBuffKinds]int {
	return v.buffs
}

// ConsumeBuff decrements a buff by one. Returns false when none remain.
func (v *Vitals) ConsumeBuff(kind components.BuffKind) bool {
	if v.buffs[kind] <= 0 {
		return false
	}
	v.buffs[kind]--
	return true
}

// GrantBuff adds bonus units, e.g. from a tadpole rescue. Bonus units are not
// reconciled against inventory; the ledger clamps for this at settle.
func (v *Vitals) GrantBuff(kind components.BuffKind, n int) {
	if n > 0 {
		v.buffs[kind] += n
	}
}

// Damage applies n damage, clamped at zero. Returns the remaining health.
func (v *Vitals) Damage(n int) int {
	v.Health -= n
	if v.Health < 0 {
		v.Health = 0
	}
	return v.Health
}

// Heal restores n health, clamped at MaxHealth.
func (v *Vitals) Heal(n int) int {
	v.Health += n
	if v.Health > v.MaxHealth {
		v.Health = v.MaxHealth
	}
	return v.Health
}

// AddSuperMeter adds fly pickups toward the super threshold. Returns true
// when the meter fills and super mode should start.
func (v *Vitals) AddSuperMeter(threshold int) bool {
	if v.superActive {
		return false
	}
	v.SuperMeter++
	if v.SuperMeter >= threshold {
		v.SuperMeter = 0
		return true
	}
	return false
}

// StartSuper begins super mode for the given duration.
func (v *Vitals) StartSuper(duration float32) {
	v.superActive = true
	v.SuperTimer = duration
}

// TickSuper advances the super timer. Returns true on the frame it ends.
func (v *Vitals) TickSuper(dt float32) (ended bool) {
	if !v.superActive {
		return false
	}
	v.SuperTimer -= dt
	if v.SuperTimer <= 0 {
		v.superActive = false
		v.SuperTimer = 0
		return true
	}
	return false
}

// SuperActive reports whether super mode is running.
func (v *Vitals) SuperActive() bool {
	return v.superActive
}
