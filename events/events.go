// Package events provides the per-frame event queue consumed by render and
// audio collaborators. Producers push during the frame update; interested
// collaborators drain once per frame, preserving single-threaded ordering
// without callback re-entrancy.
package events

import "github.com/pixelfilm44/StuntFrogsRunner-sub005/components"

// Type identifies simulation events.
type Type uint8

const (
	Landed Type = iota
	Slipped
	Floated
	Drowned
	Collected
	HazardDefeated
	Repelled
	Damaged
	Defeated
	RideAttached
	RideEnded
	BuffConsumed
	BuffGranted
	SuperStarted
	SuperEnded
	FlightStarted
	FlightEnded
	HealthChanged
	WeatherChanged
	BiomeChanged
	RunEnded
)

func (t Type) String() string {
	switch t {
	case Landed:
		return "landed"
	case Slipped:
		return "slipped"
	case Floated:
		return "floated"
	case Drowned:
		return "drowned"
	case Collected:
		return "collected"
	case HazardDefeated:
		return "hazard_defeated"
	case Repelled:
		return "repelled"
	case Damaged:
		return "damaged"
	case Defeated:
		return "defeated"
	case RideAttached:
		return "ride_attached"
	case RideEnded:
		return "ride_ended"
	case BuffConsumed:
		return "buff_consumed"
	case BuffGranted:
		return "buff_granted"
	case SuperStarted:
		return "super_started"
	case SuperEnded:
		return "super_ended"
	case FlightStarted:
		return "flight_started"
	case FlightEnded:
		return "flight_ended"
	case HealthChanged:
		return "health_changed"
	case WeatherChanged:
		return "weather_changed"
	case BiomeChanged:
		return "biome_changed"
	case RunEnded:
		return "run_ended"
	}
	return "unknown"
}

// Event is a single simulation event.
type Event struct {
	Type  Type
	Frame int64

	// Optional payload depending on type
	EntityID uint32
	Kind     components.Kind
	Sub      uint8   // subtype code within Kind
	Buff     components.BuffKind
	Amount   int32   // score delta, health delta, buff count
	X, Y     float32 // world position of the event
}

// Queue collects events during a frame. Capacity is retained across frames so
// a steady state allocates nothing.
type Queue struct {
	events []Event
	frame  int64
}

// NewQueue creates a queue with room for a typical frame's events.
func NewQueue() *Queue {
	return &Queue{events: make([]Event, 0, 64)}
}

// BeginFrame clears drained events and stamps subsequent pushes.
func (q *Queue) BeginFrame(frame int64) {
	q.events = q.events[:0]
	q.frame = frame
}

// Push appends an event stamped with the current frame.
func (q *Queue) Push(e Event) {
	e.Frame = q.frame
	q.events = append(q.events, e)
}

// Events returns this frame's events in push order. The slice is only valid
// until the next BeginFrame.
func (q *Queue) Events() []Event {
	return q.events
}

// Len returns the number of events pushed this frame.
func (q *Queue) Len() int {
	return len(q.events)
}
