// Package components defines ECS components and closed kind enums for the simulation.
package components

// Kind is the top-level entity category. Dispatch over Kind must be exhaustive;
// adding a value here requires updating the spawn scheduler and collision resolver.
type Kind uint8

const (
	KindPad Kind = iota
	KindHazard
	KindCollectible
	KindObstacle
)

// String returns the kind name for logs and telemetry.
func (k Kind) String() string {
	switch k {
	case KindPad:
		return "pad"
	case KindHazard:
		return "hazard"
	case KindCollectible:
		return "collectible"
	case KindObstacle:
		return "obstacle"
	}
	return "unknown"
}

// PadKind selects traversal-surface behavior.
type PadKind uint8

const (
	PadStatic PadKind = iota
	PadMoving
	PadShrinking
	PadUnstable
)

func (k PadKind) String() string {
	switch k {
	case PadStatic:
		return "static"
	case PadMoving:
		return "moving"
	case PadShrinking:
		return "shrinking"
	case PadUnstable:
		return "unstable"
	}
	return "unknown"
}

// HazardKind selects hazard-enemy behavior. Bees fly, logs float with a
// direction fixed at spawn, crocs are rideable.
type HazardKind uint8

const (
	HazardBee HazardKind = iota
	HazardLog
	HazardCroc
)

func (k HazardKind) String() string {
	switch k {
	case HazardBee:
		return "bee"
	case HazardLog:
		return "log"
	case HazardCroc:
		return "croc"
	}
	return "unknown"
}

// ObstacleKind selects environmental-obstacle behavior (slow movers, checked
// on the 3rd-frame collision cadence).
type ObstacleKind uint8

const (
	ObstacleSnake ObstacleKind = iota
	ObstacleScorpion
	ObstacleSpikes
)

func (k ObstacleKind) String() string {
	switch k {
	case ObstacleSnake:
		return "snake"
	case ObstacleScorpion:
		return "scorpion"
	case ObstacleSpikes:
		return "spikes"
	}
	return "unknown"
}

// CollectibleKind selects collectible behavior.
type CollectibleKind uint8

const (
	CollectibleCoin CollectibleKind = iota
	CollectibleFly
	CollectibleTadpole
	CollectibleDragonfly
)

func (k CollectibleKind) String() string {
	switch k {
	case CollectibleCoin:
		return "coin"
	case CollectibleFly:
		return "fly"
	case CollectibleTadpole:
		return "tadpole"
	case CollectibleDragonfly:
		return "dragonfly"
	}
	return "unknown"
}

// BuffKind identifies a consumable buff type. Each destructive contact checks
// its corresponding buff before applying the default outcome.
type BuffKind uint8

const (
	BuffVest BuffKind = iota // float instead of drown
	BuffSwatter              // defeat bee
	BuffAxe                  // chop log
	BuffCross                // repel snake / scorpion
	BuffHoney                // croc attack becomes a ride
	NumBuffKinds
)

func (k BuffKind) String() string {
	switch k {
	case BuffVest:
		return "vest"
	case BuffSwatter:
		return "swatter"
	case BuffAxe:
		return "axe"
	case BuffCross:
		return "cross"
	case BuffHoney:
		return "honey"
	}
	return "unknown"
}

// ParseBuffKind resolves a buff name from config or a persisted profile.
func ParseBuffKind(name string) (BuffKind, bool) {
	for k := BuffKind(0); k < NumBuffKinds; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}
