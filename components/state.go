package components

// Position is an entity's world position. X is the lateral coordinate and is
// monotonically increasing in spawn order; Y is height above the water line.
type Position struct {
	X, Y float32
}

// Pad holds traversal-surface state.
type Pad struct {
	ID      uint32
	Subtype PadKind

	HalfWidth float32 // landing footprint half-extent

	// Moving pads oscillate around AnchorX with Amplitude and Phase.
	AnchorX   float32
	Amplitude float32
	Phase     float32

	// Shrinking pads lose HalfWidth after the first landing, down to MinHalf.
	MinHalf float32

	// Unstable pads sink SinkDelay seconds after the first landing.
	Stepped   bool
	SinkTimer float32
	Sunk      bool

	BeingRemoved bool
}

// Hazard holds hazard-enemy state.
type Hazard struct {
	ID      uint32
	Subtype HazardKind

	HalfWidth  float32
	HalfHeight float32

	// Direction is fixed once at spawn (+1 right, -1 left) and never
	// recomputed, even if the player crosses the spawn column first.
	Direction float32
	Speed     float32
	AnchorX   float32 // spawn slot, stamped by the registry; drift clamps to it
	AnchorY   float32 // hover/float baseline
	Phase     float32 // bob phase

	// Crocs cycle their jaws; landing while JawOpen is the dangerous contact.
	JawOpen  bool
	JawTimer float32

	Defeated     bool
	BeingRemoved bool
}

// Obstacle holds environmental-obstacle state.
type Obstacle struct {
	ID      uint32
	Subtype ObstacleKind

	HalfWidth  float32
	HalfHeight float32

	// Snakes and scorpions patrol slowly around AnchorX.
	AnchorX float32
	Range   float32
	Phase   float32
	Speed   float32

	// Set when a cross repels the obstacle; it slinks away and despawns.
	Fleeing   bool
	FleeTimer float32

	BeingRemoved bool
}

// Collectible holds collectible state.
type Collectible struct {
	ID      uint32
	Subtype CollectibleKind

	Radius  float32
	AnchorY float32
	Phase   float32 // bob phase

	Collected    bool
	BeingRemoved bool
}
