package world

import (
	"github.com/ojrac/opensimplex-go"
)

// Current models the water surface flow as a smooth noise field over world
// position and time. Drifting entities sample it so nearby logs move
// coherently instead of independently.
type Current struct {
	noise opensimplex.Noise
	// spatial and temporal frequencies of the flow field
	FreqX float64
	FreqT float64
	// Strength scales the sampled value, in world units per second.
	Strength float64
}

// NewCurrent creates a flow field from a seed. freqX and freqT are the
// spatial and temporal noise frequencies; zero values fall back to defaults.
func NewCurrent(seed int64, freqX, freqT float64) *Current {
	if freqX <= 0 {
		freqX = 0.004
	}
	if freqT <= 0 {
		freqT = 0.25
	}
	return &Current{
		noise:    opensimplex.NewNormalized(seed),
		FreqX:    freqX,
		FreqT:    freqT,
		Strength: 22.0,
	}
}

// Sample returns the horizontal flow velocity at world coordinate x and time
// t, centered on zero.
func (c *Current) Sample(x, t float64) float32 {
	v := c.noise.Eval2(x*c.FreqX, t*c.FreqT)
	return float32((v - 0.5) * 2.0 * c.Strength)
}
