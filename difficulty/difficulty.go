// Package difficulty maps cumulative progress to spawn probabilities and
// unlock thresholds. All functions are pure and safe to call from any frame.
package difficulty

import "github.com/pixelfilm44/StuntFrogsRunner-sub005/components"

// Rule is a compiled spawn-table entry for one entity subtype.
// Config compiles the yaml tables into rules at load time; the scheduler
// iterates rules in declared order, which fixes tie-break precedence.
type Rule struct {
	Name string
	Kind components.Kind
	Sub  uint8 // raw subtype code for Kind (PadKind/HazardKind/ObstacleKind/CollectibleKind)

	BaseRate    float32
	Increment   float32
	MaxRate     float32
	UnlockLevel int

	LiveCap int // max simultaneously live; 0 = unlimited
	RunCap  int // hard per-run spawn limit; 0 = unlimited

	// ExcludedIn marks biomes where this rule never fires.
	ExcludedIn [components.NumBiomes]bool

	// Variants, when non-empty, are picked weighted-random after the rule
	// itself is selected.
	Variants []Variant
}

// Variant is one weighted flavor of a rule (e.g. snake vs scorpion).
type Variant struct {
	Name        string
	Sub         uint8
	Weight      float32
	UnlockLevel int
	ExcludedIn  [components.NumBiomes]bool
}

// Level derives the difficulty level from cumulative progress.
// Negative or zero progress clamps to level 0.
func Level(progressScore float32, scalingInterval int) int {
	if progressScore <= 0 || scalingInterval <= 0 {
		return 0
	}
	return int(progressScore) / scalingInterval
}

// Probability returns the spawn probability of a rule at the given level and
// biome, in [0, MaxRate]. Unlock gates and biome exclusions are hard zeros.
func Probability(r Rule, level int, biome components.Biome) float32 {
	if level < r.UnlockLevel {
		return 0
	}
	if r.ExcludedIn[biome] {
		return 0
	}
	p := r.BaseRate + float32(level)*r.Increment
	if p > r.MaxRate {
		p = r.MaxRate
	}
	if p < 0 {
		p = 0
	}
	return p
}

// SubtypeWeight returns the selection weight of a variant at the given level
// and biome, zero when the variant is locked or excluded. Weights are
// normalized at selection time, not here.
func SubtypeWeight(v Variant, level int, biome components.Biome) float32 {
	if level < v.UnlockLevel || v.ExcludedIn[biome] {
		return 0
	}
	if v.Weight < 0 {
		return 0
	}
	return v.Weight
}

// PickVariant selects a variant by normalized weight using sample in [0, 1).
// Returns false when every variant is locked or excluded.
func PickVariant(variants []Variant, level int, biome components.Biome, sample float32) (Variant, bool) {
	var total float32
	for _, v := range variants {
		total += SubtypeWeight(v, level, biome)
	}
	if total <= 0 {
		return Variant{}, false
	}
	target := sample * total
	var accum float32
	for _, v := range variants {
		w := SubtypeWeight(v, level, biome)
		if w <= 0 {
			continue
		}
		accum += w
		if target < accum {
			return v, true
		}
	}
	// Floating-point slack lands on the last eligible variant.
	for i := len(variants) - 1; i >= 0; i-- {
		if SubtypeWeight(variants[i], level, biome) > 0 {
			return variants[i], true
		}
	}
	return Variant{}, false
}
