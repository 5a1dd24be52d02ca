// Package spawn decides what appears ahead of the camera. The scheduler walks
// fixed-spacing slots, rolls each compiled spawn rule independently in
// declared table order, and materializes winners into the world registry.
package spawn

import (
	"math/rand"

	"github.com/pixelfilm44/StuntFrogsRunner-sub005/components"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/config"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/difficulty"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/world"
)

// Entity dimensions by subtype. Gameplay feel, not table-driven.
const (
	padHalfWidth     = 44.0
	padMinHalf       = 14.0
	movingAmplitude  = 55.0
	beeHalfWidth     = 18.0
	beeHalfHeight    = 14.0
	beeHoverY        = 64.0
	logHalfWidth     = 70.0
	logHalfHeight    = 12.0
	logSpeed         = 60.0
	crocHalfWidth    = 80.0
	crocHalfHeight   = 20.0
	snakeHalfWidth   = 26.0
	snakeHalfHeight  = 10.0
	snakeRange       = 30.0
	spikesHalfWidth  = 32.0
	spikesHalfHeight = 16.0
	collectRadius    = 12.0
	collectHoverY    = 46.0
)

// Scheduler fills spawn slots ahead of the camera.
type Scheduler struct {
	cfg *config.Config
	reg *world.Registry
	rng *rand.Rand

	nextSlot float32

	// Per-rule spawn counts this run, keyed by rule name. Enforces run caps.
	runCounts map[string]int
}

// NewScheduler creates a scheduler starting at the given first slot.
func NewScheduler(cfg *config.Config, reg *world.Registry, seed int64, firstSlot float32) *Scheduler {
	return &Scheduler{
		cfg:       cfg,
		reg:       reg,
		rng:       rand.New(rand.NewSource(seed)),
		nextSlot:  firstSlot,
		runCounts: make(map[string]int),
	}
}

// ResetRun clears per-run spawn counts and rewinds slot generation.
func (s *Scheduler) ResetRun(firstSlot float32) {
	s.runCounts = make(map[string]int)
	s.nextSlot = firstSlot
}

// FillAhead generates slots until coverage reaches cameraUpper plus the
// configured spawn-ahead distance. Progress drives the difficulty level.
// Returns the number of slots filled.
func (s *Scheduler) FillAhead(cameraUpper, progress float32) int {
	target := cameraUpper + float32(s.cfg.World.SpawnAhead)
	spacing := float32(s.cfg.World.SlotSpacing)
	level := difficulty.Level(progress, s.cfg.Difficulty.ScalingInterval)

	filled := 0
	for s.nextSlot <= target {
		s.fillSlot(s.nextSlot, level)
		s.nextSlot += spacing
		filled++
	}
	return filled
}

// fillSlot rolls each table for one slot. Every slot gets a pad: when no pad
// rule wins the roll, a static pad is placed so runs can always continue.
// Hazards, obstacles, and collectibles spawn at most one each per slot.
func (s *Scheduler) fillSlot(x float32, level int) {
	biome := s.cfg.Derived.BiomeAt(x)

	if !s.rollKind(s.cfg.Derived.PadRules, x, level, biome) {
		s.spawnPad(x, uint8(components.PadStatic))
	}
	s.rollKind(s.cfg.Derived.HazardRules, x, level, biome)
	s.rollKind(s.cfg.Derived.ObstacleRules, x, level, biome)
	s.rollKind(s.cfg.Derived.CollectibleRules, x, level, biome)
}

// rollKind rolls rules in declared order and spawns the first winner. Declared
// order is the tie-break: an earlier entry that wins its roll shadows every
// later entry for this slot.
func (s *Scheduler) rollKind(rules []difficulty.Rule, x float32, level int, biome components.Biome) bool {
	for i := range rules {
		r := &rules[i]
		p := difficulty.Probability(*r, level, biome)
		if p <= 0 {
			continue
		}
		if s.rng.Float32() >= p {
			continue
		}
		if !s.capsAllow(r) {
			continue
		}
		sub := r.Sub
		name := r.Name
		if len(r.Variants) > 0 {
			v, ok := difficulty.PickVariant(r.Variants, level, biome, s.rng.Float32())
			if !ok {
				continue
			}
			sub = v.Sub
			name = v.Name
		}
		s.spawn(r.Kind, x, sub)
		s.runCounts[r.Name]++
		if name != r.Name {
			s.runCounts[name]++
		}
		return true
	}
	return false
}

// capsAllow checks the rule's live cap against the registry and its run cap
// against this run's counts.
func (s *Scheduler) capsAllow(r *difficulty.Rule) bool {
	if r.RunCap > 0 && s.runCounts[r.Name] >= r.RunCap {
		return false
	}
	if r.LiveCap > 0 {
		if len(r.Variants) > 0 {
			// Family live cap covers all variants together.
			live := 0
			for _, v := range r.Variants {
				live += s.reg.LiveCountSub(r.Kind, v.Sub)
			}
			if live >= r.LiveCap {
				return false
			}
		} else if s.reg.LiveCountSub(r.Kind, r.Sub) >= r.LiveCap {
			return false
		}
	}
	return true
}

func (s *Scheduler) spawn(kind components.Kind, x float32, sub uint8) {
	switch kind {
	case components.KindPad:
		s.spawnPad(x, sub)
	case components.KindHazard:
		s.spawnHazard(x, sub)
	case components.KindObstacle:
		s.spawnObstacle(x, sub)
	case components.KindCollectible:
		s.spawnCollectible(x, sub)
	}
}

func (s *Scheduler) spawnPad(x float32, sub uint8) {
	pad := components.Pad{
		ID:        s.reg.NextID(),
		Subtype:   components.PadKind(sub),
		HalfWidth: padHalfWidth,
		AnchorX:   x,
	}
	switch pad.Subtype {
	case components.PadMoving:
		pad.Amplitude = movingAmplitude
		pad.Phase = s.rng.Float32() * 6.28318
	case components.PadShrinking:
		pad.MinHalf = padMinHalf
	}
	s.reg.SpawnPad(x, pad)
}

func (s *Scheduler) spawnHazard(x float32, sub uint8) {
	hz := components.Hazard{
		ID:      s.reg.NextID(),
		Subtype: components.HazardKind(sub),
	}
	// Direction is decided here, once; dispatch never recomputes it.
	if s.rng.Float32() < 0.5 {
		hz.Direction = -1
	} else {
		hz.Direction = 1
	}
	switch hz.Subtype {
	case components.HazardBee:
		hz.HalfWidth = beeHalfWidth
		hz.HalfHeight = beeHalfHeight
		hz.AnchorY = beeHoverY
		hz.Phase = s.rng.Float32() * 6.28318
	case components.HazardLog:
		hz.HalfWidth = logHalfWidth
		hz.HalfHeight = logHalfHeight
		hz.Speed = logSpeed
	case components.HazardCroc:
		hz.HalfWidth = crocHalfWidth
		hz.HalfHeight = crocHalfHeight
		hz.JawOpen = s.rng.Float32() < 0.5
	}
	s.reg.SpawnHazard(x, hz)
}

func (s *Scheduler) spawnObstacle(x float32, sub uint8) {
	ob := components.Obstacle{
		ID:      s.reg.NextID(),
		Subtype: components.ObstacleKind(sub),
		AnchorX: x,
	}
	switch ob.Subtype {
	case components.ObstacleSnake, components.ObstacleScorpion:
		ob.HalfWidth = snakeHalfWidth
		ob.HalfHeight = snakeHalfHeight
		ob.Range = snakeRange
		ob.Phase = s.rng.Float32() * 6.28318
	case components.ObstacleSpikes:
		ob.HalfWidth = spikesHalfWidth
		ob.HalfHeight = spikesHalfHeight
	}
	s.reg.SpawnObstacle(x, ob)
}

func (s *Scheduler) spawnCollectible(x float32, sub uint8) {
	c := components.Collectible{
		ID:      s.reg.NextID(),
		Subtype: components.CollectibleKind(sub),
		Radius:  collectRadius,
		AnchorY: collectHoverY,
		Phase:   s.rng.Float32() * 6.28318,
	}
	s.reg.SpawnCollectible(x, c)
}

// RunCount reports how many times a rule or variant name spawned this run.
func (s *Scheduler) RunCount(name string) int {
	return s.runCounts[name]
}
