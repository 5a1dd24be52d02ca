// Package world owns all live entities. Storage lives in an ark ECS world;
// the registry additionally keeps per-kind lists ordered by spawn slot
// coordinate, which spawn order guarantees to be ascending. Other components
// only see entities through the per-frame active window.
package world

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pixelfilm44/StuntFrogsRunner-sub005/components"
)

// NumKinds is the number of top-level entity kinds.
const NumKinds = 4

// maxSubtypes bounds the per-subtype live counters.
const maxSubtypes = 8

// entry is one slot in a per-kind ordered list. Key is the spawn slot
// coordinate and never changes; entities may drift around it by less than the
// retention margin, so scans ordered by Key stay correct.
type entry struct {
	E    ecs.Entity
	Key  float32
	Dead bool
}

// kindList is an insertion-ordered entity list for one kind.
type kindList struct {
	entries []entry
	first   int // index of the first entry that may still be alive
	live    int
}

// compact drops the removed prefix once it grows large enough to matter.
func (l *kindList) compact() {
	if l.first < 256 {
		return
	}
	n := copy(l.entries, l.entries[l.first:])
	l.entries = l.entries[:n]
	l.first = 0
}

// Registry owns authoritative entity storage.
type Registry struct {
	world *ecs.World

	padMapper         *ecs.Map2[components.Position, components.Pad]
	hazardMapper      *ecs.Map2[components.Position, components.Hazard]
	obstacleMapper    *ecs.Map2[components.Position, components.Obstacle]
	collectibleMapper *ecs.Map2[components.Position, components.Collectible]

	posMap         *ecs.Map1[components.Position]
	padMap         *ecs.Map1[components.Pad]
	hazardMap      *ecs.Map1[components.Hazard]
	obstacleMap    *ecs.Map1[components.Obstacle]
	collectibleMap *ecs.Map1[components.Collectible]

	lists [NumKinds]kindList
	caps  [NumKinds]int

	// live counts per kind and subtype, for spawn-table live caps
	liveBySub [NumKinds][maxSubtypes]int

	nextID uint32
}

// NewRegistry creates an empty registry with the given per-kind live caps.
func NewRegistry(padCap, hazardCap, obstacleCap, collectibleCap int) *Registry {
	w := ecs.NewWorld()
	r := &Registry{
		world:             w,
		padMapper:         ecs.NewMap2[components.Position, components.Pad](w),
		hazardMapper:      ecs.NewMap2[components.Position, components.Hazard](w),
		obstacleMapper:    ecs.NewMap2[components.Position, components.Obstacle](w),
		collectibleMapper: ecs.NewMap2[components.Position, components.Collectible](w),
		posMap:            ecs.NewMap1[components.Position](w),
		padMap:            ecs.NewMap1[components.Pad](w),
		hazardMap:         ecs.NewMap1[components.Hazard](w),
		obstacleMap:       ecs.NewMap1[components.Obstacle](w),
		collectibleMap:    ecs.NewMap1[components.Collectible](w),
		nextID:            1,
	}
	r.caps[components.KindPad] = padCap
	r.caps[components.KindHazard] = hazardCap
	r.caps[components.KindObstacle] = obstacleCap
	r.caps[components.KindCollectible] = collectibleCap
	return r
}

// NextID allocates a fresh entity identity.
func (r *Registry) NextID() uint32 {
	id := r.nextID
	r.nextID++
	return id
}

// SpawnPad inserts a pad at the given slot coordinate. Slots arrive in
// ascending order; the list stays sorted by construction.
func (r *Registry) SpawnPad(slotX float32, pad components.Pad) ecs.Entity {
	pos := components.Position{X: slotX, Y: 0}
	e := r.padMapper.NewEntity(&pos, &pad)
	r.push(components.KindPad, uint8(pad.Subtype), e, slotX)
	return e
}

// SpawnHazard inserts a hazard at the given slot coordinate, which also
// becomes its drift anchor.
func (r *Registry) SpawnHazard(slotX float32, hazard components.Hazard) ecs.Entity {
	hazard.AnchorX = slotX
	pos := components.Position{X: slotX, Y: hazard.AnchorY}
	e := r.hazardMapper.NewEntity(&pos, &hazard)
	r.push(components.KindHazard, uint8(hazard.Subtype), e, slotX)
	return e
}

// SpawnObstacle inserts an environmental obstacle at the given slot coordinate.
func (r *Registry) SpawnObstacle(slotX float32, obstacle components.Obstacle) ecs.Entity {
	pos := components.Position{X: slotX, Y: 0}
	e := r.obstacleMapper.NewEntity(&pos, &obstacle)
	r.push(components.KindObstacle, uint8(obstacle.Subtype), e, slotX)
	return e
}

// SpawnCollectible inserts a collectible at the given slot coordinate.
func (r *Registry) SpawnCollectible(slotX float32, c components.Collectible) ecs.Entity {
	pos := components.Position{X: slotX, Y: c.AnchorY}
	e := r.collectibleMapper.NewEntity(&pos, &c)
	r.push(components.KindCollectible, uint8(c.Subtype), e, slotX)
	return e
}

func (r *Registry) push(kind components.Kind, sub uint8, e ecs.Entity, key float32) {
	l := &r.lists[kind]
	l.entries = append(l.entries, entry{E: e, Key: key})
	l.live++
	r.liveBySub[kind][sub]++
}

// remove despawns the entry at index i of the given kind list.
func (r *Registry) remove(kind components.Kind, i int) {
	l := &r.lists[kind]
	ent := &l.entries[i]
	if ent.Dead {
		return
	}
	switch kind {
	case components.KindPad:
		r.liveBySub[kind][uint8(r.padMap.Get(ent.E).Subtype)]--
		r.padMapper.Remove(ent.E)
	case components.KindHazard:
		r.liveBySub[kind][uint8(r.hazardMap.Get(ent.E).Subtype)]--
		r.hazardMapper.Remove(ent.E)
	case components.KindObstacle:
		r.liveBySub[kind][uint8(r.obstacleMap.Get(ent.E).Subtype)]--
		r.obstacleMapper.Remove(ent.E)
	case components.KindCollectible:
		r.liveBySub[kind][uint8(r.collectibleMap.Get(ent.E).Subtype)]--
		r.collectibleMapper.Remove(ent.E)
	}
	ent.Dead = true
	l.live--
}

// LiveCount returns the number of live entities of a kind.
func (r *Registry) LiveCount(kind components.Kind) int {
	return r.lists[kind].live
}

// LiveCountSub returns the number of live entities of a kind subtype.
func (r *Registry) LiveCountSub(kind components.Kind, sub uint8) int {
	return r.liveBySub[kind][sub]
}

// Position returns the position component of an entity.
func (r *Registry) Position(e ecs.Entity) *components.Position {
	return r.posMap.Get(e)
}

// Pad returns the pad component of an entity.
func (r *Registry) Pad(e ecs.Entity) *components.Pad {
	return r.padMap.Get(e)
}

// Hazard returns the hazard component of an entity.
func (r *Registry) Hazard(e ecs.Entity) *components.Hazard {
	return r.hazardMap.Get(e)
}

// Obstacle returns the obstacle component of an entity.
func (r *Registry) Obstacle(e ecs.Entity) *components.Obstacle {
	return r.obstacleMap.Get(e)
}

// Collectible returns the collectible component of an entity.
func (r *Registry) Collectible(e ecs.Entity) *components.Collectible {
	return r.collectibleMap.Get(e)
}
