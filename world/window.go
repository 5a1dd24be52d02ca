package world

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pixelfilm44/StuntFrogsRunner-sub005/components"
)

// ActiveWindow holds the entities inside the camera band for one frame. The
// slices are rebuilt every frame but keep their capacity.
type ActiveWindow struct {
	Pads         []ecs.Entity
	Hazards      []ecs.Entity
	Obstacles    []ecs.Entity
	Collectibles []ecs.Entity
}

func (w *ActiveWindow) reset() {
	w.Pads = w.Pads[:0]
	w.Hazards = w.Hazards[:0]
	w.Obstacles = w.Obstacles[:0]
	w.Collectibles = w.Collectibles[:0]
}

// Total returns the number of entities in the window.
func (w *ActiveWindow) Total() int {
	return len(w.Pads) + len(w.Hazards) + len(w.Obstacles) + len(w.Collectibles)
}

// BuildWindow collects the live entities whose slot coordinate falls inside
// [lower, upper] into out. The per-kind lists are ordered by slot coordinate,
// so each scan skips a dead or out-of-band prefix once and stops at the first
// entry past upper plus the retention margin. The margin covers entities that
// drifted backward across the upper bound; drift is bounded below the margin.
// The camera can move backward, so entries below lower are skipped but not
// discarded here.
func (r *Registry) BuildWindow(lower, upper, retentionMargin float32, out *ActiveWindow) {
	out.reset()
	out.Pads = r.scan(components.KindPad, lower, upper, retentionMargin, out.Pads)
	out.Hazards = r.scan(components.KindHazard, lower, upper, retentionMargin, out.Hazards)
	out.Obstacles = r.scan(components.KindObstacle, lower, upper, retentionMargin, out.Obstacles)
	out.Collectibles = r.scan(components.KindCollectible, lower, upper, retentionMargin, out.Collectibles)
}

func (r *Registry) scan(kind components.Kind, lower, upper, margin float32, out []ecs.Entity) []ecs.Entity {
	l := &r.lists[kind]
	i := l.first
	// Skip the dead prefix permanently.
	for i < len(l.entries) && l.entries[i].Dead {
		i++
	}
	l.first = i
	l.compact()
	for i = l.first; i < len(l.entries); i++ {
		ent := &l.entries[i]
		if ent.Dead {
			continue
		}
		if ent.Key > upper+margin {
			break
		}
		p := r.posMap.Get(ent.E)
		if p.X < lower || p.X > upper {
			continue
		}
		out = append(out, ent.E)
	}
	return out
}

// EvictBehind removes every live entity whose slot coordinate lies strictly
// below the retention lower bound, regardless of visibility. Returns the
// number removed.
func (r *Registry) EvictBehind(retentionLower float32) int {
	removed := 0
	for kind := components.Kind(0); kind < NumKinds; kind++ {
		l := &r.lists[kind]
		for i := l.first; i < len(l.entries); i++ {
			ent := &l.entries[i]
			if ent.Key >= retentionLower {
				break
			}
			if !ent.Dead {
				r.remove(kind, i)
				removed++
			}
		}
	}
	return removed
}

// EnforceCaps removes oldest-first entities of each kind until live counts fit
// under the per-kind caps. Eviction ignores visibility; an entity inside the
// window is as evictable as one outside it.
func (r *Registry) EnforceCaps() int {
	removed := 0
	for kind := components.Kind(0); kind < NumKinds; kind++ {
		cap := r.caps[kind]
		if cap <= 0 {
			continue
		}
		l := &r.lists[kind]
		for i := l.first; l.live > cap && i < len(l.entries); i++ {
			if l.entries[i].Dead {
				continue
			}
			r.remove(kind, i)
			removed++
		}
	}
	return removed
}

// Despawn removes a single entity of the given kind, identified by its
// registry entry. Used by the collision resolver for collected or defeated
// entities.
func (r *Registry) Despawn(kind components.Kind, e ecs.Entity) {
	l := &r.lists[kind]
	for i := l.first; i < len(l.entries); i++ {
		if l.entries[i].E == e && !l.entries[i].Dead {
			r.remove(kind, i)
			return
		}
	}
}

// HighestKey returns the largest slot coordinate ever occupied by the kind,
// or ok=false when the kind has no entries yet. Dead entries still count:
// the scheduler must not refill slots behind ground already covered.
func (r *Registry) HighestKey(kind components.Kind) (float32, bool) {
	l := &r.lists[kind]
	if len(l.entries) == 0 {
		return 0, false
	}
	return l.entries[len(l.entries)-1].Key, true
}
