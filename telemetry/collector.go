// Package telemetry aggregates simulation events into windowed stats rows and
// per-run summaries, written as CSV alongside a config snapshot.
package telemetry

import (
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/components"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/events"
)

// Collector accumulates per-frame events into window counters and produces
// WindowStats on flush.
type Collector struct {
	windowFrames int64
	dt           float32

	windowStart int64

	hops      int
	landings  int
	misses    int
	slips     int
	damages   int
	collects  int
	coins     int
	flies     int
	buffsUsed int
	spawns    int
	evictions int

	hopDistances []float64

	// Run-total counters, reset by FlushRun.
	runHops     int
	runBuffs    int
	runCollects int
}

// NewCollector creates a collector aggregating windowFrames frames per stats
// window.
func NewCollector(windowFrames int, dt float32) *Collector {
	if windowFrames < 1 {
		windowFrames = 1
	}
	return &Collector{windowFrames: int64(windowFrames), dt: dt}
}

// Observe consumes one frame's drained events.
func (c *Collector) Observe(evs []events.Event) {
	for _, ev := range evs {
		switch ev.Type {
		case events.Landed:
			c.landings++
		case events.Slipped:
			c.slips++
		case events.Floated, events.Drowned:
			c.misses++
		case events.Damaged:
			c.damages++
		case events.Collected:
			c.collects++
			c.runCollects++
			switch components.CollectibleKind(ev.Sub) {
			case components.CollectibleCoin:
				c.coins++
			case components.CollectibleFly:
				c.flies++
			}
		case events.BuffConsumed:
			c.buffsUsed++
			c.runBuffs++
		}
	}
}

// RecordHop records a committed launch and its intended travel distance.
func (c *Collector) RecordHop(distance float64) {
	c.hops++
	c.runHops++
	if distance < 0 {
		distance = -distance
	}
	c.hopDistances = append(c.hopDistances, distance)
}

// RecordSpawns adds slot spawns from the scheduler.
func (c *Collector) RecordSpawns(n int) {
	c.spawns += n
}

// RecordEvictions adds registry evictions.
func (c *Collector) RecordEvictions(n int) {
	c.evictions += n
}

// ShouldFlush reports whether the current window is complete.
func (c *Collector) ShouldFlush(frame int64) bool {
	return frame-c.windowStart >= c.windowFrames
}

// Flush produces a WindowStats and resets window counters.
func (c *Collector) Flush(frame int64, progress float64, score, level, health, liveTotal, windowSize int) WindowStats {
	var landingRate float64
	if c.hops > 0 {
		landingRate = float64(c.landings) / float64(c.hops)
	}
	mean, p10, p50, p90 := ComputeDistStats(c.hopDistances)

	stats := WindowStats{
		WindowStartFrame: c.windowStart,
		WindowEndFrame:   frame,
		SimTimeSec:       float64(frame) * float64(c.dt),

		Progress: progress,
		Score:    score,
		Level:    level,
		Health:   health,

		Hops:       c.hops,
		Landings:   c.landings,
		Misses:     c.misses,
		Slips:      c.slips,
		Damages:    c.damages,
		Collects:   c.collects,
		Coins:      c.coins,
		Flies:      c.flies,
		BuffsUsed:  c.buffsUsed,
		Spawns:     c.spawns,
		Evictions:  c.evictions,
		LiveTotal:  liveTotal,
		WindowSize: windowSize,

		LandingRate: landingRate,

		HopDistMean: mean,
		HopDistP10:  p10,
		HopDistP50:  p50,
		HopDistP90:  p90,
	}

	c.resetWindow(frame)

	return stats
}

// resetWindow clears the window counters and restarts the window at frame.
func (c *Collector) resetWindow(frame int64) {
	c.windowStart = frame
	c.hops = 0
	c.landings = 0
	c.misses = 0
	c.slips = 0
	c.damages = 0
	c.collects = 0
	c.coins = 0
	c.flies = 0
	c.buffsUsed = 0
	c.spawns = 0
	c.evictions = 0
	c.hopDistances = c.hopDistances[:0]
}

// FlushRun produces a RunSummary and resets both the run-total counters and
// the stats window, since window frames are counted per run.
func (c *Collector) FlushRun(run int, frames int64, progress float64, score, level int, cause string) RunSummary {
	s := RunSummary{
		Run:         run,
		Frames:      frames,
		DurationSec: float64(frames) * float64(c.dt),
		Progress:    progress,
		Score:       score,
		Level:       level,
		Cause:       cause,
		Hops:        c.runHops,
		BuffsUsed:   c.runBuffs,
		Collects:    c.runCollects,
	}
	c.runHops = 0
	c.runBuffs = 0
	c.runCollects = 0
	c.resetWindow(0)
	return s
}
