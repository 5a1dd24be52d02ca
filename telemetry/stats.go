package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one frame window.
type WindowStats struct {
	WindowStartFrame int64   `csv:"-"`
	WindowEndFrame   int64   `csv:"window_end"`
	SimTimeSec       float64 `csv:"sim_time"`

	// Run state at window end
	Progress float64 `csv:"progress"`
	Score    int     `csv:"score"`
	Level    int     `csv:"level"`
	Health   int     `csv:"health"`

	// Events during window
	Hops       int `csv:"hops"`
	Landings   int `csv:"landings"`
	Misses     int `csv:"misses"`
	Slips      int `csv:"slips"`
	Damages    int `csv:"damages"`
	Collects   int `csv:"collects"`
	Coins      int `csv:"coins"`
	Flies      int `csv:"flies"`
	BuffsUsed  int `csv:"buffs_used"`
	Spawns     int `csv:"spawns"`
	Evictions  int `csv:"evictions"`
	LiveTotal  int `csv:"live_total"`
	WindowSize int `csv:"window_size"`

	LandingRate float64 `csv:"landing_rate"`

	// Hop distance distribution across the window
	HopDistMean float64 `csv:"hop_dist_mean"`
	HopDistP10  float64 `csv:"hop_dist_p10"`
	HopDistP50  float64 `csv:"hop_dist_p50"`
	HopDistP90  float64 `csv:"hop_dist_p90"`
}

// ComputeDistStats calculates mean and percentiles of a sample.
func ComputeDistStats(values []float64) (mean, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	return mean, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_end", s.WindowEndFrame),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Float64("progress", s.Progress),
		slog.Int("score", s.Score),
		slog.Int("level", s.Level),
		slog.Int("health", s.Health),
		slog.Int("hops", s.Hops),
		slog.Int("landings", s.Landings),
		slog.Int("misses", s.Misses),
		slog.Int("slips", s.Slips),
		slog.Int("damages", s.Damages),
		slog.Int("collects", s.Collects),
		slog.Int("coins", s.Coins),
		slog.Int("flies", s.Flies),
		slog.Int("buffs_used", s.BuffsUsed),
		slog.Int("spawns", s.Spawns),
		slog.Int("evictions", s.Evictions),
		slog.Int("live_total", s.LiveTotal),
		slog.Int("window_size", s.WindowSize),
		slog.Float64("landing_rate", s.LandingRate),
		slog.Float64("hop_dist_mean", s.HopDistMean),
		slog.Float64("hop_dist_p50", s.HopDistP50),
	)
}

// RunSummary is one finished run.
type RunSummary struct {
	Run         int     `csv:"run"`
	Frames      int64   `csv:"frames"`
	DurationSec float64 `csv:"duration_sec"`
	Progress    float64 `csv:"progress"`
	Score       int     `csv:"score"`
	Level       int     `csv:"level"`
	Cause       string  `csv:"cause"`
	Hops        int     `csv:"hops"`
	BuffsUsed   int     `csv:"buffs_used"`
	Collects    int     `csv:"collects"`
}
