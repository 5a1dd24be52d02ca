package config

import "fmt"

// Validate checks numeric ranges. A violation means an authoring error
// upstream; the system refuses to start a run rather than silently clamp.
func (c *Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen dimensions must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Camera.BandFraction <= 0 || c.Camera.BandFraction > 1 {
		return fmt.Errorf("camera.band_fraction must be in (0, 1], got %f", c.Camera.BandFraction)
	}
	if c.Camera.RetentionMargin < 0 {
		return fmt.Errorf("camera.retention_margin must be non-negative, got %f", c.Camera.RetentionMargin)
	}
	if c.Camera.FollowLerp <= 0 || c.Camera.FollowLerp > 1 {
		return fmt.Errorf("camera.follow_lerp must be in (0, 1], got %f", c.Camera.FollowLerp)
	}

	if c.World.SlotSpacing <= 0 {
		return fmt.Errorf("world.slot_spacing must be positive, got %f", c.World.SlotSpacing)
	}
	if c.World.SpawnAhead <= 0 {
		return fmt.Errorf("world.spawn_ahead must be positive, got %f", c.World.SpawnAhead)
	}
	for _, cap := range []struct {
		name string
		val  int
	}{
		{"world.pad_cap", c.World.PadCap},
		{"world.hazard_cap", c.World.HazardCap},
		{"world.obstacle_cap", c.World.ObstacleCap},
		{"world.collectible_cap", c.World.CollectibleCap},
	} {
		if cap.val <= 0 {
			return fmt.Errorf("%s must be positive, got %d", cap.name, cap.val)
		}
	}

	p := &c.Physics
	if p.DT <= 0 {
		return fmt.Errorf("physics.dt must be positive, got %f", p.DT)
	}
	if p.Gravity <= 0 || p.FlightGravity <= 0 {
		return fmt.Errorf("physics gravities must be positive, got %f / %f", p.Gravity, p.FlightGravity)
	}
	if p.Friction <= 0 || p.Friction > 1 {
		return fmt.Errorf("physics.friction must be in (0, 1], got %f", p.Friction)
	}
	if p.MinPullDistance < 0 || p.MaxPullDistance <= p.MinPullDistance {
		return fmt.Errorf("physics pull range invalid: min %f, max %f", p.MinPullDistance, p.MaxPullDistance)
	}
	if p.PullScale <= 0 || p.ImpulseScale <= 0 {
		return fmt.Errorf("physics scales must be positive, got %f / %f", p.PullScale, p.ImpulseScale)
	}
	if p.PreviewPoints <= 0 {
		return fmt.Errorf("physics.preview_points must be positive, got %d", p.PreviewPoints)
	}
	if p.FlightDuration <= 0 || p.FlightMaxSpeed <= 0 {
		return fmt.Errorf("flight parameters must be positive, got duration %f, max speed %f", p.FlightDuration, p.FlightMaxSpeed)
	}

	if c.Player.MaxHealth <= 0 {
		return fmt.Errorf("player.max_health must be positive, got %d", c.Player.MaxHealth)
	}
	if c.Player.HalfWidth <= 0 {
		return fmt.Errorf("player.half_width must be positive, got %f", c.Player.HalfWidth)
	}
	if c.Player.SuperThreshold <= 0 {
		return fmt.Errorf("player.super_threshold must be positive, got %d", c.Player.SuperThreshold)
	}
	if c.Player.SuperMultiplier < 1 {
		return fmt.Errorf("player.super_multiplier must be >= 1, got %f", c.Player.SuperMultiplier)
	}

	if c.Difficulty.ScalingInterval <= 0 {
		return fmt.Errorf("difficulty.scaling_interval must be positive, got %d", c.Difficulty.ScalingInterval)
	}

	for _, group := range []struct {
		name    string
		entries []SpawnEntry
	}{
		{"hazards", c.Spawn.Hazards},
		{"obstacles", c.Spawn.Obstacles},
		{"pads", c.Spawn.Pads},
		{"collectibles", c.Spawn.Collectibles},
	} {
		for _, e := range group.entries {
			if err := validateEntry(group.name, e); err != nil {
				return err
			}
		}
	}

	if len(c.Environment.Biomes) == 0 {
		return fmt.Errorf("environment.biomes must not be empty")
	}
	for _, span := range c.Environment.Biomes {
		if span.Length <= 0 {
			return fmt.Errorf("biome span %q must have positive length, got %f", span.Name, span.Length)
		}
	}
	if c.Environment.WeatherInterval <= 0 {
		return fmt.Errorf("environment.weather_interval must be positive, got %f", c.Environment.WeatherInterval)
	}
	var weatherTotal float64
	for _, w := range c.Environment.Weathers {
		if w.Weight < 0 {
			return fmt.Errorf("weather %q weight must be non-negative, got %f", w.Name, w.Weight)
		}
		weatherTotal += w.Weight
	}
	if weatherTotal <= 0 {
		return fmt.Errorf("environment.weathers must have at least one positive weight")
	}

	if c.Ledger.PackSize <= 0 {
		return fmt.Errorf("ledger.pack_size must be positive, got %d", c.Ledger.PackSize)
	}
	if c.Ledger.PerRunCap <= 0 {
		return fmt.Errorf("ledger.per_run_cap must be positive, got %d", c.Ledger.PerRunCap)
	}

	if c.Telemetry.WindowFrames <= 0 {
		return fmt.Errorf("telemetry.window_frames must be positive, got %d", c.Telemetry.WindowFrames)
	}

	return nil
}

func validateEntry(group string, e SpawnEntry) error {
	if e.Subtype == "" {
		return fmt.Errorf("spawn.%s: entry missing subtype", group)
	}
	if e.BaseRate < 0 || e.BaseRate > 1 {
		return fmt.Errorf("spawn.%s.%s: base_rate %f outside [0, 1]", group, e.Subtype, e.BaseRate)
	}
	if e.MaxRate < 0 || e.MaxRate > 1 {
		return fmt.Errorf("spawn.%s.%s: max_rate %f outside [0, 1]", group, e.Subtype, e.MaxRate)
	}
	if e.MaxRate < e.BaseRate {
		return fmt.Errorf("spawn.%s.%s: max_rate %f below base_rate %f", group, e.Subtype, e.MaxRate, e.BaseRate)
	}
	if e.Increment < 0 {
		return fmt.Errorf("spawn.%s.%s: increment must be non-negative, got %f", group, e.Subtype, e.Increment)
	}
	if e.UnlockLevel < 0 {
		return fmt.Errorf("spawn.%s.%s: unlock_level must be non-negative, got %d", group, e.Subtype, e.UnlockLevel)
	}
	if e.LiveCap < 0 || e.RunCap < 0 {
		return fmt.Errorf("spawn.%s.%s: caps must be non-negative", group, e.Subtype)
	}
	if len(e.Variants) > 0 {
		var total float64
		for _, v := range e.Variants {
			if v.Weight < 0 {
				return fmt.Errorf("spawn.%s.%s: variant %q weight must be non-negative", group, e.Subtype, v.Name)
			}
			total += v.Weight
		}
		if total <= 0 {
			return fmt.Errorf("spawn.%s.%s: variants need at least one positive weight", group, e.Subtype)
		}
	}
	return nil
}
