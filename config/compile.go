package config

import (
	"fmt"

	"github.com/pixelfilm44/StuntFrogsRunner-sub005/components"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/difficulty"
)

// computeDerived compiles the string-keyed yaml tables into enum-keyed rules.
// Unknown names are authoring errors and abort the load.
func (c *Config) computeDerived() error {
	c.Derived.DT32 = float32(c.Physics.DT)

	var err error
	if c.Derived.HazardRules, err = c.compileRules("hazards", c.Spawn.Hazards, components.KindHazard); err != nil {
		return err
	}
	if c.Derived.ObstacleRules, err = c.compileRules("obstacles", c.Spawn.Obstacles, components.KindObstacle); err != nil {
		return err
	}
	if c.Derived.PadRules, err = c.compileRules("pads", c.Spawn.Pads, components.KindPad); err != nil {
		return err
	}
	if c.Derived.CollectibleRules, err = c.compileRules("collectibles", c.Spawn.Collectibles, components.KindCollectible); err != nil {
		return err
	}

	// Biome sequence with cumulative end coordinates.
	c.Derived.BiomeSpans = c.Derived.BiomeSpans[:0]
	c.Derived.BiomeEnds = c.Derived.BiomeEnds[:0]
	var total float32
	for _, span := range c.Environment.Biomes {
		b, ok := components.ParseBiome(span.Name)
		if !ok {
			return fmt.Errorf("unknown biome %q in environment.biomes", span.Name)
		}
		total += float32(span.Length)
		c.Derived.BiomeSpans = append(c.Derived.BiomeSpans, b)
		c.Derived.BiomeEnds = append(c.Derived.BiomeEnds, total)
	}
	c.Derived.TotalLength = total

	c.Derived.WeatherKinds = c.Derived.WeatherKinds[:0]
	c.Derived.WeatherWeights = c.Derived.WeatherWeights[:0]
	for _, w := range c.Environment.Weathers {
		var kind components.Weather
		switch w.Name {
		case "clear":
			kind = components.WeatherClear
		case "rain":
			kind = components.WeatherRain
		case "fog":
			kind = components.WeatherFog
		default:
			return fmt.Errorf("unknown weather %q", w.Name)
		}
		c.Derived.WeatherKinds = append(c.Derived.WeatherKinds, kind)
		c.Derived.WeatherWeights = append(c.Derived.WeatherWeights, float32(w.Weight))
	}

	return nil
}

// compileRules converts one table section preserving declared order.
func (c *Config) compileRules(group string, entries []SpawnEntry, kind components.Kind) ([]difficulty.Rule, error) {
	rules := make([]difficulty.Rule, 0, len(entries))
	for _, e := range entries {
		rule := difficulty.Rule{
			Name:        e.Subtype,
			Kind:        kind,
			BaseRate:    float32(e.BaseRate),
			Increment:   float32(e.Increment),
			MaxRate:     float32(e.MaxRate),
			UnlockLevel: e.UnlockLevel,
			LiveCap:     e.LiveCap,
			RunCap:      e.RunCap,
		}

		if len(e.Variants) == 0 {
			sub, err := resolveSubtype(kind, e.Subtype)
			if err != nil {
				return nil, fmt.Errorf("spawn.%s: %w", group, err)
			}
			rule.Sub = sub
		} else {
			for _, v := range e.Variants {
				sub, err := resolveSubtype(kind, v.Name)
				if err != nil {
					return nil, fmt.Errorf("spawn.%s.%s: %w", group, e.Subtype, err)
				}
				variant := difficulty.Variant{
					Name:        v.Name,
					Sub:         sub,
					Weight:      float32(v.Weight),
					UnlockLevel: v.UnlockLevel,
				}
				if err := c.applyBiomeGates(v.Name, &variant.ExcludedIn); err != nil {
					return nil, err
				}
				rule.Variants = append(rule.Variants, variant)
			}
			rule.Sub = rule.Variants[0].Sub
		}

		if err := c.applyBiomeGates(e.Subtype, &rule.ExcludedIn); err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// applyBiomeGates fills an exclusion mask from the exclusions and exclusive
// maps for the given subtype name.
func (c *Config) applyBiomeGates(name string, mask *[components.NumBiomes]bool) error {
	for biomeName, excluded := range c.Spawn.Exclusions {
		b, ok := components.ParseBiome(biomeName)
		if !ok {
			return fmt.Errorf("unknown biome %q in spawn.exclusions", biomeName)
		}
		for _, n := range excluded {
			if n == name {
				mask[b] = true
			}
		}
	}
	if only, ok := c.Spawn.Exclusive[name]; ok {
		b, ok := components.ParseBiome(only)
		if !ok {
			return fmt.Errorf("unknown biome %q in spawn.exclusive for %q", only, name)
		}
		for i := components.Biome(0); i < components.NumBiomes; i++ {
			if i != b {
				mask[i] = true
			}
		}
	}
	return nil
}

// resolveSubtype maps a table name to its enum code, catching typos at load.
func resolveSubtype(kind components.Kind, name string) (uint8, error) {
	switch kind {
	case components.KindPad:
		switch name {
		case "moving":
			return uint8(components.PadMoving), nil
		case "shrinking":
			return uint8(components.PadShrinking), nil
		case "unstable":
			return uint8(components.PadUnstable), nil
		case "static":
			// Static pads are the unconditional fallback, never a table row.
			return 0, fmt.Errorf("pad subtype %q may not appear in the spawn table", name)
		}
	case components.KindHazard:
		switch name {
		case "bee":
			return uint8(components.HazardBee), nil
		case "log":
			return uint8(components.HazardLog), nil
		case "croc":
			return uint8(components.HazardCroc), nil
		}
	case components.KindObstacle:
		switch name {
		case "snake":
			return uint8(components.ObstacleSnake), nil
		case "scorpion":
			return uint8(components.ObstacleScorpion), nil
		case "spikes":
			return uint8(components.ObstacleSpikes), nil
		case "reptile":
			// family label, resolved via variants
			return uint8(components.ObstacleSnake), nil
		}
	case components.KindCollectible:
		switch name {
		case "coin":
			return uint8(components.CollectibleCoin), nil
		case "fly":
			return uint8(components.CollectibleFly), nil
		case "tadpole":
			return uint8(components.CollectibleTadpole), nil
		case "dragonfly":
			return uint8(components.CollectibleDragonfly), nil
		case "any":
			return uint8(components.CollectibleCoin), nil
		}
	}
	return 0, fmt.Errorf("unknown %s subtype %q", kind, name)
}
