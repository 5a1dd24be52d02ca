// Package config provides configuration loading, validation, and access for
// the simulation. Configuration errors are authoring errors: Load refuses bad
// tables instead of clamping them.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pixelfilm44/StuntFrogsRunner-sub005/components"
	"github.com/pixelfilm44/StuntFrogsRunner-sub005/difficulty"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen      ScreenConfig      `yaml:"screen"`
	Camera      CameraConfig      `yaml:"camera"`
	World       WorldConfig       `yaml:"world"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Player      PlayerConfig      `yaml:"player"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
	Spawn       SpawnConfig       `yaml:"spawn"`
	Environment EnvironmentConfig `yaml:"environment"`
	Ledger      LedgerConfig      `yaml:"ledger"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings for the debug viewer.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// CameraConfig holds active-window parameters.
type CameraConfig struct {
	BandFraction    float64 `yaml:"band_fraction"`    // active band = fraction of visible extent
	RetentionMargin float64 `yaml:"retention_margin"` // extra distance kept alive but frozen
	FollowLerp      float64 `yaml:"follow_lerp"`      // camera catch-up factor per frame
}

// WorldConfig holds world layout and per-kind live caps.
type WorldConfig struct {
	SlotSpacing    float64 `yaml:"slot_spacing"` // lateral distance between spawn slots
	SpawnAhead     float64 `yaml:"spawn_ahead"`  // how far past the camera slots are generated
	PadCap         int     `yaml:"pad_cap"`
	HazardCap      int     `yaml:"hazard_cap"`
	ObstacleCap    int     `yaml:"obstacle_cap"`
	CollectibleCap int     `yaml:"collectible_cap"`
	CurrentScale   float64 `yaml:"current_scale"` // water-current noise frequency
	CurrentSpeed   float64 `yaml:"current_speed"` // water-current animation speed
}

// PhysicsConfig is the shared constants object for hop, flight, and trajectory
// preview. Both regimes must read from this struct so gameplay and preview
// never diverge.
type PhysicsConfig struct {
	DT            float64 `yaml:"dt"`             // simulation step seconds
	Gravity       float64 `yaml:"gravity"`        // hop height gravity
	FlightGravity float64 `yaml:"flight_gravity"` // continuous-flight gravity
	Friction      float64 `yaml:"friction"`       // per-second velocity retention in flight

	MaxPullDistance float64 `yaml:"max_pull_distance"`
	MinPullDistance float64 `yaml:"min_pull_distance"` // dead zone; below this no launch occurs
	PullScale       float64 `yaml:"pull_scale"`        // drag distance -> displacement
	ImpulseScale    float64 `yaml:"impulse_scale"`     // vertical displacement -> hop v0

	PreviewPoints int `yaml:"preview_points"` // fixed sample count along the preview path

	FlightDuration   float64 `yaml:"flight_duration"`
	FlightSteerAccel float64 `yaml:"flight_steer_accel"`
	FlightMaxSpeed   float64 `yaml:"flight_max_speed"`
}

// PlayerConfig holds frog actor parameters.
type PlayerConfig struct {
	MaxHealth       int     `yaml:"max_health"`
	HalfWidth       float64 `yaml:"half_width"`
	InvulnDuration  float64 `yaml:"invuln_duration"` // seconds of immunity after damage
	SuperThreshold  int     `yaml:"super_threshold"` // flies to fill the super meter
	SuperDuration   float64 `yaml:"super_duration"`
	SuperMultiplier float64 `yaml:"super_multiplier"`
	RideDistance    float64 `yaml:"ride_distance"` // croc ride carry distance
	RideSpeed       float64 `yaml:"ride_speed"`
}

// DifficultyConfig holds progress scaling parameters.
type DifficultyConfig struct {
	ScalingInterval int `yaml:"scaling_interval"` // progress per difficulty level
}

// SpawnConfig holds the data-driven spawn tables. Entry order within each list
// is the declared iteration order and fixes tie-break precedence between
// competing kinds; reordering entries changes spawn reproducibility.
type SpawnConfig struct {
	Hazards      []SpawnEntry        `yaml:"hazards"`
	Obstacles    []SpawnEntry        `yaml:"obstacles"`
	Pads         []SpawnEntry        `yaml:"pads"`
	Collectibles []SpawnEntry        `yaml:"collectibles"`
	Exclusions   map[string][]string `yaml:"exclusions"` // biome -> subtype names never spawned there
	Exclusive    map[string]string   `yaml:"exclusive"`  // subtype name -> only biome it spawns in
}

// SpawnEntry is one probability-table row.
type SpawnEntry struct {
	Subtype     string         `yaml:"subtype"`
	BaseRate    float64        `yaml:"base_rate"`
	Increment   float64        `yaml:"increment"`
	MaxRate     float64        `yaml:"max_rate"`
	UnlockLevel int            `yaml:"unlock_level"`
	LiveCap     int            `yaml:"live_cap"` // 0 = unlimited
	RunCap      int            `yaml:"run_cap"`  // 0 = unlimited
	Variants    []VariantEntry `yaml:"variants"`
}

// VariantEntry is one weighted flavor of a spawn entry.
type VariantEntry struct {
	Name        string  `yaml:"name"`
	Weight      float64 `yaml:"weight"`
	UnlockLevel int     `yaml:"unlock_level"`
}

// EnvironmentConfig holds the biome sequence and weather cycling.
type EnvironmentConfig struct {
	Biomes          []BiomeSpan    `yaml:"biomes"` // traversed in order, then cycled
	WeatherInterval float64        `yaml:"weather_interval"`
	Weathers        []WeatherEntry `yaml:"weathers"`
}

// BiomeSpan is one stretch of the run in a single biome.
type BiomeSpan struct {
	Name   string  `yaml:"name"`
	Length float64 `yaml:"length"` // lateral distance covered by this biome
}

// WeatherEntry is a weighted weather mode.
type WeatherEntry struct {
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
}

// LedgerConfig holds consumable pack parameters.
type LedgerConfig struct {
	PackSize  int `yaml:"pack_size"`   // uses per pack
	PerRunCap int `yaml:"per_run_cap"` // max units loaded per buff per run
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	WindowFrames int `yaml:"window_frames"` // frames aggregated per stats window
}

// DerivedConfig holds values compiled from the loaded config.
type DerivedConfig struct {
	DT32 float32

	// Compiled spawn rules, in declared order.
	HazardRules      []difficulty.Rule
	ObstacleRules    []difficulty.Rule
	PadRules         []difficulty.Rule
	CollectibleRules []difficulty.Rule

	// Biome sequence compiled to enums, with cumulative span ends.
	BiomeSpans  []components.Biome
	BiomeEnds   []float32
	TotalLength float32

	WeatherKinds   []components.Weather
	WeatherWeights []float32
}

// BiomeAt returns the biome covering lateral distance x. Past the configured
// total length the sequence repeats.
func (d *DerivedConfig) BiomeAt(x float32) components.Biome {
	if len(d.BiomeSpans) == 0 {
		return components.BiomePond
	}
	if x < 0 {
		x = 0
	}
	for x >= d.TotalLength {
		x -= d.TotalLength
	}
	for i, end := range d.BiomeEnds {
		if x < end {
			return d.BiomeSpans[i]
		}
	}
	return d.BiomeSpans[len(d.BiomeSpans)-1]
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	if err := cfg.computeDerived(); err != nil {
		return nil, fmt.Errorf("compiling config: %w", err)
	}

	return cfg, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
