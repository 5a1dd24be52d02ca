package components

// Biome is a named environmental mode gating which entity kinds may spawn.
type Biome uint8

const (
	BiomePond Biome = iota
	BiomeDesert
	BiomeGlacier
	NumBiomes
)

func (b Biome) String() string {
	switch b {
	case BiomePond:
		return "pond"
	case BiomeDesert:
		return "desert"
	case BiomeGlacier:
		return "glacier"
	}
	return "unknown"
}

// ParseBiome resolves a biome name from config.
func ParseBiome(name string) (Biome, bool) {
	for b := Biome(0); b < NumBiomes; b++ {
		if b.String() == name {
			return b, true
		}
	}
	return 0, false
}

// Weather modifies pad safety on top of the biome.
type Weather uint8

const (
	WeatherClear Weather = iota
	WeatherRain
	WeatherFog
	NumWeathers
)

func (w Weather) String() string {
	switch w {
	case WeatherClear:
		return "clear"
	case WeatherRain:
		return "rain"
	case WeatherFog:
		return "fog"
	}
	return "unknown"
}
