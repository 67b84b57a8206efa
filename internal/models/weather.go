package models

import "fmt"

// WeatherCondition is a closed set; unrecognized values default to Clear
// per spec.
type WeatherCondition string

const (
	Clear     WeatherCondition = "Clear"
	Cloudy    WeatherCondition = "Cloudy"
	LightRain WeatherCondition = "LightRain"
	HeavyRain WeatherCondition = "HeavyRain"
	LightSnow WeatherCondition = "LightSnow"
	HeavySnow WeatherCondition = "HeavySnow"
	Fog       WeatherCondition = "Fog"
)

// WindDirection is Calm iff wind speed is <= 5 mph.
type WindDirection string

const (
	Calm      WindDirection = "Calm"
	Crosswind WindDirection = "Crosswind"
	Headwind  WindDirection = "Headwind"
	Tailwind  WindDirection = "Tailwind"
)

// Weather describes the conditions a single game is played in.
type Weather struct {
	Condition              WeatherCondition `json:"condition"`
	TemperatureF           int              `json:"temperature"`
	WindSpeedMPH           int              `json:"wind_speed"`
	WindDirection          WindDirection    `json:"wind_direction"`
	PrecipitationIntensity float64          `json:"precipitation_intensity"`
}

// String renders a short human-readable summary, e.g. "Clear, 68F, 5mph Calm".
func (w Weather) String() string {
	return fmt.Sprintf("%s, %dF, %dmph %s", w.Condition, w.TemperatureF, w.WindSpeedMPH, w.WindDirection)
}

// WeatherEffects holds the eight multiplicative gameplay modifiers derived
// from a Weather sample. Identity (no effect) is 1.0 for every field.
type WeatherEffects struct {
	PassingAccuracy float64 `json:"passing_accuracy"`
	PassingDistance float64 `json:"passing_distance"`
	KickingAccuracy float64 `json:"kicking_accuracy"`
	KickingDistance float64 `json:"kicking_distance"`
	RushingYards    float64 `json:"rushing_yards"`
	FumbleChance    float64 `json:"fumble_chance"`
	Visibility      float64 `json:"visibility"`
	FieldCondition  float64 `json:"field_condition"`
}

// IdentityWeatherEffects returns the neutral (no-op) modifier set.
func IdentityWeatherEffects() WeatherEffects {
	return WeatherEffects{
		PassingAccuracy: 1.0,
		PassingDistance: 1.0,
		KickingAccuracy: 1.0,
		KickingDistance: 1.0,
		RushingYards:    1.0,
		FumbleChance:    1.0,
		Visibility:      1.0,
		FieldCondition:  1.0,
	}
}
