package rng

import "github.com/francisco/gridiron-sim/internal/models"

type conditionOdds struct {
	condition models.WeatherCondition
	prob      float64
}

// conditionTable is the fixed probability table from spec §4.1. Order
// matters: GenerateWeather walks it cumulatively.
var conditionTable = []conditionOdds{
	{models.Clear, 0.35},
	{models.Cloudy, 0.25},
	{models.LightRain, 0.15},
	{models.HeavyRain, 0.08},
	{models.LightSnow, 0.10},
	{models.HeavySnow, 0.04},
	{models.Fog, 0.03},
}

// GenerateWeather samples a full Weather value. s should be a Source
// dedicated to weather (spec §9: seeded seed+1000, separate from the
// Source driving play outcomes) so swapping weather generation never
// perturbs play-by-play.
func GenerateWeather(s *Source) models.Weather {
	condition := sampleCondition(s)
	temp := sampleTemperature(s, condition)
	wind := sampleWindSpeed(s)
	direction := sampleWindDirection(s, wind)
	precip := samplePrecipitation(s, condition)

	return models.Weather{
		Condition:              condition,
		TemperatureF:           temp,
		WindSpeedMPH:           wind,
		WindDirection:          direction,
		PrecipitationIntensity: precip,
	}
}

func sampleCondition(s *Source) models.WeatherCondition {
	roll := s.Float64()
	cumulative := 0.0
	for _, c := range conditionTable {
		cumulative += c.prob
		if roll < cumulative {
			return c.condition
		}
	}
	return conditionTable[len(conditionTable)-1].condition
}

func sampleTemperature(s *Source, condition models.WeatherCondition) int {
	switch condition {
	case models.LightSnow, models.HeavySnow:
		return s.IntRange(15, 35)
	case models.LightRain, models.HeavyRain:
		return s.IntRange(35, 75)
	default:
		return s.IntRange(25, 85)
	}
}

func sampleWindSpeed(s *Source) int {
	v := s.Normal(8, 6)
	return int(Clamp(v, 0, 45))
}

func sampleWindDirection(s *Source, windSpeed int) models.WindDirection {
	if windSpeed <= 5 {
		return models.Calm
	}
	options := []models.WindDirection{models.Crosswind, models.Headwind, models.Tailwind}
	return Pick(s, options)
}

func samplePrecipitation(s *Source, condition models.WeatherCondition) float64 {
	switch condition {
	case models.LightRain, models.LightSnow:
		return Clamp(0.1+s.Float64()*0.3, 0, 1)
	case models.HeavyRain, models.HeavySnow:
		return Clamp(0.5+s.Float64()*0.4, 0, 1)
	default:
		return 0
	}
}

// Effects computes the eight multiplicative gameplay modifiers for a given
// Weather sample, starting from identity and applying temperature, wind,
// and precipitation adjustments in that order (spec §4.1). Unrecognized
// conditions are treated as Clear.
func Effects(w models.Weather) models.WeatherEffects {
	e := models.IdentityWeatherEffects()

	applyTemperature(&e, w.TemperatureF)
	applyWind(&e, w.WindSpeedMPH, w.WindDirection)
	applyPrecipitation(&e, w.Condition)

	e.PassingAccuracy = Clamp(e.PassingAccuracy, 0.3, 1.3)
	e.PassingDistance = Clamp(e.PassingDistance, 0.3, 1.3)
	e.KickingAccuracy = Clamp(e.KickingAccuracy, 0.3, 1.3)
	e.KickingDistance = Clamp(e.KickingDistance, 0.3, 1.3)
	e.RushingYards = Clamp(e.RushingYards, 0.3, 1.3)
	e.FumbleChance = Clamp(e.FumbleChance, 0.5, 2.0)
	e.Visibility = Clamp(e.Visibility, 0.3, 1.3)
	e.FieldCondition = Clamp(e.FieldCondition, 0.3, 1.3)

	return e
}

func applyTemperature(e *models.WeatherEffects, tempF int) {
	switch {
	case tempF < 32:
		e.PassingAccuracy *= 0.90
		e.PassingDistance *= 0.92
		e.KickingAccuracy *= 0.88
		e.KickingDistance *= 0.90
		e.FumbleChance *= 1.25
	case tempF < 45:
		e.PassingAccuracy *= 0.96
		e.KickingAccuracy *= 0.95
		e.FumbleChance *= 1.10
	case tempF >= 80:
		e.RushingYards *= 0.97
	}
}

func applyWind(e *models.WeatherEffects, windSpeed int, direction models.WindDirection) {
	factor := float64(windSpeed) / 30.0
	if factor > 1 {
		factor = 1
	}

	switch direction {
	case models.Crosswind:
		e.KickingAccuracy *= 1 - 0.25*factor
		e.PassingAccuracy *= 1 - 0.15*factor
	case models.Headwind:
		e.KickingDistance *= 1 - 0.20*factor
		e.PassingDistance *= 1 - 0.15*factor
	case models.Tailwind:
		e.KickingDistance *= 1 + 0.15*factor
		e.PassingDistance *= 1 + 0.10*factor
	}
}

func applyPrecipitation(e *models.WeatherEffects, condition models.WeatherCondition) {
	switch condition {
	case models.LightRain:
		e.PassingAccuracy *= 0.95
		e.KickingAccuracy *= 0.95
		e.FumbleChance *= 1.15
	case models.HeavyRain:
		e.PassingAccuracy *= 0.85
		e.KickingAccuracy *= 0.85
		e.FumbleChance *= 1.35
		e.FieldCondition *= 0.90
	case models.LightSnow:
		e.PassingAccuracy *= 0.90
		e.KickingAccuracy *= 0.90
		e.FumbleChance *= 1.20
		e.Visibility *= 0.90
		e.FieldCondition *= 0.90
	case models.HeavySnow:
		e.PassingAccuracy *= 0.75
		e.KickingAccuracy *= 0.75
		e.FumbleChance *= 1.45
		e.Visibility *= 0.70
		e.FieldCondition *= 0.75
	case models.Fog:
		e.Visibility *= 0.60
		e.PassingAccuracy *= 0.90
		e.KickingAccuracy *= 0.92
	}
}
