package rng

import (
	"testing"

	"github.com/francisco/gridiron-sim/internal/models"
)

func TestGenerateWeather_Determinism(t *testing.T) {
	a := GenerateWeather(NewFromSeed(1042))
	b := GenerateWeather(NewFromSeed(1042))

	if a != b {
		t.Fatalf("GenerateWeather not deterministic: %+v != %+v", a, b)
	}
}

func TestGenerateWeather_CalmInvariant(t *testing.T) {
	for seed := uint32(0); seed < 500; seed++ {
		w := GenerateWeather(NewFromSeed(seed))
		isCalm := w.WindDirection == models.Calm
		shouldBeCalm := w.WindSpeedMPH <= 5
		if isCalm != shouldBeCalm {
			t.Fatalf("seed %d: wind %d mph direction %s violates calm invariant", seed, w.WindSpeedMPH, w.WindDirection)
		}
	}
}

func TestGenerateWeather_WindSpeedBounds(t *testing.T) {
	for seed := uint32(0); seed < 500; seed++ {
		w := GenerateWeather(NewFromSeed(seed))
		if w.WindSpeedMPH < 0 || w.WindSpeedMPH > 45 {
			t.Fatalf("seed %d: wind speed %d out of [0, 45]", seed, w.WindSpeedMPH)
		}
	}
}

func TestEffects_Identity(t *testing.T) {
	e := Effects(models.Weather{Condition: models.Clear, TemperatureF: 60, WindSpeedMPH: 0, WindDirection: models.Calm})
	if e.PassingAccuracy != 1.0 || e.Visibility != 1.0 || e.FieldCondition != 1.0 {
		t.Fatalf("expected near-identity effects in mild clear weather, got %+v", e)
	}
}

func TestEffects_HeavySnowDegradesVisibilityAndField(t *testing.T) {
	e := Effects(models.Weather{Condition: models.HeavySnow, TemperatureF: 20, WindSpeedMPH: 10, WindDirection: models.Crosswind})
	if e.Visibility >= 1.0 {
		t.Errorf("expected heavy snow to degrade visibility, got %v", e.Visibility)
	}
	if e.FieldCondition >= 1.0 {
		t.Errorf("expected heavy snow to degrade field condition, got %v", e.FieldCondition)
	}
	if e.FumbleChance <= 1.0 {
		t.Errorf("expected heavy snow to raise fumble chance, got %v", e.FumbleChance)
	}
}

func TestEffects_UnknownConditionDefaultsToClear(t *testing.T) {
	known := Effects(models.Weather{Condition: models.Clear, TemperatureF: 60, WindSpeedMPH: 0, WindDirection: models.Calm})
	unknown := Effects(models.Weather{Condition: "Hurricane", TemperatureF: 60, WindSpeedMPH: 0, WindDirection: models.Calm})
	if known != unknown {
		t.Fatalf("unknown condition should default to Clear effects: %+v != %+v", known, unknown)
	}
}
