package plangen

import (
	"math"
	"strings"

	"github.com/nutrivio/PlanAppBack/internal/models"
)

// EnergyTargets is the calculator output applied uniformly to every day of
// the plan.
type EnergyTargets struct {
	Basal      float64 `json:"basal"`
	Multiplier float64 `json:"multiplier"`
	Calories   int     `json:"calories"`
	ProteinG   int     `json:"protein_g"`
	CarbsG     int     `json:"carbs_g"`
	FatG       int     `json:"fat_g"`
}

// Ordered activity multiplier table; the first keyword found in the lowered
// activity descriptor wins. The very-intense tier deliberately avoids the
// word "high" so the earlier tier cannot shadow it.
var activityMultipliers = []struct {
	keyword string
	factor  float64
}{
	{"low", 1.2},
	{"light", 1.375},
	{"moderate", 1.55},
	{"high", 1.725},
	{"very", 1.9},
}

const defaultActivityMultiplier = 1.2

var goalFactors = map[models.Goal]float64{
	models.GoalWeightLoss:    0.8,
	models.GoalMuscleGain:    1.15,
	models.GoalRecomposition: 0.95,
	models.GoalMaintenance:   0.95,
}

type macroRatio struct {
	protein float64
	carbs   float64
	fat     float64
}

// Per-goal macro splits; each row sums to 1.0.
var macroRatios = map[models.Goal]macroRatio{
	models.GoalWeightLoss:    {protein: 0.40, carbs: 0.30, fat: 0.30},
	models.GoalMuscleGain:    {protein: 0.30, carbs: 0.45, fat: 0.25},
	models.GoalRecomposition: {protein: 0.35, carbs: 0.35, fat: 0.30},
	models.GoalMaintenance:   {protein: 0.30, carbs: 0.40, fat: 0.30},
	models.GoalGeneralHealth: {protein: 0.25, carbs: 0.45, fat: 0.30},
}

const (
	caloriesPerGramProtein = 4
	caloriesPerGramCarbs   = 4
	caloriesPerGramFat     = 9
)

// ComputeTargets derives basal energy, the adjusted daily calorie target and
// macro grams from a profile. Pure: identical profiles always produce
// identical targets. The formula is sex-agnostic. Macro grams are rounded
// independently, so their calorie sum may drift a few kcal from the target;
// that approximation is accepted.
func ComputeTargets(profile models.ClientProfile) EnergyTargets {
	basal := 10*profile.WeightKG + 6.25*profile.HeightCM - 5*float64(profile.Age)
	multiplier := activityMultiplier(profile.Activity)

	factor, ok := goalFactors[profile.Goal]
	if !ok {
		factor = 1.0
	}
	calories := int(math.Round(basal * multiplier * factor))

	ratio, ok := macroRatios[profile.Goal]
	if !ok {
		ratio = macroRatios[models.GoalGeneralHealth]
	}

	return EnergyTargets{
		Basal:      basal,
		Multiplier: multiplier,
		Calories:   calories,
		ProteinG:   int(math.Round(float64(calories) * ratio.protein / caloriesPerGramProtein)),
		CarbsG:     int(math.Round(float64(calories) * ratio.carbs / caloriesPerGramCarbs)),
		FatG:       int(math.Round(float64(calories) * ratio.fat / caloriesPerGramFat)),
	}
}

func activityMultiplier(descriptor string) float64 {
	lowered := strings.ToLower(descriptor)
	for _, entry := range activityMultipliers {
		if strings.Contains(lowered, entry.keyword) {
			return entry.factor
		}
	}
	return defaultActivityMultiplier
}
