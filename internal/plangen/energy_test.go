package plangen

import (
	"testing"

	"github.com/nutrivio/PlanAppBack/internal/models"
)

func TestComputeTargetsWorkedExample(t *testing.T) {
	profile := models.ClientProfile{
		Age:      32,
		HeightCM: 165,
		WeightKG: 68,
		Activity: "Moderate (3-4 sessions per week)",
		Goal:     models.GoalWeightLoss,
	}

	targets := ComputeTargets(profile)

	if targets.Basal != 1551.25 {
		t.Fatalf("expected basal 1551.25, got %f", targets.Basal)
	}
	if targets.Multiplier != 1.55 {
		t.Fatalf("expected multiplier 1.55, got %f", targets.Multiplier)
	}
	if targets.Calories != 1924 {
		t.Fatalf("expected 1924 kcal, got %d", targets.Calories)
	}
	if targets.ProteinG != 192 {
		t.Fatalf("expected 192 g protein, got %d", targets.ProteinG)
	}
	if targets.CarbsG != 144 {
		t.Fatalf("expected 144 g carbs, got %d", targets.CarbsG)
	}
	if targets.FatG != 64 {
		t.Fatalf("expected 64 g fat, got %d", targets.FatG)
	}
}

func TestComputeTargetsIsPure(t *testing.T) {
	profile := models.ClientProfile{
		Age:      28,
		HeightCM: 180,
		WeightKG: 82,
		Activity: "High (5-6 sessions per week)",
		Goal:     models.GoalMuscleGain,
	}
	first := ComputeTargets(profile)
	second := ComputeTargets(profile)
	if first != second {
		t.Fatalf("expected identical targets for identical profiles: %+v vs %+v", first, second)
	}
}

func TestActivityMultiplierTiers(t *testing.T) {
	cases := []struct {
		descriptor string
		want       float64
	}{
		{"Low (little or no exercise)", 1.2},
		{"Light (1-2 sessions per week)", 1.375},
		{"Moderate (3-4 sessions per week)", 1.55},
		{"High (5-6 sessions per week)", 1.725},
		{"Very intense (daily training)", 1.9},
		{"", 1.2},
		{"no idea", 1.2},
	}
	for _, tc := range cases {
		if got := activityMultiplier(tc.descriptor); got != tc.want {
			t.Fatalf("activityMultiplier(%q) = %f, want %f", tc.descriptor, got, tc.want)
		}
	}
}

func TestComputeTargetsUnknownGoalUsesNeutralFactor(t *testing.T) {
	profile := models.ClientProfile{
		Age:      30,
		HeightCM: 170,
		WeightKG: 70,
		Activity: "Low (little or no exercise)",
		Goal:     models.GoalGeneralHealth,
	}
	targets := ComputeTargets(profile)

	// basal 1612.5, multiplier 1.2, factor 1.0
	if targets.Calories != 1935 {
		t.Fatalf("expected 1935 kcal for general health, got %d", targets.Calories)
	}
}

func TestMacroRatiosSumToOne(t *testing.T) {
	for goal, ratio := range macroRatios {
		sum := ratio.protein + ratio.carbs + ratio.fat
		if sum < 0.999 || sum > 1.001 {
			t.Fatalf("macro ratio for %q sums to %f", goal, sum)
		}
	}
}
