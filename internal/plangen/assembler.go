package plangen

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nutrivio/PlanAppBack/internal/models"
	"github.com/nutrivio/PlanAppBack/internal/questionnaire"
)

// PlanDays is the fixed schedule length.
const PlanDays = 30

var baselineGuidelines = []string{
	"Drink at least 2 liters of water throughout the day.",
	"Keep regular meal times; avoid skipping meals.",
	"Fill half of every lunch and dinner plate with vegetables.",
	"Limit processed foods, sugary drinks and alcohol.",
}

// BuildPlan assembles a draft DietPlan: the calculator targets applied to all
// 30 days, meals rotated cyclically from the eligible lists, and the ordered
// guideline list. Day 1 is the generation date. Output is fully determined by
// the profile and the timestamp.
func BuildPlan(profile models.ClientProfile, now time.Time) *models.DietPlan {
	targets := ComputeTargets(profile)
	selection := SelectMeals(DefaultCatalog(), profile)

	days := make([]models.DayPlan, 0, PlanDays)
	for day := 1; day <= PlanDays; day++ {
		days = append(days, models.DayPlan{
			Day:       day,
			Date:      now.AddDate(0, 0, day-1),
			Breakfast: MealForDay(selection.Breakfasts, day),
			Lunch:     MealForDay(selection.Lunches, day),
			Dinner:    MealForDay(selection.Dinners, day),
			Snacks:    []models.Meal{MealForDay(selection.Snacks, day)},
			Calories:  targets.Calories,
			ProteinG:  targets.ProteinG,
			CarbsG:    targets.CarbsG,
			FatG:      targets.FatG,
		})
	}

	return &models.DietPlan{
		ID:         uuid.NewString(),
		Profile:    profile,
		Days:       days,
		Guidelines: buildGuidelines(profile, selection),
		Status:     models.PlanStatusDraft,
		CreatedAt:  now,
	}
}

// buildGuidelines is pure and order-stable: the fixed baseline first, then
// conditional additions in a fixed check order, so identical profiles always
// produce the identical list.
func buildGuidelines(profile models.ClientProfile, selection Selection) []string {
	guidelines := make([]string, 0, len(baselineGuidelines)+6)
	guidelines = append(guidelines, baselineGuidelines...)

	if profile.Intolerances != nil || profile.ExcludesDairy || profile.ExcludesGluten || profile.ExcludesNuts {
		guidelines = append(guidelines,
			"Double-check every ingredient list against your declared intolerances before cooking.")
	}
	if len(selection.Fallbacks) > 0 {
		for _, category := range selection.Fallbacks {
			guidelines = append(guidelines, fmt.Sprintf(
				"Warning: no %s option passed your dietary filters; a standard %s was scheduled instead. Review it with your nutritionist.",
				category, category))
		}
	}
	if profile.HealthConditions != nil {
		guidelines = append(guidelines,
			"This plan does not replace medical advice; keep your treating physician informed about dietary changes.")
	}
	if profile.StressLevel == questionnaire.StressHigh {
		guidelines = append(guidelines,
			"Plan a short daily wind-down routine; elevated stress works against both recovery and appetite regulation.")
	}
	switch profile.Goal {
	case models.GoalWeightLoss:
		guidelines = append(guidelines,
			"Prioritize protein at every meal and eat slowly; satiety is your main tool in a calorie deficit.")
	case models.GoalMuscleGain:
		guidelines = append(guidelines,
			"Eat a protein-rich meal within two hours after training to support muscle growth.")
	}
	if profile.TrainingType != nil {
		guidelines = append(guidelines, fmt.Sprintf(
			"On %s days, schedule the largest carbohydrate portion around your session.",
			*profile.TrainingType))
	}

	return guidelines
}
