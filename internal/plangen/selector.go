package plangen

import (
	"strings"

	"github.com/nutrivio/PlanAppBack/internal/models"
)

// Banned ingredient keyword lists per constraint flag, matched
// case-insensitively against each ingredient string.
var (
	dairyKeywords   = []string{"milk", "cheese", "yogurt", "butter", "cream", "whey"}
	glutenKeywords  = []string{"wheat", "bread", "pasta", "couscous", "flour", "tortilla", "oat", "granola", "noodle"}
	nutKeywords     = []string{"almond", "walnut", "peanut", "cashew", "hazelnut"}
	meatKeywords    = []string{"chicken", "beef", "pork", "turkey", "ham", "fish", "salmon", "cod", "tuna"}
	redMeatKeywords = []string{"beef", "pork", "lamb", "ham", "bacon"}
)

// Selection holds the per-category eligible meal lists for one profile.
// Fallbacks names the categories whose filtered list came up empty and fell
// back to the catalog's first unfiltered entry; callers surface that.
type Selection struct {
	Breakfasts []models.Meal
	Lunches    []models.Meal
	Dinners    []models.Meal
	Snacks     []models.Meal
	Fallbacks  []models.MealCategory
}

// SelectMeals filters the catalog by the profile's constraint flags. An
// emptied category never fails: it falls back to the first unfiltered entry
// so every day keeps a complete meal set, and the fallback is reported.
func SelectMeals(catalog Catalog, profile models.ClientProfile) Selection {
	banned := bannedKeywords(profile)

	breakfasts := catalog.SavoryBreakfasts
	if profile.BreakfastStyle == "sweet" {
		breakfasts = catalog.SweetBreakfasts
	}

	var selection Selection
	selection.Breakfasts, selection.Fallbacks = eligible(breakfasts, banned, models.MealBreakfast, selection.Fallbacks)
	selection.Lunches, selection.Fallbacks = eligible(catalog.Lunches, banned, models.MealLunch, selection.Fallbacks)
	selection.Dinners, selection.Fallbacks = eligible(catalog.Dinners, banned, models.MealDinner, selection.Fallbacks)
	selection.Snacks, selection.Fallbacks = eligible(catalog.Snacks, banned, models.MealSnack, selection.Fallbacks)
	return selection
}

// MealForDay picks day n's meal from an eligible list: eligible[n % len].
// Deterministic, bounded rotation, never out of range.
func MealForDay(eligible []models.Meal, day int) models.Meal {
	return eligible[day%len(eligible)]
}

func bannedKeywords(profile models.ClientProfile) []string {
	var banned []string
	if profile.ExcludesDairy {
		banned = append(banned, dairyKeywords...)
	}
	if profile.ExcludesGluten {
		banned = append(banned, glutenKeywords...)
	}
	if profile.ExcludesNuts {
		banned = append(banned, nutKeywords...)
	}
	if profile.Vegetarian {
		banned = append(banned, meatKeywords...)
	} else if profile.NoRedMeat {
		banned = append(banned, redMeatKeywords...)
	}
	return banned
}

func eligible(meals []models.Meal, banned []string, category models.MealCategory, fallbacks []models.MealCategory) ([]models.Meal, []models.MealCategory) {
	filtered := make([]models.Meal, 0, len(meals))
	for _, meal := range meals {
		if !containsBanned(meal, banned) {
			filtered = append(filtered, meal)
		}
	}
	if len(filtered) == 0 {
		return meals[:1], append(fallbacks, category)
	}
	return filtered, fallbacks
}

func containsBanned(meal models.Meal, banned []string) bool {
	for _, ingredient := range meal.Ingredients {
		lowered := strings.ToLower(ingredient)
		for _, keyword := range banned {
			if strings.Contains(lowered, keyword) {
				return true
			}
		}
	}
	return false
}
