package plangen

import (
	"log"
	"strings"

	"github.com/nutrivio/PlanAppBack/internal/models"
	"github.com/nutrivio/PlanAppBack/internal/questionnaire"
)

// Documented defaults for missing or non-numeric intake answers. Substitution
// is logged so the degradation stays observable.
const (
	DefaultAge      = 30
	DefaultHeightCM = 170.0
	DefaultWeightKG = 70.0
)

// Vocabulary matched case-insensitively against the free-text intolerance
// answer to derive exclusion flags.
var (
	dairyVocabulary  = []string{"dairy", "milk", "lactose", "cheese", "yogurt"}
	glutenVocabulary = []string{"gluten", "wheat", "celiac"}
	nutVocabulary    = []string{"nut", "peanut", "almond", "walnut", "cashew"}
)

// DeriveProfile maps the raw answers into a ClientProfile. The mapping is
// total: missing optional fields become empty values, missing numeric fields
// become the documented defaults, and it never fails.
func DeriveProfile(answers questionnaire.Answers) models.ClientProfile {
	profile := models.ClientProfile{
		FullName: answers.Text(questionnaire.QFullName),
		Email:    strings.ToLower(answers.Text(questionnaire.QEmail)),
		Age:      numericAnswer(answers, questionnaire.QAge, DefaultAge),
		HeightCM: floatAnswer(answers, questionnaire.QHeightCM, DefaultHeightCM),
		WeightKG: floatAnswer(answers, questionnaire.QWeightKG, DefaultWeightKG),
		Goal:     deriveGoal(answers.Text(questionnaire.QGoal)),
	}

	profile.SecondaryGoal = optionalAnswer(answers, questionnaire.QSecondaryGoal)
	if answers.Text(questionnaire.QHasConditions) == questionnaire.AnswerYes {
		profile.HealthConditions = optionalAnswer(answers, questionnaire.QHealthConditions)
	}
	if answers.Text(questionnaire.QMedications) == questionnaire.AnswerYes {
		profile.Medications = optionalAnswer(answers, questionnaire.QMedicationsInfo)
	}

	if answers.Text(questionnaire.QHasIntolerances) == questionnaire.AnswerYes {
		profile.Intolerances = optionalAnswer(answers, questionnaire.QIntolerances)
	}
	if profile.Intolerances != nil {
		lowered := strings.ToLower(*profile.Intolerances)
		profile.ExcludesDairy = containsAny(lowered, dairyVocabulary)
		profile.ExcludesGluten = containsAny(lowered, glutenVocabulary)
		profile.ExcludesNuts = containsAny(lowered, nutVocabulary)
	}

	switch answers.Text(questionnaire.QDietStyle) {
	case "Vegetarian":
		profile.Vegetarian = true
	case "No red meat":
		profile.NoRedMeat = true
	}

	profile.BreakfastStyle = strings.ToLower(answers.Text(questionnaire.QBreakfastStyle))
	if profile.BreakfastStyle == "" {
		profile.BreakfastStyle = "savory"
	}

	profile.Activity = answers.Text(questionnaire.QActivity)
	if answers.Text(questionnaire.QDoesTraining) == questionnaire.AnswerYes {
		profile.TrainingType = optionalAnswer(answers, questionnaire.QTrainingType)
	}
	profile.SleepHours = answers.Text(questionnaire.QSleepHours)
	profile.StressLevel = answers.Text(questionnaire.QStressLevel)
	if profile.StressLevel == questionnaire.StressHigh {
		profile.StressCoping = optionalAnswer(answers, questionnaire.QStressCoping)
	}

	return profile
}

func deriveGoal(answer string) models.Goal {
	switch answer {
	case "Weight loss":
		return models.GoalWeightLoss
	case "Muscle gain":
		return models.GoalMuscleGain
	case "Recomposition":
		return models.GoalRecomposition
	case "Maintenance":
		return models.GoalMaintenance
	default:
		return models.GoalGeneralHealth
	}
}

func numericAnswer(answers questionnaire.Answers, id string, fallback int) int {
	value, ok := answers.Number(id)
	if !ok || value <= 0 {
		log.Printf("profile: answer %q is missing or not numeric, using default %d", id, fallback)
		return fallback
	}
	return int(value)
}

func floatAnswer(answers questionnaire.Answers, id string, fallback float64) float64 {
	value, ok := answers.Number(id)
	if !ok || value <= 0 {
		log.Printf("profile: answer %q is missing or not numeric, using default %.0f", id, fallback)
		return fallback
	}
	return value
}

func optionalAnswer(answers questionnaire.Answers, id string) *string {
	text := answers.Text(id)
	if text == "" {
		return nil
	}
	return &text
}

func containsAny(text string, vocabulary []string) bool {
	for _, word := range vocabulary {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}
