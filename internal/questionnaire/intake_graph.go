package questionnaire

// Question ids, referenced by the profile deriver and the locale tables.
const (
	QSectionAboutYou  = "section_about_you"
	QFullName         = "full_name"
	QEmail            = "email"
	QAge              = "age"
	QHeightCM         = "height_cm"
	QWeightKG         = "weight_kg"
	QSectionGoals     = "section_goals"
	QGoal             = "goal"
	QHasSecondaryGoal = "has_secondary_goal"
	QSecondaryGoal    = "secondary_goal"
	QSectionHealth    = "section_health"
	QHasConditions    = "has_health_conditions"
	QHealthConditions = "health_conditions"
	QMedications      = "medications"
	QMedicationsInfo  = "medications_detail"
	QHasIntolerances  = "has_intolerances"
	QIntolerances     = "intolerances"
	QSectionDiet      = "section_diet"
	QDietStyle        = "diet_style"
	QBreakfastStyle   = "breakfast_style"
	QMealsPerDay      = "meals_per_day"
	QDislikedFoods    = "disliked_foods"
	QSectionLifestyle = "section_lifestyle"
	QActivity         = "activity"
	QDoesTraining     = "does_training"
	QTrainingType     = "training_type"
	QSleepHours       = "sleep_hours"
	QStressLevel      = "stress_level"
	QStressCoping     = "stress_coping"
	QMotivation       = "motivation"
	QNotes            = "notes"
	QTerminal         = "done"
)

// Canonical option values. Answers always store these; locale tables only
// change the display labels.
var (
	GoalOptions = []string{
		"Weight loss", "Muscle gain", "Recomposition", "Maintenance", "General health",
	}
	DietStyleOptions = []string{
		"No restrictions", "Vegetarian", "No red meat",
	}
	BreakfastStyleOptions = []string{"Sweet", "Savory"}
	MealsPerDayOptions    = []string{"3", "4", "5"}
	ActivityOptions       = []string{
		"Low (little or no exercise)",
		"Light (1-2 sessions per week)",
		"Moderate (3-4 sessions per week)",
		"High (5-6 sessions per week)",
		"Very intense (daily training)",
	}
	TrainingTypeOptions = []string{
		"Strength", "Endurance", "CrossFit", "Team sports", "Mixed",
	}
	SleepHoursOptions  = []string{"Less than 6", "6-7", "7-8", "More than 8"}
	StressLevelOptions = []string{"Low", "Moderate", "High"}
)

// StressHigh is the stress_level value that reveals the coping question and
// triggers the stress guidelines.
const StressHigh = "High"

var intakeGraph = mustIntakeGraph()

// IntakeGraph returns the shared nutrition intake question graph. The graph
// is immutable; callers never mutate it.
func IntakeGraph() *Graph {
	return intakeGraph
}

func mustIntakeGraph() *Graph {
	g, err := NewGraph(intakeQuestions())
	if err != nil {
		panic(err)
	}
	return g
}

func intakeQuestions() []Question {
	return []Question{
		{ID: QSectionAboutYou, Kind: KindSection},
		{ID: QFullName, Kind: KindShortText, Required: true},
		{ID: QEmail, Kind: KindEmail, Required: true},
		{ID: QAge, Kind: KindNumber, Required: true},
		{ID: QHeightCM, Kind: KindNumber, Required: true},
		{ID: QWeightKG, Kind: KindNumber, Required: true},

		{ID: QSectionGoals, Kind: KindSection},
		{ID: QGoal, Kind: KindSingleChoice, Options: GoalOptions, Required: true},
		{ID: QHasSecondaryGoal, Kind: KindBinary},
		{ID: QSecondaryGoal, Kind: KindLongText, Condition: &Condition{QuestionID: QHasSecondaryGoal, Value: AnswerYes}},

		{ID: QSectionHealth, Kind: KindSection},
		{ID: QHasConditions, Kind: KindBinary, Required: true},
		{ID: QHealthConditions, Kind: KindLongText, Required: true, Condition: &Condition{QuestionID: QHasConditions, Value: AnswerYes}},
		{ID: QMedications, Kind: KindBinary, Required: true},
		{ID: QMedicationsInfo, Kind: KindLongText, Condition: &Condition{QuestionID: QMedications, Value: AnswerYes}},
		{ID: QHasIntolerances, Kind: KindBinary, Required: true},
		{ID: QIntolerances, Kind: KindLongText, Required: true, Condition: &Condition{QuestionID: QHasIntolerances, Value: AnswerYes}},

		{ID: QSectionDiet, Kind: KindSection},
		{ID: QDietStyle, Kind: KindSingleChoice, Options: DietStyleOptions, Required: true},
		{ID: QBreakfastStyle, Kind: KindSingleChoice, Options: BreakfastStyleOptions, Required: true},
		{ID: QMealsPerDay, Kind: KindSingleChoice, Options: MealsPerDayOptions},
		{ID: QDislikedFoods, Kind: KindLongText},

		{ID: QSectionLifestyle, Kind: KindSection},
		{ID: QActivity, Kind: KindSingleChoice, Options: ActivityOptions, Required: true},
		{ID: QDoesTraining, Kind: KindBinary},
		{ID: QTrainingType, Kind: KindSingleChoice, Options: TrainingTypeOptions, Condition: &Condition{QuestionID: QDoesTraining, Value: AnswerYes}},
		{ID: QSleepHours, Kind: KindSingleChoice, Options: SleepHoursOptions},
		{ID: QStressLevel, Kind: KindSingleChoice, Options: StressLevelOptions, Required: true},
		{ID: QStressCoping, Kind: KindLongText, Condition: &Condition{QuestionID: QStressLevel, Value: StressHigh}},
		{ID: QMotivation, Kind: KindLongText},
		{ID: QNotes, Kind: KindLongText},

		{ID: QTerminal, Kind: KindTerminal},
	}
}
