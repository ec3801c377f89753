package models

type Goal string

const (
	GoalWeightLoss    Goal = "weight_loss"
	GoalMuscleGain    Goal = "muscle_gain"
	GoalRecomposition Goal = "recomposition"
	GoalMaintenance   Goal = "maintenance"
	GoalGeneralHealth Goal = "general_health"
)

// ClientProfile is the normalized snapshot derived from a completed intake
// session. Every numeric field is guaranteed to hold a real value or a
// documented default before it reaches the calculator.
type ClientProfile struct {
	FullName         string  `json:"full_name"`
	Email            string  `json:"email"`
	Age              int     `json:"age"`
	HeightCM         float64 `json:"height_cm"`
	WeightKG         float64 `json:"weight_kg"`
	Goal             Goal    `json:"goal"`
	SecondaryGoal    *string `json:"secondary_goal,omitempty"`
	HealthConditions *string `json:"health_conditions,omitempty"`
	Medications      *string `json:"medications,omitempty"`
	Intolerances     *string `json:"intolerances,omitempty"`
	ExcludesDairy    bool    `json:"excludes_dairy"`
	ExcludesGluten   bool    `json:"excludes_gluten"`
	ExcludesNuts     bool    `json:"excludes_nuts"`
	Vegetarian       bool    `json:"vegetarian"`
	NoRedMeat        bool    `json:"no_red_meat"`
	BreakfastStyle   string  `json:"breakfast_style"`
	Activity         string  `json:"activity"`
	TrainingType     *string `json:"training_type,omitempty"`
	SleepHours       string  `json:"sleep_hours,omitempty"`
	StressLevel      string  `json:"stress_level,omitempty"`
	StressCoping     *string `json:"stress_coping,omitempty"`
}
