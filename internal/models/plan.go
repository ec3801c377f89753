package models

import "time"

type PlanStatus string

const (
	PlanStatusDraft    PlanStatus = "draft"
	PlanStatusApproved PlanStatus = "approved"
	PlanStatusSent     PlanStatus = "sent"
)

type MealCategory string

const (
	MealBreakfast MealCategory = "breakfast"
	MealLunch     MealCategory = "lunch"
	MealDinner    MealCategory = "dinner"
	MealSnack     MealCategory = "snack"
)

// Meal is a catalog template. Ingredients and Portions are parallel lists:
// Portions[i] is the serving size for Ingredients[i].
type Meal struct {
	Name         string       `json:"name"`
	Ingredients  []string     `json:"ingredients"`
	Portions     []string     `json:"portions"`
	Calories     int          `json:"calories"`
	ProteinG     int          `json:"protein_g"`
	CarbsG       int          `json:"carbs_g"`
	FatG         int          `json:"fat_g"`
	PrepTime     string       `json:"prep_time"`
	Category     MealCategory `json:"category"`
	Instructions *string      `json:"instructions,omitempty"`
}

// DayPlan totals come from the energy calculator, not from resumming the
// per-meal figures; the meal macros are advisory detail.
type DayPlan struct {
	Day       int       `json:"day"`
	Date      time.Time `json:"date"`
	Breakfast Meal      `json:"breakfast"`
	Lunch     Meal      `json:"lunch"`
	Dinner    Meal      `json:"dinner"`
	Snacks    []Meal    `json:"snacks,omitempty"`
	Calories  int       `json:"calories"`
	ProteinG  int       `json:"protein_g"`
	CarbsG    int       `json:"carbs_g"`
	FatG      int       `json:"fat_g"`
}

// DietPlan owns its profile snapshot and day plans exclusively. Status and
// the audit fields change only through the lifecycle transitions in
// services.PlanService.
type DietPlan struct {
	ID          string        `json:"id"`
	Profile     ClientProfile `json:"profile"`
	Days        []DayPlan     `json:"days"`
	Guidelines  []string      `json:"guidelines"`
	Status      PlanStatus    `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	ReviewNotes *string       `json:"review_notes,omitempty"`
	ApprovedBy  *string       `json:"approved_by,omitempty"`
	ApprovedAt  *time.Time    `json:"approved_at,omitempty"`
	SentAt      *time.Time    `json:"sent_at,omitempty"`
}

// PlanSummary is the listing projection; it never carries meal detail.
type PlanSummary struct {
	ID         string     `json:"id"`
	ClientName string     `json:"client_name"`
	Status     PlanStatus `json:"status"`
	Goal       Goal       `json:"goal"`
	CreatedAt  time.Time  `json:"created_at"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	SentAt     *time.Time `json:"sent_at,omitempty"`
}
