package notification

import (
	"fmt"
	"strings"

	"github.com/nutrivio/PlanAppBack/internal/models"
)

const planPreviewDays = 3

// BuildPlanEmail constructs the delivery message for a plan: profile summary,
// first-day macro figures, a short preview of the first few days' meals and
// the access reference. Fully determined by the plan contents.
func BuildPlanEmail(plan *models.DietPlan) (subject, body string) {
	subject = fmt.Sprintf("Your %d-day nutrition plan is ready", len(plan.Days))

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", plan.Profile.FullName)
	b.WriteString("Your personalized nutrition plan has been reviewed and is ready for you.\n\n")

	if len(plan.Days) > 0 {
		first := plan.Days[0]
		fmt.Fprintf(&b, "Daily target: %d kcal (%dg protein / %dg carbs / %dg fat)\n\n",
			first.Calories, first.ProteinG, first.CarbsG, first.FatG)

		b.WriteString("A taste of your first days:\n")
		for i, day := range plan.Days {
			if i >= planPreviewDays {
				break
			}
			fmt.Fprintf(&b, "  Day %d (%s)\n", day.Day, day.Date.Format("Jan 2"))
			fmt.Fprintf(&b, "    Breakfast: %s\n", day.Breakfast.Name)
			fmt.Fprintf(&b, "    Lunch:     %s\n", day.Lunch.Name)
			fmt.Fprintf(&b, "    Dinner:    %s\n", day.Dinner.Name)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Open your full plan with reference %s in the client portal.\n\n", plan.ID)
	b.WriteString("Stay consistent. We're with you every step.\n")

	return subject, b.String()
}
