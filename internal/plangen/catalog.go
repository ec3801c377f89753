package plangen

import "github.com/nutrivio/PlanAppBack/internal/models"

// Fixed meal template catalog. Breakfasts come in two sub-styles chosen by
// the profile's breakfast preference; lunch, dinner and snack are shared.
// Invariant on every entry: len(Ingredients) == len(Portions).

func strPtr(s string) *string { return &s }

var sweetBreakfasts = []models.Meal{
	{
		Name:        "Oatmeal with berries and honey",
		Ingredients: []string{"rolled oats", "milk", "blueberries", "honey", "chia seeds"},
		Portions:    []string{"60 g", "250 ml", "80 g", "1 tsp", "1 tbsp"},
		Calories:    420, ProteinG: 15, CarbsG: 68, FatG: 9,
		PrepTime: "10 min", Category: models.MealBreakfast,
		Instructions: strPtr("Simmer the oats in milk for 5 minutes, top with berries, honey and chia."),
	},
	{
		Name:        "Banana pancakes",
		Ingredients: []string{"banana", "eggs", "oat flour", "maple syrup"},
		Portions:    []string{"1 medium", "2", "40 g", "1 tbsp"},
		Calories:    450, ProteinG: 18, CarbsG: 62, FatG: 13,
		PrepTime: "15 min", Category: models.MealBreakfast,
		Instructions: strPtr("Mash the banana, whisk with eggs and flour, cook small pancakes on medium heat."),
	},
	{
		Name:        "Greek yogurt with granola",
		Ingredients: []string{"greek yogurt", "granola", "strawberries", "honey"},
		Portions:    []string{"200 g", "40 g", "100 g", "1 tsp"},
		Calories:    390, ProteinG: 22, CarbsG: 52, FatG: 10,
		PrepTime: "5 min", Category: models.MealBreakfast,
	},
	{
		Name:        "Rice porridge with apple and cinnamon",
		Ingredients: []string{"rice", "almond milk", "apple", "cinnamon", "raisins"},
		Portions:    []string{"60 g", "250 ml", "1 medium", "1 tsp", "20 g"},
		Calories:    410, ProteinG: 8, CarbsG: 82, FatG: 6,
		PrepTime: "20 min", Category: models.MealBreakfast,
	},
}

var savoryBreakfasts = []models.Meal{
	{
		Name:        "Scrambled eggs on whole-grain toast",
		Ingredients: []string{"eggs", "whole-grain bread", "olive oil", "tomato", "chives"},
		Portions:    []string{"3", "2 slices", "1 tsp", "1 medium", "to taste"},
		Calories:    430, ProteinG: 26, CarbsG: 34, FatG: 20,
		PrepTime: "10 min", Category: models.MealBreakfast,
		Instructions: strPtr("Scramble the eggs over low heat and serve on toasted bread with sliced tomato."),
	},
	{
		Name:        "Avocado and egg rice cakes",
		Ingredients: []string{"rice cakes", "avocado", "boiled eggs", "lemon juice", "salt"},
		Portions:    []string{"3", "1/2", "2", "1 tsp", "pinch"},
		Calories:    400, ProteinG: 18, CarbsG: 38, FatG: 21,
		PrepTime: "10 min", Category: models.MealBreakfast,
	},
	{
		Name:        "Cottage cheese omelet",
		Ingredients: []string{"eggs", "cottage cheese", "spinach", "olive oil"},
		Portions:    []string{"2", "100 g", "50 g", "1 tsp"},
		Calories:    360, ProteinG: 30, CarbsG: 8, FatG: 23,
		PrepTime: "12 min", Category: models.MealBreakfast,
	},
	{
		Name:        "Hummus and vegetable wrap",
		Ingredients: []string{"whole-wheat tortilla", "hummus", "cucumber", "bell pepper", "arugula"},
		Portions:    []string{"1", "60 g", "1/2", "1/2", "handful"},
		Calories:    380, ProteinG: 12, CarbsG: 54, FatG: 13,
		PrepTime: "8 min", Category: models.MealBreakfast,
	},
}

var lunches = []models.Meal{
	{
		Name:        "Grilled chicken with rice and vegetables",
		Ingredients: []string{"chicken breast", "basmati rice", "zucchini", "carrot", "olive oil"},
		Portions:    []string{"150 g", "80 g", "100 g", "1 medium", "1 tbsp"},
		Calories:    620, ProteinG: 45, CarbsG: 70, FatG: 16,
		PrepTime: "30 min", Category: models.MealLunch,
		Instructions: strPtr("Grill the chicken, cook the rice and roast the vegetables with olive oil."),
	},
	{
		Name:        "Baked salmon with potatoes and broccoli",
		Ingredients: []string{"salmon fillet", "potatoes", "broccoli", "lemon", "olive oil"},
		Portions:    []string{"150 g", "200 g", "150 g", "1/2", "1 tbsp"},
		Calories:    640, ProteinG: 38, CarbsG: 52, FatG: 28,
		PrepTime: "35 min", Category: models.MealLunch,
	},
	{
		Name:        "Lentil and vegetable stew",
		Ingredients: []string{"red lentils", "tomato", "carrot", "onion", "cumin", "olive oil"},
		Portions:    []string{"100 g", "2 medium", "1 medium", "1/2", "1 tsp", "1 tbsp"},
		Calories:    540, ProteinG: 28, CarbsG: 78, FatG: 12,
		PrepTime: "40 min", Category: models.MealLunch,
	},
	{
		Name:        "Beef and quinoa bowl",
		Ingredients: []string{"lean beef strips", "quinoa", "bell pepper", "red onion", "soy sauce"},
		Portions:    []string{"130 g", "80 g", "1", "1/2", "1 tbsp"},
		Calories:    610, ProteinG: 42, CarbsG: 64, FatG: 18,
		PrepTime: "25 min", Category: models.MealLunch,
	},
	{
		Name:        "Chickpea and feta salad",
		Ingredients: []string{"chickpeas", "feta cheese", "cucumber", "cherry tomatoes", "olive oil", "oregano"},
		Portions:    []string{"150 g", "60 g", "1/2", "100 g", "1 tbsp", "pinch"},
		Calories:    520, ProteinG: 22, CarbsG: 48, FatG: 26,
		PrepTime: "10 min", Category: models.MealLunch,
	},
}

var dinners = []models.Meal{
	{
		Name:        "Turkey meatballs with couscous",
		Ingredients: []string{"ground turkey", "couscous", "tomato sauce", "parsley", "olive oil"},
		Portions:    []string{"140 g", "70 g", "100 ml", "to taste", "1 tsp"},
		Calories:    560, ProteinG: 40, CarbsG: 58, FatG: 17,
		PrepTime: "30 min", Category: models.MealDinner,
	},
	{
		Name:        "White fish with sweet potato mash",
		Ingredients: []string{"cod fillet", "sweet potato", "green beans", "butter", "lemon"},
		Portions:    []string{"160 g", "200 g", "100 g", "1 tsp", "1/4"},
		Calories:    520, ProteinG: 36, CarbsG: 56, FatG: 14,
		PrepTime: "30 min", Category: models.MealDinner,
	},
	{
		Name:        "Vegetable stir-fry with tofu",
		Ingredients: []string{"firm tofu", "rice noodles", "broccoli", "carrot", "soy sauce", "sesame oil"},
		Portions:    []string{"150 g", "70 g", "100 g", "1 medium", "1 tbsp", "1 tsp"},
		Calories:    510, ProteinG: 24, CarbsG: 62, FatG: 18,
		PrepTime: "20 min", Category: models.MealDinner,
	},
	{
		Name:        "Chicken and vegetable soup with bread",
		Ingredients: []string{"chicken thigh", "celery", "carrot", "potato", "whole-grain bread"},
		Portions:    []string{"120 g", "1 stalk", "1 medium", "1 medium", "1 slice"},
		Calories:    480, ProteinG: 32, CarbsG: 50, FatG: 15,
		PrepTime: "45 min", Category: models.MealDinner,
	},
	{
		Name:        "Stuffed peppers with rice and beans",
		Ingredients: []string{"bell peppers", "rice", "black beans", "corn", "cheddar cheese"},
		Portions:    []string{"2", "60 g", "100 g", "50 g", "40 g"},
		Calories:    540, ProteinG: 21, CarbsG: 76, FatG: 16,
		PrepTime: "50 min", Category: models.MealDinner,
	},
}

var snacks = []models.Meal{
	{
		Name:        "Apple with peanut butter",
		Ingredients: []string{"apple", "peanut butter"},
		Portions:    []string{"1 medium", "1 tbsp"},
		Calories:    190, ProteinG: 5, CarbsG: 26, FatG: 8,
		PrepTime: "2 min", Category: models.MealSnack,
	},
	{
		Name:        "Greek yogurt with walnuts",
		Ingredients: []string{"greek yogurt", "walnuts", "honey"},
		Portions:    []string{"150 g", "20 g", "1 tsp"},
		Calories:    260, ProteinG: 15, CarbsG: 18, FatG: 14,
		PrepTime: "2 min", Category: models.MealSnack,
	},
	{
		Name:        "Carrot sticks with hummus",
		Ingredients: []string{"carrots", "hummus"},
		Portions:    []string{"2 medium", "50 g"},
		Calories:    160, ProteinG: 5, CarbsG: 20, FatG: 7,
		PrepTime: "5 min", Category: models.MealSnack,
	},
	{
		Name:        "Rice cakes with banana",
		Ingredients: []string{"rice cakes", "banana", "cinnamon"},
		Portions:    []string{"2", "1 medium", "pinch"},
		Calories:    180, ProteinG: 3, CarbsG: 40, FatG: 1,
		PrepTime: "2 min", Category: models.MealSnack,
	},
}

// Catalog groups the full template library by slot.
type Catalog struct {
	SweetBreakfasts  []models.Meal
	SavoryBreakfasts []models.Meal
	Lunches          []models.Meal
	Dinners          []models.Meal
	Snacks           []models.Meal
}

// DefaultCatalog returns the fixed meal template library. Callers treat the
// returned slices as read-only.
func DefaultCatalog() Catalog {
	return Catalog{
		SweetBreakfasts:  sweetBreakfasts,
		SavoryBreakfasts: savoryBreakfasts,
		Lunches:          lunches,
		Dinners:          dinners,
		Snacks:           snacks,
	}
}
