package models

// MealPlan represents a curated set of dishes served together
type MealPlan struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Calories    float64    `json:"calories"`
	DietPlan    string     `json:"diet_plan"`
	Foods       []MealFood `json:"foods"`
}

// RecordID returns the meal plan identifier
func (m MealPlan) RecordID() string { return m.ID }

// MealFood is a read-only dish entry inside a meal plan
type MealFood struct {
	Name      string   `json:"name"`
	Calories  float64  `json:"calories"`
	Protein   float64  `json:"protein"`
	Carbs     float64  `json:"carbs"`
	Fats      float64  `json:"fats"`
	Allergens []string `json:"allergens"`
}
