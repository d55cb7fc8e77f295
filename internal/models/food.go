package models

import "strconv"

// FoodItem represents a single dish in the food catalog
type FoodItem struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Calories     float64  `json:"calories"`
	Protein      float64  `json:"protein"`
	Carbs        float64  `json:"carbs"`
	Fats         float64  `json:"fats"`
	Allergens    []string `json:"allergens"`
	DietPlan     string   `json:"diet_plan"`
	Customizable bool     `json:"customizable"`
}

// RecordID returns the food item identifier as a string
func (f FoodItem) RecordID() string { return strconv.Itoa(f.ID) }

// AllergenOptions lists the allergens a dish may carry.
var AllergenOptions = []string{"Nuts", "Dairy", "Gluten", "Soy", "Eggs", "Shellfish"}

// DietPlanOptions lists the diet plans a dish may belong to.
var DietPlanOptions = []string{"Keto", "Vegan", "Vegetarian", "Paleo", "Mediterranean"}
