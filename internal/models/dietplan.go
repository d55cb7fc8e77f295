package models

// DietPlan represents a dietary regimen offered by the program
type DietPlan struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	HealthGoals  []string `json:"health_goals"`
	Restrictions []string `json:"restrictions"`
}

// RecordID returns the diet plan identifier
func (p DietPlan) RecordID() string { return p.ID }

// HealthGoalOptions lists the goals a diet plan may target.
var HealthGoalOptions = []string{
	"Weight Loss",
	"Heart Health",
	"Metabolic Health",
	"Muscle Gain",
	"Sustainable Living",
}
