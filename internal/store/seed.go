package store

import "merrymeal/internal/models"

// Seed builds the full set of screen collections populated with the
// program's demo data.
func Seed() *Stores {
	return &Stores{
		Orders:    NewOrderCollection(SeedOrders()),
		Donors:    NewDonorCollection(SeedDonors()),
		Inventory: NewInventoryCollection(SeedInventory()),
		Employees: NewEmployeeCollection(SeedEmployees()),
		FoodItems: NewFoodItemCollection(SeedFoodItems()),
		DietPlans: NewDietPlanCollection(SeedDietPlans()),
		MealPlans: NewMealPlanCollection(SeedMealPlans()),
	}
}

// Empty builds the screen collections with no records, for tests.
func Empty() *Stores {
	return &Stores{
		Orders:    NewOrderCollection(nil),
		Donors:    NewDonorCollection(nil),
		Inventory: NewInventoryCollection(nil),
		Employees: NewEmployeeCollection(nil),
		FoodItems: NewFoodItemCollection(nil),
		DietPlans: NewDietPlanCollection(nil),
		MealPlans: NewMealPlanCollection(nil),
	}
}

// SeedOrders returns the demo order book.
func SeedOrders() []models.Order {
	return []models.Order{
		{ID: "MP-001", CustomerName: "John Doe", MealPlan: "Vegetarian", Status: "Cooking", Date: "2024-03-15"},
		{ID: "MP-002", CustomerName: "Jane Smith", MealPlan: "Keto", Status: "Dispatched", Date: "2024-03-16"},
	}
}

// SeedDonors returns the demo donor registry.
func SeedDonors() []models.Donor {
	return []models.Donor{
		{ID: "DNR-001", Name: "John Smith", ContributionAmount: 5000, ContributionType: "Money", DateOfContribution: "2024-02-15"},
		{ID: "DNR-002", Name: "Green Food Bank", ContributionAmount: 500, ContributionType: "Food", DateOfContribution: "2024-03-10"},
		{ID: "DNR-003", Name: "Emily Johnson", ContributionAmount: 2500, ContributionType: "Money", DateOfContribution: "2024-01-20"},
	}
}

// SeedInventory returns the demo pantry stock.
func SeedInventory() []models.InventoryItem {
	return []models.InventoryItem{
		{ID: "INV-001", Name: "Chicken Breast", Quantity: 50, Unit: "kg", Category: "Frozen", LastUpdated: "2024-03-15"},
		{ID: "INV-002", Name: "Rice", Quantity: 20, Unit: "kg", Category: "Dry Goods", LastUpdated: "2024-03-10"},
		{ID: "INV-003", Name: "Tomato Sauce", Quantity: 5, Unit: "liters", Category: "Refrigerated", LastUpdated: "2024-03-12"},
	}
}

// SeedEmployees returns the demo staff registry.
func SeedEmployees() []models.Employee {
	return []models.Employee{
		{ID: "EMP-001", Name: "Sarah Johnson", Role: "Meal Delivery Coordinator", Department: "Operations", Status: "Active", HireDate: "2023-06-15"},
		{ID: "EMP-002", Name: "Michael Chen", Role: "Kitchen Manager", Department: "Food Preparation", Status: "Active", HireDate: "2022-11-20"},
		{ID: "EMP-003", Name: "Elena Rodriguez", Role: "Volunteer Coordinator", Department: "Community Engagement", Status: "On Leave", HireDate: "2024-01-10"},
	}
}

// SeedFoodItems returns the demo food catalog.
func SeedFoodItems() []models.FoodItem {
	return []models.FoodItem{
		{ID: 1, Name: "Grilled Chicken Salad", Calories: 320, Protein: 25, Carbs: 15, Fats: 12, Allergens: []string{"Nuts", "Dairy"}, DietPlan: "Keto", Customizable: true},
		{ID: 2, Name: "Vegetable Quinoa Bowl", Calories: 280, Protein: 12, Carbs: 45, Fats: 8, Allergens: []string{"Gluten"}, DietPlan: "Vegan", Customizable: false},
	}
}

// SeedDietPlans returns the demo diet plan catalog.
func SeedDietPlans() []models.DietPlan {
	return []models.DietPlan{
		{
			ID:           "DP-001",
			Name:         "Keto Diet",
			Description:  "Low-carb, high-fat diet",
			HealthGoals:  []string{"Weight Loss", "Metabolic Health"},
			Restrictions: []string{"No Grains", "Low Carbohydrates"},
		},
		{
			ID:           "DP-002",
			Name:         "Vegan Diet",
			Description:  "Plant-based nutrition plan",
			HealthGoals:  []string{"Heart Health", "Sustainable Living"},
			Restrictions: []string{"No Animal Products"},
		},
	}
}

// SeedMealPlans returns the demo meal plan catalog.
func SeedMealPlans() []models.MealPlan {
	return []models.MealPlan{
		{
			ID:          "MP-001",
			Name:        "Healthy Vegetarian",
			Description: "Balanced vegetarian meal plan",
			Calories:    1800,
			DietPlan:    "Vegetarian",
			Foods: []models.MealFood{
				{Name: "Quinoa Salad", Calories: 350, Protein: 12, Carbs: 45, Fats: 15, Allergens: []string{"Nuts"}},
				{Name: "Tofu Stir Fry", Calories: 400, Protein: 20, Carbs: 30, Fats: 22, Allergens: []string{"Soy"}},
			},
		},
		{
			ID:          "MP-002",
			Name:        "Keto Power Meals",
			Description: "High-fat, low-carb meal plan",
			Calories:    2000,
			DietPlan:    "Keto",
			Foods: []models.MealFood{
				{Name: "Salmon with Avocado", Calories: 500, Protein: 25, Carbs: 10, Fats: 40, Allergens: []string{"Fish"}},
			},
		},
	}
}
