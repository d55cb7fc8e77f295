package store

import (
	"fmt"

	"merrymeal/internal/models"
)

// Stores bundles the per-screen collections of the console. Each screen
// owns its collection; nothing is shared between them.
type Stores struct {
	Orders    *Collection[models.Order]
	Donors    *Collection[models.Donor]
	Inventory *Collection[models.InventoryItem]
	Employees *Collection[models.Employee]
	FoodItems *Collection[models.FoodItem]
	DietPlans *Collection[models.DietPlan]
	MealPlans *Collection[models.MealPlan]
}

// NewOrderCollection creates the order screen collection.
func NewOrderCollection(seed []models.Order) *Collection[models.Order] {
	return NewCollection(Schema[models.Order]{
		SearchFields: func(o models.Order) []string {
			return []string{o.ID, o.CustomerName, o.Status}
		},
		FilterValues: func(o models.Order) []string {
			return []string{o.Status}
		},
		Validate: func(o models.Order) map[string]string {
			fields := make(map[string]string)
			if o.CustomerName == "" {
				fields["customer_name"] = "Customer name is required"
			}
			if o.MealPlan == "" {
				fields["meal_plan"] = "Meal plan is required"
			}
			if o.Status != "" && !models.ValidOrderStatus(o.Status) {
				fields["status"] = "Unknown order status"
			}
			return fields
		},
		AssignID: func(o models.Order, seq int) models.Order {
			o.ID = fmt.Sprintf("ORD-%03d", seq)
			return o
		},
	}, seed)
}

// NewDonorCollection creates the donor screen collection.
func NewDonorCollection(seed []models.Donor) *Collection[models.Donor] {
	return NewCollection(Schema[models.Donor]{
		SearchFields: func(d models.Donor) []string {
			return []string{d.ID, d.Name}
		},
		FilterValues: func(d models.Donor) []string {
			return []string{d.ContributionType}
		},
		Validate: func(d models.Donor) map[string]string {
			fields := make(map[string]string)
			if d.Name == "" {
				fields["name"] = "Name is required"
			}
			if d.ContributionAmount <= 0 {
				fields["contribution_amount"] = "Contribution amount must be a positive number"
			}
			return fields
		},
		AssignID: func(d models.Donor, seq int) models.Donor {
			d.ID = fmt.Sprintf("DNR-%03d", seq)
			return d
		},
	}, seed)
}

// NewInventoryCollection creates the inventory screen collection.
func NewInventoryCollection(seed []models.InventoryItem) *Collection[models.InventoryItem] {
	return NewCollection(Schema[models.InventoryItem]{
		SearchFields: func(i models.InventoryItem) []string {
			return []string{i.ID, i.Name}
		},
		FilterValues: func(i models.InventoryItem) []string {
			return []string{i.Category}
		},
		Validate: func(i models.InventoryItem) map[string]string {
			fields := make(map[string]string)
			if i.Name == "" {
				fields["name"] = "Item name is required"
			}
			if i.Quantity <= 0 {
				fields["quantity"] = "Quantity must be a positive number"
			}
			return fields
		},
		AssignID: func(i models.InventoryItem, seq int) models.InventoryItem {
			i.ID = fmt.Sprintf("INV-%03d", seq)
			return i
		},
	}, seed)
}

// NewEmployeeCollection creates the employee screen collection.
func NewEmployeeCollection(seed []models.Employee) *Collection[models.Employee] {
	return NewCollection(Schema[models.Employee]{
		SearchFields: func(e models.Employee) []string {
			return []string{e.ID, e.Name, e.Role}
		},
		FilterValues: func(e models.Employee) []string {
			return []string{e.Status, e.Department}
		},
		Validate: func(e models.Employee) map[string]string {
			fields := make(map[string]string)
			if e.Name == "" {
				fields["name"] = "Name is required"
			}
			return fields
		},
		AssignID: func(e models.Employee, seq int) models.Employee {
			e.ID = fmt.Sprintf("EMP-%03d", seq)
			return e
		},
	}, seed)
}

// NewFoodItemCollection creates the food catalog collection.
func NewFoodItemCollection(seed []models.FoodItem) *Collection[models.FoodItem] {
	return NewCollection(Schema[models.FoodItem]{
		SearchFields: func(f models.FoodItem) []string {
			return []string{f.Name}
		},
		FilterValues: func(f models.FoodItem) []string {
			return []string{f.DietPlan}
		},
		Validate: func(f models.FoodItem) map[string]string {
			fields := make(map[string]string)
			if f.Name == "" {
				fields["name"] = "Name is required"
			}
			if f.Calories <= 0 {
				fields["calories"] = "Calories must be a positive number"
			}
			if f.DietPlan == "" {
				fields["diet_plan"] = "Diet plan is required"
			}
			return fields
		},
		AssignID: func(f models.FoodItem, seq int) models.FoodItem {
			f.ID = seq
			return f
		},
	}, seed)
}

// NewDietPlanCollection creates the diet plan collection. Filters match
// either the health-goal set or the restriction set.
func NewDietPlanCollection(seed []models.DietPlan) *Collection[models.DietPlan] {
	return NewCollection(Schema[models.DietPlan]{
		SearchFields: func(p models.DietPlan) []string {
			return []string{p.ID, p.Name}
		},
		FilterValues: func(p models.DietPlan) []string {
			return append(append([]string(nil), p.HealthGoals...), p.Restrictions...)
		},
		Validate: func(p models.DietPlan) map[string]string {
			fields := make(map[string]string)
			if p.Name == "" {
				fields["name"] = "Name is required"
			}
			return fields
		},
		AssignID: func(p models.DietPlan, seq int) models.DietPlan {
			p.ID = fmt.Sprintf("DP-%03d", seq)
			return p
		},
	}, seed)
}

// NewMealPlanCollection creates the meal plan collection.
func NewMealPlanCollection(seed []models.MealPlan) *Collection[models.MealPlan] {
	return NewCollection(Schema[models.MealPlan]{
		SearchFields: func(m models.MealPlan) []string {
			return []string{m.ID, m.Name}
		},
		FilterValues: func(m models.MealPlan) []string {
			return []string{m.DietPlan}
		},
		Validate: func(m models.MealPlan) map[string]string {
			fields := make(map[string]string)
			if m.Name == "" {
				fields["name"] = "Name is required"
			}
			return fields
		},
		AssignID: func(m models.MealPlan, seq int) models.MealPlan {
			m.ID = fmt.Sprintf("MP-%03d", seq)
			return m
		},
	}, seed)
}
