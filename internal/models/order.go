package models

// Order represents a meal order placed for a client
type Order struct {
	ID           string `json:"id"`
	CustomerName string `json:"customer_name"`
	MealPlan     string `json:"meal_plan"`
	Status       string `json:"status"`
	Date         string `json:"date"`
}

// RecordID returns the order identifier
func (o Order) RecordID() string { return o.ID }

// OrderStatus represents the possible states of an order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusCooking    OrderStatus = "Cooking"
	OrderStatusDispatched OrderStatus = "Dispatched"
	OrderStatusDelivered  OrderStatus = "Delivered"
)

// OrderStatuses lists the valid order states in progression order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusCooking,
	OrderStatusDispatched,
	OrderStatusDelivered,
}

// ValidOrderStatus reports whether s is a recognized order state.
func ValidOrderStatus(s string) bool {
	for _, status := range OrderStatuses {
		if string(status) == s {
			return true
		}
	}
	return false
}

// InProgress reports whether the order has not yet left the kitchen.
func (o Order) InProgress() bool {
	return o.Status != string(OrderStatusDispatched) && o.Status != string(OrderStatusDelivered)
}
