package models

// Employee represents a staff member of the meal program
type Employee struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Status     string `json:"status"`
	HireDate   string `json:"hire_date"`
}

// RecordID returns the employee identifier
func (e Employee) RecordID() string { return e.ID }

// EmployeeStatus represents the employment state of a staff member
type EmployeeStatus string

const (
	EmployeeActive  EmployeeStatus = "Active"
	EmployeeOnLeave EmployeeStatus = "On Leave"
)
