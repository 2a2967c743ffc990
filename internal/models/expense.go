package models

// ExpenseType classifies a vehicle expense.
type ExpenseType string

const (
	ExpenseFuel  ExpenseType = "Fuel"
	ExpenseToll  ExpenseType = "Toll"
	ExpenseOther ExpenseType = "Other"
)

// ValidExpenseType reports whether s is a known expense type.
func ValidExpenseType(s string) bool {
	switch ExpenseType(s) {
	case ExpenseFuel, ExpenseToll, ExpenseOther:
		return true
	}
	return false
}

// Expense represents a cost entry against a vehicle, optionally linked to a
// trip. Liters is only meaningful for Fuel entries.
type Expense struct {
	ID          int64       `json:"id" db:"id"`
	VehicleID   int64       `json:"vehicle_id" db:"vehicle_id"`
	TripID      *int64      `json:"trip_id" db:"trip_id"`
	Type        ExpenseType `json:"type" db:"type"`
	Liters      float64     `json:"liters" db:"liters"`
	Cost        float64     `json:"cost" db:"cost"`
	ExpenseDate string      `json:"expense_date" db:"expense_date"` // YYYY-MM-DD
	Notes       string      `json:"notes" db:"notes"`
	CreatedAt   string      `json:"created_at" db:"created_at"`

	VehicleName  string `json:"vehicle_name,omitempty" db:"vehicle_name"`
	LicensePlate string `json:"license_plate,omitempty" db:"license_plate"`
}

// ExpenseInput is the request body for creating an expense.
type ExpenseInput struct {
	VehicleID   int64    `json:"vehicle_id"`
	TripID      *int64   `json:"trip_id"`
	Type        string   `json:"type"`
	Liters      *float64 `json:"liters"`
	Cost        float64  `json:"cost"`
	ExpenseDate string   `json:"expense_date"`
	Notes       string   `json:"notes"`
}
