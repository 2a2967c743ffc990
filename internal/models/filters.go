package models

// VehicleFilter represents equality filters for listing vehicles.
type VehicleFilter struct {
	Type   string `form:"type"`
	Status string `form:"status"`
	Region string `form:"region"`
}

// TripFilter represents equality filters for listing trips.
type TripFilter struct {
	Status string `form:"status"`
}

// ExpenseFilter represents equality filters for listing expenses.
type ExpenseFilter struct {
	VehicleID int64 `form:"vehicle_id"`
}
