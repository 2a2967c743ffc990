package models

// TripStatus is the dispatch state of a trip.
type TripStatus string

const (
	TripDraft      TripStatus = "Draft"
	TripDispatched TripStatus = "Dispatched"
	TripCompleted  TripStatus = "Completed"
	TripCancelled  TripStatus = "Cancelled"
)

// tripTransitions defines the allowed status flow as a directed graph.
// Completed and Cancelled are terminal.
var tripTransitions = map[TripStatus][]TripStatus{
	TripDraft:      {TripDispatched, TripCompleted, TripCancelled},
	TripDispatched: {TripCompleted, TripCancelled},
	TripCompleted:  {},
	TripCancelled:  {},
}

// CanTransition reports whether from -> to is a legal trip status transition.
func CanTransition(from, to TripStatus) bool {
	for _, s := range tripTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ValidTripStatus reports whether s is a known trip status.
func ValidTripStatus(s string) bool {
	switch TripStatus(s) {
	case TripDraft, TripDispatched, TripCompleted, TripCancelled:
		return true
	}
	return false
}

// Trip represents a cargo trip. The vehicle/driver display fields are
// denormalized from joins and not stored on the trips table.
type Trip struct {
	ID               int64      `json:"id" db:"id"`
	VehicleID        int64      `json:"vehicle_id" db:"vehicle_id"`
	DriverID         int64      `json:"driver_id" db:"driver_id"`
	Origin           string     `json:"origin" db:"origin"`
	Destination      string     `json:"destination" db:"destination"`
	CargoWeightKg    float64    `json:"cargo_weight_kg" db:"cargo_weight_kg"`
	CargoDescription string     `json:"cargo_description" db:"cargo_description"`
	Status           TripStatus `json:"status" db:"status"`
	StartOdometer    int64      `json:"start_odometer" db:"start_odometer"`
	EndOdometer      *int64     `json:"end_odometer" db:"end_odometer"`
	Revenue          float64    `json:"revenue" db:"revenue"`
	CreatedAt        string     `json:"created_at" db:"created_at"`
	DispatchedAt     *string    `json:"dispatched_at" db:"dispatched_at"`
	CompletedAt      *string    `json:"completed_at" db:"completed_at"`

	VehicleName   string  `json:"vehicle_name,omitempty" db:"vehicle_name"`
	LicensePlate  string  `json:"license_plate,omitempty" db:"license_plate"`
	MaxCapacityKg float64 `json:"max_capacity_kg,omitempty" db:"max_capacity_kg"`
	DriverName    string  `json:"driver_name,omitempty" db:"driver_name"`
}

// TripInput is the request body for creating a trip.
type TripInput struct {
	VehicleID        int64    `json:"vehicle_id"`
	DriverID         int64    `json:"driver_id"`
	Origin           string   `json:"origin"`
	Destination      string   `json:"destination"`
	CargoWeightKg    *float64 `json:"cargo_weight_kg"`
	CargoDescription string   `json:"cargo_description"`
	Revenue          *float64 `json:"revenue"`
}

// TripUpdateInput is the request body for PUT /trips/:id. A recognized
// status drives the dispatch state machine; without one only revenue is
// updatable.
type TripUpdateInput struct {
	Status      string   `json:"status"`
	EndOdometer *int64   `json:"end_odometer"`
	Revenue     *float64 `json:"revenue"`
}
