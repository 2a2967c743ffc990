package models

// VehicleType classifies a fleet vehicle. Driver license categories share the
// same value set, so a driver can only be matched to a vehicle of equal type.
type VehicleType string

const (
	VehicleTypeTruck VehicleType = "Truck"
	VehicleTypeVan   VehicleType = "Van"
	VehicleTypeBike  VehicleType = "Bike"
)

// VehicleStatus is the lifecycle state of a vehicle.
type VehicleStatus string

const (
	VehicleAvailable VehicleStatus = "Available"
	VehicleOnTrip    VehicleStatus = "On Trip"
	VehicleInShop    VehicleStatus = "In Shop"
	VehicleRetired   VehicleStatus = "Retired"
)

// ValidVehicleType reports whether s is a known vehicle type.
func ValidVehicleType(s string) bool {
	switch VehicleType(s) {
	case VehicleTypeTruck, VehicleTypeVan, VehicleTypeBike:
		return true
	}
	return false
}

// ValidVehicleStatus reports whether s is a known vehicle status.
func ValidVehicleStatus(s string) bool {
	switch VehicleStatus(s) {
	case VehicleAvailable, VehicleOnTrip, VehicleInShop, VehicleRetired:
		return true
	}
	return false
}

// Vehicle represents a registered fleet vehicle.
type Vehicle struct {
	ID              int64         `json:"id" db:"id"`
	Name            string        `json:"name" db:"name"`
	Model           string        `json:"model" db:"model"`
	LicensePlate    string        `json:"license_plate" db:"license_plate"` // unique, stored uppercase
	Type            VehicleType   `json:"type" db:"type"`
	MaxCapacityKg   float64       `json:"max_capacity_kg" db:"max_capacity_kg"`
	Odometer        int64         `json:"odometer" db:"odometer"`
	Status          VehicleStatus `json:"status" db:"status"`
	Region          string        `json:"region" db:"region"`
	AcquisitionCost float64       `json:"acquisition_cost" db:"acquisition_cost"`
	CreatedAt       string        `json:"created_at" db:"created_at"`
}

// VehicleInput is the request body for creating or updating a vehicle.
// Numeric fields are pointers so that an explicit zero can be told apart
// from an absent field during partial updates.
type VehicleInput struct {
	Name            string   `json:"name"`
	Model           string   `json:"model"`
	LicensePlate    string   `json:"license_plate"`
	Type            string   `json:"type"`
	MaxCapacityKg   *float64 `json:"max_capacity_kg"`
	Odometer        *int64   `json:"odometer"`
	Status          string   `json:"status"`
	Region          string   `json:"region"`
	AcquisitionCost *float64 `json:"acquisition_cost"`
}
