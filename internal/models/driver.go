package models

// DriverStatus is the duty state of a driver.
type DriverStatus string

const (
	DriverOnDuty    DriverStatus = "On Duty"
	DriverOffDuty   DriverStatus = "Off Duty"
	DriverOnTrip    DriverStatus = "On Trip"
	DriverSuspended DriverStatus = "Suspended"
)

// ValidDriverStatus reports whether s is a known driver status.
func ValidDriverStatus(s string) bool {
	switch DriverStatus(s) {
	case DriverOnDuty, DriverOffDuty, DriverOnTrip, DriverSuspended:
		return true
	}
	return false
}

// Driver represents a rostered driver.
type Driver struct {
	ID              int64        `json:"id" db:"id"`
	Name            string       `json:"name" db:"name"`
	Email           string       `json:"email" db:"email"`
	Phone           string       `json:"phone" db:"phone"`
	LicenseNumber   string       `json:"license_number" db:"license_number"` // unique
	LicenseCategory VehicleType  `json:"license_category" db:"license_category"`
	LicenseExpiry   string       `json:"license_expiry" db:"license_expiry"` // YYYY-MM-DD
	Status          DriverStatus `json:"status" db:"status"`
	SafetyScore     float64      `json:"safety_score" db:"safety_score"` // 0-100
	CreatedAt       string       `json:"created_at" db:"created_at"`
}

// DriverInput is the request body for creating or updating a driver.
type DriverInput struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	LicenseNumber   string   `json:"license_number"`
	LicenseCategory string   `json:"license_category"`
	LicenseExpiry   string   `json:"license_expiry"`
	Status          string   `json:"status"`
	SafetyScore     *float64 `json:"safety_score"`
}
