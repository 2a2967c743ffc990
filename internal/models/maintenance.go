package models

// MaintenanceStatus is the progress state of a maintenance log.
type MaintenanceStatus string

const (
	MaintenanceScheduled  MaintenanceStatus = "Scheduled"
	MaintenanceInProgress MaintenanceStatus = "In Progress"
	MaintenanceCompleted  MaintenanceStatus = "Completed"
)

// ValidMaintenanceStatus reports whether s is a known maintenance status.
func ValidMaintenanceStatus(s string) bool {
	switch MaintenanceStatus(s) {
	case MaintenanceScheduled, MaintenanceInProgress, MaintenanceCompleted:
		return true
	}
	return false
}

// ServiceTypes is the accepted set of maintenance service types.
var ServiceTypes = []string{
	"Oil Change",
	"Tire Rotation",
	"Brake Inspection",
	"Engine Overhaul",
	"Battery Replacement",
	"Transmission Service",
	"AC Repair",
	"General Inspection",
	"Other",
}

// ValidServiceType reports whether s is a known service type.
func ValidServiceType(s string) bool {
	for _, t := range ServiceTypes {
		if t == s {
			return true
		}
	}
	return false
}

// Maintenance represents a service log for a vehicle. Creating one pulls the
// vehicle into the shop; completing it releases the vehicle back to Available.
type Maintenance struct {
	ID          int64             `json:"id" db:"id"`
	VehicleID   int64             `json:"vehicle_id" db:"vehicle_id"`
	ServiceType string            `json:"service_type" db:"service_type"`
	Description string            `json:"description" db:"description"`
	Cost        float64           `json:"cost" db:"cost"`
	ServiceDate string            `json:"service_date" db:"service_date"` // YYYY-MM-DD
	Status      MaintenanceStatus `json:"status" db:"status"`
	CreatedAt   string            `json:"created_at" db:"created_at"`

	VehicleName  string `json:"vehicle_name,omitempty" db:"vehicle_name"`
	LicensePlate string `json:"license_plate,omitempty" db:"license_plate"`
}

// MaintenanceInput is the request body for creating a maintenance log.
type MaintenanceInput struct {
	VehicleID   int64    `json:"vehicle_id"`
	ServiceType string   `json:"service_type"`
	Description string   `json:"description"`
	Cost        *float64 `json:"cost"`
	ServiceDate string   `json:"service_date"`
}

// MaintenanceUpdateInput is the request body for PUT /maintenance/:id.
type MaintenanceUpdateInput struct {
	Status      string   `json:"status"`
	Cost        *float64 `json:"cost"`
	Description *string  `json:"description"`
}
