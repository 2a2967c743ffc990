// Package validation holds the pure input checks run before any entity is
// persisted. Every validator short-circuits on the first failing rule and
// returns a human-readable message; none of them touch the store.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/fleetflow/fleetflow-go/internal/models"
)

var (
	licensePlateRe = regexp.MustCompile(`^[A-Za-z0-9-]{3,15}$`)
	phoneRe        = regexp.MustCompile(`^[\d\s\-+()]{5,20}$`)
	emailRe        = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// NonEmpty reports whether s contains any non-whitespace characters.
func NonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// ValidDate reports whether s parses as an ISO calendar date.
func ValidDate(s string) bool {
	if s == "" {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// Vehicle validates a vehicle create/update payload.
func Vehicle(in models.VehicleInput) error {
	if !NonEmpty(in.Name) {
		return errors.New("Vehicle name is required")
	}
	if len(in.Name) > 50 {
		return errors.New("Vehicle name must be under 50 characters")
	}
	if !NonEmpty(in.Model) {
		return errors.New("Vehicle model is required")
	}
	if len(in.Model) > 50 {
		return errors.New("Model must be under 50 characters")
	}
	if !NonEmpty(in.LicensePlate) {
		return errors.New("License plate is required")
	}
	if !licensePlateRe.MatchString(strings.TrimSpace(in.LicensePlate)) {
		return errors.New("License plate must be 3-15 alphanumeric characters or dashes")
	}
	if !models.ValidVehicleType(in.Type) {
		return errors.New("Type must be Truck, Van, or Bike")
	}
	if in.MaxCapacityKg != nil && *in.MaxCapacityKg <= 0 {
		return errors.New("Max capacity must be a positive number")
	}
	if in.Odometer != nil && *in.Odometer < 0 {
		return errors.New("Odometer cannot be negative")
	}
	if in.AcquisitionCost != nil && *in.AcquisitionCost < 0 {
		return errors.New("Acquisition cost cannot be negative")
	}
	return nil
}

// Driver validates a driver create/update payload.
func Driver(in models.DriverInput) error {
	if !NonEmpty(in.Name) {
		return errors.New("Driver name is required")
	}
	if len(in.Name) > 60 {
		return errors.New("Name must be under 60 characters")
	}
	if in.Email != "" && !ValidEmail(in.Email) {
		return errors.New("Invalid email format")
	}
	if in.Phone != "" && !phoneRe.MatchString(in.Phone) {
		return errors.New("Phone must be 5-20 digits/dashes")
	}
	if !NonEmpty(in.LicenseNumber) {
		return errors.New("License number is required")
	}
	if !models.ValidVehicleType(in.LicenseCategory) {
		return errors.New("License category must be Truck, Van, or Bike")
	}
	if !ValidDate(in.LicenseExpiry) {
		return errors.New("Valid license expiry date is required")
	}
	if in.SafetyScore != nil && (*in.SafetyScore < 0 || *in.SafetyScore > 100) {
		return errors.New("Safety score must be between 0 and 100")
	}
	return nil
}

// Trip validates a trip create payload. Cross-entity checks (vehicle
// availability, capacity, driver eligibility) belong to the dispatch engine.
func Trip(in models.TripInput) error {
	if in.VehicleID == 0 {
		return errors.New("Vehicle selection is required")
	}
	if in.DriverID == 0 {
		return errors.New("Driver selection is required")
	}
	if !NonEmpty(in.Origin) {
		return errors.New("Origin city is required")
	}
	if len(in.Origin) > 100 {
		return errors.New("Origin must be under 100 characters")
	}
	if !NonEmpty(in.Destination) {
		return errors.New("Destination city is required")
	}
	if len(in.Destination) > 100 {
		return errors.New("Destination must be under 100 characters")
	}
	if strings.EqualFold(strings.TrimSpace(in.Origin), strings.TrimSpace(in.Destination)) {
		return errors.New("Origin and destination cannot be the same")
	}
	if in.CargoWeightKg != nil && *in.CargoWeightKg < 0 {
		return errors.New("Cargo weight cannot be negative")
	}
	if in.Revenue != nil && *in.Revenue < 0 {
		return errors.New("Revenue cannot be negative")
	}
	return nil
}

// Maintenance validates a maintenance create payload.
func Maintenance(in models.MaintenanceInput) error {
	if in.VehicleID == 0 {
		return errors.New("Vehicle selection is required")
	}
	if !models.ValidServiceType(in.ServiceType) {
		return fmt.Errorf("Service type must be one of: %s", strings.Join(models.ServiceTypes, ", "))
	}
	if in.Cost != nil && *in.Cost < 0 {
		return errors.New("Cost cannot be negative")
	}
	if !ValidDate(in.ServiceDate) {
		return errors.New("Valid service date is required")
	}
	return nil
}

// Expense validates an expense create payload.
func Expense(in models.ExpenseInput) error {
	if in.VehicleID == 0 {
		return errors.New("Vehicle selection is required")
	}
	if !models.ValidExpenseType(in.Type) {
		return errors.New("Type must be Fuel, Toll, or Other")
	}
	if in.Type == string(models.ExpenseFuel) && in.Liters != nil && *in.Liters < 0 {
		return errors.New("Liters cannot be negative")
	}
	if in.Cost <= 0 {
		return errors.New("Cost must be a positive number")
	}
	if !ValidDate(in.ExpenseDate) {
		return errors.New("Valid expense date is required")
	}
	return nil
}

// Register validates an account registration payload.
func Register(in models.RegisterInput) error {
	if !NonEmpty(in.Name) {
		return errors.New("Name is required")
	}
	if len(strings.TrimSpace(in.Name)) > 60 {
		return errors.New("Name must be under 60 characters")
	}
	if !ValidEmail(in.Email) {
		return errors.New("Valid email is required")
	}
	if len(in.Password) < 6 {
		return errors.New("Password must be at least 6 characters")
	}
	if !models.ValidRole(in.Role) {
		return errors.New("Please select a valid role")
	}
	return nil
}
