package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fleetflow/fleetflow-go/internal/database"
	"github.com/fleetflow/fleetflow-go/internal/models"
	"github.com/fleetflow/fleetflow-go/internal/repository"
)

// env bundles a migrated test database with services wired the same way the
// router wires them.
type env struct {
	vehicles    *VehicleService
	drivers     *DriverService
	trips       *TripService
	maintenance *MaintenanceService
	expenses    *ExpenseService
	auth        *AuthService
	analytics   *AnalyticsService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	db, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "fleet_test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))

	vehicleRepo := repository.NewVehicleRepository(db)
	driverRepo := repository.NewDriverRepository(db)
	tripRepo := repository.NewTripRepository(db)
	maintRepo := repository.NewMaintenanceRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	userRepo := repository.NewUserRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	return &env{
		vehicles:    NewVehicleService(db, vehicleRepo),
		drivers:     NewDriverService(db, driverRepo),
		trips:       NewTripService(db, tripRepo, vehicleRepo, driverRepo),
		maintenance: NewMaintenanceService(db, maintRepo, vehicleRepo),
		expenses:    NewExpenseService(db, expenseRepo, vehicleRepo, tripRepo),
		auth:        NewAuthService(userRepo, "test-secret"),
		analytics:   NewAnalyticsService(analyticsRepo),
	}
}

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }

// addVehicle registers an available truck with sensible defaults.
func (e *env) addVehicle(t *testing.T, mutate ...func(*models.VehicleInput)) *models.Vehicle {
	t.Helper()
	in := models.VehicleInput{
		Name:            "Test Truck",
		Model:           "Volvo FH16",
		LicensePlate:    "TRK-1001",
		Type:            "Truck",
		MaxCapacityKg:   f64(5000),
		Odometer:        i64(100000),
		AcquisitionCost: f64(80000),
	}
	for _, m := range mutate {
		m(&in)
	}
	v, err := e.vehicles.Create(in)
	require.NoError(t, err)
	return v
}

// addDriver registers an on-duty truck driver with a current license.
func (e *env) addDriver(t *testing.T, mutate ...func(*models.DriverInput)) *models.Driver {
	t.Helper()
	in := models.DriverInput{
		Name:            "Test Driver",
		Email:           "driver@fleet.io",
		Phone:           "555-0100",
		LicenseNumber:   "DL-1001",
		LicenseCategory: "Truck",
		LicenseExpiry:   "2030-12-31",
		Status:          "On Duty",
	}
	for _, m := range mutate {
		m(&in)
	}
	d, err := e.drivers.Create(in)
	require.NoError(t, err)
	return d
}

// addTrip drafts a trip between two fixed cities.
func (e *env) addTrip(t *testing.T, vehicleID, driverID int64, mutate ...func(*models.TripInput)) *models.Trip {
	t.Helper()
	in := models.TripInput{
		VehicleID:     vehicleID,
		DriverID:      driverID,
		Origin:        "Mumbai",
		Destination:   "Delhi",
		CargoWeightKg: f64(4000),
	}
	for _, m := range mutate {
		m(&in)
	}
	tr, err := e.trips.Create(in)
	require.NoError(t, err)
	return tr
}
