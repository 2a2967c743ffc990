package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetflow/fleetflow-go/internal/apperr"
	"github.com/fleetflow/fleetflow-go/internal/models"
)

func TestTripLifecycle(t *testing.T) {
	e := newEnv(t)
	v := e.addVehicle(t)
	d := e.addDriver(t)

	tr := e.addTrip(t, v.ID, d.ID)
	assert.Equal(t, models.TripDraft, tr.Status)
	assert.Equal(t, int64(100000), tr.StartOdometer)
	assert.Equal(t, "Test Truck", tr.VehicleName)
	assert.Equal(t, "Test Driver", tr.DriverName)

	// Drafting holds nothing.
	v2, err := e.vehicles.Get(v.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VehicleAvailable, v2.Status)

	// Dispatch commits vehicle and driver.
	tr, err = e.trips.Update(tr.ID, models.TripUpdateInput{Status: "Dispatched"})
	require.NoError(t, err)
	assert.Equal(t, models.TripDispatched, tr.Status)
	require.NotNil(t, tr.DispatchedAt)

	v2, err = e.vehicles.Get(v.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VehicleOnTrip, v2.Status)

	d2, err := e.drivers.Get(d.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DriverOnTrip, d2.Status)

	// Complete releases both and rolls the odometer forward.
	tr, err = e.trips.Update(tr.ID, models.TripUpdateInput{
		Status:      "Completed",
		EndOdometer: i64(100500),
		Revenue:     f64(15000),
	})
	require.NoError(t, err)
	assert.Equal(t, models.TripCompleted, tr.Status)
	require.NotNil(t, tr.EndOdometer)
	assert.Equal(t, int64(100500), *tr.EndOdometer)
	assert.Equal(t, float64(15000), tr.Revenue)
	require.NotNil(t, tr.CompletedAt)

	v2, err = e.vehicles.Get(v.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VehicleAvailable, v2.Status)
	assert.Equal(t, int64(100500), v2.Odometer)

	d2, err = e.drivers.Get(d.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DriverOnDuty, d2.Status)
}

func TestTripCreatePreconditions(t *testing.T) {
	e := newEnv(t)

	t.Run("vehicle not available", func(t *testing.T) {
		v := e.addVehicle(t, func(in *models.VehicleInput) { in.LicensePlate = "TRK-2001" })
		d := e.addDriver(t, func(in *models.DriverInput) {
			in.LicenseNumber = "DL-2001"
			in.Email = "d2001@fleet.io"
		})
		_, err := e.vehicles.Update(v.ID, models.VehicleInput{Status: "Retired"})
		require.NoError(t, err)

		_, err = e.trips.Create(models.TripInput{
			VehicleID: v.ID, DriverID: d.ID, Origin: "Pune", Destination: "Goa",
		})
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.BusinessRule))
		assert.EqualError(t, err, `Vehicle is currently "Retired" and cannot be assigned`)
	})

	t.Run("cargo exceeds capacity", func(t *testing.T) {
		v := e.addVehicle(t, func(in *models.VehicleInput) { in.LicensePlate = "TRK-2002" })
		d := e.addDriver(t, func(in *models.DriverInput) {
			in.LicenseNumber = "DL-2002"
			in.Email = "d2002@fleet.io"
		})

		_, err := e.trips.Create(models.TripInput{
			VehicleID: v.ID, DriverID: d.ID, Origin: "Pune", Destination: "Goa",
			CargoWeightKg: f64(6000),
		})
		require.Error(t, err)
		assert.EqualError(t, err, "Cargo weight (6000kg) exceeds vehicle max capacity (5000kg)")
	})

	t.Run("driver suspended", func(t *testing.T) {
		v := e.addVehicle(t, func(in *models.VehicleInput) { in.LicensePlate = "TRK-2003" })
		d := e.addDriver(t, func(in *models.DriverInput) {
			in.LicenseNumber = "DL-2003"
			in.Email = "d2003@fleet.io"
		})
		_, err := e.drivers.Update(d.ID, models.DriverInput{Status: "Suspended"})
		require.NoError(t, err)

		_, err = e.trips.Create(models.TripInput{
			VehicleID: v.ID, DriverID: d.ID, Origin: "Pune", Destination: "Goa",
		})
		require.Error(t, err)
		assert.EqualError(t, err, "Driver is suspended and cannot be assigned")
	})

	t.Run("driver license expired", func(t *testing.T) {
		v := e.addVehicle(t, func(in *models.VehicleInput) { in.LicensePlate = "TRK-2004" })
		d := e.addDriver(t, func(in *models.DriverInput) {
			in.LicenseNumber = "DL-2004"
			in.Email = "d2004@fleet.io"
			in.LicenseExpiry = "2020-01-01"
		})

		_, err := e.trips.Create(models.TripInput{
			VehicleID: v.ID, DriverID: d.ID, Origin: "Pune", Destination: "Goa",
		})
		require.Error(t, err)
		assert.EqualError(t, err, "Driver's license expired on 2020-01-01 and cannot be assigned to a trip")
	})

	t.Run("license category mismatch", func(t *testing.T) {
		v := e.addVehicle(t, func(in *models.VehicleInput) { in.LicensePlate = "TRK-2005" })
		d := e.addDriver(t, func(in *models.DriverInput) {
			in.LicenseNumber = "DL-2005"
			in.Email = "d2005@fleet.io"
			in.LicenseCategory = "Van"
		})

		_, err := e.trips.Create(models.TripInput{
			VehicleID: v.ID, DriverID: d.ID, Origin: "Pune", Destination: "Goa",
		})
		require.Error(t, err)
		assert.EqualError(t, err, "Driver license category (Van) does not match vehicle type (Truck)")
	})

	t.Run("driver already on a trip", func(t *testing.T) {
		v := e.addVehicle(t, func(in *models.VehicleInput) { in.LicensePlate = "TRK-2006" })
		v2 := e.addVehicle(t, func(in *models.VehicleInput) { in.LicensePlate = "TRK-2007" })
		d := e.addDriver(t, func(in *models.DriverInput) {
			in.LicenseNumber = "DL-2006"
			in.Email = "d2006@fleet.io"
		})

		tr := e.addTrip(t, v.ID, d.ID)
		_, err := e.trips.Update(tr.ID, models.TripUpdateInput{Status: "Dispatched"})
		require.NoError(t, err)

		_, err = e.trips.Create(models.TripInput{
			VehicleID: v2.ID, DriverID: d.ID, Origin: "Pune", Destination: "Goa",
		})
		require.Error(t, err)
		assert.EqualError(t, err, "Driver is currently on another trip")
	})

	t.Run("vehicle not found", func(t *testing.T) {
		d := e.addDriver(t, func(in *models.DriverInput) {
			in.LicenseNumber = "DL-2008"
			in.Email = "d2008@fleet.io"
		})
		_, err := e.trips.Create(models.TripInput{
			VehicleID: 9999, DriverID: d.ID, Origin: "Pune", Destination: "Goa",
		})
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.NotFound))
	})
}

func TestTripTransitionGuards(t *testing.T) {
	e := newEnv(t)

	t.Run("double dispatch rejected", func(t *testing.T) {
		v := e.addVehicle(t, func(in *models.VehicleInput) { in.LicensePlate = "TRK-3001" })
		d := e.addDriver(t, func(in *models.DriverInput) {
			in.LicenseNumber = "DL-3001"
			in.Email = "d3001@fleet.io"
		})
		tr := e.addTrip(t, v.ID, d.ID)

		_, err := e.trips.Update(tr.ID, models.TripUpdateInput{Status: "Dispatched"})
		require.NoError(t, err)

		_, err = e.trips.Update(tr.ID, models.TripUpdateInput{Status: "Dispatched"})
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.BusinessRule))
		assert.EqualError(t, err, "Trip cannot move from Dispatched to Dispatched")
	})

	t.Run("completed is terminal", func(t *testing.T) {
		v := e.addVehicle(t, func(in *models.VehicleInput) { in.LicensePlate = "TRK-3002" })
		d := e.addDriver(t, func(in *models.DriverInput) {
			in.LicenseNumber = "DL-3002"
			in.Email = "d3002@fleet.io"
		})
		tr := e.addTrip(t, v.ID, d.ID)

		_, err := e.trips.Update(tr.ID, models.TripUpdateInput{Status: "Completed"})
		require.NoError(t, err)

		_, err = e.trips.Update(tr.ID, models.TripUpdateInput{Status: "Cancelled"})
		require.Error(t, err)
		assert.EqualError(t, err, "Trip cannot move from Completed to Cancelled")
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		v := e.addVehicle(t, func(in *models.VehicleInput) { in.LicensePlate = "TRK-3003" })
		d := e.addDriver(t, func(in *models.DriverInput) {
			in.LicenseNumber = "DL-3003"
			in.Email = "d3003@fleet.io"
		})
		tr := e.addTrip(t, v.ID, d.ID)

		_, err := e.trips.Update(tr.ID, models.TripUpdateInput{Status: "Paused"})
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.Validation))
		assert.EqualError(t, err, `Unknown trip status "Paused"`)
	})
}

func TestTripCancel(t *testing.T) {
	e := newEnv(t)

	t.Run("cancelling a draft leaves vehicle and driver alone", func(t *testing.T) {
		v := e.addVehicle(t, func(in *models.VehicleInput) { in.LicensePlate = "TRK-4001" })
		d := e.addDriver(t, func(in *models.DriverInput) {
			in.LicenseNumber = "DL-4001"
			in.Email = "d4001@fleet.io"
		})
		tr := e.addTrip(t, v.ID, d.ID)

		tr, err := e.trips.Update(tr.ID, models.TripUpdateInput{Status: "Cancelled"})
		require.NoError(t, err)
		assert.Equal(t, models.TripCancelled, tr.Status)

		v2, err := e.vehicles.Get(v.ID)
		require.NoError(t, err)
		assert.Equal(t, models.VehicleAvailable, v2.Status)
	})

	t.Run("cancelling a dispatched trip releases vehicle and driver", func(t *testing.T) {
		v := e.addVehicle(t, func(in *models.VehicleInput) { in.LicensePlate = "TRK-4002" })
		d := e.addDriver(t, func(in *models.DriverInput) {
			in.LicenseNumber = "DL-4002"
			in.Email = "d4002@fleet.io"
		})
		tr := e.addTrip(t, v.ID, d.ID)

		_, err := e.trips.Update(tr.ID, models.TripUpdateInput{Status: "Dispatched"})
		require.NoError(t, err)
		_, err = e.trips.Update(tr.ID, models.TripUpdateInput{Status: "Cancelled"})
		require.NoError(t, err)

		v2, err := e.vehicles.Get(v.ID)
		require.NoError(t, err)
		assert.Equal(t, models.VehicleAvailable, v2.Status)

		d2, err := e.drivers.Get(d.ID)
		require.NoError(t, err)
		assert.Equal(t, models.DriverOnDuty, d2.Status)
	})
}

func TestTripCompleteDefaults(t *testing.T) {
	e := newEnv(t)
	v := e.addVehicle(t)
	d := e.addDriver(t)
	tr := e.addTrip(t, v.ID, d.ID, func(in *models.TripInput) { in.Revenue = f64(8000) })

	_, err := e.trips.Update(tr.ID, models.TripUpdateInput{Status: "Dispatched"})
	require.NoError(t, err)

	// No end odometer or revenue supplied: odometer falls back to the start
	// snapshot and revenue keeps its drafted value.
	tr, err = e.trips.Update(tr.ID, models.TripUpdateInput{Status: "Completed"})
	require.NoError(t, err)
	require.NotNil(t, tr.EndOdometer)
	assert.Equal(t, tr.StartOdometer, *tr.EndOdometer)
	assert.Equal(t, float64(8000), tr.Revenue)

	v2, err := e.vehicles.Get(v.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(100000), v2.Odometer)
}

func TestTripGenericUpdate(t *testing.T) {
	e := newEnv(t)
	v := e.addVehicle(t)
	d := e.addDriver(t)
	tr := e.addTrip(t, v.ID, d.ID)

	// No status: only revenue moves, the trip stays Draft.
	tr, err := e.trips.Update(tr.ID, models.TripUpdateInput{Revenue: f64(2500)})
	require.NoError(t, err)
	assert.Equal(t, models.TripDraft, tr.Status)
	assert.Equal(t, float64(2500), tr.Revenue)

	_, err = e.trips.Update(tr.ID, models.TripUpdateInput{Revenue: f64(-1)})
	require.Error(t, err)
	assert.EqualError(t, err, "Revenue cannot be negative")
}

func TestTripListFilter(t *testing.T) {
	e := newEnv(t)
	v := e.addVehicle(t)
	d := e.addDriver(t)

	tr1 := e.addTrip(t, v.ID, d.ID)
	_, err := e.trips.Update(tr1.ID, models.TripUpdateInput{Status: "Completed"})
	require.NoError(t, err)
	e.addTrip(t, v.ID, d.ID, func(in *models.TripInput) { in.Destination = "Jaipur" })

	completed, err := e.trips.List(models.TripFilter{Status: "Completed"})
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, tr1.ID, completed[0].ID)

	all, err := e.trips.List(models.TripFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
