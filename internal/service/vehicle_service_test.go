package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetflow/fleetflow-go/internal/apperr"
	"github.com/fleetflow/fleetflow-go/internal/models"
)

func TestVehicleCreate(t *testing.T) {
	e := newEnv(t)

	v := e.addVehicle(t, func(in *models.VehicleInput) { in.LicensePlate = "trk-5001" })
	assert.Equal(t, "TRK-5001", v.LicensePlate)
	assert.Equal(t, models.VehicleAvailable, v.Status)
	assert.Equal(t, "Default", v.Region)

	t.Run("duplicate plate is case-insensitive", func(t *testing.T) {
		_, err := e.vehicles.Create(models.VehicleInput{
			Name: "Clone", Model: "Volvo FH16", LicensePlate: "TRK-5001",
			Type: "Truck", MaxCapacityKg: f64(5000),
		})
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.Conflict))
		assert.EqualError(t, err, "License plate already exists in the system")
	})

	t.Run("validation failure", func(t *testing.T) {
		_, err := e.vehicles.Create(models.VehicleInput{Model: "M", LicensePlate: "ABC-1", Type: "Truck"})
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.Validation))
		assert.EqualError(t, err, "Vehicle name is required")
	})
}

func TestVehicleUpdateMerge(t *testing.T) {
	e := newEnv(t)
	v := e.addVehicle(t)

	// Empty strings keep prior values; supplied numerics stick, even zero.
	updated, err := e.vehicles.Update(v.ID, models.VehicleInput{
		Name:     "Renamed",
		Odometer: i64(0),
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "Volvo FH16", updated.Model)
	assert.Equal(t, int64(0), updated.Odometer)
	assert.Equal(t, float64(5000), updated.MaxCapacityKg)

	t.Run("invalid status rejected", func(t *testing.T) {
		_, err := e.vehicles.Update(v.ID, models.VehicleInput{Status: "Broken"})
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.Validation))
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := e.vehicles.Update(9999, models.VehicleInput{Name: "X"})
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.NotFound))
	})
}

func TestVehicleDelete(t *testing.T) {
	e := newEnv(t)

	t.Run("unreferenced vehicle deletes", func(t *testing.T) {
		v := e.addVehicle(t, func(in *models.VehicleInput) { in.LicensePlate = "TRK-6001" })
		require.NoError(t, e.vehicles.Delete(v.ID))

		_, err := e.vehicles.Get(v.ID)
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.NotFound))
	})

	t.Run("referenced vehicle is protected", func(t *testing.T) {
		v := e.addVehicle(t, func(in *models.VehicleInput) { in.LicensePlate = "TRK-6002" })
		d := e.addDriver(t, func(in *models.DriverInput) {
			in.LicenseNumber = "DL-6002"
			in.Email = "d6002@fleet.io"
		})
		e.addTrip(t, v.ID, d.ID)

		err := e.vehicles.Delete(v.ID)
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.Conflict))
	})
}

func TestVehicleListFilters(t *testing.T) {
	e := newEnv(t)
	e.addVehicle(t, func(in *models.VehicleInput) {
		in.LicensePlate = "TRK-7001"
		in.Region = "North"
	})
	e.addVehicle(t, func(in *models.VehicleInput) {
		in.LicensePlate = "VAN-7002"
		in.Type = "Van"
		in.Region = "South"
	})

	vans, err := e.vehicles.List(models.VehicleFilter{Type: "Van"})
	require.NoError(t, err)
	require.Len(t, vans, 1)
	assert.Equal(t, "VAN-7002", vans[0].LicensePlate)

	north, err := e.vehicles.List(models.VehicleFilter{Region: "North"})
	require.NoError(t, err)
	require.Len(t, north, 1)

	all, err := e.vehicles.List(models.VehicleFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
