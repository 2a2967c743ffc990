package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetflow/fleetflow-go/internal/apperr"
	"github.com/fleetflow/fleetflow-go/internal/models"
)

func TestExpenseCreate(t *testing.T) {
	e := newEnv(t)
	v := e.addVehicle(t)
	d := e.addDriver(t)
	tr := e.addTrip(t, v.ID, d.ID)

	exp, err := e.expenses.Create(models.ExpenseInput{
		VehicleID:   v.ID,
		TripID:      &tr.ID,
		Type:        "Fuel",
		Liters:      f64(120),
		Cost:        9600,
		ExpenseDate: "2026-03-01",
		Notes:       "Full tank",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ExpenseFuel, exp.Type)
	assert.Equal(t, float64(120), exp.Liters)
	assert.Equal(t, "Test Truck", exp.VehicleName)
	require.NotNil(t, exp.TripID)
	assert.Equal(t, tr.ID, *exp.TripID)

	t.Run("unknown vehicle", func(t *testing.T) {
		_, err := e.expenses.Create(models.ExpenseInput{
			VehicleID: 9999, Type: "Toll", Cost: 50, ExpenseDate: "2026-03-01",
		})
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.NotFound))
		assert.EqualError(t, err, "Vehicle not found")
	})

	t.Run("unknown linked trip", func(t *testing.T) {
		bogus := int64(9999)
		_, err := e.expenses.Create(models.ExpenseInput{
			VehicleID: v.ID, TripID: &bogus, Type: "Toll", Cost: 50, ExpenseDate: "2026-03-01",
		})
		require.Error(t, err)
		assert.EqualError(t, err, "Linked trip not found")
	})
}

func TestExpenseListFilter(t *testing.T) {
	e := newEnv(t)
	v1 := e.addVehicle(t, func(in *models.VehicleInput) { in.LicensePlate = "TRK-9001" })
	v2 := e.addVehicle(t, func(in *models.VehicleInput) { in.LicensePlate = "TRK-9002" })

	for _, vid := range []int64{v1.ID, v1.ID, v2.ID} {
		_, err := e.expenses.Create(models.ExpenseInput{
			VehicleID: vid, Type: "Other", Cost: 100, ExpenseDate: "2026-03-05",
		})
		require.NoError(t, err)
	}

	filtered, err := e.expenses.List(models.ExpenseFilter{VehicleID: v1.ID})
	require.NoError(t, err)
	assert.Len(t, filtered, 2)

	all, err := e.expenses.List(models.ExpenseFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
