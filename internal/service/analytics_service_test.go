package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetflow/fleetflow-go/internal/models"
)

func TestAnalyticsEmptyStore(t *testing.T) {
	e := newEnv(t)

	report, err := e.analytics.Report()
	require.NoError(t, err)

	assert.Equal(t, 0, report.KPIs.TotalVehicles)
	assert.Equal(t, 0, report.KPIs.UtilizationRate)
	assert.Equal(t, float64(0), report.KPIs.TotalRevenue)
	assert.Empty(t, report.FuelEfficiency)
	assert.Empty(t, report.MonthlyTrend)
}

func TestAnalyticsReport(t *testing.T) {
	e := newEnv(t)
	v := e.addVehicle(t)
	d := e.addDriver(t)

	tr := e.addTrip(t, v.ID, d.ID)
	_, err := e.trips.Update(tr.ID, models.TripUpdateInput{Status: "Dispatched"})
	require.NoError(t, err)
	_, err = e.trips.Update(tr.ID, models.TripUpdateInput{
		Status: "Completed", EndOdometer: i64(100500), Revenue: f64(15000),
	})
	require.NoError(t, err)

	// Second trip left in Draft counts as pending cargo.
	e.addTrip(t, v.ID, d.ID, func(in *models.TripInput) { in.Destination = "Jaipur" })

	_, err = e.expenses.Create(models.ExpenseInput{
		VehicleID: v.ID, Type: "Fuel", Liters: f64(100), Cost: 8000, ExpenseDate: "2026-04-01",
	})
	require.NoError(t, err)
	_, err = e.expenses.Create(models.ExpenseInput{
		VehicleID: v.ID, Type: "Toll", Cost: 500, ExpenseDate: "2026-04-02",
	})
	require.NoError(t, err)

	m, err := e.maintenance.Create(models.MaintenanceInput{
		VehicleID: v.ID, ServiceType: "Oil Change", Cost: f64(1000), ServiceDate: "2026-04-03",
	})
	require.NoError(t, err)
	_, err = e.maintenance.Update(m.ID, models.MaintenanceUpdateInput{Status: "Completed"})
	require.NoError(t, err)

	report, err := e.analytics.Report()
	require.NoError(t, err)

	kpis := report.KPIs
	assert.Equal(t, 1, kpis.TotalVehicles)
	assert.Equal(t, 1, kpis.Available)
	assert.Equal(t, 1, kpis.PendingCargo)
	assert.Equal(t, 1, kpis.TotalDrivers)
	assert.Equal(t, 1, kpis.CompletedTrips)
	assert.Equal(t, float64(15000), kpis.TotalRevenue)
	assert.Equal(t, float64(8500), kpis.TotalExpenses)
	assert.Equal(t, float64(1000), kpis.TotalMaintCost)

	require.Len(t, report.VehicleTypes, 1)
	assert.Equal(t, models.VehicleTypeTruck, report.VehicleTypes[0].Type)
	assert.Equal(t, 1, report.VehicleTypes[0].Count)

	// 500 completed km over 100 liters.
	require.Len(t, report.FuelEfficiency, 1)
	fe := report.FuelEfficiency[0]
	assert.Equal(t, float64(100), fe.TotalLiters)
	assert.Equal(t, float64(500), fe.TotalKm)
	assert.Equal(t, "5.00", fe.KmPerLiter)

	// ROI = (15000 - (8000 + 1000)) / 80000 * 100 = 7.5
	require.Len(t, report.CostBreakdown, 1)
	cb := report.CostBreakdown[0]
	assert.Equal(t, float64(8000), cb.FuelCost)
	assert.Equal(t, float64(1000), cb.MaintenanceCost)
	assert.Equal(t, float64(500), cb.OtherCost)
	assert.Equal(t, float64(9500), cb.TotalCost)
	assert.Equal(t, "7.5", cb.ROI)
}

func TestAnalyticsZeroGuards(t *testing.T) {
	e := newEnv(t)

	// Vehicle with no acquisition cost and no fuel: ROI must degrade to "0"
	// instead of dividing by zero.
	v := e.addVehicle(t, func(in *models.VehicleInput) {
		in.LicensePlate = "TRK-0001"
		in.AcquisitionCost = nil
	})
	_, err := e.expenses.Create(models.ExpenseInput{
		VehicleID: v.ID, Type: "Other", Cost: 100, ExpenseDate: "2026-04-01",
	})
	require.NoError(t, err)

	report, err := e.analytics.Report()
	require.NoError(t, err)

	require.Len(t, report.CostBreakdown, 1)
	assert.Equal(t, "0", report.CostBreakdown[0].ROI)
	assert.Empty(t, report.FuelEfficiency)
}

func TestAnalyticsMonthlyTrend(t *testing.T) {
	e := newEnv(t)
	v := e.addVehicle(t)

	months := []string{"2026-01", "2026-02", "2026-03"}
	for _, m := range months {
		_, err := e.expenses.Create(models.ExpenseInput{
			VehicleID: v.ID, Type: "Fuel", Liters: f64(10), Cost: 1000, ExpenseDate: m + "-15",
		})
		require.NoError(t, err)
	}
	_, err := e.expenses.Create(models.ExpenseInput{
		VehicleID: v.ID, Type: "Toll", Cost: 200, ExpenseDate: "2026-03-20",
	})
	require.NoError(t, err)

	report, err := e.analytics.Report()
	require.NoError(t, err)

	trend := report.MonthlyTrend
	require.Len(t, trend, 3)

	// Chronological order, oldest first.
	for i, m := range months {
		assert.Equal(t, m, trend[i].Month)
	}
	assert.Equal(t, float64(1000), trend[0].Fuel)
	assert.Equal(t, float64(200), trend[2].Other)
	assert.Equal(t, float64(1200), trend[2].Total)
}
