package repository

import (
	"database/sql"
	"fmt"

	"github.com/fleetflow/fleetflow-go/internal/models"
)

// AnalyticsRepository runs the read-only aggregate queries behind the
// analytics endpoint. Each call recomputes from current store state; slight
// skew between the individual aggregates during concurrent writes is
// acceptable.
type AnalyticsRepository struct {
	db *sql.DB
}

// NewAnalyticsRepository creates a new analytics repository.
func NewAnalyticsRepository(db *sql.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// KPIs gathers the headline fleet counters.
func (r *AnalyticsRepository) KPIs() (*models.FleetKPIs, error) {
	k := &models.FleetKPIs{}

	counts := []struct {
		query string
		dest  *int
	}{
		{"SELECT COUNT(*) FROM vehicles", &k.TotalVehicles},
		{"SELECT COUNT(*) FROM vehicles WHERE status = 'On Trip'", &k.ActiveFleet},
		{"SELECT COUNT(*) FROM vehicles WHERE status = 'In Shop'", &k.InShop},
		{"SELECT COUNT(*) FROM vehicles WHERE status = 'Available'", &k.Available},
		{"SELECT COUNT(*) FROM trips WHERE status = 'Draft'", &k.PendingCargo},
		{"SELECT COUNT(*) FROM drivers", &k.TotalDrivers},
		{"SELECT COUNT(*) FROM drivers WHERE status = 'On Trip'", &k.DriversOnTrip},
		{"SELECT COUNT(*) FROM trips WHERE status = 'Completed'", &k.CompletedTrips},
	}
	for _, c := range counts {
		if err := r.db.QueryRow(c.query).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("failed to query fleet counts: %w", err)
		}
	}

	sums := []struct {
		query string
		dest  *float64
	}{
		{"SELECT COALESCE(SUM(revenue), 0) FROM trips WHERE status = 'Completed'", &k.TotalRevenue},
		{"SELECT COALESCE(SUM(cost), 0) FROM expenses", &k.TotalExpenses},
		{"SELECT COALESCE(SUM(cost), 0) FROM maintenance", &k.TotalMaintCost},
	}
	for _, s := range sums {
		if err := r.db.QueryRow(s.query).Scan(s.dest); err != nil {
			return nil, fmt.Errorf("failed to query fleet totals: %w", err)
		}
	}

	return k, nil
}

// VehicleTypeCounts returns fleet size per vehicle type.
func (r *AnalyticsRepository) VehicleTypeCounts() ([]models.VehicleTypeCount, error) {
	rows, err := r.db.Query("SELECT type, COUNT(*) FROM vehicles GROUP BY type ORDER BY type")
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicle type counts: %w", err)
	}
	defer rows.Close()

	var counts []models.VehicleTypeCount
	for rows.Next() {
		var c models.VehicleTypeCount
		if err := rows.Scan(&c.Type, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan vehicle type count: %w", err)
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}

// FuelEfficiency returns per-vehicle fuel usage with completed-trip distance.
// Vehicles that never logged fuel are excluded.
func (r *AnalyticsRepository) FuelEfficiency() ([]models.FuelEfficiencyRow, error) {
	rows, err := r.db.Query(`
		SELECT v.id, v.name, v.license_plate,
			COALESCE(SUM(e.liters), 0) AS total_liters,
			COALESCE(SUM(e.cost), 0) AS total_fuel_cost,
			(SELECT COALESCE(SUM(t.end_odometer - t.start_odometer), 0)
			 FROM trips t
			 WHERE t.vehicle_id = v.id AND t.status = 'Completed' AND t.end_odometer IS NOT NULL) AS total_km
		FROM vehicles v
		LEFT JOIN expenses e ON e.vehicle_id = v.id AND e.type = 'Fuel'
		GROUP BY v.id
		HAVING total_liters > 0`)
	if err != nil {
		return nil, fmt.Errorf("failed to query fuel efficiency: %w", err)
	}
	defer rows.Close()

	var result []models.FuelEfficiencyRow
	for rows.Next() {
		var row models.FuelEfficiencyRow
		if err := rows.Scan(&row.VehicleID, &row.Name, &row.LicensePlate,
			&row.TotalLiters, &row.TotalFuelCost, &row.TotalKm); err != nil {
			return nil, fmt.Errorf("failed to scan fuel efficiency row: %w", err)
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

// CostBreakdown returns per-vehicle fuel/maintenance/other cost and
// completed-trip revenue.
func (r *AnalyticsRepository) CostBreakdown() ([]models.CostBreakdownRow, error) {
	rows, err := r.db.Query(`
		SELECT v.id, v.name, v.license_plate, v.acquisition_cost,
			COALESCE((SELECT SUM(cost) FROM expenses WHERE vehicle_id = v.id AND type = 'Fuel'), 0) AS fuel_cost,
			COALESCE((SELECT SUM(cost) FROM maintenance WHERE vehicle_id = v.id), 0) AS maintenance_cost,
			COALESCE((SELECT SUM(cost) FROM expenses WHERE vehicle_id = v.id AND type != 'Fuel'), 0) AS other_cost,
			COALESCE((SELECT SUM(revenue) FROM trips WHERE vehicle_id = v.id AND status = 'Completed'), 0) AS total_revenue
		FROM vehicles v
		ORDER BY v.name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query cost breakdown: %w", err)
	}
	defer rows.Close()

	var result []models.CostBreakdownRow
	for rows.Next() {
		var row models.CostBreakdownRow
		if err := rows.Scan(&row.VehicleID, &row.Name, &row.LicensePlate, &row.AcquisitionCost,
			&row.FuelCost, &row.MaintenanceCost, &row.OtherCost, &row.TotalRevenue); err != nil {
			return nil, fmt.Errorf("failed to scan cost breakdown row: %w", err)
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

// MonthlyExpense is one month of expense totals, fuel split out.
type MonthlyExpense struct {
	Month string
	Fuel  float64
	Other float64
}

// MonthlyExpenses groups expenses by calendar month, most recent first.
func (r *AnalyticsRepository) MonthlyExpenses(limit int) ([]MonthlyExpense, error) {
	rows, err := r.db.Query(`
		SELECT strftime('%Y-%m', expense_date) AS month,
			SUM(CASE WHEN type = 'Fuel' THEN cost ELSE 0 END) AS fuel,
			SUM(CASE WHEN type != 'Fuel' THEN cost ELSE 0 END) AS other
		FROM expenses
		GROUP BY month
		ORDER BY month DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly expenses: %w", err)
	}
	defer rows.Close()

	var result []MonthlyExpense
	for rows.Next() {
		var m MonthlyExpense
		if err := rows.Scan(&m.Month, &m.Fuel, &m.Other); err != nil {
			return nil, fmt.Errorf("failed to scan monthly expense: %w", err)
		}
		result = append(result, m)
	}

	return result, rows.Err()
}

// MonthlyTotal is one month of a single summed series.
type MonthlyTotal struct {
	Month string
	Total float64
}

// MonthlyMaintenance groups maintenance cost by calendar month, most recent
// first.
func (r *AnalyticsRepository) MonthlyMaintenance(limit int) ([]MonthlyTotal, error) {
	return r.monthlyTotals(`
		SELECT strftime('%Y-%m', service_date) AS month, SUM(cost) AS total
		FROM maintenance
		GROUP BY month
		ORDER BY month DESC
		LIMIT ?`, limit)
}

// MonthlyRevenue groups completed-trip revenue by completion month, most
// recent first.
func (r *AnalyticsRepository) MonthlyRevenue(limit int) ([]MonthlyTotal, error) {
	return r.monthlyTotals(`
		SELECT strftime('%Y-%m', completed_at) AS month, SUM(revenue) AS total
		FROM trips
		WHERE status = 'Completed' AND completed_at IS NOT NULL
		GROUP BY month
		ORDER BY month DESC
		LIMIT ?`, limit)
}

func (r *AnalyticsRepository) monthlyTotals(query string, limit int) ([]MonthlyTotal, error) {
	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly totals: %w", err)
	}
	defer rows.Close()

	var result []MonthlyTotal
	for rows.Next() {
		var m MonthlyTotal
		if err := rows.Scan(&m.Month, &m.Total); err != nil {
			return nil, fmt.Errorf("failed to scan monthly total: %w", err)
		}
		result = append(result, m)
	}

	return result, rows.Err()
}
