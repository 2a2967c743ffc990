package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/fleetflow/fleetflow-go/internal/models"
)

// TripRepository handles database operations for trips.
type TripRepository struct {
	db *sql.DB
}

// NewTripRepository creates a new trip repository.
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{db: db}
}

const tripJoinedColumns = `t.id, t.vehicle_id, t.driver_id, t.origin, t.destination,
	t.cargo_weight_kg, t.cargo_description, t.status, t.start_odometer, t.end_odometer,
	t.revenue, t.created_at, t.dispatched_at, t.completed_at,
	v.name, v.license_plate, v.max_capacity_kg, d.name`

func scanJoinedTrip(row interface{ Scan(...any) error }) (*models.Trip, error) {
	var t models.Trip
	var endOdometer sql.NullInt64
	var dispatchedAt, completedAt sql.NullString
	err := row.Scan(
		&t.ID, &t.VehicleID, &t.DriverID, &t.Origin, &t.Destination,
		&t.CargoWeightKg, &t.CargoDescription, &t.Status, &t.StartOdometer, &endOdometer,
		&t.Revenue, &t.CreatedAt, &dispatchedAt, &completedAt,
		&t.VehicleName, &t.LicensePlate, &t.MaxCapacityKg, &t.DriverName,
	)
	if err != nil {
		return nil, err
	}
	if endOdometer.Valid {
		t.EndOdometer = &endOdometer.Int64
	}
	if dispatchedAt.Valid {
		t.DispatchedAt = &dispatchedAt.String
	}
	if completedAt.Valid {
		t.CompletedAt = &completedAt.String
	}
	return &t, nil
}

// List retrieves trips joined with vehicle/driver display fields, optionally
// filtered by status, newest first.
func (r *TripRepository) List(filter models.TripFilter) ([]models.Trip, error) {
	query := `SELECT ` + tripJoinedColumns + `
		FROM trips t
		JOIN vehicles v ON t.vehicle_id = v.id
		JOIN drivers d ON t.driver_id = d.id`

	var conditions []string
	var args []any

	if filter.Status != "" {
		conditions = append(conditions, "t.status = ?")
		args = append(args, filter.Status)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY t.created_at DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	var trips []models.Trip
	for rows.Next() {
		t, err := scanJoinedTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, *t)
	}

	return trips, rows.Err()
}

// GetByID retrieves a single trip with display fields, or nil when absent.
func (r *TripRepository) GetByID(id int64) (*models.Trip, error) {
	t, err := scanJoinedTrip(r.db.QueryRow(`SELECT `+tripJoinedColumns+`
		FROM trips t
		JOIN vehicles v ON t.vehicle_id = v.id
		JOIN drivers d ON t.driver_id = d.id
		WHERE t.id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return t, nil
}

// GetForUpdate re-reads the bare trip row inside a transaction. Racing
// transitions on the same trip serialize here: the second one observes the
// first one's committed status and fails its legality check.
func (r *TripRepository) GetForUpdate(q Queryer, id int64) (*models.Trip, error) {
	var t models.Trip
	var endOdometer sql.NullInt64
	var dispatchedAt, completedAt sql.NullString
	err := q.QueryRow(`SELECT id, vehicle_id, driver_id, origin, destination,
		cargo_weight_kg, cargo_description, status, start_odometer, end_odometer,
		revenue, created_at, dispatched_at, completed_at
		FROM trips WHERE id = ?`, id).Scan(
		&t.ID, &t.VehicleID, &t.DriverID, &t.Origin, &t.Destination,
		&t.CargoWeightKg, &t.CargoDescription, &t.Status, &t.StartOdometer, &endOdometer,
		&t.Revenue, &t.CreatedAt, &dispatchedAt, &completedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	if endOdometer.Valid {
		t.EndOdometer = &endOdometer.Int64
	}
	if dispatchedAt.Valid {
		t.DispatchedAt = &dispatchedAt.String
	}
	if completedAt.Valid {
		t.CompletedAt = &completedAt.String
	}
	return &t, nil
}

// Exists reports whether a trip row exists.
func (r *TripRepository) Exists(id int64) (bool, error) {
	var found int64
	err := r.db.QueryRow("SELECT id FROM trips WHERE id = ?", id).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check trip: %w", err)
	}
	return true, nil
}

// Insert persists a new draft trip and fills in its assigned ID.
func (r *TripRepository) Insert(t *models.Trip) error {
	res, err := r.db.Exec(`INSERT INTO trips
		(vehicle_id, driver_id, origin, destination, cargo_weight_kg, cargo_description, start_odometer, revenue)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.VehicleID, t.DriverID, t.Origin, t.Destination, t.CargoWeightKg, t.CargoDescription, t.StartOdometer, t.Revenue,
	)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read trip id: %w", err)
	}
	t.ID = id
	return nil
}

// MarkDispatched stamps the trip as dispatched.
func (r *TripRepository) MarkDispatched(q Queryer, id int64) error {
	if _, err := q.Exec(`UPDATE trips SET status = ?, dispatched_at = CURRENT_TIMESTAMP WHERE id = ?`,
		models.TripDispatched, id); err != nil {
		return fmt.Errorf("failed to mark trip dispatched: %w", err)
	}
	return nil
}

// MarkCompleted stamps the trip as completed with its final odometer and
// revenue.
func (r *TripRepository) MarkCompleted(q Queryer, id, endOdometer int64, revenue float64) error {
	if _, err := q.Exec(`UPDATE trips SET status = ?, end_odometer = ?, revenue = ?, completed_at = CURRENT_TIMESTAMP WHERE id = ?`,
		models.TripCompleted, endOdometer, revenue, id); err != nil {
		return fmt.Errorf("failed to mark trip completed: %w", err)
	}
	return nil
}

// MarkCancelled stamps the trip as cancelled.
func (r *TripRepository) MarkCancelled(q Queryer, id int64) error {
	if _, err := q.Exec(`UPDATE trips SET status = ? WHERE id = ?`, models.TripCancelled, id); err != nil {
		return fmt.Errorf("failed to mark trip cancelled: %w", err)
	}
	return nil
}

// UpdateRevenue overwrites only the revenue column.
func (r *TripRepository) UpdateRevenue(id int64, revenue float64) error {
	if _, err := r.db.Exec("UPDATE trips SET revenue = ? WHERE id = ?", revenue, id); err != nil {
		return fmt.Errorf("failed to update trip revenue: %w", err)
	}
	return nil
}
