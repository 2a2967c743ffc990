package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/fleetflow/fleetflow-go/internal/models"
)

// VehicleRepository handles database operations for vehicles.
type VehicleRepository struct {
	db *sql.DB
}

// NewVehicleRepository creates a new vehicle repository.
func NewVehicleRepository(db *sql.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

const vehicleColumns = `id, name, model, license_plate, type, max_capacity_kg,
	odometer, status, region, acquisition_cost, created_at`

func scanVehicle(row interface{ Scan(...any) error }) (*models.Vehicle, error) {
	var v models.Vehicle
	err := row.Scan(
		&v.ID, &v.Name, &v.Model, &v.LicensePlate, &v.Type, &v.MaxCapacityKg,
		&v.Odometer, &v.Status, &v.Region, &v.AcquisitionCost, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// List retrieves vehicles with optional equality filters.
func (r *VehicleRepository) List(filter models.VehicleFilter) ([]models.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles`

	var conditions []string
	var args []any

	if filter.Type != "" {
		conditions = append(conditions, "type = ?")
		args = append(args, filter.Type)
	}
	if filter.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.Region != "" {
		conditions = append(conditions, "region = ?")
		args = append(args, filter.Region)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []models.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, *v)
	}

	return vehicles, rows.Err()
}

// GetByID retrieves a single vehicle, or nil when absent.
func (r *VehicleRepository) GetByID(q Queryer, id int64) (*models.Vehicle, error) {
	v, err := scanVehicle(q.QueryRow(`SELECT `+vehicleColumns+` FROM vehicles WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return v, nil
}

// ExistsByPlate reports whether a vehicle with the given plate is registered.
// Plates are stored uppercase, so callers pass the normalized form.
func (r *VehicleRepository) ExistsByPlate(plate string) (bool, error) {
	var id int64
	err := r.db.QueryRow("SELECT id FROM vehicles WHERE license_plate = ?", plate).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check license plate: %w", err)
	}
	return true, nil
}

// Insert persists a new vehicle and fills in its assigned ID.
func (r *VehicleRepository) Insert(v *models.Vehicle) error {
	res, err := r.db.Exec(`INSERT INTO vehicles
		(name, model, license_plate, type, max_capacity_kg, odometer, status, region, acquisition_cost)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.Name, v.Model, v.LicensePlate, v.Type, v.MaxCapacityKg, v.Odometer, v.Status, v.Region, v.AcquisitionCost,
	)
	if err != nil {
		return fmt.Errorf("failed to insert vehicle: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read vehicle id: %w", err)
	}
	v.ID = id
	return nil
}

// Update overwrites all mutable columns of a vehicle. Merge semantics are the
// service's responsibility.
func (r *VehicleRepository) Update(v *models.Vehicle) error {
	_, err := r.db.Exec(`UPDATE vehicles SET
		name = ?, model = ?, license_plate = ?, type = ?, max_capacity_kg = ?,
		odometer = ?, status = ?, region = ?, acquisition_cost = ?
		WHERE id = ?`,
		v.Name, v.Model, v.LicensePlate, v.Type, v.MaxCapacityKg,
		v.Odometer, v.Status, v.Region, v.AcquisitionCost, v.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	return nil
}

// SetStatus updates only the status column.
func (r *VehicleRepository) SetStatus(q Queryer, id int64, status models.VehicleStatus) error {
	if _, err := q.Exec("UPDATE vehicles SET status = ? WHERE id = ?", status, id); err != nil {
		return fmt.Errorf("failed to set vehicle status: %w", err)
	}
	return nil
}

// SetStatusAndOdometer updates status and odometer together, used when a trip
// completes.
func (r *VehicleRepository) SetStatusAndOdometer(q Queryer, id int64, status models.VehicleStatus, odometer int64) error {
	if _, err := q.Exec("UPDATE vehicles SET status = ?, odometer = ? WHERE id = ?", status, odometer, id); err != nil {
		return fmt.Errorf("failed to set vehicle status/odometer: %w", err)
	}
	return nil
}

// ReferenceCount counts trips, expenses and maintenance logs pointing at the
// vehicle. A referenced vehicle must not be deleted.
func (r *VehicleRepository) ReferenceCount(id int64) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT
		(SELECT COUNT(*) FROM trips WHERE vehicle_id = ?) +
		(SELECT COUNT(*) FROM expenses WHERE vehicle_id = ?) +
		(SELECT COUNT(*) FROM maintenance WHERE vehicle_id = ?)`,
		id, id, id,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count vehicle references: %w", err)
	}
	return count, nil
}

// Delete removes a vehicle row.
func (r *VehicleRepository) Delete(id int64) error {
	if _, err := r.db.Exec("DELETE FROM vehicles WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	return nil
}
