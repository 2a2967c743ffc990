package repository

import (
	"database/sql"
	"fmt"

	"github.com/fleetflow/fleetflow-go/internal/models"
)

// MaintenanceRepository handles database operations for maintenance logs.
type MaintenanceRepository struct {
	db *sql.DB
}

// NewMaintenanceRepository creates a new maintenance repository.
func NewMaintenanceRepository(db *sql.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

const maintenanceJoinedColumns = `m.id, m.vehicle_id, m.service_type, m.description,
	m.cost, m.service_date, m.status, m.created_at, v.name, v.license_plate`

func scanJoinedMaintenance(row interface{ Scan(...any) error }) (*models.Maintenance, error) {
	var m models.Maintenance
	err := row.Scan(
		&m.ID, &m.VehicleID, &m.ServiceType, &m.Description,
		&m.Cost, &m.ServiceDate, &m.Status, &m.CreatedAt, &m.VehicleName, &m.LicensePlate,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List retrieves maintenance logs joined with vehicle display fields, most
// recent service date first.
func (r *MaintenanceRepository) List() ([]models.Maintenance, error) {
	rows, err := r.db.Query(`SELECT ` + maintenanceJoinedColumns + `
		FROM maintenance m
		JOIN vehicles v ON m.vehicle_id = v.id
		ORDER BY m.service_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query maintenance logs: %w", err)
	}
	defer rows.Close()

	var logs []models.Maintenance
	for rows.Next() {
		m, err := scanJoinedMaintenance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan maintenance log: %w", err)
		}
		logs = append(logs, *m)
	}

	return logs, rows.Err()
}

// GetByID retrieves a single maintenance log with display fields, or nil when
// absent.
func (r *MaintenanceRepository) GetByID(id int64) (*models.Maintenance, error) {
	m, err := scanJoinedMaintenance(r.db.QueryRow(`SELECT `+maintenanceJoinedColumns+`
		FROM maintenance m
		JOIN vehicles v ON m.vehicle_id = v.id
		WHERE m.id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get maintenance log: %w", err)
	}
	return m, nil
}

// GetForUpdate re-reads the bare maintenance row inside a transaction.
func (r *MaintenanceRepository) GetForUpdate(q Queryer, id int64) (*models.Maintenance, error) {
	var m models.Maintenance
	err := q.QueryRow(`SELECT id, vehicle_id, service_type, description, cost, service_date, status, created_at
		FROM maintenance WHERE id = ?`, id).Scan(
		&m.ID, &m.VehicleID, &m.ServiceType, &m.Description, &m.Cost, &m.ServiceDate, &m.Status, &m.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get maintenance log: %w", err)
	}
	return &m, nil
}

// Insert persists a new maintenance log and fills in its assigned ID. Runs
// against the transaction that also flips the vehicle into the shop.
func (r *MaintenanceRepository) Insert(q Queryer, m *models.Maintenance) error {
	res, err := q.Exec(`INSERT INTO maintenance
		(vehicle_id, service_type, description, cost, service_date)
		VALUES (?, ?, ?, ?, ?)`,
		m.VehicleID, m.ServiceType, m.Description, m.Cost, m.ServiceDate,
	)
	if err != nil {
		return fmt.Errorf("failed to insert maintenance log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read maintenance id: %w", err)
	}
	m.ID = id
	return nil
}

// Update overwrites status, cost and description.
func (r *MaintenanceRepository) Update(q Queryer, m *models.Maintenance) error {
	if _, err := q.Exec(`UPDATE maintenance SET status = ?, cost = ?, description = ? WHERE id = ?`,
		m.Status, m.Cost, m.Description, m.ID); err != nil {
		return fmt.Errorf("failed to update maintenance log: %w", err)
	}
	return nil
}
