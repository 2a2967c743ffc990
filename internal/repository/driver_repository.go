package repository

import (
	"database/sql"
	"fmt"

	"github.com/fleetflow/fleetflow-go/internal/models"
)

// DriverRepository handles database operations for drivers.
type DriverRepository struct {
	db *sql.DB
}

// NewDriverRepository creates a new driver repository.
func NewDriverRepository(db *sql.DB) *DriverRepository {
	return &DriverRepository{db: db}
}

const driverColumns = `id, name, email, phone, license_number, license_category,
	license_expiry, status, safety_score, created_at`

func scanDriver(row interface{ Scan(...any) error }) (*models.Driver, error) {
	var d models.Driver
	err := row.Scan(
		&d.ID, &d.Name, &d.Email, &d.Phone, &d.LicenseNumber, &d.LicenseCategory,
		&d.LicenseExpiry, &d.Status, &d.SafetyScore, &d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// List retrieves all drivers, newest first.
func (r *DriverRepository) List() ([]models.Driver, error) {
	rows, err := r.db.Query(`SELECT ` + driverColumns + ` FROM drivers ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query drivers: %w", err)
	}
	defer rows.Close()

	var drivers []models.Driver
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan driver: %w", err)
		}
		drivers = append(drivers, *d)
	}

	return drivers, rows.Err()
}

// GetByID retrieves a single driver, or nil when absent.
func (r *DriverRepository) GetByID(q Queryer, id int64) (*models.Driver, error) {
	d, err := scanDriver(q.QueryRow(`SELECT `+driverColumns+` FROM drivers WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	return d, nil
}

// ExistsByLicense reports whether a driver with the given license number is
// rostered.
func (r *DriverRepository) ExistsByLicense(licenseNumber string) (bool, error) {
	var id int64
	err := r.db.QueryRow("SELECT id FROM drivers WHERE license_number = ?", licenseNumber).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check license number: %w", err)
	}
	return true, nil
}

// Insert persists a new driver and fills in its assigned ID.
func (r *DriverRepository) Insert(d *models.Driver) error {
	res, err := r.db.Exec(`INSERT INTO drivers
		(name, email, phone, license_number, license_category, license_expiry, status, safety_score)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		d.Name, d.Email, d.Phone, d.LicenseNumber, d.LicenseCategory, d.LicenseExpiry, d.Status, d.SafetyScore,
	)
	if err != nil {
		return fmt.Errorf("failed to insert driver: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read driver id: %w", err)
	}
	d.ID = id
	return nil
}

// Update overwrites all mutable columns of a driver.
func (r *DriverRepository) Update(d *models.Driver) error {
	_, err := r.db.Exec(`UPDATE drivers SET
		name = ?, email = ?, phone = ?, license_number = ?, license_category = ?,
		license_expiry = ?, status = ?, safety_score = ?
		WHERE id = ?`,
		d.Name, d.Email, d.Phone, d.LicenseNumber, d.LicenseCategory,
		d.LicenseExpiry, d.Status, d.SafetyScore, d.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update driver: %w", err)
	}
	return nil
}

// SetStatus updates only the status column.
func (r *DriverRepository) SetStatus(q Queryer, id int64, status models.DriverStatus) error {
	if _, err := q.Exec("UPDATE drivers SET status = ? WHERE id = ?", status, id); err != nil {
		return fmt.Errorf("failed to set driver status: %w", err)
	}
	return nil
}

// ReferenceCount counts trips pointing at the driver.
func (r *DriverRepository) ReferenceCount(id int64) (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM trips WHERE driver_id = ?", id).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count driver references: %w", err)
	}
	return count, nil
}

// Delete removes a driver row.
func (r *DriverRepository) Delete(id int64) error {
	if _, err := r.db.Exec("DELETE FROM drivers WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete driver: %w", err)
	}
	return nil
}
