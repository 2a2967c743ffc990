package database

import (
	"database/sql"
	"fmt"
)

// Migration represents one versioned schema change.
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations is the ordered schema history. The schema ships with the binary,
// so migrations are embedded rather than loaded from a directory.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "initial_schema",
		SQL: `
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			name TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'dispatcher' CHECK(role IN ('manager','dispatcher','safety_officer','analyst')),
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS vehicles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			model TEXT NOT NULL,
			license_plate TEXT UNIQUE NOT NULL,
			type TEXT NOT NULL CHECK(type IN ('Truck','Van','Bike')),
			max_capacity_kg REAL NOT NULL DEFAULT 0,
			odometer INTEGER NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'Available' CHECK(status IN ('Available','On Trip','In Shop','Retired')),
			region TEXT DEFAULT 'Default',
			acquisition_cost REAL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS drivers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			email TEXT,
			phone TEXT,
			license_number TEXT UNIQUE NOT NULL,
			license_category TEXT NOT NULL CHECK(license_category IN ('Truck','Van','Bike')),
			license_expiry DATE NOT NULL,
			status TEXT NOT NULL DEFAULT 'Off Duty' CHECK(status IN ('On Duty','Off Duty','On Trip','Suspended')),
			safety_score REAL DEFAULT 100.0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS trips (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			vehicle_id INTEGER NOT NULL,
			driver_id INTEGER NOT NULL,
			origin TEXT NOT NULL,
			destination TEXT NOT NULL,
			cargo_weight_kg REAL NOT NULL DEFAULT 0,
			cargo_description TEXT,
			status TEXT NOT NULL DEFAULT 'Draft' CHECK(status IN ('Draft','Dispatched','Completed','Cancelled')),
			start_odometer INTEGER DEFAULT 0,
			end_odometer INTEGER,
			revenue REAL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			dispatched_at DATETIME,
			completed_at DATETIME,
			FOREIGN KEY (vehicle_id) REFERENCES vehicles(id),
			FOREIGN KEY (driver_id) REFERENCES drivers(id)
		);

		CREATE TABLE IF NOT EXISTS maintenance (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			vehicle_id INTEGER NOT NULL,
			service_type TEXT NOT NULL,
			description TEXT,
			cost REAL NOT NULL DEFAULT 0,
			service_date DATE NOT NULL,
			status TEXT NOT NULL DEFAULT 'In Progress' CHECK(status IN ('Scheduled','In Progress','Completed')),
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (vehicle_id) REFERENCES vehicles(id)
		);

		CREATE TABLE IF NOT EXISTS expenses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			vehicle_id INTEGER NOT NULL,
			trip_id INTEGER,
			type TEXT NOT NULL DEFAULT 'Fuel' CHECK(type IN ('Fuel','Toll','Other')),
			liters REAL DEFAULT 0,
			cost REAL NOT NULL DEFAULT 0,
			expense_date DATE NOT NULL,
			notes TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (vehicle_id) REFERENCES vehicles(id),
			FOREIGN KEY (trip_id) REFERENCES trips(id)
		);
		`,
	},
	{
		Version: 2,
		Name:    "dispatch_indexes",
		SQL: `
		CREATE INDEX IF NOT EXISTS idx_trips_vehicle ON trips(vehicle_id);
		CREATE INDEX IF NOT EXISTS idx_trips_driver ON trips(driver_id);
		CREATE INDEX IF NOT EXISTS idx_trips_status ON trips(status);
		CREATE INDEX IF NOT EXISTS idx_expenses_vehicle ON expenses(vehicle_id);
		CREATE INDEX IF NOT EXISTS idx_maintenance_vehicle ON maintenance(vehicle_id);
		`,
	},
}

// Migrate applies all pending migrations in version order. Safe to call on
// every startup.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := appliedMigrations(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if err := applyMigration(db, m); err != nil {
			return err
		}
	}

	return nil
}

func appliedMigrations(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}

	return applied, rows.Err()
}

func applyMigration(db *sql.DB, m Migration) error {
	return Transaction(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(m.SQL); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
		if _, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
		return nil
	})
}
