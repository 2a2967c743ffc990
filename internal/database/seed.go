package database

import (
	"database/sql"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Seed loads a small demo fleet when the database is empty. It runs once
// during startup and is a no-op as soon as any user exists.
func Seed(db *sql.DB) error {
	var userCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&userCount); err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if userCount > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	return Transaction(db, func(tx *sql.Tx) error {
		users := [][]any{
			{"manager@fleetflow.com", string(hash), "Fleet Manager", "manager"},
			{"dispatcher@fleetflow.com", string(hash), "John Dispatcher", "dispatcher"},
			{"safety@fleetflow.com", string(hash), "Safety Officer", "safety_officer"},
			{"analyst@fleetflow.com", string(hash), "Data Analyst", "analyst"},
		}
		for _, u := range users {
			if _, err := tx.Exec("INSERT INTO users (email, password_hash, name, role) VALUES (?, ?, ?, ?)", u...); err != nil {
				return fmt.Errorf("failed to seed user: %w", err)
			}
		}

		vehicles := [][]any{
			{"Truck-01", "Volvo FH16", "TRK-1001", "Truck", 5000, 125000, "Available", "North", 85000},
			{"Truck-02", "Scania R500", "TRK-1002", "Truck", 4500, 98000, "On Trip", "South", 78000},
			{"Van-01", "Ford Transit", "VAN-2001", "Van", 1200, 45000, "Available", "East", 35000},
			{"Van-02", "Mercedes Sprinter", "VAN-2002", "Van", 1500, 62000, "In Shop", "West", 42000},
			{"Van-03", "Renault Master", "VAN-2003", "Van", 1300, 38000, "Available", "North", 38000},
			{"Bike-01", "Honda CB300", "BKE-3001", "Bike", 50, 12000, "Available", "East", 5000},
			{"Bike-02", "Yamaha FZ25", "BKE-3002", "Bike", 40, 8500, "On Trip", "South", 4500},
			{"Truck-03", "MAN TGX", "TRK-1003", "Truck", 6000, 210000, "Retired", "West", 92000},
		}
		for _, v := range vehicles {
			if _, err := tx.Exec(`INSERT INTO vehicles
				(name, model, license_plate, type, max_capacity_kg, odometer, status, region, acquisition_cost)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`, v...); err != nil {
				return fmt.Errorf("failed to seed vehicle: %w", err)
			}
		}

		drivers := [][]any{
			{"Alex Rivera", "alex@fleet.com", "555-0101", "DL-VAN-001", "Van", "2027-06-15", "On Duty", 95},
			{"Maria Santos", "maria@fleet.com", "555-0102", "DL-TRK-002", "Truck", "2026-12-01", "On Trip", 88},
			{"James Chen", "james@fleet.com", "555-0103", "DL-TRK-003", "Truck", "2025-03-10", "Off Duty", 72},
			{"Sara Patel", "sara@fleet.com", "555-0104", "DL-VAN-004", "Van", "2027-09-20", "On Duty", 98},
			{"Mike Johnson", "mike@fleet.com", "555-0105", "DL-BKE-005", "Bike", "2026-08-30", "On Trip", 82},
			{"Lisa Wong", "lisa@fleet.com", "555-0106", "DL-VAN-006", "Van", "2026-01-01", "Suspended", 45},
		}
		for _, d := range drivers {
			if _, err := tx.Exec(`INSERT INTO drivers
				(name, email, phone, license_number, license_category, license_expiry, status, safety_score)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`, d...); err != nil {
				return fmt.Errorf("failed to seed driver: %w", err)
			}
		}

		trips := [][]any{
			{2, 2, "Mumbai", "Delhi", 3800, "Electronics", "Dispatched", 98000, nil, 15000, "2026-02-18", nil},
			{7, 5, "Pune", "Mumbai", 35, "Documents", "Dispatched", 8500, nil, 1200, "2026-02-19", nil},
			{1, 1, "Chennai", "Bangalore", 4200, "Textiles", "Completed", 120000, 124500, 18000, "2026-02-10", "2026-02-12"},
			{3, 4, "Hyderabad", "Vizag", 800, "Food Supplies", "Completed", 42000, 43200, 8500, "2026-02-05", "2026-02-06"},
			{5, 1, "Jaipur", "Udaipur", 1100, "Furniture", "Draft", 38000, nil, 9500, "2026-02-20", nil},
		}
		for _, t := range trips {
			if _, err := tx.Exec(`INSERT INTO trips
				(vehicle_id, driver_id, origin, destination, cargo_weight_kg, cargo_description, status, start_odometer, end_odometer, revenue, created_at, completed_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, t...); err != nil {
				return fmt.Errorf("failed to seed trip: %w", err)
			}
		}

		maintenance := [][]any{
			{4, "Oil Change", "Regular oil change & filter replacement", 2500, "2026-02-18", "In Progress"},
			{1, "Tire Rotation", "All 6 tires rotated and balanced", 4500, "2026-02-01", "Completed"},
			{8, "Engine Overhaul", "Complete engine rebuild at end of life", 45000, "2026-01-15", "Completed"},
			{3, "Brake Inspection", "Front and rear brake pads checked", 1200, "2026-02-25", "Scheduled"},
		}
		for _, m := range maintenance {
			if _, err := tx.Exec(`INSERT INTO maintenance
				(vehicle_id, service_type, description, cost, service_date, status)
				VALUES (?, ?, ?, ?, ?, ?)`, m...); err != nil {
				return fmt.Errorf("failed to seed maintenance: %w", err)
			}
		}

		expenses := [][]any{
			{1, 3, "Fuel", 180, 16200, "2026-02-11", "Diesel fill-up en route"},
			{2, 1, "Fuel", 220, 19800, "2026-02-18", "Full tank before dispatch"},
			{3, 4, "Fuel", 45, 4050, "2026-02-05", "City driving fuel"},
			{7, 2, "Fuel", 8, 800, "2026-02-19", "Bike petrol"},
			{2, 1, "Toll", 0, 1500, "2026-02-18", "Highway toll Mumbai-Delhi"},
			{1, 3, "Toll", 0, 800, "2026-02-11", "Expressway toll"},
		}
		for _, e := range expenses {
			if _, err := tx.Exec(`INSERT INTO expenses
				(vehicle_id, trip_id, type, liters, cost, expense_date, notes)
				VALUES (?, ?, ?, ?, ?, ?, ?)`, e...); err != nil {
				return fmt.Errorf("failed to seed expense: %w", err)
			}
		}

		return nil
	})
}
