package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/fleetflow/fleetflow-go/internal/models"
)

// ExpenseRepository handles database operations for expenses.
type ExpenseRepository struct {
	db *sql.DB
}

// NewExpenseRepository creates a new expense repository.
func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

const expenseJoinedColumns = `e.id, e.vehicle_id, e.trip_id, e.type, e.liters,
	e.cost, e.expense_date, e.notes, e.created_at, v.name, v.license_plate`

func scanJoinedExpense(row interface{ Scan(...any) error }) (*models.Expense, error) {
	var e models.Expense
	var tripID sql.NullInt64
	err := row.Scan(
		&e.ID, &e.VehicleID, &tripID, &e.Type, &e.Liters,
		&e.Cost, &e.ExpenseDate, &e.Notes, &e.CreatedAt, &e.VehicleName, &e.LicensePlate,
	)
	if err != nil {
		return nil, err
	}
	if tripID.Valid {
		e.TripID = &tripID.Int64
	}
	return &e, nil
}

// List retrieves expenses joined with vehicle display fields, optionally
// filtered by vehicle, most recent expense date first.
func (r *ExpenseRepository) List(filter models.ExpenseFilter) ([]models.Expense, error) {
	query := `SELECT ` + expenseJoinedColumns + `
		FROM expenses e
		JOIN vehicles v ON e.vehicle_id = v.id`

	var conditions []string
	var args []any

	if filter.VehicleID > 0 {
		conditions = append(conditions, "e.vehicle_id = ?")
		args = append(args, filter.VehicleID)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY e.expense_date DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		e, err := scanJoinedExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, *e)
	}

	return expenses, rows.Err()
}

// GetByID retrieves a single expense with display fields, or nil when absent.
func (r *ExpenseRepository) GetByID(id int64) (*models.Expense, error) {
	e, err := scanJoinedExpense(r.db.QueryRow(`SELECT `+expenseJoinedColumns+`
		FROM expenses e
		JOIN vehicles v ON e.vehicle_id = v.id
		WHERE e.id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return e, nil
}

// Insert persists a new expense and fills in its assigned ID.
func (r *ExpenseRepository) Insert(e *models.Expense) error {
	var tripID any
	if e.TripID != nil {
		tripID = *e.TripID
	}
	res, err := r.db.Exec(`INSERT INTO expenses
		(vehicle_id, trip_id, type, liters, cost, expense_date, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.VehicleID, tripID, e.Type, e.Liters, e.Cost, e.ExpenseDate, e.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read expense id: %w", err)
	}
	e.ID = id
	return nil
}
