package service

import (
	"github.com/fleetflow/fleetflow-go/internal/apperr"
	"github.com/fleetflow/fleetflow-go/internal/models"
	"github.com/fleetflow/fleetflow-go/internal/repository"
	"github.com/fleetflow/fleetflow-go/internal/validation"
)

// ExpenseService handles business logic for vehicle expenses.
type ExpenseService struct {
	db       repository.Queryer
	repo     *repository.ExpenseRepository
	vehicles *repository.VehicleRepository
	trips    *repository.TripRepository
}

// NewExpenseService creates a new expense service.
func NewExpenseService(db repository.Queryer, repo *repository.ExpenseRepository, vehicles *repository.VehicleRepository, trips *repository.TripRepository) *ExpenseService {
	return &ExpenseService{db: db, repo: repo, vehicles: vehicles, trips: trips}
}

// List retrieves expenses with optional vehicle filter.
func (s *ExpenseService) List(filter models.ExpenseFilter) ([]models.Expense, error) {
	return s.repo.List(filter)
}

// Get retrieves a single expense.
func (s *ExpenseService) Get(id int64) (*models.Expense, error) {
	e, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperr.New(apperr.NotFound, "Not found")
	}
	return e, nil
}

// Create validates and records an expense against a vehicle, optionally
// linked to a trip.
func (s *ExpenseService) Create(in models.ExpenseInput) (*models.Expense, error) {
	if err := validation.Expense(in); err != nil {
		return nil, apperr.New(apperr.Validation, err.Error())
	}

	vehicle, err := s.vehicles.GetByID(s.db, in.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, apperr.New(apperr.NotFound, "Vehicle not found")
	}

	if in.TripID != nil {
		exists, err := s.trips.Exists(*in.TripID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperr.New(apperr.NotFound, "Linked trip not found")
		}
	}

	e := &models.Expense{
		VehicleID:   in.VehicleID,
		TripID:      in.TripID,
		Type:        models.ExpenseType(in.Type),
		Cost:        in.Cost,
		ExpenseDate: in.ExpenseDate,
		Notes:       trimmed(in.Notes),
	}
	if in.Liters != nil {
		e.Liters = *in.Liters
	}

	if err := s.repo.Insert(e); err != nil {
		return nil, err
	}
	return s.Get(e.ID)
}
