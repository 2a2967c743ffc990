package service

import (
	"database/sql"

	"github.com/fleetflow/fleetflow-go/internal/apperr"
	"github.com/fleetflow/fleetflow-go/internal/database"
	"github.com/fleetflow/fleetflow-go/internal/models"
	"github.com/fleetflow/fleetflow-go/internal/repository"
	"github.com/fleetflow/fleetflow-go/internal/validation"
)

// MaintenanceService handles business logic for maintenance logs, including
// the vehicle status side effects: opening a log pulls the vehicle into the
// shop and removes it from dispatch eligibility; completing the log releases
// it. Both side effects run in the same transaction as the maintenance write.
type MaintenanceService struct {
	db       *sql.DB
	repo     *repository.MaintenanceRepository
	vehicles *repository.VehicleRepository
}

// NewMaintenanceService creates a new maintenance service.
func NewMaintenanceService(db *sql.DB, repo *repository.MaintenanceRepository, vehicles *repository.VehicleRepository) *MaintenanceService {
	return &MaintenanceService{db: db, repo: repo, vehicles: vehicles}
}

// List retrieves all maintenance logs.
func (s *MaintenanceService) List() ([]models.Maintenance, error) {
	return s.repo.List()
}

// Get retrieves a single maintenance log.
func (s *MaintenanceService) Get(id int64) (*models.Maintenance, error) {
	m, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, apperr.New(apperr.NotFound, "Not found")
	}
	return m, nil
}

// Create validates and records a maintenance log, forcing the vehicle into
// "In Shop".
func (s *MaintenanceService) Create(in models.MaintenanceInput) (*models.Maintenance, error) {
	if err := validation.Maintenance(in); err != nil {
		return nil, apperr.New(apperr.Validation, err.Error())
	}

	vehicle, err := s.vehicles.GetByID(s.db, in.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, apperr.New(apperr.NotFound, "Vehicle not found")
	}

	m := &models.Maintenance{
		VehicleID:   in.VehicleID,
		ServiceType: in.ServiceType,
		Description: trimmed(in.Description),
		ServiceDate: in.ServiceDate,
	}
	if in.Cost != nil {
		m.Cost = *in.Cost
	}

	err = database.Transaction(s.db, func(tx *sql.Tx) error {
		if err := s.vehicles.SetStatus(tx, in.VehicleID, models.VehicleInShop); err != nil {
			return err
		}
		return s.repo.Insert(tx, m)
	})
	if err != nil {
		return nil, err
	}

	return s.Get(m.ID)
}

// Update merges status, cost and description over the stored log. Moving the
// log to Completed forces the vehicle back to Available regardless of its
// current status.
func (s *MaintenanceService) Update(id int64, in models.MaintenanceUpdateInput) (*models.Maintenance, error) {
	if in.Status != "" && !models.ValidMaintenanceStatus(in.Status) {
		return nil, apperr.New(apperr.Validation, "Status must be Scheduled, In Progress, or Completed")
	}
	if in.Cost != nil && *in.Cost < 0 {
		return nil, apperr.New(apperr.Validation, "Cost cannot be negative")
	}

	err := database.Transaction(s.db, func(tx *sql.Tx) error {
		m, err := s.repo.GetForUpdate(tx, id)
		if err != nil {
			return err
		}
		if m == nil {
			return apperr.New(apperr.NotFound, "Not found")
		}

		if in.Status != "" {
			m.Status = models.MaintenanceStatus(in.Status)
		}
		if in.Cost != nil {
			m.Cost = *in.Cost
		}
		if in.Description != nil {
			m.Description = *in.Description
		}

		if err := s.repo.Update(tx, m); err != nil {
			return err
		}

		if in.Status == string(models.MaintenanceCompleted) {
			return s.vehicles.SetStatus(tx, m.VehicleID, models.VehicleAvailable)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(id)
}
