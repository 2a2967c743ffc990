package service

import (
	"strings"

	"github.com/fleetflow/fleetflow-go/internal/apperr"
	"github.com/fleetflow/fleetflow-go/internal/models"
	"github.com/fleetflow/fleetflow-go/internal/repository"
	"github.com/fleetflow/fleetflow-go/internal/validation"
)

// DriverService handles business logic for the driver roster.
type DriverService struct {
	db   repository.Queryer
	repo *repository.DriverRepository
}

// NewDriverService creates a new driver service.
func NewDriverService(db repository.Queryer, repo *repository.DriverRepository) *DriverService {
	return &DriverService{db: db, repo: repo}
}

// List retrieves all drivers.
func (s *DriverService) List() ([]models.Driver, error) {
	return s.repo.List()
}

// Get retrieves a single driver.
func (s *DriverService) Get(id int64) (*models.Driver, error) {
	d, err := s.repo.GetByID(s.db, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.New(apperr.NotFound, "Not found")
	}
	return d, nil
}

// Create validates and rosters a new driver. The license number is the
// natural key and is rejected on conflict.
func (s *DriverService) Create(in models.DriverInput) (*models.Driver, error) {
	if err := validation.Driver(in); err != nil {
		return nil, apperr.New(apperr.Validation, err.Error())
	}

	licenseNumber := strings.TrimSpace(in.LicenseNumber)
	exists, err := s.repo.ExistsByLicense(licenseNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.New(apperr.Conflict, "A driver with this license number already exists")
	}

	d := &models.Driver{
		Name:            strings.TrimSpace(in.Name),
		Email:           strings.TrimSpace(in.Email),
		Phone:           strings.TrimSpace(in.Phone),
		LicenseNumber:   licenseNumber,
		LicenseCategory: models.VehicleType(in.LicenseCategory),
		LicenseExpiry:   in.LicenseExpiry,
		Status:          models.DriverOffDuty,
		SafetyScore:     100,
	}
	if in.SafetyScore != nil {
		d.SafetyScore = *in.SafetyScore
	}

	if err := s.repo.Insert(d); err != nil {
		return nil, err
	}
	return s.Get(d.ID)
}

// Update merges the supplied fields over the stored driver. Status changes
// here are the manual override path; dispatch transitions set driver status
// through the dispatch engine.
func (s *DriverService) Update(id int64, in models.DriverInput) (*models.Driver, error) {
	d, err := s.repo.GetByID(s.db, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.New(apperr.NotFound, "Not found")
	}

	if in.Name != "" {
		d.Name = in.Name
	}
	if in.Email != "" {
		if !validation.ValidEmail(in.Email) {
			return nil, apperr.New(apperr.Validation, "Invalid email format")
		}
		d.Email = in.Email
	}
	if in.Phone != "" {
		d.Phone = in.Phone
	}
	if in.LicenseNumber != "" {
		d.LicenseNumber = strings.TrimSpace(in.LicenseNumber)
	}
	if in.LicenseCategory != "" {
		if !models.ValidVehicleType(in.LicenseCategory) {
			return nil, apperr.New(apperr.Validation, "License category must be Truck, Van, or Bike")
		}
		d.LicenseCategory = models.VehicleType(in.LicenseCategory)
	}
	if in.LicenseExpiry != "" {
		if !validation.ValidDate(in.LicenseExpiry) {
			return nil, apperr.New(apperr.Validation, "Valid license expiry date is required")
		}
		d.LicenseExpiry = in.LicenseExpiry
	}
	if in.Status != "" {
		if !models.ValidDriverStatus(in.Status) {
			return nil, apperr.New(apperr.Validation, "Status must be On Duty, Off Duty, On Trip, or Suspended")
		}
		d.Status = models.DriverStatus(in.Status)
	}
	if in.SafetyScore != nil {
		if *in.SafetyScore < 0 || *in.SafetyScore > 100 {
			return nil, apperr.New(apperr.Validation, "Safety score must be between 0 and 100")
		}
		d.SafetyScore = *in.SafetyScore
	}

	if err := s.repo.Update(d); err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete removes a driver unless trips still reference them.
func (s *DriverService) Delete(id int64) error {
	d, err := s.repo.GetByID(s.db, id)
	if err != nil {
		return err
	}
	if d == nil {
		return apperr.New(apperr.NotFound, "Not found")
	}

	refs, err := s.repo.ReferenceCount(id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return apperr.New(apperr.Conflict, "Driver has trips on record and cannot be deleted")
	}

	return s.repo.Delete(id)
}
