package service

import (
	"strings"

	"github.com/fleetflow/fleetflow-go/internal/apperr"
	"github.com/fleetflow/fleetflow-go/internal/models"
	"github.com/fleetflow/fleetflow-go/internal/repository"
	"github.com/fleetflow/fleetflow-go/internal/validation"
)

// VehicleService handles business logic for the vehicle registry.
type VehicleService struct {
	db   repository.Queryer
	repo *repository.VehicleRepository
}

// NewVehicleService creates a new vehicle service.
func NewVehicleService(db repository.Queryer, repo *repository.VehicleRepository) *VehicleService {
	return &VehicleService{db: db, repo: repo}
}

// List retrieves vehicles with optional equality filters.
func (s *VehicleService) List(filter models.VehicleFilter) ([]models.Vehicle, error) {
	return s.repo.List(filter)
}

// Get retrieves a single vehicle.
func (s *VehicleService) Get(id int64) (*models.Vehicle, error) {
	v, err := s.repo.GetByID(s.db, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, apperr.New(apperr.NotFound, "Not found")
	}
	return v, nil
}

// Create validates and registers a new vehicle. The license plate is the
// natural key: normalized to uppercase and rejected on conflict.
func (s *VehicleService) Create(in models.VehicleInput) (*models.Vehicle, error) {
	if err := validation.Vehicle(in); err != nil {
		return nil, apperr.New(apperr.Validation, err.Error())
	}

	plate := strings.ToUpper(strings.TrimSpace(in.LicensePlate))
	exists, err := s.repo.ExistsByPlate(plate)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.New(apperr.Conflict, "License plate already exists in the system")
	}

	v := &models.Vehicle{
		Name:         strings.TrimSpace(in.Name),
		Model:        strings.TrimSpace(in.Model),
		LicensePlate: plate,
		Type:         models.VehicleType(in.Type),
		Status:       models.VehicleAvailable,
		Region:       "Default",
	}
	if in.MaxCapacityKg != nil {
		v.MaxCapacityKg = *in.MaxCapacityKg
	}
	if in.Odometer != nil {
		v.Odometer = *in.Odometer
	}
	if in.Region != "" {
		v.Region = in.Region
	}
	if in.AcquisitionCost != nil {
		v.AcquisitionCost = *in.AcquisitionCost
	}

	if err := s.repo.Insert(v); err != nil {
		return nil, err
	}
	return s.Get(v.ID)
}

// Update merges the supplied fields over the stored vehicle. Strings keep
// their prior value when empty; numeric fields keep it only when absent, so
// an explicit zero sticks.
func (s *VehicleService) Update(id int64, in models.VehicleInput) (*models.Vehicle, error) {
	v, err := s.repo.GetByID(s.db, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, apperr.New(apperr.NotFound, "Not found")
	}

	if in.Name != "" {
		v.Name = in.Name
	}
	if in.Model != "" {
		v.Model = in.Model
	}
	if in.LicensePlate != "" {
		v.LicensePlate = strings.ToUpper(strings.TrimSpace(in.LicensePlate))
	}
	if in.Type != "" {
		if !models.ValidVehicleType(in.Type) {
			return nil, apperr.New(apperr.Validation, "Type must be Truck, Van, or Bike")
		}
		v.Type = models.VehicleType(in.Type)
	}
	if in.MaxCapacityKg != nil {
		v.MaxCapacityKg = *in.MaxCapacityKg
	}
	if in.Odometer != nil {
		v.Odometer = *in.Odometer
	}
	if in.Status != "" {
		if !models.ValidVehicleStatus(in.Status) {
			return nil, apperr.New(apperr.Validation, "Status must be Available, On Trip, In Shop, or Retired")
		}
		v.Status = models.VehicleStatus(in.Status)
	}
	if in.Region != "" {
		v.Region = in.Region
	}
	if in.AcquisitionCost != nil {
		v.AcquisitionCost = *in.AcquisitionCost
	}

	if err := s.repo.Update(v); err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete removes a vehicle unless trips, expenses or maintenance logs still
// reference it.
func (s *VehicleService) Delete(id int64) error {
	v, err := s.repo.GetByID(s.db, id)
	if err != nil {
		return err
	}
	if v == nil {
		return apperr.New(apperr.NotFound, "Not found")
	}

	refs, err := s.repo.ReferenceCount(id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return apperr.New(apperr.Conflict, "Vehicle has trips, expenses or maintenance logs and cannot be deleted")
	}

	return s.repo.Delete(id)
}
