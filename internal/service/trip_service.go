package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/fleetflow/fleetflow-go/internal/apperr"
	"github.com/fleetflow/fleetflow-go/internal/database"
	"github.com/fleetflow/fleetflow-go/internal/models"
	"github.com/fleetflow/fleetflow-go/internal/repository"
	"github.com/fleetflow/fleetflow-go/internal/validation"
)

// TripService is the dispatch engine. It owns trip creation preconditions and
// the status transitions that synchronize trip, vehicle and driver rows.
type TripService struct {
	db       *sql.DB
	trips    *repository.TripRepository
	vehicles *repository.VehicleRepository
	drivers  *repository.DriverRepository
}

// NewTripService creates a new trip service.
func NewTripService(db *sql.DB, trips *repository.TripRepository, vehicles *repository.VehicleRepository, drivers *repository.DriverRepository) *TripService {
	return &TripService{db: db, trips: trips, vehicles: vehicles, drivers: drivers}
}

// List retrieves trips with optional status filter.
func (s *TripService) List(filter models.TripFilter) ([]models.Trip, error) {
	return s.trips.List(filter)
}

// Get retrieves a single trip.
func (s *TripService) Get(id int64) (*models.Trip, error) {
	t, err := s.trips.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperr.New(apperr.NotFound, "Not found")
	}
	return t, nil
}

// Create runs the assignment preconditions in order and inserts a Draft trip.
// The vehicle odometer is snapshotted as start_odometer; vehicle and driver
// statuses stay untouched until dispatch.
func (s *TripService) Create(in models.TripInput) (*models.Trip, error) {
	if err := validation.Trip(in); err != nil {
		return nil, apperr.New(apperr.Validation, err.Error())
	}

	vehicle, err := s.vehicles.GetByID(s.db, in.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, apperr.New(apperr.NotFound, "Vehicle not found")
	}
	if vehicle.Status != models.VehicleAvailable {
		return nil, apperr.New(apperr.BusinessRule,
			fmt.Sprintf("Vehicle is currently %q and cannot be assigned", vehicle.Status))
	}

	var weight float64
	if in.CargoWeightKg != nil {
		weight = *in.CargoWeightKg
	}
	if weight > vehicle.MaxCapacityKg {
		return nil, apperr.New(apperr.BusinessRule,
			fmt.Sprintf("Cargo weight (%gkg) exceeds vehicle max capacity (%gkg)", weight, vehicle.MaxCapacityKg))
	}

	driver, err := s.drivers.GetByID(s.db, in.DriverID)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, apperr.New(apperr.NotFound, "Driver not found")
	}
	if driver.Status == models.DriverOnTrip {
		return nil, apperr.New(apperr.BusinessRule, "Driver is currently on another trip")
	}
	if driver.Status == models.DriverSuspended {
		return nil, apperr.New(apperr.BusinessRule, "Driver is suspended and cannot be assigned")
	}

	today := time.Now().Format("2006-01-02")
	if driver.LicenseExpiry < today {
		return nil, apperr.New(apperr.BusinessRule,
			fmt.Sprintf("Driver's license expired on %s and cannot be assigned to a trip", driver.LicenseExpiry))
	}

	if driver.LicenseCategory != vehicle.Type {
		return nil, apperr.New(apperr.BusinessRule,
			fmt.Sprintf("Driver license category (%s) does not match vehicle type (%s)", driver.LicenseCategory, vehicle.Type))
	}

	t := &models.Trip{
		VehicleID:        in.VehicleID,
		DriverID:         in.DriverID,
		Origin:           trimmed(in.Origin),
		Destination:      trimmed(in.Destination),
		CargoWeightKg:    weight,
		CargoDescription: trimmed(in.CargoDescription),
		Status:           models.TripDraft,
		StartOdometer:    vehicle.Odometer,
	}
	if in.Revenue != nil {
		t.Revenue = *in.Revenue
	}

	if err := s.trips.Insert(t); err != nil {
		return nil, err
	}
	return s.Get(t.ID)
}

// Update applies a status transition, or a plain revenue update when no
// status is supplied. Transitions run as one transaction across the trip,
// vehicle and driver rows; the trip is re-read inside the transaction so
// concurrent transitions on the same trip cannot both succeed.
func (s *TripService) Update(id int64, in models.TripUpdateInput) (*models.Trip, error) {
	if in.Status == "" {
		return s.genericUpdate(id, in)
	}
	if !models.ValidTripStatus(in.Status) {
		return nil, apperr.New(apperr.Validation,
			fmt.Sprintf("Unknown trip status %q", in.Status))
	}
	target := models.TripStatus(in.Status)

	err := database.Transaction(s.db, func(tx *sql.Tx) error {
		trip, err := s.trips.GetForUpdate(tx, id)
		if err != nil {
			return err
		}
		if trip == nil {
			return apperr.New(apperr.NotFound, "Not found")
		}
		if !models.CanTransition(trip.Status, target) {
			return apperr.New(apperr.BusinessRule,
				fmt.Sprintf("Trip cannot move from %s to %s", trip.Status, target))
		}

		switch target {
		case models.TripDispatched:
			return s.dispatch(tx, trip)
		case models.TripCompleted:
			return s.complete(tx, trip, in)
		case models.TripCancelled:
			return s.cancel(tx, trip)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(id)
}

// dispatch commits the vehicle and driver to the trip.
func (s *TripService) dispatch(tx *sql.Tx, trip *models.Trip) error {
	if err := s.vehicles.SetStatus(tx, trip.VehicleID, models.VehicleOnTrip); err != nil {
		return err
	}
	if err := s.drivers.SetStatus(tx, trip.DriverID, models.DriverOnTrip); err != nil {
		return err
	}
	return s.trips.MarkDispatched(tx, trip.ID)
}

// complete releases the vehicle and driver and records the final odometer and
// revenue. A missing end_odometer falls back to the start snapshot, leaving
// the vehicle odometer unchanged rather than incremented.
func (s *TripService) complete(tx *sql.Tx, trip *models.Trip, in models.TripUpdateInput) error {
	endOdometer := trip.StartOdometer
	if in.EndOdometer != nil {
		endOdometer = *in.EndOdometer
	}
	revenue := trip.Revenue
	if in.Revenue != nil {
		revenue = *in.Revenue
	}

	if err := s.vehicles.SetStatusAndOdometer(tx, trip.VehicleID, models.VehicleAvailable, endOdometer); err != nil {
		return err
	}
	if err := s.drivers.SetStatus(tx, trip.DriverID, models.DriverOnDuty); err != nil {
		return err
	}
	return s.trips.MarkCompleted(tx, trip.ID, endOdometer, revenue)
}

// cancel abandons the trip. Vehicle and driver are only released when the
// trip had been dispatched; a Draft never held them.
func (s *TripService) cancel(tx *sql.Tx, trip *models.Trip) error {
	if trip.Status == models.TripDispatched {
		if err := s.vehicles.SetStatus(tx, trip.VehicleID, models.VehicleAvailable); err != nil {
			return err
		}
		if err := s.drivers.SetStatus(tx, trip.DriverID, models.DriverOnDuty); err != nil {
			return err
		}
	}
	return s.trips.MarkCancelled(tx, trip.ID)
}

// genericUpdate is the non-transition path: only revenue is writable.
func (s *TripService) genericUpdate(id int64, in models.TripUpdateInput) (*models.Trip, error) {
	trip, err := s.trips.GetByID(id)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, apperr.New(apperr.NotFound, "Not found")
	}
	if in.Revenue != nil {
		if *in.Revenue < 0 {
			return nil, apperr.New(apperr.Validation, "Revenue cannot be negative")
		}
		if err := s.trips.UpdateRevenue(id, *in.Revenue); err != nil {
			return nil, err
		}
	}
	return s.Get(id)
}
