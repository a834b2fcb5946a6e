package car

import (
	"context"
	"fmt"

	"taxi-fleet-service/internal/domain/car"
	"taxi-fleet-service/internal/domain/driver"
	"taxi-fleet-service/internal/domain/manufacturer"
	xerrors "taxi-fleet-service/internal/pkg/errors"

	"go.uber.org/zap"
)

type Service struct {
	carRepo          car.Repository
	manufacturerRepo manufacturer.Repository
	driverRepo       driver.Repository
	logger           *zap.Logger
}

func NewService(
	carRepo car.Repository,
	manufacturerRepo manufacturer.Repository,
	driverRepo driver.Repository,
	logger *zap.Logger,
) *Service {
	return &Service{
		carRepo:          carRepo,
		manufacturerRepo: manufacturerRepo,
		driverRepo:       driverRepo,
		logger:           logger,
	}
}

// Create registers a new car with the requested driver assignment. The
// manufacturer and every referenced driver must exist and be active.
func (s *Service) Create(ctx context.Context, req *car.CreateCarRequest) (*car.Car, error) {
	c, err := s.buildCar(ctx, 0, req.Model, req.ManufacturerID, req.DriverIDs)
	if err != nil {
		return nil, err
	}

	if err := s.carRepo.Create(ctx, c); err != nil {
		s.logger.Error("failed to create car",
			zap.String("model", req.Model),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to create car: %w", err)
	}

	s.logger.Info("car created",
		zap.Int64("car_id", c.ID),
		zap.String("model", c.Model),
		zap.Int("drivers", len(c.Drivers)),
	)

	return c, nil
}

// Get retrieves a car by id.
func (s *Service) Get(ctx context.Context, id int64) (*car.Car, error) {
	return s.carRepo.GetByID(ctx, id)
}

// GetAll retrieves every active car.
func (s *Service) GetAll(ctx context.Context) ([]car.Car, error) {
	return s.carRepo.GetAll(ctx)
}

// Update overwrites the car and replaces its driver assignment with the
// requested set. An empty set unassigns every driver.
func (s *Service) Update(ctx context.Context, id int64, req *car.UpdateCarRequest) (*car.Car, error) {
	c, err := s.buildCar(ctx, id, req.Model, req.ManufacturerID, req.DriverIDs)
	if err != nil {
		return nil, err
	}

	if err := s.carRepo.Update(ctx, c); err != nil {
		s.logger.Error("failed to update car",
			zap.Int64("car_id", id),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to update car: %w", err)
	}

	return c, nil
}

// Delete soft-deletes a car.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.carRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete car",
			zap.Int64("car_id", id),
			zap.Error(err),
		)
		return false, fmt.Errorf("failed to delete car: %w", err)
	}

	return deleted, nil
}

// GetAllByDriver retrieves the cars assigned to a driver.
func (s *Service) GetAllByDriver(ctx context.Context, driverID int64) ([]car.Car, error) {
	return s.carRepo.GetAllByDriver(ctx, driverID)
}

// buildCar resolves the request into a full entity: the manufacturer is
// verified, duplicate driver ids are collapsed and each remaining driver is
// resolved to its active record.
func (s *Service) buildCar(ctx context.Context, id int64, model string, manufacturerID int64, driverIDs []int64) (*car.Car, error) {
	m, err := s.manufacturerRepo.GetByID(ctx, manufacturerID)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			return nil, fmt.Errorf("manufacturer %d: %w", manufacturerID, xerrors.ErrInvalidInput)
		}
		return nil, fmt.Errorf("failed to resolve manufacturer: %w", err)
	}

	drivers := make([]driver.Driver, 0, len(driverIDs))
	seen := make(map[int64]bool, len(driverIDs))
	for _, driverID := range driverIDs {
		if seen[driverID] {
			continue
		}
		seen[driverID] = true

		d, err := s.driverRepo.GetByID(ctx, driverID)
		if err != nil {
			if xerrors.Is(err, xerrors.ErrNotFound) {
				return nil, fmt.Errorf("driver %d: %w", driverID, xerrors.ErrInvalidInput)
			}
			return nil, fmt.Errorf("failed to resolve driver: %w", err)
		}
		drivers = append(drivers, *d)
	}

	return &car.Car{
		ID:           id,
		Model:        model,
		Manufacturer: *m,
		Drivers:      drivers,
	}, nil
}
