package manufacturer

import (
	"context"
	"fmt"

	"taxi-fleet-service/internal/domain/manufacturer"

	"go.uber.org/zap"
)

type Service struct {
	repo   manufacturer.Repository
	logger *zap.Logger
}

func NewService(repo manufacturer.Repository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Create registers a new manufacturer.
func (s *Service) Create(ctx context.Context, req *manufacturer.CreateManufacturerRequest) (*manufacturer.Manufacturer, error) {
	m := &manufacturer.Manufacturer{
		Name:    req.Name,
		Country: req.Country,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		s.logger.Error("failed to create manufacturer", zap.Error(err))
		return nil, fmt.Errorf("failed to create manufacturer: %w", err)
	}

	s.logger.Info("manufacturer created",
		zap.Int64("manufacturer_id", m.ID),
		zap.String("name", m.Name),
	)

	return m, nil
}

// Get retrieves a manufacturer by id.
func (s *Service) Get(ctx context.Context, id int64) (*manufacturer.Manufacturer, error) {
	return s.repo.GetByID(ctx, id)
}

// GetAll retrieves every active manufacturer.
func (s *Service) GetAll(ctx context.Context) ([]manufacturer.Manufacturer, error) {
	return s.repo.GetAll(ctx)
}

// Update overwrites a manufacturer's details.
func (s *Service) Update(ctx context.Context, id int64, req *manufacturer.UpdateManufacturerRequest) (*manufacturer.Manufacturer, error) {
	m := &manufacturer.Manufacturer{
		ID:      id,
		Name:    req.Name,
		Country: req.Country,
	}

	if err := s.repo.Update(ctx, m); err != nil {
		s.logger.Error("failed to update manufacturer",
			zap.Int64("manufacturer_id", id),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to update manufacturer: %w", err)
	}

	return m, nil
}

// Delete soft-deletes a manufacturer and reports whether a row transitioned.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete manufacturer",
			zap.Int64("manufacturer_id", id),
			zap.Error(err),
		)
		return false, fmt.Errorf("failed to delete manufacturer: %w", err)
	}

	return deleted, nil
}
