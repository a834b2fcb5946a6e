package driver

import (
	"context"
	"fmt"

	"taxi-fleet-service/internal/domain/driver"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo   driver.Repository
	logger *zap.Logger
}

func NewService(repo driver.Repository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Create registers a new driver. The submitted password is stored as a
// bcrypt hash; the repository layer never sees the plaintext.
func (s *Service) Create(ctx context.Context, req *driver.CreateDriverRequest) (*driver.Driver, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	d := &driver.Driver{
		Name:          req.Name,
		LicenseNumber: req.LicenseNumber,
		Login:         req.Login,
		Password:      string(hash),
	}

	if err := s.repo.Create(ctx, d); err != nil {
		s.logger.Error("failed to create driver",
			zap.String("login", req.Login),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to create driver: %w", err)
	}

	s.logger.Info("driver created",
		zap.Int64("driver_id", d.ID),
		zap.String("login", d.Login),
	)

	return d, nil
}

// Get retrieves a driver by id.
func (s *Service) Get(ctx context.Context, id int64) (*driver.Driver, error) {
	return s.repo.GetByID(ctx, id)
}

// GetAll retrieves every active driver.
func (s *Service) GetAll(ctx context.Context) ([]driver.Driver, error) {
	return s.repo.GetAll(ctx)
}

// Update overwrites a driver's details, re-hashing the submitted password.
func (s *Service) Update(ctx context.Context, id int64, req *driver.UpdateDriverRequest) (*driver.Driver, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	d := &driver.Driver{
		ID:            id,
		Name:          req.Name,
		LicenseNumber: req.LicenseNumber,
		Login:         req.Login,
		Password:      string(hash),
	}

	if err := s.repo.Update(ctx, d); err != nil {
		s.logger.Error("failed to update driver",
			zap.Int64("driver_id", id),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to update driver: %w", err)
	}

	return d, nil
}

// Delete soft-deletes a driver. The driver disappears from every car's
// driver list, while the association rows stay behind.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete driver",
			zap.Int64("driver_id", id),
			zap.Error(err),
		)
		return false, fmt.Errorf("failed to delete driver: %w", err)
	}

	return deleted, nil
}
