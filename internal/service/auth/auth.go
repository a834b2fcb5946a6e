package auth

import (
	"context"
	"fmt"
	"time"

	"taxi-fleet-service/internal/domain/driver"
	xerrors "taxi-fleet-service/internal/pkg/errors"
	"taxi-fleet-service/internal/pkg/jwt"
	"taxi-fleet-service/internal/pkg/session"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SessionStore is the session surface the service needs; satisfied by
// *session.Manager.
type SessionStore interface {
	Create(ctx context.Context, s *session.Data) error
	Get(ctx context.Context, driverID int64, jti string) (*session.Data, error)
	Delete(ctx context.Context, driverID int64, jti string) error
}

type Service struct {
	driverRepo driver.Repository
	jwtManager *jwt.Manager
	sessions   SessionStore
	logger     *zap.Logger
}

func NewService(
	driverRepo driver.Repository,
	jwtManager *jwt.Manager,
	sessions SessionStore,
	logger *zap.Logger,
) *Service {
	return &Service{
		driverRepo: driverRepo,
		jwtManager: jwtManager,
		sessions:   sessions,
		logger:     logger,
	}
}

// Login authenticates a driver by login and password. An unknown login and a
// password mismatch both fail with ErrAuthentication; the attempt is logged
// with the submitted login, never the password.
func (s *Service) Login(ctx context.Context, login, password string) (*driver.LoginResponse, error) {
	d, err := s.driverRepo.FindByLogin(ctx, login)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			s.logger.Warn("failed login attempt", zap.String("login", login))
			return nil, xerrors.ErrAuthentication
		}
		return nil, fmt.Errorf("failed to look up driver: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(d.Password), []byte(password)); err != nil {
		s.logger.Warn("failed login attempt", zap.String("login", login))
		return nil, xerrors.ErrAuthentication
	}

	token, jti, err := s.jwtManager.Generate(d.ID, d.Login)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	now := time.Now()
	err = s.sessions.Create(ctx, &session.Data{
		DriverID:  d.ID,
		JTI:       jti,
		Login:     d.Login,
		CreatedAt: now,
		ExpiresAt: now.Add(s.jwtManager.TTL()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Info("driver logged in",
		zap.Int64("driver_id", d.ID),
		zap.String("login", d.Login),
	)

	return &driver.LoginResponse{Token: token, Driver: d}, nil
}

// Authenticate verifies a bearer token and checks that its session is still
// alive. Used by the auth middleware on every protected request.
func (s *Service) Authenticate(ctx context.Context, token string) (*jwt.Claims, error) {
	claims, err := s.jwtManager.Verify(token)
	if err != nil {
		return nil, xerrors.Wrap(xerrors.ErrUnauthorized, err.Error())
	}

	if _, err := s.sessions.Get(ctx, claims.DriverID, claims.ID); err != nil {
		return nil, err
	}

	return claims, nil
}

// Logout invalidates the session behind the token's jti.
func (s *Service) Logout(ctx context.Context, driverID int64, jti string) error {
	if err := s.sessions.Delete(ctx, driverID, jti); err != nil {
		return err
	}

	s.logger.Info("driver logged out", zap.Int64("driver_id", driverID))
	return nil
}
