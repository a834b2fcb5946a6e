package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	xerrors "taxi-fleet-service/internal/pkg/errors"

	"github.com/redis/go-redis/v9"
)

// Manager stores login sessions in redis, keyed by driver id and token jti.
// A token is only honored while its session record is alive; logout deletes
// the record and the TTL expires it together with the token.
type Manager struct {
	client *redis.Client
}

func NewManager(client *redis.Client) *Manager {
	return &Manager{client: client}
}

// Create stores a new session with a TTL matching the token expiry.
func (m *Manager) Create(ctx context.Context, s *Data) error {
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := m.client.Set(ctx, m.key(s.DriverID, s.JTI), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	return nil
}

// Get retrieves a live session or ErrSessionExpired when none exists.
func (m *Manager) Get(ctx context.Context, driverID int64, jti string) (*Data, error) {
	data, err := m.client.Get(ctx, m.key(driverID, jti)).Bytes()
	if err == redis.Nil {
		return nil, xerrors.ErrSessionExpired
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var s Data
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &s, nil
}

// Delete removes a session, invalidating the matching token.
func (m *Manager) Delete(ctx context.Context, driverID int64, jti string) error {
	if err := m.client.Del(ctx, m.key(driverID, jti)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (m *Manager) key(driverID int64, jti string) string {
	return fmt.Sprintf("session:%d:%s", driverID, jti)
}
