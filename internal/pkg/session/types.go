package session

import "time"

// Data is the session record stored in redis for every issued token.
type Data struct {
	DriverID  int64     `json:"driver_id"`
	JTI       string    `json:"jti"`
	Login     string    `json:"login"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
