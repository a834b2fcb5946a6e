package driver

// Driver represents a fleet driver. Password holds the bcrypt hash and is
// never serialized.
type Driver struct {
	ID            int64  `json:"id" db:"id"`
	Name          string `json:"name" db:"name"`
	LicenseNumber string `json:"license_number" db:"license_number"`
	Login         string `json:"login" db:"login"`
	Password      string `json:"-" db:"password"`
	IsDeleted     bool   `json:"-" db:"is_deleted"`
}
