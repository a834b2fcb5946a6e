package car

import (
	"taxi-fleet-service/internal/domain/driver"
	"taxi-fleet-service/internal/domain/manufacturer"
)

// Car represents a fleet vehicle. Drivers is the complete set of active
// drivers assigned to the car: callers supply the desired membership on every
// create/update, and reads return only drivers that are not soft-deleted.
type Car struct {
	ID           int64                     `json:"id" db:"id"`
	Model        string                    `json:"model" db:"model"`
	Manufacturer manufacturer.Manufacturer `json:"manufacturer"`
	Drivers      []driver.Driver           `json:"drivers"`
	IsDeleted    bool                      `json:"-" db:"is_deleted"`
}
