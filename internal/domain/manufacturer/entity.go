package manufacturer

// Manufacturer is a car maker referenced by every car in the fleet.
type Manufacturer struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Country   string `json:"country" db:"country"`
	IsDeleted bool   `json:"-" db:"is_deleted"`
}
