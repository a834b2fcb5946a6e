package car

import "context"

type Repository interface {
	// Create inserts the car row and synchronizes the cars_drivers join
	// table with c.Drivers in the same transaction.
	Create(ctx context.Context, c *Car) error

	GetByID(ctx context.Context, id int64) (*Car, error)
	GetAll(ctx context.Context) ([]Car, error)

	// Update overwrites the car row and reconciles the join table so the
	// live association rows exactly match c.Drivers.
	Update(ctx context.Context, c *Car) error

	Delete(ctx context.Context, id int64) (bool, error)

	// GetAllByDriver returns the active cars assigned to an active driver.
	GetAllByDriver(ctx context.Context, driverID int64) ([]Car, error)
}
