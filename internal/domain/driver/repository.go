package driver

import "context"

type Repository interface {
	Create(ctx context.Context, d *Driver) error
	GetByID(ctx context.Context, id int64) (*Driver, error)
	GetAll(ctx context.Context) ([]Driver, error)
	Update(ctx context.Context, d *Driver) error
	Delete(ctx context.Context, id int64) (bool, error)

	// FindByLogin is the lookup used by the authentication boundary.
	FindByLogin(ctx context.Context, login string) (*Driver, error)
}
