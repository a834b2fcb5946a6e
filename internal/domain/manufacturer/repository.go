package manufacturer

import "context"

type Repository interface {
	Create(ctx context.Context, m *Manufacturer) error
	GetByID(ctx context.Context, id int64) (*Manufacturer, error)
	GetAll(ctx context.Context) ([]Manufacturer, error)
	Update(ctx context.Context, m *Manufacturer) error

	// Delete soft-deletes the row and reports whether it transitioned.
	// A second delete of the same id returns false.
	Delete(ctx context.Context, id int64) (bool, error)
}
