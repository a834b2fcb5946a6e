package postgres

import (
	"context"
	"errors"
	"fmt"

	"taxi-fleet-service/internal/domain/manufacturer"
	xerrors "taxi-fleet-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ManufacturerRepository struct {
	db *pgxpool.Pool
}

func NewManufacturerRepository(db *pgxpool.Pool) *ManufacturerRepository {
	return &ManufacturerRepository{db: db}
}

// Create inserts a new manufacturer and assigns the generated id back onto m.
func (r *ManufacturerRepository) Create(ctx context.Context, m *manufacturer.Manufacturer) error {
	query := `INSERT INTO manufacturers (name, country) VALUES ($1, $2) RETURNING id`

	if err := r.db.QueryRow(ctx, query, m.Name, m.Country).Scan(&m.ID); err != nil {
		return fmt.Errorf("failed to create manufacturer: %w", err)
	}

	return nil
}

// GetByID retrieves an active manufacturer by id.
func (r *ManufacturerRepository) GetByID(ctx context.Context, id int64) (*manufacturer.Manufacturer, error) {
	query := fmt.Sprintf(
		`SELECT id, name, country FROM manufacturers WHERE id = $1 AND %s`, notDeleted(""),
	)

	var m manufacturer.Manufacturer
	err := r.db.QueryRow(ctx, query, id).Scan(&m.ID, &m.Name, &m.Country)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get manufacturer: %w", err)
	}

	return &m, nil
}

// GetAll retrieves every active manufacturer, order unspecified.
func (r *ManufacturerRepository) GetAll(ctx context.Context) ([]manufacturer.Manufacturer, error) {
	query := fmt.Sprintf(`SELECT id, name, country FROM manufacturers WHERE %s`, notDeleted(""))

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list manufacturers: %w", err)
	}
	defer rows.Close()

	manufacturers := []manufacturer.Manufacturer{}
	for rows.Next() {
		var m manufacturer.Manufacturer
		if err := rows.Scan(&m.ID, &m.Name, &m.Country); err != nil {
			return nil, fmt.Errorf("failed to scan manufacturer: %w", err)
		}
		manufacturers = append(manufacturers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read manufacturers: %w", err)
	}

	return manufacturers, nil
}

// Update overwrites the mutable fields of an active manufacturer. The row
// count is not checked: the contract echoes the input whether or not a row
// matched.
func (r *ManufacturerRepository) Update(ctx context.Context, m *manufacturer.Manufacturer) error {
	query := fmt.Sprintf(
		`UPDATE manufacturers SET name = $1, country = $2 WHERE id = $3 AND %s`, notDeleted(""),
	)

	if _, err := r.db.Exec(ctx, query, m.Name, m.Country, m.ID); err != nil {
		return fmt.Errorf("failed to update manufacturer: %w", err)
	}

	return nil
}

// Delete soft-deletes the manufacturer.
func (r *ManufacturerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return softDelete(ctx, r.db, "manufacturers", id)
}
