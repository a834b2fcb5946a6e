package postgres

import (
	"context"
	"errors"
	"fmt"

	"taxi-fleet-service/internal/domain/driver"
	xerrors "taxi-fleet-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DriverRepository struct {
	db *pgxpool.Pool
}

func NewDriverRepository(db *pgxpool.Pool) *DriverRepository {
	return &DriverRepository{db: db}
}

// Create inserts a new driver and assigns the generated id back onto d.
func (r *DriverRepository) Create(ctx context.Context, d *driver.Driver) error {
	query := `
		INSERT INTO drivers (name, license_number, login, password)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, d.Name, d.LicenseNumber, d.Login, d.Password).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("failed to create driver: %w", err)
	}

	return nil
}

// GetByID retrieves an active driver by id.
func (r *DriverRepository) GetByID(ctx context.Context, id int64) (*driver.Driver, error) {
	query := fmt.Sprintf(`
		SELECT id, name, license_number, login, password
		FROM drivers
		WHERE id = $1 AND %s
	`, notDeleted(""))

	var d driver.Driver
	err := r.db.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.Name, &d.LicenseNumber, &d.Login, &d.Password,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}

	return &d, nil
}

// GetAll retrieves every active driver, order unspecified.
func (r *DriverRepository) GetAll(ctx context.Context) ([]driver.Driver, error) {
	query := fmt.Sprintf(`
		SELECT id, name, license_number, login, password
		FROM drivers
		WHERE %s
	`, notDeleted(""))

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}
	defer rows.Close()

	drivers := []driver.Driver{}
	for rows.Next() {
		var d driver.Driver
		if err := rows.Scan(&d.ID, &d.Name, &d.LicenseNumber, &d.Login, &d.Password); err != nil {
			return nil, fmt.Errorf("failed to scan driver: %w", err)
		}
		drivers = append(drivers, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read drivers: %w", err)
	}

	return drivers, nil
}

// Update overwrites the mutable fields of an active driver. The row count is
// not checked: the contract echoes the input whether or not a row matched.
func (r *DriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	query := fmt.Sprintf(`
		UPDATE drivers
		SET name = $1, license_number = $2, login = $3, password = $4
		WHERE id = $5 AND %s
	`, notDeleted(""))

	_, err := r.db.Exec(ctx, query, d.Name, d.LicenseNumber, d.Login, d.Password, d.ID)
	if err != nil {
		return fmt.Errorf("failed to update driver: %w", err)
	}

	return nil
}

// Delete soft-deletes the driver. Association rows in cars_drivers survive;
// read paths filter the driver out instead.
func (r *DriverRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return softDelete(ctx, r.db, "drivers", id)
}

// FindByLogin retrieves an active driver by login. Used by the
// authentication boundary.
func (r *DriverRepository) FindByLogin(ctx context.Context, login string) (*driver.Driver, error) {
	query := fmt.Sprintf(`
		SELECT id, name, license_number, login, password
		FROM drivers
		WHERE login = $1 AND %s
	`, notDeleted(""))

	var d driver.Driver
	err := r.db.QueryRow(ctx, query, login).Scan(
		&d.ID, &d.Name, &d.LicenseNumber, &d.Login, &d.Password,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find driver by login: %w", err)
	}

	return &d, nil
}
