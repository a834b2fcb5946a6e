package postgres

import (
	"context"
	"errors"
	"fmt"

	"taxi-fleet-service/internal/domain/car"
	"taxi-fleet-service/internal/domain/driver"
	xerrors "taxi-fleet-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CarRepository struct {
	db        *pgxpool.Pool
	dbWrapper *DB
}

func NewCarRepository(db *pgxpool.Pool, dbWrapper *DB) *CarRepository {
	return &CarRepository{db: db, dbWrapper: dbWrapper}
}

// Create inserts the car row, assigns the generated id back onto c, and
// synchronizes the join table with c.Drivers. Both steps run in one
// transaction so a reconciliation failure cannot leave an orphaned car row.
func (r *CarRepository) Create(ctx context.Context, c *car.Car) error {
	tx, err := r.dbWrapper.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO cars (model, manufacturer_id) VALUES ($1, $2) RETURNING id`
	if err := tx.QueryRow(ctx, query, c.Model, c.Manufacturer.ID).Scan(&c.ID); err != nil {
		return fmt.Errorf("failed to create car: %w", err)
	}

	if err := upsertDrivers(ctx, tx, c.ID, driverIDs(c.Drivers)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit car create: %w", err)
	}

	return nil
}

// GetByID retrieves an active car with its manufacturer and the current set
// of active drivers.
func (r *CarRepository) GetByID(ctx context.Context, id int64) (*car.Car, error) {
	query := fmt.Sprintf(`
		SELECT c.id, c.model, m.id, m.name, m.country
		FROM cars c
		JOIN manufacturers m ON c.manufacturer_id = m.id
		WHERE c.id = $1 AND %s
	`, notDeleted("c"))

	var c car.Car
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Model, &c.Manufacturer.ID, &c.Manufacturer.Name, &c.Manufacturer.Country,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get car: %w", err)
	}

	drivers, err := r.driversByCarID(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c.Drivers = drivers

	return &c, nil
}

// GetAll retrieves every active car, order unspecified.
func (r *CarRepository) GetAll(ctx context.Context) ([]car.Car, error) {
	query := fmt.Sprintf(`
		SELECT c.id, c.model, m.id, m.name, m.country
		FROM cars c
		JOIN manufacturers m ON c.manufacturer_id = m.id
		WHERE %s
	`, notDeleted("c"))

	return r.queryCars(ctx, query)
}

// Update overwrites the car row and reconciles the join table so the live
// association rows exactly match c.Drivers, all in one transaction. A
// failure in either reconciliation step rolls back the whole update.
func (r *CarRepository) Update(ctx context.Context, c *car.Car) error {
	tx, err := r.dbWrapper.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := fmt.Sprintf(
		`UPDATE cars SET model = $1, manufacturer_id = $2 WHERE id = $3 AND %s`, notDeleted(""),
	)
	if _, err := tx.Exec(ctx, query, c.Model, c.Manufacturer.ID, c.ID); err != nil {
		return fmt.Errorf("failed to update car: %w", err)
	}

	ids := driverIDs(c.Drivers)

	delQuery, delArgs := deleteDriversExceptStatement(c.ID, ids)
	if _, err := tx.Exec(ctx, delQuery, delArgs...); err != nil {
		return fmt.Errorf("failed to delete excess car drivers: %w", err)
	}

	if err := upsertDrivers(ctx, tx, c.ID, ids); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit car update: %w", err)
	}

	return nil
}

// Delete soft-deletes the car. Its association rows are left in place.
func (r *CarRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return softDelete(ctx, r.db, "cars", id)
}

// GetAllByDriver retrieves the active cars associated, via the join table,
// with an active driver.
func (r *CarRepository) GetAllByDriver(ctx context.Context, driverID int64) ([]car.Car, error) {
	query := fmt.Sprintf(`
		SELECT c.id, c.model, m.id, m.name, m.country
		FROM cars c
		JOIN manufacturers m ON c.manufacturer_id = m.id
		JOIN cars_drivers cd ON cd.car_id = c.id
		JOIN drivers d ON d.id = cd.driver_id
		WHERE cd.driver_id = $1 AND %s AND %s
	`, notDeleted("c"), notDeleted("d"))

	return r.queryCars(ctx, query, driverID)
}

func (r *CarRepository) queryCars(ctx context.Context, query string, args ...any) ([]car.Car, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	defer rows.Close()

	cars := []car.Car{}
	for rows.Next() {
		var c car.Car
		err := rows.Scan(
			&c.ID, &c.Model, &c.Manufacturer.ID, &c.Manufacturer.Name, &c.Manufacturer.Country,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan car: %w", err)
		}
		cars = append(cars, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cars: %w", err)
	}

	for i := range cars {
		drivers, err := r.driversByCarID(ctx, cars[i].ID)
		if err != nil {
			return nil, err
		}
		cars[i].Drivers = drivers
	}

	return cars, nil
}

// driversByCarID loads the car's driver set, filtering soft-deleted drivers.
// A deleted driver keeps its association row but disappears from the list.
func (r *CarRepository) driversByCarID(ctx context.Context, carID int64) ([]driver.Driver, error) {
	query := fmt.Sprintf(`
		SELECT d.id, d.name, d.license_number, d.login, d.password
		FROM cars_drivers cd
		JOIN drivers d ON cd.driver_id = d.id
		WHERE cd.car_id = $1 AND %s
	`, notDeleted("d"))

	rows, err := r.db.Query(ctx, query, carID)
	if err != nil {
		return nil, fmt.Errorf("failed to list car drivers: %w", err)
	}
	defer rows.Close()

	drivers := []driver.Driver{}
	for rows.Next() {
		var d driver.Driver
		if err := rows.Scan(&d.ID, &d.Name, &d.LicenseNumber, &d.Login, &d.Password); err != nil {
			return nil, fmt.Errorf("failed to scan car driver: %w", err)
		}
		drivers = append(drivers, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read car drivers: %w", err)
	}

	return drivers, nil
}

func upsertDrivers(ctx context.Context, q querier, carID int64, driverIDs []int64) error {
	if len(driverIDs) == 0 {
		return nil
	}

	query, args := upsertDriversStatement(carID, driverIDs)
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert car drivers: %w", err)
	}

	return nil
}

func driverIDs(drivers []driver.Driver) []int64 {
	ids := make([]int64, 0, len(drivers))
	for _, d := range drivers {
		ids = append(ids, d.ID)
	}
	return ids
}
