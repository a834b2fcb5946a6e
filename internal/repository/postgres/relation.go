package postgres

import "fmt"

// The cars_drivers join table is reconciled, not patched: every car write
// carries the complete desired driver set, excess rows are deleted and the
// whole set is re-upserted. Association rows are physically deleted, never
// soft-deleted.

// sentinelDriverID pads the delete-except exclusion list so the IN clause is
// well-formed for any target set size, including zero. Driver ids are
// generated from 1, so the sentinel can never match a real row.
const sentinelDriverID int64 = 0

// upsertDriversStatement builds the idempotent batch insert for the target
// driver set. Duplicate (car_id, driver_id) pairs, within the statement or
// against existing rows, collapse to a no-op. Callers must not invoke it
// with an empty set.
func upsertDriversStatement(carID int64, driverIDs []int64) (string, []any) {
	query := fmt.Sprintf(`
		INSERT INTO cars_drivers (car_id, driver_id)
		VALUES %s
		ON CONFLICT (car_id, driver_id) DO NOTHING
	`, valuesPlaceholders(1, len(driverIDs), 2))

	args := make([]any, 0, len(driverIDs)*2)
	for _, id := range driverIDs {
		args = append(args, carID, id)
	}

	return query, args
}

// deleteDriversExceptStatement builds the delete-of-excess statement: every
// association row of the car whose driver is not in the target set is
// removed. The exclusion list always starts with the sentinel, so an empty
// target set deletes every association.
func deleteDriversExceptStatement(carID int64, driverIDs []int64) (string, []any) {
	query := fmt.Sprintf(`
		DELETE FROM cars_drivers
		WHERE car_id = $1 AND NOT driver_id IN (%s)
	`, inPlaceholders(2, len(driverIDs)+1))

	args := make([]any, 0, len(driverIDs)+2)
	args = append(args, carID, sentinelDriverID)
	for _, id := range driverIDs {
		args = append(args, id)
	}

	return query, args
}
