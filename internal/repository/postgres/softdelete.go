package postgres

import (
	"context"
	"fmt"
)

// Every entity table carries an is_deleted flag. Deleted rows stay in
// storage but are excluded from all reads; the flag is never cleared.

// notDeleted returns the filter fragment excluding soft-deleted rows of the
// aliased table.
func notDeleted(alias string) string {
	if alias == "" {
		return "is_deleted = FALSE"
	}
	return alias + ".is_deleted = FALSE"
}

// softDelete marks the row inactive and reports whether it transitioned.
// Deleting an already-deleted or absent row affects nothing and returns
// false.
func softDelete(ctx context.Context, q querier, table string, id int64) (bool, error) {
	query := fmt.Sprintf(
		"UPDATE %s SET is_deleted = TRUE WHERE id = $1 AND %s", table, notDeleted(""),
	)

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to soft-delete from %s: %w", table, err)
	}

	return tag.RowsAffected() > 0, nil
}
