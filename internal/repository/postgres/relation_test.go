package postgres

import (
	"reflect"
	"strings"
	"testing"
)

func TestUpsertDriversStatement(t *testing.T) {
	query, args := upsertDriversStatement(7, []int64{3, 5})

	if !strings.Contains(query, "($1, $2), ($3, $4)") {
		t.Errorf("expected two bound pairs, got query %q", query)
	}
	if !strings.Contains(query, "ON CONFLICT (car_id, driver_id) DO NOTHING") {
		t.Errorf("expected idempotent upsert, got query %q", query)
	}

	want := []any{int64(7), int64(3), int64(7), int64(5)}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("args = %v, want %v", args, want)
	}
}

func TestUpsertDriversStatementDuplicates(t *testing.T) {
	// Duplicate ids in the input stay in the statement; the conflict clause
	// collapses them to one row.
	query, args := upsertDriversStatement(1, []int64{2, 2})

	if got := strings.Count(query, "$"); got != 4 {
		t.Errorf("expected 4 placeholders, got %d in %q", got, query)
	}
	want := []any{int64(1), int64(2), int64(1), int64(2)}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("args = %v, want %v", args, want)
	}
}

func TestDeleteDriversExceptStatement(t *testing.T) {
	query, args := deleteDriversExceptStatement(7, []int64{3, 5})

	if !strings.Contains(query, "car_id = $1") {
		t.Errorf("expected car filter, got query %q", query)
	}
	if !strings.Contains(query, "NOT driver_id IN ($2, $3, $4)") {
		t.Errorf("expected exclusion list of sentinel plus two ids, got query %q", query)
	}

	want := []any{int64(7), sentinelDriverID, int64(3), int64(5)}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("args = %v, want %v", args, want)
	}
}

func TestDeleteDriversExceptStatementEmptySet(t *testing.T) {
	// With no target drivers the clause must still be well-formed and, since
	// the sentinel matches no real driver, delete every association row.
	query, args := deleteDriversExceptStatement(7, nil)

	if !strings.Contains(query, "NOT driver_id IN ($2)") {
		t.Errorf("expected sentinel-only exclusion list, got query %q", query)
	}

	want := []any{int64(7), sentinelDriverID}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("args = %v, want %v", args, want)
	}
}

func TestSentinelNeverMatchesRealDriver(t *testing.T) {
	// Serial ids start at 1.
	if sentinelDriverID >= 1 {
		t.Errorf("sentinelDriverID = %d, must be below any generated id", sentinelDriverID)
	}
}
