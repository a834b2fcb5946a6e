package postgres

import (
	"fmt"
	"strings"
)

// Batched statements compute their placeholder list from the runtime size of
// the input set. Values are always bound as parameters; only the placeholder
// text is generated.

// valuesPlaceholders renders the VALUES clause for rows tuples of width cols,
// numbering placeholders from start: valuesPlaceholders(1, 2, 2) is
// "($1, $2), ($3, $4)".
func valuesPlaceholders(start, rows, cols int) string {
	tuples := make([]string, 0, rows)
	n := start
	for i := 0; i < rows; i++ {
		ph := make([]string, 0, cols)
		for j := 0; j < cols; j++ {
			ph = append(ph, fmt.Sprintf("$%d", n))
			n++
		}
		tuples = append(tuples, "("+strings.Join(ph, ", ")+")")
	}
	return strings.Join(tuples, ", ")
}

// inPlaceholders renders the body of an IN list of n placeholders numbered
// from start: inPlaceholders(2, 3) is "$2, $3, $4".
func inPlaceholders(start, n int) string {
	ph := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ph = append(ph, fmt.Sprintf("$%d", start+i))
	}
	return strings.Join(ph, ", ")
}
