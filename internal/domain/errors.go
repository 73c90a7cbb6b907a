package domain

import "fmt"

// MalformedDateError is returned when a trade-date cell cannot be parsed.
// Unlike numeric cells (which are coerced to zero), an unparseable date is
// fatal for the run: chronological order is a core invariant the rest of
// the pipeline depends on.
type MalformedDateError struct {
	Row   int    // zero-based index of the offending input row
	Value string // the raw cell content
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("malformed trade date %q in row %d", e.Value, e.Row)
}
