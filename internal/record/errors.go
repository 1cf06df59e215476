package record

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no record carries the requested id.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidFilterField is matched by every *InvalidFilterFieldError.
	ErrInvalidFilterField = errors.New("invalid filter field")

	// ErrEmptyID is returned when upserting a record without an id.
	ErrEmptyID = errors.New("record id is empty")
)

// InvalidFilterFieldError reports a query filter on a field the record kind
// does not declare as filterable. It usually means a view and its store
// disagree on a field name.
type InvalidFilterFieldError struct {
	Kind  string
	Field string
}

func (e *InvalidFilterFieldError) Error() string {
	return fmt.Sprintf("%s: field %q is not filterable", e.Kind, e.Field)
}

// Is makes errors.Is(err, ErrInvalidFilterField) hold.
func (e *InvalidFilterFieldError) Is(target error) bool {
	return target == ErrInvalidFilterField
}
