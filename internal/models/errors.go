package models

import (
	"errors"
	"fmt"
)

var ErrInvalidRadius = errors.New("radius must be a non-negative number of meters")
var ErrInvalidCoordinate = errors.New("invalid coordinate")
var ErrInvalidID = errors.New("invalid identifier")

// LocationNotFoundError is returned when an address has no geocoding entry.
type LocationNotFoundError struct {
	Location LocationKey
}

func (e *LocationNotFoundError) Error() string {
	return fmt.Sprintf("location %s not found", e.Location)
}

// NewLocationNotFoundError snapshots loc into the error.
func NewLocationNotFoundError(loc Location) *LocationNotFoundError {
	return &LocationNotFoundError{Location: KeyOf(loc)}
}

// EntityNotFoundError is returned when a vendor, courier or other domain
// entity is missing from a backing store or directory.
type EntityNotFoundError struct {
	Entity string
	ID     int64
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("could not find entity %s with id %d", e.Entity, e.ID)
}

// IsLocationNotFound reports whether err is, or wraps, a LocationNotFoundError.
func IsLocationNotFound(err error) bool {
	var target *LocationNotFoundError
	return errors.As(err, &target)
}

// IsEntityNotFound reports whether err is, or wraps, an EntityNotFoundError.
func IsEntityNotFound(err error) bool {
	var target *EntityNotFoundError
	return errors.As(err, &target)
}
