package cave

import (
	"errors"

	"github.com/samber/oops"
)

var (
	// ErrInvalidOperation is returned when a hazard is removed or moved from a room that
	// does not contain it.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrEmptyCollection is returned when a random pick is requested from nothing.
	ErrEmptyCollection = errors.New("empty collection")

	// ErrNotEnoughRooms is returned when a hazard cannot be spread over the requested
	// number of distinct rooms.
	ErrNotEnoughRooms = errors.New("not enough rooms")
)

func hazardError(err error, hazard Hazard, room int, format string, args ...any) error {
	return oops.
		In("cave").
		With("hazard", string(hazard), "room", room).
		Wrapf(err, format, args...)
}

func roomError(err error, room int, format string, args ...any) error {
	return oops.
		In("cave").
		With("room", room).
		Wrapf(err, format, args...)
}
