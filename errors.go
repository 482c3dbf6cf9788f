package vector

import "github.com/cockroachdb/errors"

// ErrOutOfRange is returned by the checked operations (At, Insert, Erase and
// friends) when a position lies outside the range they accept.
// Match it with errors.Is.
var ErrOutOfRange = errors.New("vector: out of range")

func indexOutOfRange(op string, index, size int) error {
	return errors.Wrapf(ErrOutOfRange, "%s: index %d not in [0, %d)", op, index, size)
}

func positionOutOfRange(op string, pos, size int) error {
	return errors.Wrapf(ErrOutOfRange, "%s: position %d not in [0, %d]", op, pos, size)
}
