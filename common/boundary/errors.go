package boundary

import (
	"github.com/bytearena/stagelimits/common/utils/trigo"
	"github.com/pkg/errors"
)

var (
	// Malformed construction arguments: mismatched lengths, too few edges, bad tunables.
	ErrInvalidInput = errors.New("invalid input")

	// Zero-length line in a tolerance test. Scans resolve it locally and never return it.
	ErrDegenerateGeometry = trigo.ErrDegenerateGeometry
)

func IsInvalidInput(err error) bool {
	return errors.Cause(err) == ErrInvalidInput
}
