package plasma

import "errors"

var (
	// ErrInvalidParameter reports a non-positive density, temperature,
	// mass or energy for which the collision formulas are undefined.
	ErrInvalidParameter = errors.New("invalid plasma parameter")
)
