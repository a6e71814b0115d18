package fujisaki

import "errors"

// Errors returned by synthesis and reconstruction.
var (
	ErrShapeMismatch    = errors.New("fujisaki: contour length mismatch")
	ErrInvalidParameter = errors.New("fujisaki: invalid parameter")
)
