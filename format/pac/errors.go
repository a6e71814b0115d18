package pac

import "errors"

// Errors returned by the PAC codec.
var (
	ErrMalformedHeader = errors.New("pac: malformed header")
	ErrMalformedTable  = errors.New("pac: malformed command table")
)
