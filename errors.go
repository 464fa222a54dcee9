package otastrings

import "errors"

var (
	// ErrMissingToken is returned by New when no CDS token is given.
	ErrMissingToken = errors.New("otastrings: missing CDS token")
)
