package render

import "errors"

var (
	// ErrMissingArgument is returned when a specifier references a
	// positional argument that was not supplied.
	ErrMissingArgument = errors.New("render: missing positional argument")

	// ErrBadArgument is returned when an argument cannot satisfy its
	// specifier, e.g. a string handed to %d.
	ErrBadArgument = errors.New("render: argument does not match specifier")

	// ErrNoBranch is returned when a plural rule set has no branch for the
	// classified category and no "other" fallback.
	ErrNoBranch = errors.New("render: no plural branch for category")

	// ErrUnknownToken is returned when a substitution phrase references a
	// token the document defines no rules for.
	ErrUnknownToken = errors.New("render: unknown substitution token")

	// ErrMalformedSubstitution is returned when an XML substitution
	// template cannot be reduced to a rule set.
	ErrMalformedSubstitution = errors.New("render: malformed substitution template")
)
