package cache

import "errors"

// Sentinel errors for snapshot providers.
var (
	// ErrInvalidSnapshot is returned when a snapshot source holds data
	// that does not parse as a TranslationSet.
	ErrInvalidSnapshot = errors.New("cache: invalid translation snapshot")

	// ErrInvalidS3Config is returned when the S3 provider configuration
	// is incomplete.
	ErrInvalidS3Config = errors.New("cache: invalid s3 configuration")
)
