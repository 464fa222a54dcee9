package translations

import "errors"

var (
	// ErrEmptySourceLocale is returned when a locale configuration is
	// created without a source locale.
	ErrEmptySourceLocale = errors.New("translations: source locale cannot be empty")
)
