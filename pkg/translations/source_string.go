package translations

import "strconv"

// Occurrence names a source file location where a string is used. Reported to
// the service during push so translators see where a phrase appears.
type Occurrence struct {
	File string `json:"file"`
	Line int    `json:"line,omitempty"`
}

// String renders the occurrence in "file:line" form, or just the file when
// no line is known.
func (o Occurrence) String() string {
	if o.Line <= 0 {
		return o.File
	}
	return o.File + ":" + strconv.Itoa(o.Line)
}

// SourceString is a single string submitted for translation. Instances are
// caller-constructed, consumed by one push call, and never round-tripped
// back from the service.
type SourceString struct {
	// Key identifies the string on the service. Leave empty to derive it
	// from the source string and context via GenerateKey.
	Key string

	// SourceString is the literal string in the source locale.
	SourceString string

	// Context is a comma-joined tag list that disambiguates identical
	// source strings (e.g. "menu" vs "dialog").
	Context string

	// DeveloperComment is an optional note for translators.
	DeveloperComment string

	// CharacterLimit caps the translation length; zero means unlimited.
	CharacterLimit int

	// Tags are optional free-form labels attached to the string.
	Tags []string

	// Occurrences lists the file locations where the string appears.
	Occurrences []Occurrence
}

// ResolvedKey returns the explicit key if set, otherwise the generated key
// for the source string and context.
func (s SourceString) ResolvedKey() string {
	if s.Key != "" {
		return s.Key
	}
	return GenerateKey(s.SourceString, s.Context)
}
