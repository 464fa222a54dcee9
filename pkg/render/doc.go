// Package render turns translation templates into final display strings:
// it extracts ICU-like plural rules, resolves XML-encoded device and
// substitution variants, selects the right branch for a locale via a
// pluggable CLDR cardinal classifier, and performs positional printf-style
// substitution with locale-aware number formatting.
//
// # Plural templates
//
// A template may embed one or more plural blocks:
//
//	{cnt, plural, one {You have %d message} other {You have %d messages}}
//
// ExtractPluralRules returns the category -> branch mapping of the first
// block; the Renderer resolves every block against its positional argument:
//
//	r := render.New()
//	out, err := r.Render(tmpl, "en", 3)
//	// "You have 3 messages"
//
// # Substitution templates
//
// Templates can also arrive as an XML document of cds-unit elements keyed by
// dotted identifiers, carrying device-specific variants and per-token plural
// rules:
//
//	<cds-root>
//	  <cds-unit id="substitutions.files.plural.one">%d file</cds-unit>
//	  <cds-unit id="substitutions.files.plural.other">%d files</cds-unit>
//	</cds-root>
//
// Device variants (device.<name>.plural.<category>) are reconciled against
// the runtime device class with a fixed fallback order: exact device name,
// then the secondary device, then the generic "other" bucket.
//
// # Failure behavior
//
// Rendering is a pure function and never panics: malformed markers and
// out-of-range positional indices degrade to leaving the original marker
// text in place, and the collected parse failures are returned alongside
// the degraded string for the caller's error policy to act on.
package render
