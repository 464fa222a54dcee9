// Package policy decides what a translation lookup returns when things go
// wrong: a string has no translation for the current locale, or a template
// fails to render.
//
// MissingPolicy shapes the fallback text for untranslated strings. The
// default returns the source string untouched; PseudoTranslation and
// WrappedString make untranslated strings stand out during development,
// and Composite chains transformations:
//
//	p := policy.Composite(policy.PseudoTranslation(), policy.WrappedString("[[", "]]"))
//	p.Get("The quick brown fox") // "[[Ťȟê ʠüıċǩ ƀȓøẁñ ƒøẋ]]"
//
// ErrorPolicy picks the text shown when rendering itself fails. The
// default retries with the source template and falls back to a fixed
// sentinel if that fails too, so a bad translation never crashes the app.
package policy
