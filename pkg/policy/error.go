package policy

// RenderFallback is the last-resort text when even the source template
// cannot be rendered.
const RenderFallback = "ERROR"

// ErrorPolicy picks the text shown when a translation template fails to
// render for the current locale.
type ErrorPolicy interface {
	// Get receives the source template, the translation template that
	// failed, the locale, and the render arguments, and returns the text
	// to display instead.
	Get(sourceTemplate, translationTemplate, locale string, args ...any) string
}

// ErrorPolicyFunc adapts a function to the ErrorPolicy interface.
type ErrorPolicyFunc func(sourceTemplate, translationTemplate, locale string, args ...any) string

// Get calls f.
func (f ErrorPolicyFunc) Get(sourceTemplate, translationTemplate, locale string, args ...any) string {
	return f(sourceTemplate, translationTemplate, locale, args...)
}

// renderFunc is satisfied by render.Renderer.Render.
type renderFunc func(template, locale string, args ...any) (string, error)

// RenderedSource retries the failed render with the source-locale template.
// A translation with broken markup then degrades to the original wording
// instead of an error marker. If the source template fails too, the fixed
// fallback text is returned.
func RenderedSource(render renderFunc) ErrorPolicy {
	return ErrorPolicyFunc(func(sourceTemplate, _, locale string, args ...any) string {
		out, err := render(sourceTemplate, locale, args...)
		if err != nil {
			return RenderFallback
		}
		return out
	})
}

// SourceTemplate returns the raw source template without re-rendering it.
// Format markers stay visible, which is useful in development builds.
func SourceTemplate() ErrorPolicy {
	return ErrorPolicyFunc(func(sourceTemplate, _, _ string, _ ...any) string {
		return sourceTemplate
	})
}

// Static always returns the given text.
func Static(text string) ErrorPolicy {
	return ErrorPolicyFunc(func(_, _, _ string, _ ...any) string {
		return text
	})
}
