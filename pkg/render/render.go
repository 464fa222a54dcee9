package render

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// substitutionMarker matches `%#@token@` markers with an optional explicit
// argument index, e.g. `%2$#@files@`.
var substitutionMarker = regexp.MustCompile(`%(?:(\d+)\$)?#@([A-Za-z0-9_]+)@`)

// Renderer resolves translation templates into display strings. It is
// stateless apart from its configuration and safe for concurrent use.
type Renderer struct {
	classifier      Classifier
	device          func() string
	secondaryDevice string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithClassifier sets the plural category classifier.
// Defaults to the CLDR tables from golang.org/x/text.
func WithClassifier(c Classifier) Option {
	return func(r *Renderer) {
		if c != nil {
			r.classifier = c
		}
	}
}

// WithDeviceResolver sets the function reporting the runtime device class
// used to reconcile device-specific substitution variants.
// Defaults to the generic "other" bucket.
func WithDeviceResolver(resolve func() string) Option {
	return func(r *Renderer) {
		if resolve != nil {
			r.device = resolve
		}
	}
}

// WithSecondaryDevice sets the device bucket tried between the exact device
// name and the generic one. Defaults to DefaultSecondaryDevice.
func WithSecondaryDevice(device string) Option {
	return func(r *Renderer) {
		if device != "" {
			r.secondaryDevice = device
		}
	}
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		classifier:      CLDRClassifier(),
		device:          func() string { return GenericDevice },
		secondaryDevice: DefaultSecondaryDevice,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render resolves template for locale with the given positional arguments.
//
// Plain templates get positional substitution only. Templates with plural
// blocks have each block resolved against its own argument first. XML
// substitution templates are reduced via ParseSubstitutions and their
// tokens resolved independently.
//
// The returned string is always usable: failures degrade to leaving the
// offending marker text in place, and the collected errors are returned for
// the caller's error policy.
func (r *Renderer) Render(template, locale string, args ...any) (string, error) {
	if IsSubstitutionTemplate(template) {
		return r.renderSubstitutions(template, locale, args)
	}

	blocks := ExtractPluralBlocks(template)
	if len(blocks) == 0 {
		return formatPositional(template, locale, args, 0)
	}

	var (
		b    strings.Builder
		errs []error
		last int
	)

	for i, block := range blocks {
		b.WriteString(template[last:block.Start])

		// Resolved or degraded block text is escaped so the final
		// formatting pass over the surrounding text leaves it alone.
		branch, err := r.resolveBlock(block, i, locale, args)
		if err != nil {
			errs = append(errs, err)
			b.WriteString(escapePercent(template[block.Start:block.End]))
		} else {
			b.WriteString(escapePercent(branch))
		}

		last = block.End
	}
	b.WriteString(template[last:])

	out, err := formatPositional(b.String(), locale, args, 0)
	if err != nil {
		errs = append(errs, err)
	}
	return out, errors.Join(errs...)
}

// resolveBlock picks and formats the branch of one plural block. ordinal is
// the block's position in the template, used as the implicit argument index
// when the selector carries no explicit one.
func (r *Renderer) resolveBlock(block PluralBlock, ordinal int, locale string, args []any) (string, error) {
	argIdx := selectorIndex(block.Selector)
	if argIdx < 0 {
		argIdx = ordinal
	}

	if argIdx >= len(args) {
		return "", fmt.Errorf("%w: plural selector %q wants argument %d, have %d",
			ErrMissingArgument, block.Selector, argIdx+1, len(args))
	}

	n, ok := toInt(args[argIdx])
	if !ok {
		return "", fmt.Errorf("%w: plural selector %q given %T",
			ErrBadArgument, block.Selector, args[argIdx])
	}

	category := r.classifier.Category(locale, int(n))
	branch, ok := block.Rules.Select(category)
	if !ok {
		return "", fmt.Errorf("%w: %q in %q", ErrNoBranch, category, block.Selector)
	}

	return formatPositional(branch, locale, args, argIdx)
}

// renderSubstitutions resolves an XML substitution template: each token in
// the reduced phrase is classified against its own argument and replaced
// with its formatted branch.
func (r *Renderer) renderSubstitutions(template, locale string, args []any) (string, error) {
	rules, err := ParseSubstitutions(template, r.device(), r.secondaryDevice)
	if err != nil {
		return template, err
	}

	var errs []error
	ordinal := 0

	phrase := substitutionMarker.ReplaceAllStringFunc(rules.Phrase, func(marker string) string {
		groups := substitutionMarker.FindStringSubmatch(marker)
		argIdx := ordinal
		if groups[1] != "" {
			explicit, _ := strconv.Atoi(groups[1])
			argIdx = explicit - 1
		}
		ordinal++

		token := groups[2]
		tokenRules, ok := rules.Tokens[token]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownToken, token))
			return escapePercent(marker)
		}

		if argIdx < 0 || argIdx >= len(args) {
			errs = append(errs, fmt.Errorf("%w: token %q wants argument %d, have %d",
				ErrMissingArgument, token, argIdx+1, len(args)))
			return escapePercent(marker)
		}

		n, ok := toInt(args[argIdx])
		if !ok {
			errs = append(errs, fmt.Errorf("%w: token %q given %T", ErrBadArgument, token, args[argIdx]))
			return escapePercent(marker)
		}

		branch, ok := tokenRules.Select(r.classifier.Category(locale, int(n)))
		if !ok {
			errs = append(errs, fmt.Errorf("%w: token %q", ErrNoBranch, token))
			return escapePercent(marker)
		}

		rendered, err := formatPositional(branch, locale, args, argIdx)
		if err != nil {
			errs = append(errs, err)
		}
		return escapePercent(rendered)
	})

	out, err := formatPositional(phrase, locale, args, 0)
	if err != nil {
		errs = append(errs, err)
	}
	return out, errors.Join(errs...)
}

// escapePercent doubles percent signs so resolved text survives a later
// formatting pass verbatim.
func escapePercent(s string) string {
	return strings.ReplaceAll(s, "%", "%%")
}

// selectorIndex extracts the explicit 1-based argument index from a
// positional selector like "%2$d", returning -1 for named selectors.
func selectorIndex(selector string) int {
	if !strings.HasPrefix(selector, "%") {
		return -1
	}

	rest := selector[1:]
	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	if end == 0 || end >= len(rest) || rest[end] != '$' {
		return -1
	}

	n, err := strconv.Atoi(rest[:end])
	if err != nil || n < 1 {
		return -1
	}
	return n - 1
}
