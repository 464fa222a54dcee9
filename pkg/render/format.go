package render

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// formatToken is one parsed printf-style specifier: `%`, an optional
// `N$` index, optional flags/width/precision, and a verb.
type formatToken struct {
	raw   string // the full specifier text, e.g. "%1$d"
	index int    // explicit 1-based argument index, 0 when absent
	spec  string // flags, width and precision, e.g. "-5.2"
	verb  byte
}

// formatPositional replaces printf-style specifiers in template with the
// given arguments. Numeric verbs without explicit formatting flags are
// rendered with locale-aware grouping and decimal separators.
//
// Malformed specifiers and out-of-range indices are left in place verbatim;
// the collected failures come back as a joined error alongside the degraded
// string.
func formatPositional(template, locale string, args []any, nextArg int) (string, error) {
	if !strings.ContainsRune(template, '%') {
		return template, nil
	}

	printer := message.NewPrinter(language.Make(locale))

	var (
		b    strings.Builder
		errs []error
	)

	for i := 0; i < len(template); {
		c := template[i]
		if c != '%' {
			b.WriteByte(c)
			i++
			continue
		}

		if i+1 < len(template) && template[i+1] == '%' {
			b.WriteByte('%')
			i += 2
			continue
		}

		token, next, ok := readFormatToken(template, i)
		if !ok {
			// Not a specifier we understand; keep the text untouched.
			b.WriteByte('%')
			i++
			continue
		}
		i = next

		argIdx := token.index - 1
		if token.index == 0 {
			argIdx = nextArg
			nextArg++
		}

		if argIdx < 0 || argIdx >= len(args) {
			errs = append(errs, fmt.Errorf("%w: %q wants argument %d, have %d",
				ErrMissingArgument, token.raw, argIdx+1, len(args)))
			b.WriteString(token.raw)
			continue
		}

		rendered, err := token.render(printer, args[argIdx])
		if err != nil {
			errs = append(errs, err)
			b.WriteString(token.raw)
			continue
		}
		b.WriteString(rendered)
	}

	return b.String(), errors.Join(errs...)
}

// readFormatToken parses the specifier starting at the '%' at pos.
func readFormatToken(s string, pos int) (formatToken, int, bool) {
	i := pos + 1
	start := i

	// Optional explicit argument index: digits followed by '$'.
	index := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i < len(s) && s[i] == '$' && i > start {
		index, _ = strconv.Atoi(s[start:i])
		if index == 0 {
			return formatToken{}, pos, false
		}
		i++
	} else {
		i = start
	}

	specStart := i
	for i < len(s) && strings.IndexByte("-+ #0123456789.", s[i]) >= 0 {
		i++
	}
	if i >= len(s) {
		return formatToken{}, pos, false
	}

	verb := s[i]
	if strings.IndexByte("diufegsx@X", verb) < 0 {
		return formatToken{}, pos, false
	}

	return formatToken{
		raw:   s[pos : i+1],
		index: index,
		spec:  s[specStart:i],
		verb:  verb,
	}, i + 1, true
}

func (t formatToken) render(printer *message.Printer, arg any) (string, error) {
	switch t.verb {
	case 'd', 'i', 'u':
		n, ok := toInt(arg)
		if !ok {
			return "", fmt.Errorf("%w: %q given %T", ErrBadArgument, t.raw, arg)
		}
		if t.spec != "" {
			return fmt.Sprintf("%"+t.spec+"d", n), nil
		}
		return printer.Sprint(number.Decimal(n)), nil

	case 'f', 'e', 'g':
		f, ok := toFloat(arg)
		if !ok {
			return "", fmt.Errorf("%w: %q given %T", ErrBadArgument, t.raw, arg)
		}
		if t.spec != "" {
			return fmt.Sprintf("%"+t.spec+string(t.verb), f), nil
		}
		return printer.Sprint(number.Decimal(f)), nil

	case 'x', 'X':
		n, ok := toInt(arg)
		if !ok {
			return "", fmt.Errorf("%w: %q given %T", ErrBadArgument, t.raw, arg)
		}
		return fmt.Sprintf("%"+t.spec+string(t.verb), n), nil

	case 's', '@':
		return fmt.Sprintf("%"+t.spec+"v", arg), nil

	default:
		return "", fmt.Errorf("%w: %q", ErrBadArgument, t.raw)
	}
}

func toInt(arg any) (int64, bool) {
	switch v := arg.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), true
	case float32:
		return int64(v), true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}

func toFloat(arg any) (float64, bool) {
	switch v := arg.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		n, ok := toInt(arg)
		return float64(n), ok
	}
}
