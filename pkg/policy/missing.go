package policy

import "strings"

// MissingPolicy produces the text returned for a string that has no
// translation in the current locale.
type MissingPolicy interface {
	// Get maps the source string to the text to display.
	Get(sourceString string) string
}

// MissingPolicyFunc adapts a function to the MissingPolicy interface.
type MissingPolicyFunc func(sourceString string) string

// Get calls f.
func (f MissingPolicyFunc) Get(sourceString string) string {
	return f(sourceString)
}

// SourceString returns untranslated strings verbatim. This is the default.
func SourceString() MissingPolicy {
	return MissingPolicyFunc(func(s string) string { return s })
}

// accented maps ASCII letters to visually similar accented forms. Digits,
// punctuation and format specifiers pass through untouched.
var accented = map[rune]rune{
	'a': 'à', 'b': 'ƀ', 'c': 'ċ', 'd': 'đ', 'e': 'ê', 'f': 'ƒ',
	'g': 'ĝ', 'h': 'ȟ', 'i': 'ı', 'j': 'ǰ', 'k': 'ǩ', 'l': 'ĺ',
	'm': 'ɱ', 'n': 'ñ', 'o': 'ø', 'p': 'ƥ', 'q': 'ʠ', 'r': 'ȓ',
	's': 'š', 't': 'ť', 'u': 'ü', 'v': 'ṽ', 'w': 'ẁ', 'x': 'ẋ',
	'y': 'ÿ', 'z': 'ź',
	'A': 'À', 'B': 'Ɓ', 'C': 'Ċ', 'D': 'Đ', 'E': 'Ê', 'F': 'Ƒ',
	'G': 'Ĝ', 'H': 'Ȟ', 'I': 'İ', 'J': 'Ĵ', 'K': 'Ǩ', 'L': 'Ĺ',
	'M': 'Ṁ', 'N': 'Ñ', 'O': 'Ø', 'P': 'Ƥ', 'Q': 'Ǫ', 'R': 'Ȓ',
	'S': 'Š', 'T': 'Ť', 'U': 'Ü', 'V': 'Ṽ', 'W': 'Ẁ', 'X': 'Ẋ',
	'Y': 'Ÿ', 'Z': 'Ź',
}

// PseudoTranslation replaces letters with accented lookalikes so
// untranslated strings are obvious on screen while staying readable.
// Format specifiers like %s and %1$d survive intact.
func PseudoTranslation() MissingPolicy {
	return MissingPolicyFunc(func(s string) string {
		var b strings.Builder
		b.Grow(len(s))

		runes := []rune(s)
		for i := 0; i < len(runes); i++ {
			if runes[i] == '%' {
				// Copy the whole specifier through unchanged.
				start := i
				i++
				for i < len(runes) && strings.ContainsRune("0123456789$.+- #", runes[i]) {
					i++
				}
				if i < len(runes) {
					i++
				}
				b.WriteString(string(runes[start:i]))
				i--
				continue
			}
			if repl, ok := accented[runes[i]]; ok {
				b.WriteRune(repl)
				continue
			}
			b.WriteRune(runes[i])
		}
		return b.String()
	})
}

// WrappedString brackets untranslated strings with the given markers,
// e.g. WrappedString("[[", "]]").
func WrappedString(start, end string) MissingPolicy {
	return MissingPolicyFunc(func(s string) string {
		return start + s + end
	})
}

// Composite applies the given policies in order, feeding each one's output
// to the next.
func Composite(policies ...MissingPolicy) MissingPolicy {
	return MissingPolicyFunc(func(s string) string {
		for _, p := range policies {
			s = p.Get(s)
		}
		return s
	})
}
