package render

import (
	"strings"
	"unicode"
)

// pluralMarker is the literal sequence every plural block contains. Its
// absence lets extraction reject plain templates without any parsing.
const pluralMarker = ", plural, "

// PluralBlock is one parsed `{selector, plural, ...}` rule inside a
// template, with the byte range it occupies so the renderer can splice the
// selected branch back in.
type PluralBlock struct {
	// Selector is the token before ", plural," — either a name ("cnt") or
	// a positional placeholder ("%1$d").
	Selector string

	// Rules maps each parsed category to its branch text.
	Rules RuleSet

	// Start and End delimit the whole block in the original template,
	// End exclusive.
	Start int
	End   int
}

// ExtractPluralRules returns the category -> branch mapping of the first
// plural block embedded in template, or an empty rule set when the template
// contains none.
func ExtractPluralRules(template string) RuleSet {
	blocks := ExtractPluralBlocks(template)
	if len(blocks) == 0 {
		return RuleSet{}
	}
	return blocks[0].Rules
}

// ExtractPluralBlocks parses every independent plural block embedded in
// template, in order of appearance. Malformed blocks are skipped, never
// reported: a template that fails to parse renders as plain text.
func ExtractPluralBlocks(template string) []PluralBlock {
	if !strings.Contains(template, pluralMarker) {
		return nil
	}

	var blocks []PluralBlock

	offset := 0
	for {
		idx := strings.Index(template[offset:], pluralMarker)
		if idx < 0 {
			break
		}
		idx += offset

		block, ok := parseBlockAt(template, idx)
		if !ok {
			offset = idx + len(pluralMarker)
			continue
		}

		blocks = append(blocks, block)
		offset = block.End
	}

	return blocks
}

// parseBlockAt parses the plural block whose marker starts at markerIdx.
func parseBlockAt(template string, markerIdx int) (PluralBlock, bool) {
	open := strings.LastIndexByte(template[:markerIdx], '{')
	if open < 0 {
		return PluralBlock{}, false
	}

	selector := template[open+1 : markerIdx]
	if selector == "" || strings.ContainsAny(selector, "{}") {
		return PluralBlock{}, false
	}

	rules := make(RuleSet)
	pos := markerIdx + len(pluralMarker)

	for {
		pos = skipSpaces(template, pos)
		if pos >= len(template) {
			return PluralBlock{}, false
		}

		// End of the enclosing block.
		if template[pos] == '}' {
			break
		}

		name, next, ok := readCategoryName(template, pos)
		if !ok {
			return PluralBlock{}, false
		}
		category, ok := ParseCategory(name)
		if !ok {
			return PluralBlock{}, false
		}

		next = skipSpaces(template, next)
		branch, next, ok := readBracedText(template, next)
		if !ok {
			return PluralBlock{}, false
		}

		rules[category] = branch
		pos = next
	}

	if len(rules) == 0 {
		return PluralBlock{}, false
	}

	return PluralBlock{
		Selector: selector,
		Rules:    rules,
		Start:    open,
		End:      pos + 1,
	}, true
}

func skipSpaces(s string, pos int) int {
	for pos < len(s) && unicode.IsSpace(rune(s[pos])) {
		pos++
	}
	return pos
}

// readCategoryName reads a lowercase identifier starting at pos.
func readCategoryName(s string, pos int) (string, int, bool) {
	start := pos
	for pos < len(s) && s[pos] >= 'a' && s[pos] <= 'z' {
		pos++
	}
	if pos == start {
		return "", pos, false
	}
	return s[start:pos], pos, true
}

// readBracedText reads a `{...}` group starting at pos, honoring nested
// braces, and returns the inner text and the position after the closing
// brace.
func readBracedText(s string, pos int) (string, int, bool) {
	if pos >= len(s) || s[pos] != '{' {
		return "", pos, false
	}

	depth := 0
	for i := pos; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[pos+1 : i], i + 1, true
			}
		}
	}

	return "", pos, false
}
