package render_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/otastrings/otastrings/pkg/render"
)

func TestExtractPluralRules(t *testing.T) {
	t.Parallel()

	t.Run("single block", func(t *testing.T) {
		t.Parallel()

		rules := render.ExtractPluralRules("{cnt, plural, one {%d item} other {%d items}}")
		require.Equal(t, render.RuleSet{
			render.CategoryOne:   "%d item",
			render.CategoryOther: "%d items",
		}, rules)
	})

	t.Run("no plural marker yields empty set", func(t *testing.T) {
		t.Parallel()

		require.Empty(t, render.ExtractPluralRules("Hello, world!"))
		require.Empty(t, render.ExtractPluralRules("{cnt, select, male {He} other {They}}"))
	})

	t.Run("all six categories", func(t *testing.T) {
		t.Parallel()

		tmpl := "{cnt, plural, zero {none} one {one} two {two} few {few} many {many} other {other}}"
		rules := render.ExtractPluralRules(tmpl)
		require.Len(t, rules, 6)
		require.Equal(t, "none", rules[render.CategoryZero])
		require.Equal(t, "many", rules[render.CategoryMany])
	})

	t.Run("unknown category aborts the block", func(t *testing.T) {
		t.Parallel()

		require.Empty(t, render.ExtractPluralRules("{cnt, plural, one {a} bogus {b}}"))
	})

	t.Run("nested braces in branch text", func(t *testing.T) {
		t.Parallel()

		rules := render.ExtractPluralRules("{cnt, plural, other {a {nested} brace}}")
		require.Equal(t, "a {nested} brace", rules[render.CategoryOther])
	})
}

func TestExtractPluralBlocks(t *testing.T) {
	t.Parallel()

	t.Run("multiple independent blocks", func(t *testing.T) {
		t.Parallel()

		tmpl := "{%1$d, plural, one {%1$d file} other {%1$d files}} in " +
			"{%2$d, plural, one {%2$d folder} other {%2$d folders}}"

		blocks := render.ExtractPluralBlocks(tmpl)
		require.Len(t, blocks, 2)
		require.Equal(t, "%1$d", blocks[0].Selector)
		require.Equal(t, "%2$d", blocks[1].Selector)
		require.Equal(t, "%2$d folders", blocks[1].Rules[render.CategoryOther])
	})

	t.Run("block positions cover the full rule", func(t *testing.T) {
		t.Parallel()

		tmpl := "prefix {cnt, plural, other {x}} suffix"
		blocks := render.ExtractPluralBlocks(tmpl)
		require.Len(t, blocks, 1)
		require.Equal(t, "{cnt, plural, other {x}}", tmpl[blocks[0].Start:blocks[0].End])
	})

	t.Run("malformed block is skipped", func(t *testing.T) {
		t.Parallel()

		require.Empty(t, render.ExtractPluralBlocks("{cnt, plural, one {unterminated"))
	})
}
