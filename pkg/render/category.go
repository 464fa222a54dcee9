package render

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// PluralCategory is one of the CLDR grammatical-number classes.
type PluralCategory string

// The closed set of CLDR plural categories. Not every language uses all of
// them; "other" is the conventional fallback.
const (
	CategoryZero  PluralCategory = "zero"
	CategoryOne   PluralCategory = "one"
	CategoryTwo   PluralCategory = "two"
	CategoryFew   PluralCategory = "few"
	CategoryMany  PluralCategory = "many"
	CategoryOther PluralCategory = "other"
)

// ParseCategory maps a category name to its PluralCategory. The second
// return value is false for names outside the closed set.
func ParseCategory(name string) (PluralCategory, bool) {
	switch PluralCategory(name) {
	case CategoryZero, CategoryOne, CategoryTwo, CategoryFew, CategoryMany, CategoryOther:
		return PluralCategory(name), true
	default:
		return "", false
	}
}

// Classifier decides which plural category a numeric value falls into for a
// locale. The per-language cardinal rules are a large, regularly updated
// data table; implementations are expected to delegate to one rather than
// reimplement it.
type Classifier interface {
	Category(locale string, n int) PluralCategory
}

// ClassifierFunc adapts a bare function to the Classifier interface.
type ClassifierFunc func(locale string, n int) PluralCategory

// Category implements Classifier.
func (fn ClassifierFunc) Category(locale string, n int) PluralCategory {
	return fn(locale, n)
}

// CLDRClassifier returns the default classifier backed by the CLDR cardinal
// tables shipped with golang.org/x/text.
func CLDRClassifier() Classifier {
	return ClassifierFunc(func(locale string, n int) PluralCategory {
		if n < 0 {
			n = -n
		}

		tag := language.Make(locale)
		switch plural.Cardinal.MatchPlural(tag, n, 0, 0, 0, 0) {
		case plural.Zero:
			return CategoryZero
		case plural.One:
			return CategoryOne
		case plural.Two:
			return CategoryTwo
		case plural.Few:
			return CategoryFew
		case plural.Many:
			return CategoryMany
		default:
			return CategoryOther
		}
	})
}

// RuleSet maps plural categories to their literal branch templates. A
// successful parse always yields at least one entry, conventionally
// including "other" as the fallback branch.
type RuleSet map[PluralCategory]string

// Select returns the branch for category, falling back to "other" when the
// specific category has no branch. The second return value is false when
// neither exists.
func (r RuleSet) Select(category PluralCategory) (string, bool) {
	if branch, ok := r[category]; ok {
		return branch, true
	}
	branch, ok := r[CategoryOther]
	return branch, ok
}
