// Package textutil holds the small text helpers shared by the safety
// classifier and the interpretation composer: Unicode case folding,
// substring and whole-word keyword matching, fallback chains and period splitting.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize trims surrounding whitespace and lower-cases s.
// A Caser keeps internal state, so a fresh one is built per call.
func Normalize(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	return cases.Lower(language.Und).String(trimmed)
}

// ContainsAny reports whether text contains at least one of the keywords
// as a plain substring. text is expected to be normalized already.
func ContainsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// ContainsWord reports whether text contains at least one of words as a
// whole word. Words are runs of letters and digits; text is expected to be
// normalized already.
func ContainsWord(text string, words []string) bool {
	if len(words) == 0 {
		return false
	}
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, f := range fields {
		for _, w := range words {
			if f == w {
				return true
			}
		}
	}
	return false
}

// FirstNonEmpty returns the first candidate that is not blank, trimmed,
// and false if all candidates are blank.
func FirstNonEmpty(candidates ...string) (string, bool) {
	for _, c := range candidates {
		if t := strings.TrimSpace(c); t != "" {
			return t, true
		}
	}
	return "", false
}

// SplitSentences splits text on periods, drops blank fragments and
// re-terminates each fragment with a period. Abbreviations and decimals are
// split too; the dataset is authored with that convention.
func SplitSentences(text string) []string {
	parts := strings.Split(text, ".")
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		sentences = append(sentences, p+".")
	}
	return sentences
}

// Truncate returns at most limit leading items of s.
func Truncate[T any](s []T, limit int) []T {
	if len(s) > limit {
		return s[:limit]
	}
	return s
}
