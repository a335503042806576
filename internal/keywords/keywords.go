// Package keywords provides deterministic keyword extraction for ATS-style
// matching. Free-form text is canonicalized into a sorted, deduplicated set
// of lowercase alphanumeric tokens with stopwords removed.
package keywords

import (
	"sort"
	"strings"
	"unicode"
)

// Extract canonicalizes text into its keyword set: lowercase, ASCII letters
// and digits only, whitespace-split, stopwords and single-character tokens
// dropped, deduplicated, sorted ascending.
//
// Stripping everything outside [a-z0-9] is intentionally lossy: punctuation,
// hyphens inside compound words and accented characters are discarded, which
// keeps the comparison units simple and reproducible.
//
// Extract never fails; empty or all-stopword input yields an empty slice.
func Extract(text string) []string {
	if text == "" {
		return []string{}
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	seen := make(map[string]struct{})
	for _, token := range strings.Fields(b.String()) {
		if len(token) <= 1 {
			continue
		}
		if IsStopword(token) {
			continue
		}
		seen[token] = struct{}{}
	}

	result := make([]string, 0, len(seen))
	for token := range seen {
		result = append(result, token)
	}
	sort.Strings(result)
	return result
}

// Set returns the keyword set of text as a membership map.
func Set(text string) map[string]struct{} {
	tokens := Extract(text)
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}
