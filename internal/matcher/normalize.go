// Package matcher classifies free-text survival questions, either by summing
// keyword hits per knowledge category or by an ordered list of intent rules.
package matcher

import (
	"regexp"
	"strings"
)

// punctuation matches anything that is not a letter, digit, underscore or
// whitespace in any script. CJK text survives; emoji and symbols do not.
var punctuation = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)

// Normalize lower-cases text and strips punctuation. It is the only
// normalization applied before matching.
func Normalize(text string) string {
	return strings.TrimSpace(punctuation.ReplaceAllString(strings.ToLower(text), ""))
}
