// ABOUTME: Case folding shared by the keyword, relevance and action matchers
// ABOUTME: NFC-normalises then lower-cases; caseless scripts pass through unchanged

package textnorm

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Fold normalises s to NFC and lower-cases it. Scripts without case (CJK,
// Hangul, Kana) are left as-is. A Caser is not safe for concurrent use, so
// one is built per call.
func Fold(s string) string {
	if s == "" {
		return s
	}
	return cases.Lower(language.Und).String(norm.NFC.String(s))
}

// ContainsAny returns the first phrase (already folded) contained in folded.
func ContainsAny(folded string, phrases []string) (string, bool) {
	for _, p := range phrases {
		if p != "" && strings.Contains(folded, p) {
			return p, true
		}
	}
	return "", false
}
