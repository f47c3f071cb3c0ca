// ABOUTME: Substring keyword matcher producing raw intent matches from free text
// ABOUTME: Scans languages, intents and phrases in declared order; emits each triple once

package intent

import (
	"strings"

	"github.com/mauromedda/pi-intent/internal/textnorm"
)

// Match is one keyword hit in the input text.
type Match struct {
	Intent   string `json:"intent"`
	Keyword  string `json:"keyword"`
	Language string `json:"language"`
}

// IsCanonical reports whether s has the category:action shape.
func IsCanonical(s string) bool {
	cat, act, ok := strings.Cut(s, ":")
	return ok && cat != "" && act != ""
}

// Category returns the part of an intent before the first ':'.
// Intents without a separator are their own category.
func Category(intent string) string {
	cat, _, _ := strings.Cut(intent, ":")
	return cat
}

// MatchKeywords returns every dictionary phrase found in text. With no
// languages given, all known languages are scanned in Languages order.
// Unknown language codes contribute nothing.
func MatchKeywords(text string, languages ...string) []Match {
	if text == "" {
		return nil
	}
	if len(languages) == 0 {
		languages = Languages
	}
	folded := textnorm.Fold(text)

	var matches []Match
	seen := make(map[Match]bool)
	for _, lang := range languages {
		for _, ik := range dictionary[lang] {
			for _, kw := range ik.Keywords {
				if kw == "" || !strings.Contains(folded, kw) {
					continue
				}
				m := Match{Intent: ik.Intent, Keyword: kw, Language: lang}
				if seen[m] {
					continue
				}
				seen[m] = true
				matches = append(matches, m)
			}
		}
	}
	return matches
}

// UniqueIntents reduces matches to distinct intents in order of first appearance.
func UniqueIntents(matches []Match) []string {
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(matches))
	var out []string
	for _, m := range matches {
		if seen[m.Intent] {
			continue
		}
		seen[m.Intent] = true
		out = append(out, m.Intent)
	}
	return out
}
