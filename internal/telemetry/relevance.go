// ABOUTME: Prompt relevance scoring against the telemetry rule table
// ABOUTME: Score per section = sum over matching rules of distinct matched phrases x priority

package telemetry

import (
	"slices"
	"strings"

	"github.com/mauromedda/pi-intent/internal/textnorm"
)

// ScoredSection is a section and its accumulated relevance.
type ScoredSection struct {
	Section Section `json:"section"`
	Score   int     `json:"score"`
}

// shouldInject reports whether any rule phrase occurs in the folded prompt.
func shouldInject(rules []Rule, folded string) bool {
	if folded == "" {
		return false
	}
	for _, r := range rules {
		if _, ok := textnorm.ContainsAny(folded, r.Keywords); ok {
			return true
		}
	}
	return false
}

// relevance scores sections for the folded prompt, highest first. Ties keep
// the order in which sections were first touched by the rule table.
func relevance(rules []Rule, folded string) []ScoredSection {
	if folded == "" {
		return nil
	}
	var out []ScoredSection
	index := make(map[Section]int)
	for _, r := range rules {
		hits := countHits(folded, r.Keywords)
		if hits == 0 {
			continue
		}
		for _, k := range r.Keys {
			i, ok := index[k]
			if !ok {
				i = len(out)
				index[k] = i
				out = append(out, ScoredSection{Section: k})
			}
			out[i].Score += hits * r.Priority
		}
	}
	slices.SortStableFunc(out, func(a, b ScoredSection) int {
		return b.Score - a.Score
	})
	return out
}

func countHits(folded string, phrases []string) int {
	n := 0
	seen := make(map[string]bool, len(phrases))
	for _, p := range phrases {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		if strings.Contains(folded, p) {
			n++
		}
	}
	return n
}

// Sections drops the scores, keeping order.
func Sections(scored []ScoredSection) []Section {
	out := make([]Section, len(scored))
	for i, s := range scored {
		out[i] = s.Section
	}
	return out
}
