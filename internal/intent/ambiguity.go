// ABOUTME: Ambiguity scoring across competing intents with clarifying-question generation
// ABOUTME: Base score by count, cross-category penalty, near-synonym discount, threshold check

package intent

import (
	"fmt"
	"strings"
)

const (
	// DefaultThreshold is the score at or above which a set of intents is ambiguous.
	DefaultThreshold = 50

	perIntentScore  = 25
	maxBaseScore    = 100
	categoryPenalty = 20
	synonymDiscount = 20

	// FallbackClarification is asked when none of the intents has a label.
	FallbackClarification = "Could you clarify what you would like to do?"
)

// Breakdown itemises how an ambiguity score was reached.
type Breakdown struct {
	Base               int      `json:"base"`
	CategoryPenalty    int      `json:"categoryPenalty"`
	SimilarityDiscount int      `json:"similarityDiscount"`
	Categories         []string `json:"categories,omitempty"`
}

// Ambiguity is the outcome of DetectAmbiguity. Clarification is meaningful
// only when HasClarification is true.
type Ambiguity struct {
	Ambiguous        bool      `json:"ambiguous"`
	Score            int       `json:"score"`
	Clarification    string    `json:"clarification,omitempty"`
	HasClarification bool      `json:"-"`
	Breakdown        Breakdown `json:"breakdown"`
}

// DetectAmbiguity scores how strongly intents compete with each other and,
// when the score reaches threshold, produces a clarifying question.
func DetectAmbiguity(intents []string, threshold int) Ambiguity {
	distinct := dedupe(intents)
	if len(distinct) < 2 {
		return Ambiguity{}
	}

	var b Breakdown
	b.Base = min(maxBaseScore, perIntentScore*len(distinct))
	b.Categories = categories(distinct)
	if len(b.Categories) > 1 {
		b.CategoryPenalty = categoryPenalty
	}
	for i := range distinct {
		for j := i + 1; j < len(distinct); j++ {
			if areSynonyms(distinct[i], distinct[j]) {
				b.SimilarityDiscount += synonymDiscount
			}
		}
	}

	score := max(0, b.Base+b.CategoryPenalty-b.SimilarityDiscount)
	res := Ambiguity{Score: score, Breakdown: b}
	if score < threshold {
		return res
	}
	res.Ambiguous = true
	res.Clarification = clarify(distinct)
	res.HasClarification = true
	return res
}

func dedupe(intents []string) []string {
	seen := make(map[string]bool, len(intents))
	out := make([]string, 0, len(intents))
	for _, in := range intents {
		if seen[in] {
			continue
		}
		seen[in] = true
		out = append(out, in)
	}
	return out
}

func categories(intents []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, in := range intents {
		c := Category(in)
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

func clarify(intents []string) string {
	var labels []string
	for _, in := range intents {
		if l, ok := Label(in); ok {
			labels = append(labels, l)
		}
	}
	switch len(labels) {
	case 0:
		return FallbackClarification
	case 1:
		return fmt.Sprintf("Did you want to %s?", labels[0])
	case 2:
		return fmt.Sprintf("Did you want to %s or %s?", labels[0], labels[1])
	default:
		head := strings.Join(labels[:len(labels)-1], ", ")
		return fmt.Sprintf("Did you want to %s, or %s?", head, labels[len(labels)-1])
	}
}
