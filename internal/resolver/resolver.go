// ABOUTME: Composes keyword matching, ambiguity detection, and recommendation lookup
// ABOUTME: Resolve is pure; ResolveAll fans independent requests out over an errgroup

package resolver

import (
	"context"
	"fmt"

	"github.com/mauromedda/pi-intent/internal/intent"
	"github.com/mauromedda/pi-intent/internal/recommend"
	"golang.org/x/sync/errgroup"
)

// Resolver holds the per-deployment knobs of the pipeline.
// A zero Languages slice means every embedded language.
type Resolver struct {
	Threshold int
	Languages []string
}

// Outcome is the result of resolving one request.
type Outcome struct {
	Text              string           `json:"text"`
	Matches           []intent.Match   `json:"matches"`
	Intents           []string         `json:"intents"`
	Ambiguity         intent.Ambiguity `json:"ambiguity"`
	Recommendation    recommend.Record `json:"recommendation,omitzero"`
	HasRecommendation bool             `json:"hasRecommendation"`
}

// New returns a Resolver using the default threshold and all languages.
func New() *Resolver {
	return &Resolver{Threshold: intent.DefaultThreshold}
}

// Resolve runs the full pipeline on text. When the request is ambiguous the
// recommendation is left unset so the caller asks the clarifying question.
func (r *Resolver) Resolve(text string) Outcome {
	matches := intent.MatchKeywords(text, r.Languages...)
	intents := intent.UniqueIntents(matches)

	out := Outcome{
		Text:      text,
		Matches:   matches,
		Intents:   intents,
		Ambiguity: intent.DetectAmbiguity(intents, r.Threshold),
	}
	if out.Ambiguity.Ambiguous {
		return out
	}
	out.Recommendation, out.HasRecommendation = recommend.Best(intents)
	return out
}

// ResolveAll resolves texts concurrently with at most limit workers
// (limit <= 0 means unbounded). Outcomes keep the input order.
func (r *Resolver) ResolveAll(ctx context.Context, texts []string, limit int) ([]Outcome, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	results := make([]Outcome, len(texts))
	g, gCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, text := range texts {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = r.Resolve(text)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("resolving batch: %w", err)
	}
	return results, nil
}
