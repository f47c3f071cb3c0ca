// ABOUTME: Tests for the resolution pipeline and concurrent batch resolution
// ABOUTME: Covers ambiguity gating, recommendations, and order preservation

package resolver

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		resolver      *Resolver
		text          string
		wantIntents   []string
		wantAmbiguous bool
		wantRec       string
	}{
		{
			name:        "single intent recommends",
			resolver:    New(),
			text:        "please compile the project",
			wantIntents: []string{"action:build"},
			wantRec:     "action:build",
		},
		{
			name:          "ambiguous withholds recommendation",
			resolver:      New(),
			text:          "build and test it",
			wantIntents:   []string{"action:build", "action:test"},
			wantAmbiguous: true,
		},
		{
			name:        "team wins when not ambiguous",
			resolver:    &Resolver{Threshold: 100},
			text:        "summon the team to deploy",
			wantIntents: []string{"action:deploy", "team:summon"},
			wantRec:     "team:summon",
		},
		{
			name:     "no intents",
			resolver: New(),
			text:     "hello there",
		},
		{
			name:        "zero threshold with one intent is not ambiguous",
			resolver:    &Resolver{Threshold: 0},
			text:        "deploy now",
			wantIntents: []string{"action:deploy"},
			wantRec:     "action:deploy",
		},
		{
			name:     "language filter excludes other dictionaries",
			resolver: &Resolver{Threshold: 50, Languages: []string{"ko"}},
			text:     "please compile the project",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := tt.resolver.Resolve(tt.text)
			if diff := cmp.Diff(tt.wantIntents, out.Intents); diff != "" {
				t.Errorf("intents mismatch (-want +got):\n%s", diff)
			}
			if out.Ambiguity.Ambiguous != tt.wantAmbiguous {
				t.Errorf("ambiguous = %v, want %v", out.Ambiguity.Ambiguous, tt.wantAmbiguous)
			}
			if tt.wantRec == "" {
				if out.HasRecommendation {
					t.Errorf("unexpected recommendation %q", out.Recommendation.Intent)
				}
				return
			}
			if !out.HasRecommendation || out.Recommendation.Intent != tt.wantRec {
				t.Errorf("recommendation = %q (%v), want %q", out.Recommendation.Intent, out.HasRecommendation, tt.wantRec)
			}
		})
	}
}

func TestResolve_AmbiguousCarriesClarification(t *testing.T) {
	t.Parallel()

	out := New().Resolve("build and test it")
	if !out.Ambiguity.HasClarification || out.Ambiguity.Clarification == "" {
		t.Errorf("expected clarification, got %+v", out.Ambiguity)
	}
}

func TestResolveAll_PreservesOrder(t *testing.T) {
	t.Parallel()

	r := New()
	base := []string{
		"please compile the project",
		"build and test it",
		"summon the team to deploy",
		"hello there",
		"リファクタしてください",
		"배포해줘",
	}
	var texts []string
	for i := range 10 {
		for _, b := range base {
			texts = append(texts, fmt.Sprintf("%s #%d", b, i))
		}
	}

	got, err := r.ResolveAll(context.Background(), texts, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(texts) {
		t.Fatalf("got %d outcomes, want %d", len(got), len(texts))
	}
	for i, text := range texts {
		if diff := cmp.Diff(r.Resolve(text), got[i]); diff != "" {
			t.Errorf("outcome %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestResolveAll_Unbounded(t *testing.T) {
	t.Parallel()

	got, err := New().ResolveAll(context.Background(), []string{"fix the bug", "write docs"}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Text != "fix the bug" || got[1].Text != "write docs" {
		t.Errorf("unexpected order: %q, %q", got[0].Text, got[1].Text)
	}
}

func TestResolveAll_Empty(t *testing.T) {
	t.Parallel()

	got, err := New().ResolveAll(context.Background(), nil, 2)
	if err != nil || got != nil {
		t.Errorf("ResolveAll(nil) = %v, %v", got, err)
	}
}

func TestResolveAll_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := New().ResolveAll(ctx, []string{"deploy"}, 1); err == nil {
		t.Error("expected error for cancelled context")
	}
}
