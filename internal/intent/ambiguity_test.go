// ABOUTME: Tests for ambiguity scoring: base score, category penalty, synonym discount
// ABOUTME: Also checks clarifying-question phrasing and threshold edge cases

package intent

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDetectAmbiguity_FewerThanTwoIntents(t *testing.T) {
	t.Parallel()

	for _, intents := range [][]string{nil, {}, {"action:build"}, {"action:build", "action:build"}} {
		got := DetectAmbiguity(intents, DefaultThreshold)
		if diff := cmp.Diff(Ambiguity{}, got); diff != "" {
			t.Errorf("DetectAmbiguity(%v) mismatch (-want +got):\n%s", intents, diff)
		}
	}
}

func TestDetectAmbiguity_Scores(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		intents   []string
		wantScore int
		wantAmbig bool
	}{
		{"same category pair", []string{"action:build", "action:test"}, 50, true},
		{"synonym pair", []string{"action:build", "action:implement"}, 30, false},
		{"cross category pair", []string{"team:summon", "action:build"}, 70, true},
		{"three actions", []string{"action:build", "action:test", "action:deploy"}, 75, true},
		{"two synonym pairs", []string{"action:build", "action:implement", "action:fix", "action:debug"}, 60, true},
		{"cross category over 100", []string{"team:summon", "action:build", "action:test", "action:deploy", "action:review"}, 120, true},
		{"team synonyms", []string{"team:summon", "team:parallel"}, 30, false},
		{"unknown intents", []string{"unknown:x", "unknown:y"}, 50, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := DetectAmbiguity(tt.intents, DefaultThreshold)
			if got.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d (breakdown %+v)", got.Score, tt.wantScore, got.Breakdown)
			}
			if got.Ambiguous != tt.wantAmbig {
				t.Errorf("Ambiguous = %v, want %v", got.Ambiguous, tt.wantAmbig)
			}
			if got.HasClarification != got.Ambiguous {
				t.Errorf("HasClarification = %v, want %v", got.HasClarification, got.Ambiguous)
			}
		})
	}
}

func TestDetectAmbiguity_RelativeOrdering(t *testing.T) {
	t.Parallel()

	plain := DetectAmbiguity([]string{"action:build", "action:test"}, DefaultThreshold)
	synonym := DetectAmbiguity([]string{"action:build", "action:implement"}, DefaultThreshold)
	cross := DetectAmbiguity([]string{"team:summon", "action:build"}, DefaultThreshold)

	if synonym.Score >= plain.Score {
		t.Errorf("synonym score %d should be below %d", synonym.Score, plain.Score)
	}
	if cross.Score <= plain.Score {
		t.Errorf("cross-category score %d should exceed %d", cross.Score, plain.Score)
	}
}

func TestDetectAmbiguity_Threshold(t *testing.T) {
	t.Parallel()

	pair := []string{"action:build", "action:test"}
	if got := DetectAmbiguity(pair, 100); got.Ambiguous {
		t.Errorf("threshold 100: Ambiguous = true, score %d", got.Score)
	}
	if got := DetectAmbiguity([]string{"action:build", "action:implement"}, 0); !got.Ambiguous {
		t.Error("threshold 0: any pair should be ambiguous")
	}
}

func TestDetectAmbiguity_Clarification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		intents []string
		want    string
	}{
		{"two labels", []string{"action:build", "action:test"}, "Did you want to build the project or run the tests?"},
		{"three labels", []string{"action:build", "action:test", "action:deploy"}, "Did you want to build the project, run the tests, or deploy a release?"},
		{"one label", []string{"action:build", "unknown:y"}, "Did you want to build the project?"},
		{"no labels", []string{"unknown:x", "unknown:y"}, FallbackClarification},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := DetectAmbiguity(tt.intents, 0)
			if !got.HasClarification {
				t.Fatal("expected a clarification")
			}
			if got.Clarification != tt.want {
				t.Errorf("Clarification = %q, want %q", got.Clarification, tt.want)
			}
		})
	}
}

func TestDetectAmbiguity_NoClarificationBelowThreshold(t *testing.T) {
	t.Parallel()

	got := DetectAmbiguity([]string{"action:build", "action:implement"}, DefaultThreshold)
	if got.HasClarification || got.Clarification != "" {
		t.Errorf("unexpected clarification %q", got.Clarification)
	}
}

func TestDetectAmbiguity_Breakdown(t *testing.T) {
	t.Parallel()

	got := DetectAmbiguity([]string{"team:summon", "team:parallel", "action:build"}, DefaultThreshold)
	want := Breakdown{
		Base:               75,
		CategoryPenalty:    20,
		SimilarityDiscount: 20,
		Categories:         []string{"team", "action"},
	}
	if diff := cmp.Diff(want, got.Breakdown); diff != "" {
		t.Errorf("Breakdown mismatch (-want +got):\n%s", diff)
	}
	if got.Score != 75 {
		t.Errorf("Score = %d, want 75", got.Score)
	}
}

func TestAreSynonyms_Unordered(t *testing.T) {
	t.Parallel()

	if !areSynonyms("action:implement", "action:build") || !areSynonyms("action:build", "action:implement") {
		t.Error("synonym pairs must be unordered")
	}
	if areSynonyms("action:build", "action:test") {
		t.Error("build/test are not synonyms")
	}
}
