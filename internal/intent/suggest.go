// ABOUTME: Fuzzy suggestions for mistyped canonical intent names
// ABOUTME: Thin wrapper over sahilm/fuzzy ranked against the dictionary's known intents

package intent

import "github.com/sahilm/fuzzy"

const maxSuggestions = 3

// SuggestIntents returns up to three known intents that fuzzily match name,
// best first. An exact known intent returns only itself.
func SuggestIntents(name string) []string {
	if name == "" {
		return nil
	}
	for _, k := range known {
		if k == name {
			return []string{k}
		}
	}
	results := fuzzy.Find(name, known)
	out := make([]string, 0, min(len(results), maxSuggestions))
	for _, r := range results {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, r.Str)
	}
	return out
}
