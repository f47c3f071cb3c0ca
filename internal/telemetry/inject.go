// ABOUTME: Telemetry context injector deciding whether and what system context to append
// ABOUTME: Package-level functions use the default rule table and a 500-token budget

package telemetry

import "github.com/mauromedda/pi-intent/internal/textnorm"

// Injector scores prompts against a rule table and appends a bounded context snippet.
type Injector struct {
	rules    []Rule
	maxChars int
}

// Option configures an Injector.
type Option func(*Injector)

// WithMaxTokens sets the context budget in tokens. Non-positive values keep the default.
func WithMaxTokens(n int) Option {
	return func(i *Injector) {
		if n > 0 {
			i.maxChars = n * CharsPerToken
		}
	}
}

// WithRules replaces the relevance table.
func WithRules(rules []Rule) Option {
	return func(i *Injector) {
		i.rules = rules
	}
}

// NewInjector returns an Injector using Rules and DefaultMaxTokens unless overridden.
func NewInjector(opts ...Option) *Injector {
	i := &Injector{rules: Rules, maxChars: DefaultMaxTokens * CharsPerToken}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// MaxChars returns the character budget for formatted sections.
func (i *Injector) MaxChars() int { return i.maxChars }

// ShouldInject reports whether any relevance phrase appears in prompt.
func (i *Injector) ShouldInject(prompt string) bool {
	return shouldInject(i.rules, textnorm.Fold(prompt))
}

// Relevance returns the sections prompt makes relevant, highest score first.
func (i *Injector) Relevance(prompt string) []ScoredSection {
	return relevance(i.rules, textnorm.Fold(prompt))
}

// FormatContext renders the given sections of snap within the budget.
func (i *Injector) FormatContext(snap *Snapshot, sections []Section) string {
	return formatContext(snap, sections, i.maxChars)
}

// InjectContext appends relevant telemetry to prompt. The prompt comes back
// unchanged when nothing is relevant or nothing renders.
func (i *Injector) InjectContext(prompt string, snap *Snapshot) string {
	folded := textnorm.Fold(prompt)
	if !shouldInject(i.rules, folded) {
		return prompt
	}
	scored := relevance(i.rules, folded)
	if len(scored) == 0 {
		return prompt
	}
	ctx := formatContext(snap, Sections(scored), i.maxChars)
	if ctx == "" {
		return prompt
	}
	return prompt + "\n\n" + ctx
}

var defaultInjector = NewInjector()

// ShouldInject reports whether prompt mentions anything telemetry could help with.
func ShouldInject(prompt string) bool { return defaultInjector.ShouldInject(prompt) }

// Relevance scores prompt against the default rule table.
func Relevance(prompt string) []ScoredSection { return defaultInjector.Relevance(prompt) }

// FormatContext renders sections of snap within the default budget.
func FormatContext(snap *Snapshot, sections []Section) string {
	return defaultInjector.FormatContext(snap, sections)
}

// InjectContext appends relevant telemetry to prompt using the defaults.
func InjectContext(prompt string, snap *Snapshot) string {
	return defaultInjector.InjectContext(prompt, snap)
}
