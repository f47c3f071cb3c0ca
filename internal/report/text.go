// ABOUTME: Plain-text renderers for matches, outcomes, recommendations, and classifications
// ABOUTME: Each renderer returns a newline-terminated block ready to print

package report

import (
	"fmt"
	"strings"

	"github.com/mauromedda/pi-intent/internal/intent"
	"github.com/mauromedda/pi-intent/internal/permission"
	"github.com/mauromedda/pi-intent/internal/recommend"
	"github.com/mauromedda/pi-intent/internal/resolver"
)

// Matches renders keyword matches as a table.
func (p *Printer) Matches(matches []intent.Match) string {
	if len(matches) == 0 {
		return "no intents detected\n"
	}
	rows := make([][]string, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, []string{m.Intent, m.Keyword, m.Language})
	}
	return p.Table([]string{"INTENT", "KEYWORD", "LANG"}, rows)
}

// Outcome renders a resolution summary.
func (p *Printer) Outcome(out resolver.Outcome) string {
	var b strings.Builder

	if len(out.Intents) == 0 {
		b.WriteString("intents:        none\n")
	} else {
		labels := make([]string, len(out.Intents))
		for i, name := range out.Intents {
			labels[i] = fmt.Sprintf("%s (%s)", name, labelOrIntent(name))
		}
		fmt.Fprintf(&b, "intents:        %s\n", strings.Join(labels, ", "))
	}

	a := out.Ambiguity
	state := p.paint(styleGreen, "clear")
	if a.Ambiguous {
		state = p.paint(styleYellow, "ambiguous")
	}
	fmt.Fprintf(&b, "ambiguity:      %d %s\n", a.Score, state)
	if a.HasClarification {
		fmt.Fprintf(&b, "clarification:  %s\n", a.Clarification)
	}

	if out.HasRecommendation {
		r := out.Recommendation
		fmt.Fprintf(&b, "recommendation: %s [%s] %s\n", p.paint(styleBlue, r.Intent), r.Type, r.Description)
	} else {
		fmt.Fprintf(&b, "recommendation: %s\n", p.paint(styleDim, "none"))
	}
	return b.String()
}

// Records renders recommendation records as a table.
func (p *Printer) Records(records []recommend.Record) string {
	if len(records) == 0 {
		return "no recommendations\n"
	}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Intent,
			string(r.Type),
			strings.Join(r.Roles, ","),
			strings.Join(r.Commands, ","),
			r.Description,
		})
	}
	return p.Table([]string{"INTENT", "TYPE", "ROLES", "COMMANDS", "DESCRIPTION"}, rows)
}

// Classification renders a single classified action.
func (p *Printer) Classification(action string, c permission.Classification) string {
	return fmt.Sprintf("%s  %s  (%s)\n", p.Tier(c.Tier), action, c.Reason)
}

// labelOrIntent returns the human label for an intent, or the intent itself.
func labelOrIntent(name string) string {
	if l, ok := intent.Label(name); ok {
		return l
	}
	return name
}
