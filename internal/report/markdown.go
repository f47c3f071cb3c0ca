// ABOUTME: Markdown rendering of resolution reports via glamour
// ABOUTME: Falls back to the raw markdown when rendering fails

package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mauromedda/pi-intent/internal/resolver"
)

// RenderMarkdown returns the terminal-styled rendering of md wrapped at width.
func RenderMarkdown(md string, width int) string {
	if md == "" {
		return ""
	}
	if width <= 0 {
		width = defaultWidth
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(rendered, "\n ") + "\n"
}

// OutcomeMarkdown describes a resolution as a markdown document.
func OutcomeMarkdown(out resolver.Outcome) string {
	var b strings.Builder

	b.WriteString("# Resolution\n\n")
	fmt.Fprintf(&b, "**Request:** %s\n\n", escapeMarkdown(out.Text))

	b.WriteString("## Intents\n\n")
	if len(out.Matches) == 0 {
		b.WriteString("_No intent detected._\n\n")
	} else {
		b.WriteString("| Intent | Keyword | Language |\n|---|---|---|\n")
		for _, m := range out.Matches {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", m.Intent, escapeMarkdown(m.Keyword), m.Language)
		}
		b.WriteString("\n")
	}

	a := out.Ambiguity
	b.WriteString("## Ambiguity\n\n")
	fmt.Fprintf(&b, "- Score: %d (base %d, category +%d, synonyms -%d)\n",
		a.Score, a.Breakdown.Base, a.Breakdown.CategoryPenalty, a.Breakdown.SimilarityDiscount)
	fmt.Fprintf(&b, "- Ambiguous: %s\n", yesNo(a.Ambiguous))
	if a.HasClarification {
		fmt.Fprintf(&b, "\n> %s\n", a.Clarification)
	}
	b.WriteString("\n")

	b.WriteString("## Recommendation\n\n")
	switch {
	case out.HasRecommendation:
		r := out.Recommendation
		fmt.Fprintf(&b, "**%s** (%s): %s\n\n", r.Intent, r.Type, r.Description)
		if len(r.Roles) > 0 {
			fmt.Fprintf(&b, "- Roles: %s\n", strings.Join(r.Roles, ", "))
		}
		if len(r.Commands) > 0 {
			fmt.Fprintf(&b, "- Commands: `%s`\n", strings.Join(r.Commands, "`, `"))
		}
	case a.Ambiguous:
		b.WriteString("_Withheld until the request is clarified._\n")
	default:
		b.WriteString("_None._\n")
	}
	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

var markdownEscaper = strings.NewReplacer("|", `\|`, "*", `\*`, "_", `\_`, "`", "\\`")

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
