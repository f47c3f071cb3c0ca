// ABOUTME: Lipgloss palette and styles for CLI text output
// ABOUTME: Printer renders plain text when output is not a terminal

package report

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mauromedda/pi-intent/internal/permission"
)

var (
	colorGreen  = lipgloss.Color("#8ec07c")
	colorYellow = lipgloss.Color("#fabd2f")
	colorRed    = lipgloss.Color("#fb4934")
	colorBlue   = lipgloss.Color("#83a598")
	colorDim    = lipgloss.Color("#928374")
	colorHeader = lipgloss.Color("#fe8019")
)

var (
	styleGreen  = lipgloss.NewStyle().Foreground(colorGreen)
	styleYellow = lipgloss.NewStyle().Foreground(colorYellow)
	styleRed    = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	styleBlue   = lipgloss.NewStyle().Foreground(colorBlue)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleHeader = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
)

// Printer formats report fragments, optionally with terminal styling.
type Printer struct {
	color bool
	width int
}

// NewPrinter returns a Printer. Color is applied only when color is true;
// width bounds table columns (0 means unbounded).
func NewPrinter(color bool, width int) *Printer {
	return &Printer{color: color, width: width}
}

func (p *Printer) paint(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

// TierStyle returns the style used for a permission tier.
func TierStyle(t permission.Tier) lipgloss.Style {
	switch t {
	case permission.TierAuto:
		return styleGreen
	case permission.TierConfirm:
		return styleYellow
	case permission.TierBlocked:
		return styleRed
	default:
		return styleDim
	}
}

// Tier renders a tier label in its color.
func (p *Printer) Tier(t permission.Tier) string {
	return p.paint(TierStyle(t), t.String())
}

// Header renders a section header.
func (p *Printer) Header(text string) string {
	return p.paint(styleHeader, text)
}
