// ABOUTME: Human-readable rendering of effective configuration
// ABOUTME: Used by the "config" CLI subcommand to show merged settings with defaults applied

package config

import (
	"fmt"
	"strings"
)

// Explain renders a human-readable summary of the effective settings.
func Explain(s *Settings) string {
	if s == nil {
		s = &Settings{}
	}

	var b strings.Builder

	b.WriteString("=== Intent ===\n")
	fmt.Fprintf(&b, "  Threshold:     %d\n", s.EffectiveThreshold())
	if len(s.Languages) > 0 {
		fmt.Fprintf(&b, "  Languages:     %s\n", strings.Join(s.Languages, ", "))
	} else {
		b.WriteString("  Languages:     all\n")
	}
	b.WriteString("\n")

	b.WriteString("=== Telemetry ===\n")
	fmt.Fprintf(&b, "  ContextTokens: %d\n", s.EffectiveContextTokens())
	b.WriteString("\n")

	b.WriteString("=== Permissions ===\n")
	fmt.Fprintf(&b, "  Mode:          %s\n", s.EffectiveMode())
	if len(s.Allow) > 0 {
		fmt.Fprintf(&b, "  Allow:         %s\n", strings.Join(s.Allow, ", "))
	}
	if len(s.Deny) > 0 {
		fmt.Fprintf(&b, "  Deny:          %s\n", strings.Join(s.Deny, ", "))
	}
	b.WriteString("\n")

	b.WriteString("=== Logging ===\n")
	fmt.Fprintf(&b, "  Level:         %s\n", s.EffectiveLogLevel())

	return b.String()
}
