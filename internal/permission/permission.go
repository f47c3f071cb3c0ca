// ABOUTME: Execution gate combining action tiers with normal, yolo and plan modes
// ABOUTME: Blocked actions can never run; confirm-tier actions go through allow rules or the ask function

package permission

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mauromedda/pi-intent/internal/textnorm"
)

// Mode determines how confirm-tier actions are handled.
type Mode int

const (
	ModeNormal Mode = iota // Ask the user for confirm-tier actions
	ModeYolo               // Run confirm-tier actions without asking
	ModePlan               // Read-only: only auto-tier actions run
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeYolo:
		return "yolo"
	case ModePlan:
		return "plan"
	default:
		return "unknown"
	}
}

// ParseMode maps a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal":
		return ModeNormal, nil
	case "yolo":
		return ModeYolo, nil
	case "plan":
		return ModePlan, nil
	default:
		return ModeNormal, fmt.Errorf("unknown permission mode %q", s)
	}
}

var (
	// ErrBlocked is returned for blocked-tier actions.
	ErrBlocked = errors.New("action blocked")
	// ErrDenied is returned when a rule, the mode, or the user refuses an action.
	ErrDenied = errors.New("action denied")
)

// Rule matches action descriptions. Pattern is compared against the folded
// description: "*" matches everything, a trailing "*" is a prefix match,
// anything else must match exactly.
type Rule struct {
	Pattern string
	Message string // Custom message for deny
}

// AskFunc is called when user confirmation is needed in normal mode.
type AskFunc func(action string, c Classification) (bool, error)

// Checker decides whether an action may run.
type Checker struct {
	mode       Mode
	allowRules []Rule
	denyRules  []Rule
	askFn      AskFunc
}

// NewChecker creates a Checker with the given mode and ask function.
func NewChecker(mode Mode, askFn AskFunc) *Checker {
	return &Checker{mode: mode, askFn: askFn}
}

// NewCheckerFromSettings creates a Checker with allow and deny patterns.
func NewCheckerFromSettings(mode Mode, askFn AskFunc, allow, deny []string) *Checker {
	c := NewChecker(mode, askFn)
	for _, p := range allow {
		c.AddAllowRule(Rule{Pattern: p})
	}
	for _, p := range deny {
		c.AddDenyRule(Rule{Pattern: p})
	}
	return c
}

// Mode returns the current permission mode.
func (c *Checker) Mode() Mode {
	return c.mode
}

// AddAllowRule adds a rule that lets a confirm-tier action run without asking.
func (c *Checker) AddAllowRule(rule Rule) {
	c.allowRules = append(c.allowRules, rule)
}

// AddDenyRule adds a rule that refuses an action.
func (c *Checker) AddDenyRule(rule Rule) {
	c.denyRules = append(c.denyRules, rule)
}

// Check classifies action and returns nil if it may run. The classification
// is returned either way so callers can report the reason.
func (c *Checker) Check(action string) (Classification, error) {
	cls := ClassifyAction(action)
	if cls.Tier == TierBlocked {
		return cls, fmt.Errorf("%w: %s", ErrBlocked, cls.Reason)
	}

	folded := textnorm.Fold(strings.TrimSpace(action))
	for _, rule := range c.denyRules {
		if matchPattern(rule.Pattern, folded) {
			msg := rule.Message
			if msg == "" {
				msg = fmt.Sprintf("%q denied by rule %q", action, rule.Pattern)
			}
			return cls, fmt.Errorf("%w: %s", ErrDenied, msg)
		}
	}

	if cls.Tier == TierAuto {
		return cls, nil
	}

	if c.mode == ModePlan {
		return cls, fmt.Errorf("%w: %q needs confirmation and plan mode is read-only", ErrDenied, action)
	}

	for _, rule := range c.allowRules {
		if matchPattern(rule.Pattern, folded) {
			return cls, nil
		}
	}

	if c.mode == ModeYolo {
		return cls, nil
	}

	if c.askFn == nil {
		return cls, fmt.Errorf("%w: %q needs confirmation and no interactive approval is available", ErrDenied, action)
	}
	allowed, err := c.askFn(action, cls)
	if err != nil {
		return cls, fmt.Errorf("permission check failed: %w", err)
	}
	if !allowed {
		return cls, fmt.Errorf("%w: %q refused by user", ErrDenied, action)
	}
	return cls, nil
}

// matchPattern checks if a pattern matches a folded action description.
func matchPattern(pattern, folded string) bool {
	pattern = textnorm.Fold(strings.TrimSpace(pattern))
	if pattern == "*" {
		return true
	}
	if strings.HasSuffix(pattern, "*") {
		return strings.HasPrefix(folded, pattern[:len(pattern)-1])
	}
	return pattern == folded
}
