// ABOUTME: Three-tier safety classifier for free-text descriptions of system actions
// ABOUTME: blocked beats confirm beats auto; unknown actions default to confirm, empty to blocked

package permission

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mauromedda/pi-intent/internal/textnorm"
)

// Tier is the safety class of an action.
type Tier string

const (
	TierAuto    Tier = "auto"    // run without asking
	TierConfirm Tier = "confirm" // ask the user first
	TierBlocked Tier = "blocked" // never run
)

// String returns the tier name.
func (t Tier) String() string { return string(t) }

// RequiresApproval reports whether the tier needs a human before running.
func (t Tier) RequiresApproval() bool { return t != TierAuto }

// Classification is the verdict for one action description.
type Classification struct {
	Tier    Tier   `json:"classification"`
	Reason  string `json:"reason"`
	Matched string `json:"matched,omitempty"`
}

// ClassifyAction sorts a described action into a safety tier. Blocked and
// confirm phrases are case-insensitive substrings; auto requires every
// pipeline segment to start with a read-only command word.
func ClassifyAction(description string) Classification {
	folded := textnorm.Fold(strings.TrimSpace(description))
	if folded == "" {
		return Classification{Tier: TierBlocked, Reason: "empty action description"}
	}
	if m, ok := textnorm.ContainsAny(folded, blockedActions); ok {
		return Classification{
			Tier:    TierBlocked,
			Reason:  fmt.Sprintf("matches blocked operation %q", m),
			Matched: m,
		}
	}
	if m, ok := firstMatch(folded, blockedPatterns); ok {
		return Classification{
			Tier:    TierBlocked,
			Reason:  fmt.Sprintf("matches blocked pattern %q", m),
			Matched: m,
		}
	}
	if m, ok := textnorm.ContainsAny(folded, confirmActions); ok {
		return Classification{
			Tier:    TierConfirm,
			Reason:  fmt.Sprintf("matches impactful operation %q", m),
			Matched: m,
		}
	}

	segments := commandSegments(folded)
	for _, seg := range segments {
		if confirmCommands[seg[0]] {
			return Classification{
				Tier:    TierConfirm,
				Reason:  fmt.Sprintf("runs impactful command %q", seg[0]),
				Matched: seg[0],
			}
		}
	}
	if m, ok := firstMatch(folded, riskyPatterns); ok {
		return Classification{
			Tier:    TierConfirm,
			Reason:  fmt.Sprintf("matches impactful pattern %q", m),
			Matched: m,
		}
	}
	if cmd, ok := readOnly(segments); ok {
		return Classification{
			Tier:    TierAuto,
			Reason:  fmt.Sprintf("read-only command %q", cmd),
			Matched: cmd,
		}
	}
	return Classification{Tier: TierConfirm, Reason: "unrecognized action; confirmation required"}
}

// commandSegments splits on |, || and && and returns the words of each
// non-empty segment.
func commandSegments(folded string) [][]string {
	var segments [][]string
	for _, seg := range pipelineSplitter.Split(folded, -1) {
		if words := strings.Fields(seg); len(words) > 0 {
			segments = append(segments, words)
		}
	}
	return segments
}

// readOnly reports whether every segment starts with a read-only command and
// returns the first segment's command for the reason.
func readOnly(segments [][]string) (string, bool) {
	if len(segments) == 0 {
		return "", false
	}
	var first string
	for i, words := range segments {
		cmd, ok := readOnlyCommand(words)
		if !ok {
			return "", false
		}
		if i == 0 {
			first = cmd
		}
	}
	return first, true
}

func readOnlyCommand(words []string) (string, bool) {
	if readOnlyCommands[words[0]] {
		return words[0], true
	}
	subs, ok := readOnlySubcommands[words[0]]
	if !ok || len(words) < 2 || !subs[words[1]] {
		return "", false
	}
	return words[0] + " " + words[1], true
}

func firstMatch(s string, patterns []*regexp.Regexp) (string, bool) {
	for _, p := range patterns {
		if m := p.FindString(s); m != "" {
			return m, true
		}
	}
	return "", false
}
