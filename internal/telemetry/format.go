// ABOUTME: One-line summaries of snapshot sections and budget-bounded context assembly
// ABOUTME: Sections are appended in order until the next one would overflow the budget

package telemetry

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rivo/uniseg"
)

const (
	// DefaultMaxTokens bounds the context snippet size.
	DefaultMaxTokens = 500
	// CharsPerToken converts the token budget to characters.
	CharsPerToken = 4

	joinSep      = " | "
	joinOverhead = 3 // len(joinSep)

	maxTopProcesses = 3
	maxListItems    = 5
	maxErrors       = 3
	maxErrorChars   = 120
)

// summarizers render one section; an empty result means nothing to say.
var summarizers = map[Section]func(*Snapshot) string{
	SectionCPU:     summarizeCPU,
	SectionMemory:  summarizeMemory,
	SectionDisk:    summarizeDisk,
	SectionNetwork: summarizeNetwork,
	SectionErrors:  summarizeErrors,
	SectionDocker:  summarizeDocker,
	SectionGit:     summarizeGit,
}

// formatContext renders sections in order into a bracketed context line,
// stopping before the first section whose addition would exceed maxChars.
func formatContext(snap *Snapshot, sections []Section, maxChars int) string {
	if snap == nil {
		return ""
	}
	var parts []string
	used := 0
	rendered := make(map[Section]bool, len(sections))
	for _, sec := range sections {
		if rendered[sec] {
			continue
		}
		rendered[sec] = true
		fn, ok := summarizers[sec]
		if !ok {
			continue
		}
		text := fn(snap)
		if text == "" {
			continue
		}
		cost := uniseg.GraphemeClusterCount(text) + joinOverhead
		if used+cost > maxChars {
			break
		}
		used += cost
		parts = append(parts, text)
	}
	if len(parts) == 0 {
		return ""
	}
	return "[System Context: " + platformLabel(snap.Platform) + joinSep + strings.Join(parts, joinSep) + "]"
}

func platformLabel(p *Platform) string {
	switch {
	case p == nil || (p.OS == "" && p.Arch == ""):
		return "unknown"
	case p.Arch == "":
		return p.OS
	case p.OS == "":
		return p.Arch
	default:
		return p.OS + "/" + p.Arch
	}
}

func summarizeCPU(s *Snapshot) string {
	if s.CPU == nil {
		return ""
	}
	out := "CPU: " + percent(s.CPU.Usage)
	var top []string
	for _, p := range s.CPU.TopProcesses {
		if p.Name == "" {
			continue
		}
		top = append(top, p.Name+" "+percent(p.CPU))
		if len(top) == maxTopProcesses {
			break
		}
	}
	if len(top) > 0 {
		out += " (top: " + strings.Join(top, ", ") + ")"
	}
	return out
}

func summarizeMemory(s *Snapshot) string {
	m := s.Memory
	if m == nil || m.Total == 0 {
		return ""
	}
	return fmt.Sprintf("Memory: %s / %s (%s)", humanize.IBytes(m.Used), humanize.IBytes(m.Total), percent(usage(m.Usage, m.Used, m.Total)))
}

func summarizeDisk(s *Snapshot) string {
	var mounts []string
	for _, d := range s.Disk {
		if d.Mount == "" || d.Total == 0 {
			continue
		}
		mounts = append(mounts, fmt.Sprintf("%s %s/%s (%s)", d.Mount, humanize.IBytes(d.Used), humanize.IBytes(d.Total), percent(usage(d.Usage, d.Used, d.Total))))
		if len(mounts) == maxListItems {
			break
		}
	}
	if len(mounts) == 0 {
		return ""
	}
	return "Disk: " + strings.Join(mounts, ", ")
}

func summarizeNetwork(s *Snapshot) string {
	var ports []string
	for _, p := range s.Network {
		if p.Port <= 0 {
			continue
		}
		entry := strconv.Itoa(p.Port)
		if p.Process != "" {
			entry += " (" + p.Process + ")"
		}
		ports = append(ports, entry)
		if len(ports) == maxListItems*2 {
			break
		}
	}
	if len(ports) == 0 {
		return ""
	}
	return "Listening ports: " + strings.Join(ports, ", ")
}

func summarizeErrors(s *Snapshot) string {
	var msgs []string
	for _, e := range s.Errors {
		msg := strings.TrimSpace(e.Message)
		if msg == "" {
			continue
		}
		msgs = append(msgs, truncate(msg, maxErrorChars))
		if len(msgs) == maxErrors {
			break
		}
	}
	if len(msgs) == 0 {
		return ""
	}
	return "Recent errors: " + strings.Join(msgs, "; ")
}

func summarizeDocker(s *Snapshot) string {
	var cs []string
	for _, c := range s.Docker {
		if c.Name == "" {
			continue
		}
		status := c.Status
		if status == "" {
			status = "unknown"
		}
		cs = append(cs, c.Name+" ("+status+")")
		if len(cs) == maxListItems*2 {
			break
		}
	}
	if len(cs) == 0 {
		return ""
	}
	return "Containers: " + strings.Join(cs, ", ")
}

func summarizeGit(s *Snapshot) string {
	g := s.Git
	if g == nil || (g.Branch == "" && g.Status == "") {
		return ""
	}
	branch := g.Branch
	if branch == "" {
		branch = "detached"
	}
	if g.Status == "" {
		return "Git: " + branch
	}
	return "Git: " + branch + " (" + g.Status + ")"
}

// usage prefers the collector's percentage and derives one otherwise.
func usage(pct float64, used, total uint64) float64 {
	if pct > 0 || total == 0 {
		return pct
	}
	return float64(used) / float64(total) * 100
}

func percent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

// truncate shortens s to at most n grapheme clusters, marking the cut with "…".
func truncate(s string, n int) string {
	if uniseg.GraphemeClusterCount(s) <= n {
		return s
	}
	var b strings.Builder
	g := uniseg.NewGraphemes(s)
	for i := 0; i < n-1 && g.Next(); i++ {
		b.WriteString(g.Str())
	}
	b.WriteString("…")
	return b.String()
}
