// ABOUTME: Telemetry snapshot shape produced by the external collector
// ABOUTME: Every section is optional; missing sections are treated as absent, never as errors

package telemetry

import (
	"encoding/json"
	"fmt"
	"io"
)

// Snapshot is a point-in-time view of the host. The collector owns it; this
// package only reads it.
type Snapshot struct {
	Platform *Platform     `json:"platform,omitempty"`
	CPU      *CPU          `json:"cpu,omitempty"`
	Memory   *Memory       `json:"memory,omitempty"`
	Disk     []Disk        `json:"disk,omitempty"`
	Network  []Port        `json:"network,omitempty"`
	Errors   []SystemError `json:"errors,omitempty"`
	Docker   []Container   `json:"docker,omitempty"`
	Git      *Git          `json:"git,omitempty"`
}

type Platform struct {
	OS   string `json:"os"`
	Arch string `json:"arch"`
}

type CPU struct {
	Usage        float64   `json:"usage"` // percent
	TopProcesses []Process `json:"topProcesses,omitempty"`
}

type Process struct {
	Name string  `json:"name"`
	PID  int     `json:"pid,omitempty"`
	CPU  float64 `json:"cpu"` // percent
}

// Memory sizes are in bytes; Usage is a percentage.
type Memory struct {
	Used  uint64  `json:"used"`
	Total uint64  `json:"total"`
	Usage float64 `json:"usage"`
}

// Disk sizes are in bytes; Usage is a percentage.
type Disk struct {
	Mount string  `json:"mount"`
	Used  uint64  `json:"used"`
	Total uint64  `json:"total"`
	Usage float64 `json:"usage"`
}

type Port struct {
	Port    int    `json:"port"`
	Process string `json:"process,omitempty"`
}

type SystemError struct {
	Message string `json:"message"`
	Source  string `json:"source,omitempty"`
}

type Container struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

type Git struct {
	Branch string `json:"branch"`
	Status string `json:"status"`
}

// DecodeSnapshot reads a JSON snapshot. Unknown fields are ignored so newer
// collectors keep working.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &s, nil
}
