// ABOUTME: Settings loading with global + project YAML config merge and env overrides
// ABOUTME: Project settings override global; PI_INTENT_* variables override both

package config

import (
	"fmt"
	"io/fs"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Defaults applied when a setting is absent.
const (
	DefaultThreshold     = 50
	DefaultContextTokens = 500
	DefaultLogLevel      = "info"
	DefaultMode          = "normal"
)

// Settings holds the merged configuration.
type Settings struct {
	// Threshold is a pointer because 0 is a meaningful threshold.
	Threshold      *int     `yaml:"threshold,omitempty"`
	Languages      []string `yaml:"languages,omitempty"`
	ContextTokens  int      `yaml:"context_tokens,omitempty"`
	LogLevel       string   `yaml:"log_level,omitempty"`
	PermissionMode string   `yaml:"permission_mode,omitempty"`
	Allow          []string `yaml:"allow,omitempty"`
	Deny           []string `yaml:"deny,omitempty"`
}

// EffectiveThreshold returns the ambiguity threshold, defaulting to 50.
func (s *Settings) EffectiveThreshold() int {
	if s == nil || s.Threshold == nil {
		return DefaultThreshold
	}
	return *s.Threshold
}

// EffectiveContextTokens returns the telemetry context budget in tokens.
func (s *Settings) EffectiveContextTokens() int {
	if s == nil || s.ContextTokens <= 0 {
		return DefaultContextTokens
	}
	return s.ContextTokens
}

// EffectiveLogLevel returns the configured log level name.
func (s *Settings) EffectiveLogLevel() string {
	if s == nil || s.LogLevel == "" {
		return DefaultLogLevel
	}
	return s.LogLevel
}

// EffectiveMode returns the permission mode name.
func (s *Settings) EffectiveMode() string {
	if s == nil || s.PermissionMode == "" {
		return DefaultMode
	}
	return s.PermissionMode
}

// Load reads and merges global and project-local settings, then applies
// environment overrides.
func Load(projectRoot string) (*Settings, error) {
	return LoadFiles(GlobalConfigFile(), ProjectConfigFile(projectRoot))
}

// LoadFiles is Load with explicit paths. Missing files are skipped.
func LoadFiles(globalPath, projectPath string) (*Settings, error) {
	global, err := loadFile(globalPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(projectPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(global, project)
	ResolveEnvVars(merged)
	if err := ApplyEnv(merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// loadFile reads Settings from a YAML file. Returns zero Settings if the
// file does not exist; an empty path counts as missing.
func loadFile(path string) (*Settings, error) {
	if path == "" {
		return &Settings{}, fs.ErrNotExist
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays project settings onto global settings.
// Non-zero project values override global values; rule lists are unioned.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.Threshold != nil {
		v := *project.Threshold
		result.Threshold = &v
	}
	if len(project.Languages) > 0 {
		result.Languages = slices.Clone(project.Languages)
	}
	if project.ContextTokens != 0 {
		result.ContextTokens = project.ContextTokens
	}
	if project.LogLevel != "" {
		result.LogLevel = project.LogLevel
	}
	if project.PermissionMode != "" {
		result.PermissionMode = project.PermissionMode
	}

	result.Allow = union(global.Allow, project.Allow)
	result.Deny = union(global.Deny, project.Deny)

	return &result
}

func union(a, b []string) []string {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make([]string, 0, len(a)+len(b))
	for _, s := range slices.Concat(a, b) {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}
