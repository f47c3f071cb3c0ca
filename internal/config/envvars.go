// ABOUTME: Environment handling for settings: ${VAR} expansion and PI_INTENT_* overrides
// ABOUTME: Unset ${VAR} references become empty; malformed numeric overrides are errors

package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Environment variables that override file settings.
const (
	EnvThreshold     = "PI_INTENT_THRESHOLD"
	EnvLanguages     = "PI_INTENT_LANGUAGES"
	EnvContextTokens = "PI_INTENT_CONTEXT_TOKENS"
	EnvLogLevel      = "PI_INTENT_LOG_LEVEL"
	EnvMode          = "PI_INTENT_MODE"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ResolveEnvVars expands ${VAR} patterns in string fields of Settings.
func ResolveEnvVars(s *Settings) {
	s.LogLevel = expandEnv(s.LogLevel)
	s.PermissionMode = expandEnv(s.PermissionMode)
	for i, l := range s.Languages {
		s.Languages[i] = expandEnv(l)
	}
	for i, p := range s.Allow {
		s.Allow[i] = expandEnv(p)
	}
	for i, p := range s.Deny {
		s.Deny[i] = expandEnv(p)
	}
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// ApplyEnv overrides settings from PI_INTENT_* environment variables.
func ApplyEnv(s *Settings) error {
	if v, ok := os.LookupEnv(EnvThreshold); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 0 {
			return fmt.Errorf("%s: invalid threshold %q", EnvThreshold, v)
		}
		s.Threshold = &n
	}
	if v := os.Getenv(EnvLanguages); v != "" {
		s.Languages = splitList(v)
	}
	if v, ok := os.LookupEnv(EnvContextTokens); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n <= 0 {
			return fmt.Errorf("%s: invalid token budget %q", EnvContextTokens, v)
		}
		s.ContextTokens = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		s.LogLevel = v
	}
	if v := os.Getenv(EnvMode); v != "" {
		s.PermissionMode = v
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
