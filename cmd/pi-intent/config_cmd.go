// ABOUTME: config subcommand showing the effective merged settings
// ABOUTME: Text output uses config.Explain; JSON output dumps the resolved values

package main

import (
	"fmt"

	"github.com/mauromedda/pi-intent/internal/config"
	"github.com/spf13/cobra"
)

// effectiveSettings is the JSON shape of the config command's result.
type effectiveSettings struct {
	Threshold      int      `json:"threshold"`
	Languages      []string `json:"languages"`
	ContextTokens  int      `json:"contextTokens"`
	LogLevel       string   `json:"logLevel"`
	PermissionMode string   `json:"permissionMode"`
	Allow          []string `json:"allow"`
	Deny           []string `json:"deny"`
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := a.settings
			if a.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), effectiveSettings{
					Threshold:      s.EffectiveThreshold(),
					Languages:      nonNil(s.Languages),
					ContextTokens:  s.EffectiveContextTokens(),
					LogLevel:       s.EffectiveLogLevel(),
					PermissionMode: s.EffectiveMode(),
					Allow:          nonNil(s.Allow),
					Deny:           nonNil(s.Deny),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), config.Explain(s))
			return nil
		},
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
