// ABOUTME: inject subcommand appending relevant telemetry context to a prompt
// ABOUTME: The snapshot is read as JSON from a file or from stdin with "-"

package main

import (
	"fmt"
	"io"
	"os"

	pilog "github.com/mauromedda/pi-intent/internal/log"
	"github.com/mauromedda/pi-intent/internal/telemetry"
	"github.com/spf13/cobra"
)

// injection is the JSON shape of the inject command's result.
type injection struct {
	Prompt   string                    `json:"prompt"`
	Inject   bool                      `json:"inject"`
	Sections []telemetry.ScoredSection `json:"sections"`
	Context  string                    `json:"context,omitempty"`
	Output   string                    `json:"output"`
}

func newInjectCmd(a *app) *cobra.Command {
	var (
		snapshotPath string
		tokens       int
	)

	cmd := &cobra.Command{
		Use:   "inject --snapshot <file|-> <prompt>...",
		Short: "Append relevant system telemetry to a prompt",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			budget := a.settings.EffectiveContextTokens()
			if cmd.Flags().Changed("tokens") {
				if tokens <= 0 {
					return fmt.Errorf("tokens must be positive, got %d", tokens)
				}
				budget = tokens
			}

			prompt, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			snap, err := readSnapshot(cmd.InOrStdin(), snapshotPath)
			if err != nil {
				return err
			}
			inj := telemetry.NewInjector(telemetry.WithMaxTokens(budget))

			res := injection{
				Prompt:   prompt,
				Inject:   inj.ShouldInject(prompt),
				Sections: inj.Relevance(prompt),
				Output:   inj.InjectContext(prompt, snap),
			}
			if len(res.Sections) > 0 {
				res.Context = inj.FormatContext(snap, telemetry.Sections(res.Sections))
			}
			if res.Sections == nil {
				res.Sections = []telemetry.ScoredSection{}
			}
			pilog.Debug("telemetry relevance",
				"inject", res.Inject,
				"sections", len(res.Sections),
				"budget_chars", inj.MaxChars())

			if a.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Output)
			return nil
		},
	}
	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Telemetry snapshot JSON file, or - for stdin")
	cmd.Flags().IntVar(&tokens, "tokens", telemetry.DefaultMaxTokens, "Context budget in tokens (overrides settings)")
	_ = cmd.MarkFlagRequired("snapshot")
	return cmd
}

func readSnapshot(stdin io.Reader, path string) (*telemetry.Snapshot, error) {
	if path == "-" {
		return telemetry.DecodeSnapshot(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()
	return telemetry.DecodeSnapshot(f)
}
