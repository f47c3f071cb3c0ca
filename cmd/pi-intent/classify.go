// ABOUTME: classify subcommand reporting the safety tier of a system action
// ABOUTME: With --gate the action also goes through the permission checker and may prompt y/N

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	pilog "github.com/mauromedda/pi-intent/internal/log"
	"github.com/mauromedda/pi-intent/internal/permission"
	"github.com/spf13/cobra"
)

// verdict is the JSON shape of the classify command's result.
type verdict struct {
	Action         string                    `json:"action"`
	Classification permission.Classification `json:"result"`
	Gated          bool                      `json:"gated"`
	Allowed        bool                      `json:"allowed"`
	Error          string                    `json:"error,omitempty"`
}

func newClassifyCmd(a *app) *cobra.Command {
	var (
		gate bool
		mode string
	)

	cmd := &cobra.Command{
		Use:   "classify <action>...",
		Short: "Classify a system action as auto, confirm, or blocked",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			action := strings.Join(args, " ")

			v := verdict{Action: action}
			var checkErr error
			if gate {
				modeName := a.settings.EffectiveMode()
				if cmd.Flags().Changed("mode") {
					modeName = mode
				}
				m, err := permission.ParseMode(modeName)
				if err != nil {
					return err
				}
				checker := permission.NewCheckerFromSettings(m,
					stdinAsker(cmd.InOrStdin(), cmd.ErrOrStderr()),
					a.settings.Allow, a.settings.Deny)

				v.Gated = true
				v.Classification, checkErr = checker.Check(action)
				v.Allowed = checkErr == nil
				if checkErr != nil {
					v.Error = checkErr.Error()
				}
			} else {
				v.Classification = permission.ClassifyAction(action)
				v.Allowed = v.Classification.Tier == permission.TierAuto
			}
			pilog.Debug("classified",
				"tier", v.Classification.Tier,
				"matched", v.Classification.Matched,
				"gated", v.Gated,
				"allowed", v.Allowed)

			if a.jsonOutput() {
				if err := writeJSON(cmd.OutOrStdout(), v); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), a.printer.Classification(action, v.Classification))
			}
			return checkErr
		},
	}
	cmd.Flags().BoolVar(&gate, "gate", false, "Enforce the permission mode and allow/deny rules; exit non-zero if refused")
	cmd.Flags().StringVar(&mode, "mode", "", "Permission mode for --gate: normal, yolo, or plan (overrides settings)")
	return cmd
}

// stdinAsker prompts on out and reads a y/N answer from in.
func stdinAsker(in io.Reader, out io.Writer) permission.AskFunc {
	reader := bufio.NewReader(in)
	return func(action string, c permission.Classification) (bool, error) {
		fmt.Fprintf(out, "%q needs confirmation (%s). Proceed? [y/N] ", action, c.Reason)
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("reading answer: %w", err)
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	}
}
