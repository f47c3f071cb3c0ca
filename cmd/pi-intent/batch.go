// ABOUTME: batch subcommand resolving one request per input line concurrently
// ABOUTME: Output keeps input order; JSON output is one object per line

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	pilog "github.com/mauromedda/pi-intent/internal/log"
	"github.com/spf13/cobra"
)

func newBatchCmd(a *app) *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Resolve one request per line from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening batch file: %w", err)
				}
				defer f.Close()
				in = f
			}

			texts, err := readLines(in)
			if err != nil {
				return err
			}
			pilog.Debug("batch", "requests", len(texts), "jobs", jobs)

			outcomes, err := a.resolver().ResolveAll(cmd.Context(), texts, jobs)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if a.jsonOutput() {
				for _, out := range outcomes {
					if err := writeJSONLine(w, out); err != nil {
						return err
					}
				}
				return nil
			}

			rows := make([][]string, 0, len(outcomes))
			for _, out := range outcomes {
				rec := "-"
				if out.HasRecommendation {
					rec = out.Recommendation.Intent
				}
				intents := strings.Join(out.Intents, ",")
				if intents == "" {
					intents = "-"
				}
				score := strconv.Itoa(out.Ambiguity.Score)
				if out.Ambiguity.Ambiguous {
					score += "?"
				}
				rows = append(rows, []string{out.Text, intents, score, rec})
			}
			fmt.Fprint(w, a.printer.Table([]string{"REQUEST", "INTENTS", "SCORE", "RECOMMENDATION"}, rows))
			return nil
		},
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "Maximum concurrent resolutions")
	return cmd
}

// readLines returns the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading batch input: %w", err)
	}
	return lines, nil
}
