// ABOUTME: match, resolve, and recommend subcommands
// ABOUTME: Thin adapters from CLI input to the intent, resolver, and recommend packages

package main

import (
	"fmt"
	"strings"

	"github.com/mauromedda/pi-intent/internal/intent"
	pilog "github.com/mauromedda/pi-intent/internal/log"
	"github.com/mauromedda/pi-intent/internal/recommend"
	"github.com/mauromedda/pi-intent/internal/report"
	"github.com/spf13/cobra"
)

func newMatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "match [text...]",
		Short: "List keyword matches for a request",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			matches := intent.MatchKeywords(text, a.settings.Languages...)
			pilog.Debug("matched keywords", "count", len(matches))

			if a.jsonOutput() {
				if matches == nil {
					matches = []intent.Match{}
				}
				return writeJSON(cmd.OutOrStdout(), matches)
			}
			fmt.Fprint(cmd.OutOrStdout(), a.printer.Matches(matches))
			return nil
		},
	}
}

func newResolveCmd(a *app) *cobra.Command {
	var markdown bool

	cmd := &cobra.Command{
		Use:   "resolve [text...]",
		Short: "Resolve a request into intents, ambiguity, and a recommendation",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			out := a.resolver().Resolve(text)
			pilog.Debug("resolved",
				"intents", strings.Join(out.Intents, ","),
				"score", out.Ambiguity.Score,
				"ambiguous", out.Ambiguity.Ambiguous,
				"recommendation", out.Recommendation.Intent)

			w := cmd.OutOrStdout()
			switch {
			case a.jsonOutput():
				return writeJSON(w, out)
			case markdown || report.IsTerminal(w):
				md := report.OutcomeMarkdown(out)
				if report.IsTerminal(w) {
					md = report.RenderMarkdown(md, report.Width(w))
				}
				fmt.Fprint(w, md)
			default:
				fmt.Fprint(w, a.printer.Outcome(out))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&markdown, "markdown", false, "Emit the report as markdown")
	return cmd
}

func newRecommendCmd(a *app) *cobra.Command {
	var (
		fromText bool
		best     bool
	)

	cmd := &cobra.Command{
		Use:   "recommend <intent>...",
		Short: "Look up execution strategies for intents",
		Long: "Look up execution strategies for canonical intents such as action:build.\n" +
			"With --text the arguments are treated as a request and its intents are used.",
		RunE: func(cmd *cobra.Command, args []string) error {
			intents, err := a.recommendIntents(cmd, args, fromText)
			if err != nil {
				return err
			}

			for _, l := range recommend.LookupAll(intents) {
				if l.Found {
					continue
				}
				pilog.Debug("no recommendation", "intent", l.Intent)
				if suggestions := intent.SuggestIntents(l.Intent); len(suggestions) > 0 {
					fmt.Fprintf(cmd.ErrOrStderr(), "unknown intent %q; did you mean %s?\n",
						l.Intent, strings.Join(suggestions, ", "))
				} else {
					fmt.Fprintf(cmd.ErrOrStderr(), "unknown intent %q\n", l.Intent)
				}
			}

			var records []recommend.Record
			if best {
				if r, ok := recommend.Best(intents); ok {
					records = []recommend.Record{r}
				}
			} else {
				records = recommend.Recommendations(intents)
			}

			if a.jsonOutput() {
				if records == nil {
					records = []recommend.Record{}
				}
				return writeJSON(cmd.OutOrStdout(), records)
			}
			fmt.Fprint(cmd.OutOrStdout(), a.printer.Records(records))
			return nil
		},
	}
	cmd.Flags().BoolVar(&fromText, "text", false, "Treat arguments as a request and match its intents")
	cmd.Flags().BoolVar(&best, "best", false, "Print only the single best recommendation")
	return cmd
}

func (a *app) recommendIntents(cmd *cobra.Command, args []string, fromText bool) ([]string, error) {
	if fromText {
		text, err := inputText(cmd, args)
		if err != nil {
			return nil, err
		}
		return intent.UniqueIntents(intent.MatchKeywords(text, a.settings.Languages...)), nil
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("at least one intent is required (known: %s)", strings.Join(intent.KnownIntents(), ", "))
	}
	return args, nil
}
