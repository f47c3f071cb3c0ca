// ABOUTME: Root cobra command, shared flags, and settings resolution
// ABOUTME: Settings come from YAML config and env; explicit flags override both

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mauromedda/pi-intent/internal/config"
	"github.com/mauromedda/pi-intent/internal/intent"
	pilog "github.com/mauromedda/pi-intent/internal/log"
	"github.com/mauromedda/pi-intent/internal/report"
	"github.com/mauromedda/pi-intent/internal/resolver"
	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// app carries flag values and resolved settings shared by subcommands.
type app struct {
	format     string
	verbose    bool
	threshold  int
	languages  []string
	configPath string
	project    string

	settings *config.Settings
	printer  *report.Printer
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "pi-intent",
		Short:         "Detect intents, resolve ambiguity, and classify actions",
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetVersionTemplate("pi-intent {{.Version}}\n")

	flags := root.PersistentFlags()
	flags.StringVar(&a.format, "format", formatText, "Output format: text or json")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Log pipeline decisions to stderr")
	flags.IntVar(&a.threshold, "threshold", intent.DefaultThreshold, "Ambiguity threshold (overrides settings)")
	flags.StringSliceVar(&a.languages, "lang", nil, "Languages to match (default: all)")
	flags.StringVar(&a.configPath, "config", "", "Settings file to use instead of the global/project pair")
	flags.StringVar(&a.project, "project", "", "Project root for project-local settings (default: cwd)")

	root.AddCommand(
		newMatchCmd(a),
		newResolveCmd(a),
		newRecommendCmd(a),
		newInjectCmd(a),
		newClassifyCmd(a),
		newBatchCmd(a),
		newConfigCmd(a),
	)
	return root
}

// setup loads settings and applies flag overrides. It runs before every subcommand.
func (a *app) setup(cmd *cobra.Command) error {
	if a.format != formatText && a.format != formatJSON {
		return fmt.Errorf("unknown format %q (want text or json)", a.format)
	}

	settings, err := a.loadSettings()
	if err != nil {
		return err
	}

	level, err := pilog.ParseLevel(settings.EffectiveLogLevel())
	if err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if a.verbose {
		level = pilog.LevelDebug
	}
	pilog.SetOutput(cmd.ErrOrStderr())
	pilog.SetLevel(level)

	flags := cmd.Flags()
	if flags.Changed("threshold") {
		if a.threshold < 0 {
			return fmt.Errorf("threshold must be non-negative, got %d", a.threshold)
		}
		settings.Threshold = &a.threshold
	}
	if flags.Changed("lang") {
		settings.Languages = a.languages
	}
	for _, lang := range settings.Languages {
		if !intent.HasLanguage(lang) {
			pilog.Warn("no dictionary for language", "lang", lang)
		}
	}

	a.settings = settings
	a.printer = report.ForWriter(cmd.OutOrStdout())
	pilog.Debug("settings loaded",
		"threshold", settings.EffectiveThreshold(),
		"languages", strings.Join(settings.Languages, ","),
		"context_tokens", settings.EffectiveContextTokens(),
		"mode", settings.EffectiveMode())
	return nil
}

func (a *app) loadSettings() (*config.Settings, error) {
	if a.configPath != "" {
		if _, err := os.Stat(a.configPath); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		s, err := config.LoadFiles(a.configPath, "")
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return s, nil
	}

	root := a.project
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		root = cwd
	}
	s, err := config.Load(root)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return s, nil
}

func (a *app) resolver() *resolver.Resolver {
	return &resolver.Resolver{
		Threshold: a.settings.EffectiveThreshold(),
		Languages: a.settings.Languages,
	}
}

func (a *app) jsonOutput() bool {
	return a.format == formatJSON
}

// writeJSON encodes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}

// writeJSONLine encodes v as a single line of JSON.
func writeJSONLine(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}

// inputText joins positional args, or reads all of stdin when there are none.
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
