package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/unbound-force/cursecov/internal/config"
	"github.com/unbound-force/cursecov/internal/coverage"
	"github.com/unbound-force/cursecov/internal/extract"
	"github.com/unbound-force/cursecov/internal/fileset"
	"github.com/unbound-force/cursecov/internal/report"
	"github.com/unbound-force/cursecov/internal/scaffold"
	"github.com/unbound-force/cursecov/internal/vocab"
)

// logger is the application-wide structured logger (writes to stderr).
var logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: false,
})

// Set by build flags.
var version = "dev"

// Exit statuses.
const (
	exitThreshold = 1
	exitFatal     = 2
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps a run error to the process exit status. A coverage
// below the minimum is the expected failure; everything else is fatal.
func exitCode(err error) int {
	var te *coverage.ThresholdError
	if errors.As(err, &te) {
		return exitThreshold
	}
	return exitFatal
}

// checkParams holds the resolved inputs of a coverage check.
type checkParams struct {
	settings    config.Settings
	interactive bool
	stdout      io.Writer
	stderr      io.Writer
}

// runCheck is the extracted, testable body of the root command.
func runCheck(p checkParams) error {
	s := p.settings
	if err := config.Validate(s); err != nil {
		return err
	}
	if s.Verbose {
		logger.SetLevel(charmlog.DebugLevel)
	}

	logger.Info("checking curse coverage",
		"include", s.IncludePattern, "ignore", s.IgnorePattern, "min", s.MinCoverage)

	files, err := fileset.Resolve(
		fileset.SplitPatterns(s.IncludePattern),
		fileset.SplitPatterns(s.IgnorePattern))
	if err != nil {
		return err
	}
	paths := files.Sorted()
	if len(paths) == 0 {
		logger.Warn("no files matched the include patterns")
	}

	opts := coverage.Options{Workers: s.Jobs}
	if s.Verbose {
		opts.OnFile = func(fa coverage.FileAnalysis) {
			logger.Debug("analyzed file", "path", fa.Path,
				"comments", fa.Comments, "curse", fa.CurseComments)
		}
	}
	rpt, err := coverage.Analyze(paths, extract.New(), vocab.Default(), opts)
	if err != nil {
		return err
	}

	logger.Info("analysis complete", "files", rpt.Summary.Files, "coverage", rpt.Summary.Coverage)

	switch {
	case p.interactive:
		if err := runInteractiveReport(rpt, s.MinCoverage); err != nil {
			return err
		}
	case s.Verbose:
		if err := writeReport(p.stdout, s, rpt); err != nil {
			return err
		}
	}

	printCISummary(p.stderr, rpt, s.MinCoverage)

	return coverage.Check(rpt, s.MinCoverage)
}

// printCISummary prints a one-line CI summary to stderr.
func printCISummary(w io.Writer, rpt *coverage.Report, min float64) {
	status := "PASS"
	if coverage.Check(rpt, min) != nil {
		status = "FAIL"
	}
	fmt.Fprintf(w, "Curse coverage: %d%%/%s%% (%s)\n",
		rpt.Summary.Coverage, strconv.FormatFloat(min, 'f', -1, 64), status)
}

// writeReport outputs the report in the configured format.
func writeReport(w io.Writer, s config.Settings, rpt *coverage.Report) error {
	opts := report.DefaultOptions()
	opts.Version = version
	opts.MinCoverage = s.MinCoverage

	switch s.Format {
	case config.FormatJSON:
		return report.WriteJSON(w, rpt, opts)
	default:
		return report.WriteText(w, rpt, opts)
	}
}

// flagValues holds the raw values bound to the root command's flags.
type flagValues struct {
	includePattern string
	ignorePattern  string
	minCoverage    float64
	verbose        bool
	format         string
	jobs           int
	configPath     string
	interactive    bool
}

// layer returns the flags the user set explicitly, so that defaults
// never mask the config file or the environment.
func (f *flagValues) layer(cmd *cobra.Command) config.Layer {
	var l config.Layer
	flags := cmd.Flags()
	if flags.Changed("include-pattern") {
		l.IncludePattern = &f.includePattern
	}
	if flags.Changed("ignore-pattern") {
		l.IgnorePattern = &f.ignorePattern
	}
	if flags.Changed("min-coverage") {
		l.MinCoverage = &f.minCoverage
	}
	if flags.Changed("verbose") {
		l.Verbose = &f.verbose
	}
	if flags.Changed("format") {
		l.Format = &f.format
	}
	if flags.Changed("jobs") {
		l.Jobs = &f.jobs
	}
	return l
}

func newRootCmd() *cobra.Command {
	var f flagValues

	cmd := &cobra.Command{
		Use:   "cursecov",
		Short: "cursecov measures curse word coverage of JavaScript and TypeScript comments",
		Long: `cursecov scans JavaScript and TypeScript sources, extracts their
comments and reports the percentage of comments that contain at least
one curse word. The run fails when the total coverage is below the
required minimum, which makes it usable as a CI gate.

Settings are read from built-in defaults, a .cursecov.{yaml,yml,toml,json}
file found walking up from the working directory, CURSECOV_* environment
variables (a .env file is loaded first) and flags, each overriding the
previous.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := f.layer(cmd)
			if err := config.ValidateLayer(flags); err != nil {
				return err
			}
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting working directory: %w", err)
			}
			if err := config.LoadDotEnv(cwd); err != nil {
				return err
			}
			settings, cfgPath, err := config.Resolve(cwd, f.configPath, os.Getenv, flags)
			if err != nil {
				return err
			}
			if cfgPath != "" {
				logger.Debug("using config file", "path", cfgPath)
			}
			return runCheck(checkParams{
				settings:    settings,
				interactive: f.interactive,
				stdout:      cmd.OutOrStdout(),
				stderr:      cmd.ErrOrStderr(),
			})
		},
	}

	cmd.Flags().StringVar(&f.includePattern, "include-pattern", config.DefaultIncludePattern,
		"comma-separated glob patterns of files to analyze")
	cmd.Flags().StringVar(&f.ignorePattern, "ignore-pattern", config.DefaultIgnorePattern,
		"comma-separated glob patterns of files to skip")
	cmd.Flags().Float64Var(&f.minCoverage, "min-coverage", config.DefaultMinCoverage,
		"minimum total curse coverage in percent (0-100)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false,
		"print the per-file coverage report")
	cmd.Flags().StringVar(&f.format, "format", config.FormatText,
		"verbose report format: text or json")
	cmd.Flags().IntVar(&f.jobs, "jobs", config.DefaultJobs,
		"number of files analyzed concurrently")
	cmd.Flags().StringVar(&f.configPath, "config", "",
		"path to a config file (default: search from the working directory)")
	cmd.Flags().BoolVarP(&f.interactive, "interactive", "i", false,
		"launch interactive TUI for browsing the report")

	cmd.AddCommand(newSchemaCmd())
	cmd.AddCommand(newInitCmd())

	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for cursecov JSON output",
		Long: `Print the JSON Schema (Draft 2020-12) that documents the
structure of cursecov --verbose --format=json output. Useful for
validating output or generating client types.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), report.Schema)
			return err
		},
	}
}

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter .cursecov.yaml and CI workflow",
		Long: `Write a starter .cursecov.yaml and a GitHub Actions workflow that
runs cursecov into the current directory. Existing files are kept
unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := scaffold.Run(scaffold.Options{
				Force:   force,
				Version: version,
				Stdout:  cmd.OutOrStdout(),
			})
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")

	return cmd
}
