package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/harrison/ppcheck/internal/config"
	"github.com/harrison/ppcheck/internal/display"
	"github.com/harrison/ppcheck/internal/fileutil"
	"github.com/harrison/ppcheck/internal/logger"
	"github.com/harrison/ppcheck/internal/models"
	"github.com/harrison/ppcheck/internal/preprocess"
	"github.com/harrison/ppcheck/internal/report"
	"github.com/spf13/cobra"
)

// scanFlags carries CLI flags; nil pointers mean "not set on the command line"
type scanFlags struct {
	configPath  string
	logLevel    *string
	excludeDirs []string
	showLines   *bool
	reportFile  *string
}

// NewScanCommand creates and returns the scan subcommand
func NewScanCommand() *cobra.Command {
	var (
		configPath  string
		logLevel    string
		excludeDirs []string
		showLines   bool
		reportFile  string
	)

	cmd := &cobra.Command{
		Use:   "scan <dist-path>",
		Short: "Scan a distribution tree for unresolved directives",
		Long: `Walk <dist-path> and list every preprocessable file that still has a
line starting with a directive marker and keyword.

Checked file types: .css (% directives), .dtd .html .js .jsm .xhtml .xml
.xul .manifest .properties .rdf (# directives).

Exit code: 0 when the scan completes (with or without findings),
1 when <dist-path> is missing or not a directory.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				display.Usage(cmd.OutOrStdout())
				return fmt.Errorf("%w: expected exactly one path, got %d", models.ErrUsage, len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := scanFlags{configPath: configPath}
			if cmd.Flags().Changed("log-level") {
				flags.logLevel = &logLevel
			}
			if cmd.Flags().Changed("exclude-dir") {
				flags.excludeDirs = excludeDirs
			}
			if cmd.Flags().Changed("show-lines") {
				flags.showLines = &showLines
			}
			if cmd.Flags().Changed("report-file") {
				flags.reportFile = &reportFile
			}
			return runScan(cmd.Context(), args[0], flags, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: ./"+config.DefaultConfigFile+" if present)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Diagnostic verbosity: trace, debug, info, warn, error")
	cmd.Flags().StringSliceVar(&excludeDirs, "exclude-dir", nil, "Directory name to skip while walking (repeatable)")
	cmd.Flags().BoolVar(&showLines, "show-lines", false, "Print the first offending line beneath each file")
	cmd.Flags().StringVar(&reportFile, "report-file", "", "Also write the report as YAML to this path")

	return cmd
}

// loadConfig loads an explicit config file, or ./.ppcheck.yaml when none is given
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.LoadConfigFromDir(".")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to access config file: %w", err)
	}
	return config.LoadConfig(path)
}

// runScan validates the root, scans it and prints the report.
// Diagnostics go to stderr; the report goes to stdout.
func runScan(ctx context.Context, root string, flags scanFlags, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// The root is checked before config and before anything else is printed,
	// so an invalid root always gets the usage message and no partial report
	if _, err := fileutil.ValidateRoot(root); err != nil {
		display.Usage(stdout)
		return err
	}

	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return err
	}
	cfg.MergeWithFlags(flags.logLevel, flags.excludeDirs, flags.showLines, flags.reportFile)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.NewConsoleLogger(stderr, cfg.LogLevel)

	reporter := display.NewReporter(stdout, display.ReportOptions{ShowLines: cfg.ShowLines})
	reporter.Start()

	result, err := preprocess.Run(ctx, root, preprocess.Options{ExcludeDirs: cfg.ExcludeDirs}, log)
	if err != nil {
		fmt.Fprintln(stdout)
		return err
	}

	reporter.Complete(result)
	log.LogSummary(result)

	if cfg.ReportFile != "" {
		if err := report.Write(ctx, cfg.ReportFile, result); err != nil {
			return err
		}
		log.LogInfo(fmt.Sprintf("Wrote report %s to %s", result.ID, cfg.ReportFile))
	}

	return nil
}
