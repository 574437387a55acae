package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for ppcheck
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ppcheck",
		Short: "Post-build check for unresolved preprocessor directives",
		Long: `ppcheck walks an assembled distribution tree and reports files that
still contain preprocessor directives (#ifdef, #include, %define, ...)
which should have been resolved during the build.

Only preprocessable file types are inspected; stylesheets use '%'
directives, all other types use '#'. Findings are advisory: a completed
scan always exits 0.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		// main prints the returned error once
		SilenceErrors: true,
	}

	cmd.AddCommand(NewScanCommand())
	cmd.AddCommand(NewRulesCommand())

	return cmd
}
