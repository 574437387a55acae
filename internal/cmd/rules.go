package cmd

import (
	"fmt"
	"io"

	"github.com/harrison/ppcheck/internal/preprocess"
	"github.com/spf13/cobra"
)

// NewRulesCommand creates the rules subcommand, which lists what a scan checks
func NewRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the checked file types and directive keywords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printRules(cmd.OutOrStdout())
			return nil
		},
	}
}

func printRules(w io.Writer) {
	fmt.Fprintln(w, "File types:")
	for _, ext := range preprocess.FileTypes() {
		_, style, _ := preprocess.Classify(ext)
		fmt.Fprintf(w, "  %-12s %s (%c)\n", ext, style, style.Marker())
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Directives:")
	for _, keyword := range preprocess.Directives() {
		fmt.Fprintf(w, "  %s\n", keyword)
	}
}
