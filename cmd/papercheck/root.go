package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for papercheck.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "papercheck",
		Short: "Sanity checker for digitized newspaper archives",
		Long: `papercheck audits a digitized-newspaper archive.

For every newspaper issue it verifies that the original scanned material
and the canonical converted material are structurally consistent, and it
classifies each issue into a fixed taxonomy of coverage/anomaly cases so
operators can prioritize remediation.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewOriginalCmd())
	cmd.AddCommand(NewCanonicalCmd())
	cmd.AddCommand(NewCompareCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
