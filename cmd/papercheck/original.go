package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dh-archival/papercheck/internal/audit"
	"github.com/dh-archival/papercheck/internal/model"
	"github.com/spf13/cobra"
)

// NewOriginalCmd creates the original command.
func NewOriginalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "original [journal...]",
		Short: "Classify original issue containers by page-image coverage",
		Long: `Original inspects every issue of the given journals in the original
archive tree and assigns each issue exactly one coverage case: whether its
container exists and opens, and which mix of TIFF, PNG, and JPG page images
it holds.

Results are written as a global CSV plus one Markdown detail report per
journal, and each journal summary is recorded in the run database for later
comparison.

Examples:
  # Check one journal sequentially
  papercheck original -o /archive/original -r ./reports GDL

  # Check several journals with a worker pool
  papercheck original -o /archive/original -r ./reports -p -w 16 GDL JDG LNQ

  # Use a custom configuration file with per-journal layout overrides
  papercheck original -c mylayouts.yaml -o /archive/original -r ./reports GDL`,
		Args: cobra.ArbitraryArgs,
		RunE: runOriginalCmd,
	}

	addCheckFlags(cmd)
	return cmd
}

// runOriginalCmd executes the original command.
func runOriginalCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "received shutdown signal, cancelling...")
		cancel()
	}()

	return runJournals(ctx, cfg, audit.CommandCheckOriginal,
		func(ctx context.Context, auditor *audit.Auditor, journal string) (*model.JournalReport, error) {
			issues, err := detectOriginals(cfg, journal)
			if err != nil {
				return nil, err
			}
			return auditor.CheckOriginalJournal(ctx, issues)
		})
}
