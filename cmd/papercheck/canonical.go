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

// NewCanonicalCmd creates the canonical command.
func NewCanonicalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "canonical [journal...]",
		Short: "Check canonical output against the original archive",
		Long: `Canonical pairs every converted issue with its original counterpart by
journal, date, and edition, then checks each pair for conversion anomalies:
missing page images, missing or duplicated metadata documents, malformed
filenames, dimension mismatches between metadata and conversion settings,
and original pages without a converted image.

Unlike coverage cases, anomaly cases accumulate: one issue can surface
several of them. Results are written as a global CSV plus one Markdown
detail report per journal, and each journal summary is recorded in the run
database for later comparison.

Examples:
  # Check one journal
  papercheck canonical -o /archive/original -n /archive/canonical -r ./reports GDL

  # Check several journals with a worker pool
  papercheck canonical -o /archive/original -n /archive/canonical -r ./reports -p GDL JDG`,
		Args: cobra.ArbitraryArgs,
		RunE: runCanonicalCmd,
	}

	addCheckFlags(cmd)
	cmd.Flags().StringP("canonical-dir", "n", "",
		"Base directory holding one sub-directory per journal of canonical issues")
	return cmd
}

// runCanonicalCmd executes the canonical command.
func runCanonicalCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := cfg.ValidateCanonical(); err != nil {
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

	return runJournals(ctx, cfg, audit.CommandCheckCanonical,
		func(ctx context.Context, auditor *audit.Auditor, journal string) (*model.JournalReport, error) {
			originals, err := detectOriginals(cfg, journal)
			if err != nil {
				return nil, err
			}
			canonicals, err := detectCanonicals(cfg, journal)
			if err != nil {
				return nil, err
			}
			return auditor.CheckCanonicalJournal(ctx, originals, canonicals)
		})
}
