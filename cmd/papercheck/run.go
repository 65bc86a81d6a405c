package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dh-archival/papercheck/internal/archive"
	"github.com/dh-archival/papercheck/internal/audit"
	"github.com/dh-archival/papercheck/internal/config"
	"github.com/dh-archival/papercheck/internal/database"
	"github.com/dh-archival/papercheck/internal/inventory"
	"github.com/dh-archival/papercheck/internal/model"
	"github.com/dh-archival/papercheck/internal/report"
	"github.com/spf13/cobra"
)

// reportStampLayout is the timestamp embedded in report filenames.
// Colons are avoided so the names stay portable across filesystems.
const reportStampLayout = "20060102-150405"

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	return slog.New(handler)
}

// buildConfig creates a Config from cobra command flags. Positional
// arguments are journal codes.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.OriginalDir, err = cmd.Flags().GetString("original-dir")
	if err != nil {
		return nil, err
	}

	// Only the canonical command declares --canonical-dir.
	if cmd.Flags().Lookup("canonical-dir") != nil {
		cfg.CanonicalDir, err = cmd.Flags().GetString("canonical-dir")
		if err != nil {
			return nil, err
		}
	}

	cfg.ReportDir, err = cmd.Flags().GetString("report-dir")
	if err != nil {
		return nil, err
	}

	cfg.Parallel, err = cmd.Flags().GetBool("parallel")
	if err != nil {
		return nil, err
	}

	cfg.Workers, err = cmd.Flags().GetInt("workers")
	if err != nil {
		return nil, err
	}

	cfg.NoDB, err = cmd.Flags().GetBool("no-db")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load layout overrides from the config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use defaults if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.Layouts, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	cfg.Verbose = getVerboseFlag(cmd)
	cfg.Journals = args

	return cfg, nil
}

// addCheckFlags registers the flags shared by the original and canonical
// commands.
func addCheckFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("original-dir", "o", "",
		"Base directory holding one sub-directory per journal of original issues")
	cmd.Flags().StringP("report-dir", "r", "",
		"Directory where CSV and Markdown reports are written")
	cmd.Flags().BoolP("parallel", "p", false,
		"Check issues with a bounded worker pool instead of sequentially")
	cmd.Flags().IntP("workers", "w", config.DefaultWorkers,
		"Worker pool size used with --parallel")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .papercheck in current or home directory)")
	cmd.Flags().Bool("no-db", false,
		"Do not record journal summaries in the run database")
}

// checkFunc runs one journal's audit and returns its report.
type checkFunc func(ctx context.Context, auditor *audit.Auditor, journal string) (*model.JournalReport, error)

// runJournals audits every configured journal with check, then writes the
// global CSV, per-journal detail reports, and the terminal summary. One
// run produces one run-database entry covering all journals.
func runJournals(ctx context.Context, cfg *config.Config, command string, check checkFunc) error {
	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	var db *database.AuditDB
	var runID int64
	if !cfg.NoDB {
		var err error
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open run database: %w", err)
		}
		defer db.Close()

		runID, err = db.BeginRun(ctx, command)
		if err != nil {
			return fmt.Errorf("failed to record run: %w", err)
		}
		logger.Info("run database opened", "dir", cfg.DBDir, "runID", runID)
	}

	startTime := time.Now()
	reports := make([]*model.JournalReport, 0, len(cfg.Journals))

	for _, journal := range cfg.Journals {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Printf("Checking %s...\n", journal)

		layout := cfg.Layout(journal)
		auditor := &audit.Auditor{
			Journal:  journal,
			Accessor: archive.NewAccessor(layout.ContainerName, layout.CanonicalExt, layout.MetadataSuffix),
			Parallel: cfg.Parallel,
			Workers:  cfg.Workers,
			Logger:   logger,
		}

		rep, err := check(ctx, auditor, journal)
		if err != nil {
			return fmt.Errorf("check of journal %s failed: %w", journal, err)
		}
		reports = append(reports, rep)

		if db != nil {
			if err := db.SaveJournalReport(ctx, runID, rep); err != nil {
				logger.Error("failed to save journal report", "journal", journal, "error", err)
			}
		}
	}

	stamp := startTime.Format(reportStampLayout)
	if err := writeReports(cfg, command, stamp, reports); err != nil {
		return err
	}

	fmt.Println(report.Summary(command, reports))
	fmt.Printf("Checked %d journal(s) in %s\n",
		len(reports), time.Since(startTime).Round(time.Millisecond))
	return nil
}

// writeReports writes the global CSV plus one Markdown detail report per
// journal into the report directory.
func writeReports(cfg *config.Config, command, stamp string, reports []*model.JournalReport) error {
	if err := os.MkdirAll(cfg.ReportDir, 0750); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	csvPath := filepath.Join(cfg.ReportDir,
		fmt.Sprintf("globalreport_%s_%s.csv", command, stamp))
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("failed to create global report: %w", err)
	}
	defer csvFile.Close()

	global := report.NewGlobalCSV(csvFile, command)
	if err := global.WriteHeader(); err != nil {
		return err
	}
	for _, rep := range reports {
		if err := global.WriteJournal(rep); err != nil {
			return err
		}
	}
	if err := global.Flush(); err != nil {
		return err
	}
	fmt.Printf("Global report written to %s\n", csvPath)

	for _, rep := range reports {
		mdPath := filepath.Join(cfg.ReportDir,
			fmt.Sprintf("%s_report_%s.md", rep.Journal, stamp))
		mdFile, err := os.Create(mdPath)
		if err != nil {
			return fmt.Errorf("failed to create detail report: %w", err)
		}

		writer := report.NewDetailWriter(mdFile)
		if err := writer.WriteJournal(rep); err != nil {
			mdFile.Close()
			return fmt.Errorf("failed to write detail report for %s: %w", rep.Journal, err)
		}
		if err := mdFile.Close(); err != nil {
			return err
		}
		fmt.Printf("Detail report written to %s\n", mdPath)
	}

	return nil
}

// detectOriginals lists the original issues of one journal.
func detectOriginals(cfg *config.Config, journal string) ([]model.IssueLocation, error) {
	issues, err := inventory.DetectIssues(cfg.OriginalDir, journal, model.OriginalLocation)
	if err != nil {
		return nil, fmt.Errorf("failed to list original issues of %s: %w", journal, err)
	}
	return issues, nil
}

// detectCanonicals lists the canonical issues of one journal.
func detectCanonicals(cfg *config.Config, journal string) ([]model.IssueLocation, error) {
	issues, err := inventory.DetectIssues(cfg.CanonicalDir, journal, model.CanonicalLocation)
	if err != nil {
		return nil, fmt.Errorf("failed to list canonical issues of %s: %w", journal, err)
	}
	return issues, nil
}
