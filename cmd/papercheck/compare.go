package main

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dh-archival/papercheck/internal/audit"
	"github.com/dh-archival/papercheck/internal/config"
	"github.com/dh-archival/papercheck/internal/database"
	"github.com/spf13/cobra"
)

// NewCompareCmd creates the compare command.
// This command compares journal summaries across runs stored in the database.
func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [journal]",
		Short: "Compare a journal's latest two audit runs",
		Long: `Compare displays differences between the two most recent stored runs of a
journal: which cases grew, which shrank, and how the image counts moved.

A useful workflow is running the same check before and after a re-delivery
or re-conversion of a journal, then comparing the two runs to confirm the
anomalies actually disappeared.

The comparison requires at least two stored runs for the journal and
command. Runs are recorded automatically unless --no-db was given.

Examples:
  # Compare the latest two canonical checks of a journal
  papercheck compare GDL

  # Compare the latest two original checks instead
  papercheck compare --command check_original GDL

  # List journal run history
  papercheck compare --list GDL

  # List all journals with stored history
  papercheck compare --list-journals`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCompareCmd,
	}

	cmd.Flags().BoolP("list", "l", false,
		"List run history for the specified journal")
	cmd.Flags().BoolP("list-journals", "L", false,
		"List all journals with stored history")
	cmd.Flags().String("command", audit.CommandCheckCanonical,
		"Which check's history to compare (check_original or check_canonical)")

	return cmd
}

// runCompareCmd executes the compare command.
func runCompareCmd(cmd *cobra.Command, args []string) error {
	listJournals, err := cmd.Flags().GetBool("list-journals")
	if err != nil {
		return err
	}

	// Validate arguments before opening the database so a bad invocation
	// never touches the file.
	var journal string
	if !listJournals {
		if len(args) == 0 {
			return errors.New("journal is required (use --list-journals to see available journals)")
		}
		journal = args[0]
	}

	command, err := cmd.Flags().GetString("command")
	if err != nil {
		return err
	}
	if command != audit.CommandCheckOriginal && command != audit.CommandCheckCanonical {
		return fmt.Errorf("unknown command %q (expected %s or %s)",
			command, audit.CommandCheckOriginal, audit.CommandCheckCanonical)
	}

	db, err := database.Open(config.XDGDataDir(), database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open run database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()

	if listJournals {
		return listStoredJournals(ctx, db)
	}

	listHistory, err := cmd.Flags().GetBool("list")
	if err != nil {
		return err
	}
	if listHistory {
		return listRunHistory(ctx, db, journal, command)
	}

	return runComparison(ctx, db, journal, command)
}

// listStoredJournals lists every journal with stored run history.
func listStoredJournals(ctx context.Context, db *database.AuditDB) error {
	journals, err := db.ListJournals(ctx)
	if err != nil {
		return fmt.Errorf("failed to list journals: %w", err)
	}

	if len(journals) == 0 {
		fmt.Println("No journal history found in the database.")
		fmt.Println("\nUse 'papercheck original' or 'papercheck canonical' to audit a journal.")
		return nil
	}

	fmt.Printf("Journals with stored history (%d):\n\n", len(journals))
	for _, j := range journals {
		fmt.Printf("  • %s\n", j)
	}
	fmt.Println("\nUse 'papercheck compare --list <journal>' to see its run history.")

	return nil
}

// listRunHistory lists all stored runs for one journal and command.
func listRunHistory(ctx context.Context, db *database.AuditDB, journal, command string) error {
	reports, err := db.JournalHistory(ctx, journal, command, 0)
	if err != nil {
		return fmt.Errorf("failed to get run history: %w", err)
	}

	if len(reports) == 0 {
		fmt.Printf("No %s history found for %s\n", command, journal)
		return nil
	}

	fmt.Printf("Run history for %s (%s, %d runs):\n\n", journal, command, len(reports))
	fmt.Printf("  %-6s  %-20s  %s\n", "ID", "Date", "Cases")
	fmt.Println("  " + strings.Repeat("-", 60))

	for _, rep := range reports {
		fmt.Printf("  %-6d  %-20s  %s\n",
			rep.ID,
			rep.Timestamp.Format("2006-01-02 15:04:05"),
			formatCaseSummary(rep.CaseCounts),
		)
	}

	fmt.Println("\nUse 'papercheck compare <journal>' to compare the latest two runs.")

	return nil
}

// formatCaseSummary renders the non-zero case counts of one stored run.
func formatCaseSummary(counts map[string]int) string {
	if len(counts) == 0 {
		return "no data"
	}

	names := make([]string, 0, len(counts))
	total := 0
	for name, n := range counts {
		if n > 0 {
			names = append(names, name)
			total += n
		}
	}
	if total == 0 {
		return "clean"
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s:%d", name, counts[name]))
	}
	return strings.Join(parts, " ")
}

// runComparison diffs the two most recent stored runs of one journal.
func runComparison(ctx context.Context, db *database.AuditDB, journal, command string) error {
	reports, err := db.JournalHistory(ctx, journal, command, 2)
	if err != nil {
		return fmt.Errorf("failed to get run history: %w", err)
	}
	if len(reports) < 2 {
		return fmt.Errorf("%w: journal %s has %d stored %s run(s), need 2",
			database.ErrNoHistory, journal, len(reports), command)
	}

	// JournalHistory returns newest first.
	current, previous := reports[0], reports[1]

	fmt.Printf("Comparing %s (%s)\n", journal, command)
	fmt.Printf("  previous: run %d at %s\n", previous.ID, previous.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Printf("  current:  run %d at %s\n\n", current.ID, current.Timestamp.Format("2006-01-02 15:04:05"))

	printCaseDiff(previous.CaseCounts, current.CaseCounts)
	printCountDiff(previous, current)

	return nil
}

// printCaseDiff prints per-case deltas between two stored runs. Cases with
// no change on either side are omitted.
func printCaseDiff(previous, current map[string]int) {
	names := make(map[string]struct{}, len(previous)+len(current))
	for name := range previous {
		names[name] = struct{}{}
	}
	for name := range current {
		names[name] = struct{}{}
	}

	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	changed := false
	for _, name := range sorted {
		before, after := previous[name], current[name]
		if before == after {
			continue
		}
		if !changed {
			fmt.Println("Case changes:")
			changed = true
		}
		fmt.Printf("  %-40s %6d -> %-6d (%+d)\n", name, before, after, after-before)
	}
	if !changed {
		fmt.Println("Case counts are unchanged.")
	}
	fmt.Println()
}

// printCountDiff prints the structural counter movement between two runs.
func printCountDiff(previous, current database.StoredReport) {
	rows := []struct {
		label  string
		before int64
		after  int64
	}{
		{"original issues", int64(previous.Counts.OriginalIssues), int64(current.Counts.OriginalIssues)},
		{"canonical issues", int64(previous.Counts.CanonicalIssues), int64(current.Counts.CanonicalIssues)},
		{"paired issues", int64(previous.Counts.PairedIssues), int64(current.Counts.PairedIssues)},
		{"valid original issues", int64(previous.Counts.ValidOriginalIssues), int64(current.Counts.ValidOriginalIssues)},
		{"pages", int64(previous.Counts.Pages), int64(current.Counts.Pages)},
		{"tif images", int64(previous.Stats.TifImages), int64(current.Stats.TifImages)},
		{"png images", int64(previous.Stats.PngImages), int64(current.Stats.PngImages)},
		{"jpg images", int64(previous.Stats.JpgImages), int64(current.Stats.JpgImages)},
		{"canonical images", int64(previous.Stats.CanonicalImages), int64(current.Stats.CanonicalImages)},
		{"canonical bytes", previous.Stats.CanonicalBytes, current.Stats.CanonicalBytes},
	}

	changed := false
	for _, row := range rows {
		if row.before == row.after {
			continue
		}
		if !changed {
			fmt.Println("Count changes:")
			changed = true
		}
		fmt.Printf("  %-40s %6d -> %-6d (%+d)\n", row.label, row.before, row.after, row.after-row.before)
	}
	if !changed {
		fmt.Println("Counts are unchanged.")
	}
}
