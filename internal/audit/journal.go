package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/dh-archival/papercheck/internal/archive"
	"github.com/dh-archival/papercheck/internal/check"
	"github.com/dh-archival/papercheck/internal/classify"
	"github.com/dh-archival/papercheck/internal/model"
)

// Command names recorded on journal reports and in the run database.
const (
	// CommandCheckOriginal audits original containers and coverage.
	CommandCheckOriginal = "check_original"

	// CommandCheckCanonical audits paired canonical output.
	CommandCheckCanonical = "check_canonical"
)

// Auditor runs per-journal checks. One Auditor serves one journal, since
// the archive layout (container name, canonical extension) is a journal
// property.
type Auditor struct {
	// Journal is the journal code being audited.
	Journal string

	// Accessor opens this journal's containers and directories.
	Accessor *archive.Accessor

	// Parallel selects worker-pool execution; Workers bounds the pool.
	Parallel bool
	Workers  int

	// Logger receives progress output. Nil means slog.Default().
	Logger *slog.Logger
}

// logger returns the configured logger or the default one.
func (a *Auditor) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.Default()
}

// CheckOriginalJournal classifies every original issue of the journal and
// merges the per-issue results into one report. Each issue receives
// exactly one coverage case; container failures become cases too.
func (a *Auditor) CheckOriginalJournal(ctx context.Context, issues []model.IssueLocation) (*model.JournalReport, error) {
	a.logger().Info("checking original issues",
		"journal", a.Journal,
		"issues", len(issues),
		"parallel", a.Parallel,
	)

	tasks := make([]func() model.OriginalIssueResult, len(issues))
	for i, issue := range issues {
		tasks[i] = func() model.OriginalIssueResult {
			return classify.Issue(a.Accessor, issue)
		}
	}

	results, err := collect(ctx, a.Parallel, a.Workers, tasks)
	if err != nil {
		return nil, err
	}

	report := &model.JournalReport{
		Journal:   a.Journal,
		Command:   CommandCheckOriginal,
		StartedAt: time.Now(),
		Cases:     model.NewCoverageRegistry(),
	}
	report.Counts.OriginalIssues = len(issues)

	for _, r := range results {
		report.Cases.AddCoverage(r.Case, check.ShortPath(r.Location.Path, a.Journal))
		report.Stats.Add(r.Stats)
		mergeOriginalCounts(&report.Counts, r)
	}

	return report, nil
}

// mergeOriginalCounts folds one issue's structural counters into the
// journal counts. Document presence is only judged for valid issues: a
// missing container says nothing about its PDFs.
func mergeOriginalCounts(counts *model.JournalCounts, r model.OriginalIssueResult) {
	if !r.Valid() {
		return
	}
	counts.ValidOriginalIssues++
	counts.Pages += r.Pages

	hasPagePDFs := r.PagePDFs > 0
	switch {
	case r.HasIssuePDF && hasPagePDFs:
		counts.IssuesWithBothPDFs++
	case !r.HasIssuePDF && hasPagePDFs:
		counts.IssuesWithoutIssuePDF++
	case r.HasIssuePDF && !hasPagePDFs:
		counts.IssuesWithoutPagePDFs++
	default:
		counts.IssuesWithoutAnyPDF++
	}
}

// CheckCanonicalJournal pairs the two listings by identity, runs the
// canonical consistency check on every pair, and merges the per-issue
// results. Unpaired issues on either side are tallied and skipped.
func (a *Auditor) CheckCanonicalJournal(ctx context.Context, originals, canonicals []model.IssueLocation) (*model.JournalReport, error) {
	pairs, unpairedOrig, unpairedCano := PairIssues(originals, canonicals)

	a.logger().Info("checking canonical issues",
		"journal", a.Journal,
		"originals", len(originals),
		"canonicals", len(canonicals),
		"pairs", len(pairs),
		"parallel", a.Parallel,
	)

	tasks := make([]func() model.CanonicalIssueResult, len(pairs))
	for i, pair := range pairs {
		tasks[i] = func() model.CanonicalIssueResult {
			return check.Canonical(a.Accessor, pair.Original, pair.Canonical)
		}
	}

	results, err := collect(ctx, a.Parallel, a.Workers, tasks)
	if err != nil {
		return nil, err
	}

	report := &model.JournalReport{
		Journal:   a.Journal,
		Command:   CommandCheckCanonical,
		StartedAt: time.Now(),
		Cases:     newCanonicalRegistry(),
	}
	report.Counts.OriginalIssues = len(originals)
	report.Counts.CanonicalIssues = len(canonicals)
	report.Counts.PairedIssues = len(pairs)
	report.Counts.UnpairedOriginal = len(unpairedOrig)
	report.Counts.UnpairedCanonical = len(unpairedCano)

	for _, loc := range unpairedOrig {
		a.logger().Debug("original issue has no canonical counterpart",
			"issue", loc.String(),
		)
	}

	for _, r := range results {
		report.Cases.Merge(r.Cases)
		report.Stats.Add(r.Stats)
		if r.ContainerErr != "" {
			report.Cases.AddCoverage(r.ContainerErr, check.ShortPath(r.Original.Path, a.Journal))
		}
	}

	return report, nil
}

// newCanonicalRegistry seeds a registry with every anomaly case plus the
// two container-health cases a canonical run can still surface.
func newCanonicalRegistry() *model.CaseRegistry {
	seed := make([]string, 0, len(model.AllAnomalyCases)+2)
	for _, c := range model.AllAnomalyCases {
		seed = append(seed, c.String())
	}
	seed = append(seed, model.CoverageNoContainer.String(), model.CoverageCorruptContainer.String())
	return model.NewCaseRegistry(seed...)
}
