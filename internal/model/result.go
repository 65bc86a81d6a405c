package model

import "time"

// OriginalIssueResult is the immutable outcome of classifying one original
// issue. It is produced by a single unit of work and merged centrally.
type OriginalIssueResult struct {
	// Location is the issue that was classified.
	Location IssueLocation

	// Case is the single terminal coverage category.
	Case CoverageCase

	// Pages is the number of page folders in the container (zero when the
	// container was absent or corrupt).
	Pages int

	// Per-page coverage counts. TifPages+PngPages+JpgPages+MissingPages == Pages.
	TifPages     int
	PngPages     int
	JpgPages     int
	MissingPages int

	// SinglePngPages and MultiPngPages split PngPages by how many png
	// variants a page carried.
	SinglePngPages int
	MultiPngPages  int

	// Stats counts every discovered source image (a multi-png page
	// contributes each variant).
	Stats StatCounters

	// HasIssuePDF reports an issue-level document alongside the images.
	HasIssuePDF bool

	// PagePDFs counts per-page documents found in page folders.
	PagePDFs int
}

// Valid reports whether the container opened, i.e. the issue reached the
// per-page classification at all.
func (r OriginalIssueResult) Valid() bool {
	return r.Case != CoverageNoContainer && r.Case != CoverageCorruptContainer
}

// CanonicalIssueResult is the immutable outcome of checking one paired
// original/canonical issue. An issue may collect several anomaly cases;
// the registry keys are AnomalyCase names.
type CanonicalIssueResult struct {
	// Original and Canonical are the checked pair.
	Original  IssueLocation
	Canonical IssueLocation

	// Cases holds the anomaly entries detected for this issue.
	Cases *CaseRegistry

	// Stats holds this issue's image tallies.
	Stats StatCounters

	// ContainerErr classifies a failure to open the original container
	// during the page-coverage check (empty when the container opened).
	ContainerErr CoverageCase
}

// JournalReport aggregates one journal's run: the merged case registry,
// the summed stats and the structural counts. Reports merge into corpus
// totals with the same Add/Merge operations used per issue.
type JournalReport struct {
	// Journal is the journal code this report covers.
	Journal string

	// Command names the check that produced the report
	// ("check_original" or "check_canonical").
	Command string

	// StartedAt is when the journal's check began.
	StartedAt time.Time

	// Cases maps case names to offending issue/page paths.
	Cases *CaseRegistry

	// Stats is the journal's summed image tallies.
	Stats StatCounters

	// Counts is the journal's structural tallies.
	Counts JournalCounts
}

// Merge folds another report for the same journal (or a corpus sibling)
// into r.
func (r *JournalReport) Merge(other *JournalReport) {
	r.Cases.Merge(other.Cases)
	r.Stats.Add(other.Stats)
	r.Counts.Add(other.Counts)
}
