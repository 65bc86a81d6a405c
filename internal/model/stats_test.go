package model

import "testing"

// TestStatCountersAdd tests field-wise accumulation.
func TestStatCountersAdd(t *testing.T) {
	t.Parallel()

	var total StatCounters
	total.Add(StatCounters{TifImages: 4, CanonicalImages: 4, CanonicalBytes: 1024})
	total.Add(StatCounters{PngImages: 2, JpgImages: 1, CanonicalBytes: 512, OriginalPageFolders: 7})

	want := StatCounters{
		TifImages:           4,
		PngImages:           2,
		JpgImages:           1,
		CanonicalImages:     4,
		CanonicalBytes:      1536,
		OriginalPageFolders: 7,
	}
	if total != want {
		t.Errorf("got %+v, expected %+v", total, want)
	}
}

// TestJournalCountsAdd tests structural counter accumulation.
func TestJournalCountsAdd(t *testing.T) {
	t.Parallel()

	var total JournalCounts
	total.Add(JournalCounts{OriginalIssues: 10, ValidOriginalIssues: 9, Pages: 36, IssuesWithBothPDFs: 3})
	total.Add(JournalCounts{OriginalIssues: 5, ValidOriginalIssues: 5, Pages: 20, IssuesWithoutAnyPDF: 5})

	if total.OriginalIssues != 15 {
		t.Errorf("got %d, expected 15", total.OriginalIssues)
	}
	if total.ValidOriginalIssues != 14 {
		t.Errorf("got %d, expected 14", total.ValidOriginalIssues)
	}
	if total.Pages != 56 {
		t.Errorf("got %d, expected 56", total.Pages)
	}
	if total.IssuesWithBothPDFs != 3 || total.IssuesWithoutAnyPDF != 5 {
		t.Errorf("PDF counters wrong: %+v", total)
	}
}

// TestJournalReportMerge tests folding one report into another.
func TestJournalReportMerge(t *testing.T) {
	t.Parallel()

	a := &JournalReport{
		Journal: "GDL",
		Command: "check_original",
		Cases:   NewCoverageRegistry(),
	}
	a.Cases.AddCoverage(CoverageHomogeneousTifs, "GDL/1900/01/10/a")
	a.Stats = StatCounters{TifImages: 4}
	a.Counts = JournalCounts{OriginalIssues: 1, ValidOriginalIssues: 1, Pages: 4}

	b := &JournalReport{
		Journal: "GDL",
		Command: "check_original",
		Cases:   NewCoverageRegistry(),
	}
	b.Cases.AddCoverage(CoverageNoContainer, "GDL/1900/01/11/a")
	b.Stats = StatCounters{PngImages: 2}
	b.Counts = JournalCounts{OriginalIssues: 1}

	a.Merge(b)

	if got := a.Cases.Total(); got != 2 {
		t.Errorf("got %d cases, expected 2", got)
	}
	if a.Stats.TifImages != 4 || a.Stats.PngImages != 2 {
		t.Errorf("stats wrong after merge: %+v", a.Stats)
	}
	if a.Counts.OriginalIssues != 2 {
		t.Errorf("got %d issues, expected 2", a.Counts.OriginalIssues)
	}
}

// TestOriginalIssueResultValid tests the container-health predicate.
func TestOriginalIssueResultValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		c    CoverageCase
		want bool
	}{
		{CoverageNoContainer, false},
		{CoverageCorruptContainer, false},
		{CoverageMissingPages, true},
		{CoverageHomogeneousTifs, true},
		{CoverageHeteroAll, true},
	}

	for _, tt := range tests {
		r := OriginalIssueResult{Case: tt.c}
		if got := r.Valid(); got != tt.want {
			t.Errorf("case %s: got %v, expected %v", tt.c, got, tt.want)
		}
	}
}
