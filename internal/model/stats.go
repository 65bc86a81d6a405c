package model

// StatCounters holds the numeric image tallies accumulated per issue and
// summed per journal. Merging is plain field-wise addition, so the final
// totals never depend on the order per-issue results arrive in.
type StatCounters struct {
	// TifImages counts source images reported or discovered as tif.
	TifImages int `json:"number_tif"`

	// PngImages counts source images reported or discovered as png.
	PngImages int `json:"number_png"`

	// JpgImages counts source images reported or discovered as jpg.
	JpgImages int `json:"number_jpg"`

	// CanonicalImages counts derived images found in canonical directories.
	CanonicalImages int `json:"number_canonical_images"`

	// CanonicalBytes is the cumulative byte size of derived images.
	CanonicalBytes int64 `json:"size_canonical_images"`

	// OriginalPageFolders counts page folders seen in original containers.
	OriginalPageFolders int `json:"number_original_pagefolders"`
}

// Add accumulates other into s.
func (s *StatCounters) Add(other StatCounters) {
	s.TifImages += other.TifImages
	s.PngImages += other.PngImages
	s.JpgImages += other.JpgImages
	s.CanonicalImages += other.CanonicalImages
	s.CanonicalBytes += other.CanonicalBytes
	s.OriginalPageFolders += other.OriginalPageFolders
}

// JournalCounts holds journal-level structural tallies: how many issues were
// seen on each side, how many paired up, and the container/document health
// counters recovered from the original material.
type JournalCounts struct {
	// OriginalIssues is the number of original issue directories discovered.
	OriginalIssues int `json:"issues_orig"`

	// CanonicalIssues is the number of canonical issue directories discovered.
	CanonicalIssues int `json:"issues_cano"`

	// PairedIssues is the number of identity-matched original/canonical pairs.
	PairedIssues int `json:"issues_pairs"`

	// UnpairedOriginal counts original issues with no canonical counterpart.
	UnpairedOriginal int `json:"unpaired_orig"`

	// UnpairedCanonical counts canonical issues with no original counterpart.
	UnpairedCanonical int `json:"unpaired_cano"`

	// ValidOriginalIssues counts issues whose container opened successfully.
	ValidOriginalIssues int `json:"issues_valid"`

	// Pages is the total number of pages across valid original issues.
	Pages int `json:"pages"`

	// Document (PDF) presence counters. An issue may carry one issue-level
	// document and/or one document per page alongside its images.

	// IssuesWithBothPDFs counts issues carrying the issue-level PDF and at
	// least one per-page PDF.
	IssuesWithBothPDFs int `json:"issues_with_both_pdfs"`

	// IssuesWithoutIssuePDF counts issues lacking the issue-level PDF only.
	IssuesWithoutIssuePDF int `json:"issues_wo_issue_pdf"`

	// IssuesWithoutPagePDFs counts issues lacking per-page PDFs only.
	IssuesWithoutPagePDFs int `json:"issues_wo_page_pdfs"`

	// IssuesWithoutAnyPDF counts issues lacking both kinds of document.
	IssuesWithoutAnyPDF int `json:"issues_wo_both_pdfs"`
}

// Add accumulates other into c.
func (c *JournalCounts) Add(other JournalCounts) {
	c.OriginalIssues += other.OriginalIssues
	c.CanonicalIssues += other.CanonicalIssues
	c.PairedIssues += other.PairedIssues
	c.UnpairedOriginal += other.UnpairedOriginal
	c.UnpairedCanonical += other.UnpairedCanonical
	c.ValidOriginalIssues += other.ValidOriginalIssues
	c.Pages += other.Pages
	c.IssuesWithBothPDFs += other.IssuesWithBothPDFs
	c.IssuesWithoutIssuePDF += other.IssuesWithoutIssuePDF
	c.IssuesWithoutPagePDFs += other.IssuesWithoutPagePDFs
	c.IssuesWithoutAnyPDF += other.IssuesWithoutAnyPDF
}
