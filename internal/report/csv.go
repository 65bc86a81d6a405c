package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/dh-archival/papercheck/internal/audit"
	"github.com/dh-archival/papercheck/internal/model"
)

// GlobalCSV writes the corpus-wide report: one header, then one row per
// journal. Column layout depends on the command, since the two checks
// produce different case taxonomies and counters.
type GlobalCSV struct {
	w       *csv.Writer
	command string
}

// NewGlobalCSV creates a GlobalCSV for the given command
// (audit.CommandCheckOriginal or audit.CommandCheckCanonical).
func NewGlobalCSV(out io.Writer, command string) *GlobalCSV {
	return &GlobalCSV{w: csv.NewWriter(out), command: command}
}

// WriteHeader writes the column header row.
func (g *GlobalCSV) WriteHeader() error {
	header := []string{"journal"}
	header = append(header, g.countColumns()...)
	header = append(header, g.caseColumns()...)
	header = append(header, g.statColumns()...)
	return g.w.Write(header)
}

// WriteJournal writes one journal's row.
func (g *GlobalCSV) WriteJournal(rep *model.JournalReport) error {
	row := []string{rep.Journal}
	row = append(row, g.countValues(rep)...)
	for _, name := range g.caseColumns() {
		row = append(row, strconv.Itoa(rep.Cases.Count(name)))
	}
	row = append(row, g.statValues(rep)...)
	return g.w.Write(row)
}

// Flush flushes buffered rows and reports any write error.
func (g *GlobalCSV) Flush() error {
	g.w.Flush()
	if err := g.w.Error(); err != nil {
		return fmt.Errorf("write global report: %w", err)
	}
	return nil
}

// caseColumns returns the case column names in fixed report order.
func (g *GlobalCSV) caseColumns() []string {
	if g.command == audit.CommandCheckOriginal {
		names := make([]string, 0, len(model.AllCoverageCases))
		for _, c := range model.AllCoverageCases {
			names = append(names, c.String())
		}
		return names
	}
	names := make([]string, 0, len(model.AllAnomalyCases)+2)
	for _, c := range model.AllAnomalyCases {
		names = append(names, c.String())
	}
	return append(names,
		model.CoverageNoContainer.String(),
		model.CoverageCorruptContainer.String(),
	)
}

// countColumns returns the structural count column names.
func (g *GlobalCSV) countColumns() []string {
	if g.command == audit.CommandCheckOriginal {
		return []string{
			"issues_orig", "issues_valid", "pages",
			"issues_with_both_pdfs", "issues_wo_issue_pdf",
			"issues_wo_page_pdfs", "issues_wo_both_pdfs",
		}
	}
	return []string{
		"issues_orig", "issues_cano", "issues_pairs",
		"unpaired_orig", "unpaired_cano",
	}
}

// countValues returns the structural count values matching countColumns.
func (g *GlobalCSV) countValues(rep *model.JournalReport) []string {
	c := rep.Counts
	if g.command == audit.CommandCheckOriginal {
		return []string{
			strconv.Itoa(c.OriginalIssues),
			strconv.Itoa(c.ValidOriginalIssues),
			strconv.Itoa(c.Pages),
			strconv.Itoa(c.IssuesWithBothPDFs),
			strconv.Itoa(c.IssuesWithoutIssuePDF),
			strconv.Itoa(c.IssuesWithoutPagePDFs),
			strconv.Itoa(c.IssuesWithoutAnyPDF),
		}
	}
	return []string{
		strconv.Itoa(c.OriginalIssues),
		strconv.Itoa(c.CanonicalIssues),
		strconv.Itoa(c.PairedIssues),
		strconv.Itoa(c.UnpairedOriginal),
		strconv.Itoa(c.UnpairedCanonical),
	}
}

// statColumns returns the numeric stat column names.
func (g *GlobalCSV) statColumns() []string {
	if g.command == audit.CommandCheckOriginal {
		return []string{"number_tif", "number_png", "number_jpg", "original_pagefolders"}
	}
	return []string{
		"number_tif", "number_png", "number_jpg",
		"canonical_images", "size_canonical", "original_pagefolders",
	}
}

// statValues returns the stat values matching statColumns. Byte sizes are
// rendered human-readable.
func (g *GlobalCSV) statValues(rep *model.JournalReport) []string {
	s := rep.Stats
	if g.command == audit.CommandCheckOriginal {
		return []string{
			strconv.Itoa(s.TifImages),
			strconv.Itoa(s.PngImages),
			strconv.Itoa(s.JpgImages),
			strconv.Itoa(s.OriginalPageFolders),
		}
	}
	return []string{
		strconv.Itoa(s.TifImages),
		strconv.Itoa(s.PngImages),
		strconv.Itoa(s.JpgImages),
		strconv.Itoa(s.CanonicalImages),
		humanize.Bytes(uint64(s.CanonicalBytes)),
		strconv.Itoa(s.OriginalPageFolders),
	}
}
