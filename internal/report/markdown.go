package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/nao1215/markdown"

	"github.com/dh-archival/papercheck/internal/audit"
	"github.com/dh-archival/papercheck/internal/model"
)

// DetailWriter renders one journal's detailed report in Markdown: the
// structural summary followed by every offending issue/page path grouped
// under its case heading.
type DetailWriter struct {
	out io.Writer
}

// NewDetailWriter creates a DetailWriter that outputs to the given writer.
func NewDetailWriter(out io.Writer) *DetailWriter {
	return &DetailWriter{out: out}
}

// WriteJournal renders the full detail report for one journal.
func (w *DetailWriter) WriteJournal(rep *model.JournalReport) error {
	md := markdown.NewMarkdown(w.out)

	md.H1(fmt.Sprintf("Report for %s (%s)", rep.Journal, rep.Command))
	md.PlainText("")
	md.PlainText("Run started " + rep.StartedAt.Format("2006-01-02 15:04:05 MST") + ".")
	md.PlainText("")

	w.writeSummary(md, rep)
	w.writeCases(md, rep)

	return md.Build()
}

// writeSummary renders the structural counts and image tallies.
func (w *DetailWriter) writeSummary(md *markdown.Markdown, rep *model.JournalReport) {
	md.H2("Summary")
	md.PlainText("")

	rows := [][]string{}
	c := rep.Counts
	if rep.Command == audit.CommandCheckOriginal {
		rows = append(rows,
			[]string{"original issues", strconv.Itoa(c.OriginalIssues)},
			[]string{"valid original issues", strconv.Itoa(c.ValidOriginalIssues)},
			[]string{"pages", strconv.Itoa(c.Pages)},
			[]string{"issues with both PDFs", strconv.Itoa(c.IssuesWithBothPDFs)},
			[]string{"issues w/o issue PDF", strconv.Itoa(c.IssuesWithoutIssuePDF)},
			[]string{"issues w/o page PDFs", strconv.Itoa(c.IssuesWithoutPagePDFs)},
			[]string{"issues w/o any PDF", strconv.Itoa(c.IssuesWithoutAnyPDF)},
		)
	} else {
		rows = append(rows,
			[]string{"original issues", strconv.Itoa(c.OriginalIssues)},
			[]string{"canonical issues", strconv.Itoa(c.CanonicalIssues)},
			[]string{"recognized pairs", strconv.Itoa(c.PairedIssues)},
			[]string{"unpaired original issues", strconv.Itoa(c.UnpairedOriginal)},
			[]string{"unpaired canonical issues", strconv.Itoa(c.UnpairedCanonical)},
		)
	}

	s := rep.Stats
	rows = append(rows,
		[]string{"tif images", strconv.Itoa(s.TifImages)},
		[]string{"png images", strconv.Itoa(s.PngImages)},
		[]string{"jpg images", strconv.Itoa(s.JpgImages)},
		[]string{"original page folders", strconv.Itoa(s.OriginalPageFolders)},
	)
	if rep.Command == audit.CommandCheckCanonical {
		rows = append(rows,
			[]string{"canonical images", strconv.Itoa(s.CanonicalImages)},
			[]string{"canonical size", humanize.Bytes(uint64(s.CanonicalBytes))},
		)
	}

	md.Table(markdown.TableSet{
		Header: []string{"Counter", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeCases renders one section per case that has entries, each listing
// its offending paths.
func (w *DetailWriter) writeCases(md *markdown.Markdown, rep *model.JournalReport) {
	md.H2("Cases")
	md.PlainText("")

	any := false
	for _, name := range rep.Cases.Names() {
		paths := rep.Cases.Paths(name)
		if len(paths) == 0 {
			continue
		}
		any = true
		md.H3(fmt.Sprintf("CASE: %s (%d)", name, len(paths)))
		md.PlainText("")
		md.BulletList(paths...)
		md.PlainText("")
	}

	if !any {
		md.PlainText("No cases recorded.")
		md.PlainText("")
	}
}
