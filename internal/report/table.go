package report

import (
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/dh-archival/papercheck/internal/audit"
	"github.com/dh-archival/papercheck/internal/model"
)

// Summary renders a terminal table with one row per journal, so operators
// see the run outcome without opening the report files.
func Summary(command string, reports []*model.JournalReport) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	if command == audit.CommandCheckOriginal {
		tw.AppendHeader(table.Row{"Journal", "Issues", "Valid", "Pages", "Tif", "Png", "Jpg"})
		for _, rep := range reports {
			tw.AppendRow(table.Row{
				rep.Journal,
				rep.Counts.OriginalIssues,
				rep.Counts.ValidOriginalIssues,
				rep.Counts.Pages,
				rep.Stats.TifImages,
				rep.Stats.PngImages,
				rep.Stats.JpgImages,
			})
		}
	} else {
		tw.AppendHeader(table.Row{"Journal", "Orig", "Cano", "Pairs", "Cases", "Images", "Size"})
		for _, rep := range reports {
			tw.AppendRow(table.Row{
				rep.Journal,
				rep.Counts.OriginalIssues,
				rep.Counts.CanonicalIssues,
				rep.Counts.PairedIssues,
				rep.Cases.Total(),
				rep.Stats.CanonicalImages,
				humanize.Bytes(uint64(rep.Stats.CanonicalBytes)),
			})
		}
	}

	configs := make([]table.ColumnConfig, 0, 7)
	for i := 2; i <= 7; i++ {
		configs = append(configs, table.ColumnConfig{
			Number:      i,
			Align:       text.AlignRight,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}
