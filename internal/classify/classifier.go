package classify

import (
	"errors"
	"log/slog"

	"github.com/dh-archival/papercheck/internal/archive"
	"github.com/dh-archival/papercheck/internal/model"
)

// Issue classifies one original issue. Container failures are converted
// into their coverage cases here, never propagated: the run always
// continues with the next issue.
func Issue(acc *archive.Accessor, loc model.IssueLocation) model.OriginalIssueResult {
	result := model.OriginalIssueResult{Location: loc}

	set, err := acc.OpenOriginal(loc.Path)
	if err != nil {
		switch {
		case errors.Is(err, archive.ErrNoContainer):
			result.Case = model.CoverageNoContainer
		case errors.Is(err, archive.ErrCorruptContainer):
			result.Case = model.CoverageCorruptContainer
		default:
			// Unreadable for environmental reasons (permissions, I/O).
			// Treated like a corrupt container so the issue stays visible
			// in the report instead of failing the run.
			result.Case = model.CoverageCorruptContainer
		}
		slog.Warn("original container unusable",
			"issue", loc.String(),
			"path", loc.Path,
			"error", err,
		)
		return result
	}

	classifyCoverage(set, &result)
	tallyImages(set, &result)
	result.HasIssuePDF = set.HasIssuePDF
	result.PagePDFs = set.PagePDFs
	return result
}

// classifyCoverage fills the per-page coverage counts and the terminal
// coverage case for an issue whose container opened successfully.
func classifyCoverage(set *archive.PageImageSet, result *model.OriginalIssueResult) {
	pages := set.PageNumbers()
	result.Pages = len(pages)

	for _, page := range pages {
		switch {
		case len(set.ImagesInFormat(page, archive.FormatTif)) > 0:
			result.TifPages++
		case len(set.ImagesInFormat(page, archive.FormatPng)) > 0:
			result.PngPages++
			if len(set.ImagesInFormat(page, archive.FormatPng)) > 1 {
				result.MultiPngPages++
			} else {
				result.SinglePngPages++
			}
		case len(set.ImagesInFormat(page, archive.FormatJpg)) > 0:
			result.JpgPages++
		default:
			result.MissingPages++
		}
	}

	result.Case = terminalCase(result)
}

// terminalCase maps the per-page counts to the single terminal category.
// The branches are exhaustive for covered issues: with three formats and
// full coverage, at least one per-format count is the total.
func terminalCase(r *model.OriginalIssueResult) model.CoverageCase {
	covered := r.TifPages + r.PngPages + r.JpgPages
	if covered != r.Pages || r.Pages == 0 {
		// An empty container counts as missing page images rather than as
		// a (vacuously) fully covered issue.
		return model.CoverageMissingPages
	}

	hasTif, hasPng, hasJpg := r.TifPages > 0, r.PngPages > 0, r.JpgPages > 0
	switch {
	case hasTif && hasPng && hasJpg:
		return model.CoverageHeteroAll
	case hasTif && hasPng:
		return model.CoverageHeteroTifPng
	case hasTif && hasJpg:
		return model.CoverageHeteroTifJpg
	case hasPng && hasJpg:
		return model.CoverageHeteroPngJpg
	case hasTif:
		return model.CoverageHomogeneousTifs
	case hasJpg:
		return model.CoverageHomogeneousJpgs
	case r.MultiPngPages > 0:
		return model.CoverageHomogeneousPngs
	default:
		return model.CoverageHomogeneousSinglePngs
	}
}

// tallyImages counts every discovered image per format. Unlike the
// per-page coverage counts, a page with several png variants contributes
// each variant here.
func tallyImages(set *archive.PageImageSet, result *model.OriginalIssueResult) {
	result.Stats.OriginalPageFolders = set.PageCount()
	for _, page := range set.PageNumbers() {
		result.Stats.TifImages += len(set.ImagesInFormat(page, archive.FormatTif))
		result.Stats.PngImages += len(set.ImagesInFormat(page, archive.FormatPng))
		result.Stats.JpgImages += len(set.ImagesInFormat(page, archive.FormatJpg))
	}
}
