package check

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/dh-archival/papercheck/internal/archive"
	"github.com/dh-archival/papercheck/internal/model"
)

// Canonical cross-checks one paired original/canonical issue and returns
// the anomaly cases and image tallies it accumulated. Every failure is
// recorded and checking continues; nothing here aborts the run.
func Canonical(acc *archive.Accessor, orig, cano model.IssueLocation) model.CanonicalIssueResult {
	result := model.CanonicalIssueResult{
		Original:  orig,
		Canonical: cano,
		Cases:     model.NewAnomalyRegistry(),
	}

	shortCano := ShortPath(cano.Path, cano.Journal)

	// Original page folders, for the page-coverage check and the page
	// folder tally. A dead container only disables that one check.
	var pageFolders []string
	set, err := acc.OpenOriginal(orig.Path)
	switch {
	case err == nil:
		pageFolders = set.Folders
		result.Stats.OriginalPageFolders = set.PageCount()
	case errors.Is(err, archive.ErrNoContainer):
		result.ContainerErr = model.CoverageNoContainer
	default:
		result.ContainerErr = model.CoverageCorruptContainer
		slog.Warn("original container unusable during canonical check",
			"issue", orig.String(),
			"error", err,
		)
	}

	// Canonical images.
	images, err := acc.ListCanonicalImages(cano.Path)
	if err != nil {
		slog.Warn("cannot list canonical images",
			"issue", cano.String(),
			"error", err,
		)
	}

	if len(images) == 0 {
		// Nothing derived at all: the per-image checks have no subject, so
		// they are skipped for this issue.
		result.Cases.AddAnomaly(model.AnomalyIssueWithoutImages, shortCano)
	} else {
		result.Stats.CanonicalImages = len(images)
		for _, img := range images {
			checkImageName(&result, img, cano)
			result.Stats.CanonicalBytes += img.Size
		}
	}

	// Canonical metadata.
	meta, metaErr := acc.ReadCanonicalMetadata(cano.Path)
	if metaErr != nil {
		switch {
		case errors.Is(metaErr, archive.ErrMissingMetadata):
			result.Cases.AddAnomaly(model.AnomalyIssueWithoutInfoFile, shortCano)
		case errors.Is(metaErr, archive.ErrMultipleMetadata):
			// Handled below via the file count; records of the first file
			// were still parsed.
		default:
			slog.Warn("cannot read canonical metadata",
				"issue", cano.String(),
				"error", metaErr,
			)
		}
	}

	if meta != nil && len(meta.Files) > 0 {
		if len(meta.Files) > 1 {
			result.Cases.AddAnomaly(model.AnomalyWrongNumberInfoFiles, shortCano)
		}
		checkMetadataName(&result, meta.Files[0], cano)
	}

	// Cross-count and per-record checks need both sides. The record
	// sequence counts as present whenever the document parsed, so an empty
	// document against existing images is still a count mismatch.
	metaParsed := meta != nil &&
		(metaErr == nil || errors.Is(metaErr, archive.ErrMultipleMetadata))
	if metaParsed && len(images) > 0 {
		shortMeta := ShortPath(meta.Files[0], cano.Journal)

		if len(meta.Records) != len(images) {
			result.Cases.AddAnomaly(model.AnomalyInfoFileWrongImageCount, shortMeta)
		}

		// Dimension integrity runs over every record even when the counts
		// disagree: each record stands on its own.
		for i, rec := range meta.Records {
			if !rec.SourceDimensions.Equal(rec.DerivedDimensions) {
				result.Cases.AddAnomaly(model.AnomalyWrongDimensions,
					fmt.Sprintf("%s#%d %s->%s", shortMeta, i, rec.SourceDimensions, rec.DerivedDimensions))
			}
			tallySourceFormat(&result.Stats, rec.SourceFormat)
		}
	}

	// Page coverage: every original page folder must have a derived image
	// carrying its page key.
	if len(images) > 0 && len(pageFolders) > 0 {
		checkPageCoverage(&result, pageFolders, images, orig)
	}

	return result
}

// checkImageName applies the three naming rules to one canonical image.
func checkImageName(result *model.CanonicalIssueResult, img archive.CanonicalImage, cano model.IssueLocation) {
	short := ShortPath(img.Path, cano.Journal)
	base := strings.TrimSuffix(filepath.Base(img.Path), filepath.Ext(img.Path))

	if !IsWellFormedCanonicalName(base) {
		result.Cases.AddAnomaly(model.AnomalyImageBadName, short)
	}
	if !strings.Contains(base, cano.Journal) {
		result.Cases.AddAnomaly(model.AnomalyImageWithoutJournal, short)
	}
	if !strings.Contains(base, cano.Date) {
		result.Cases.AddAnomaly(model.AnomalyImageWithoutDate, short)
	}
}

// checkMetadataName applies the journal and date naming rules to the
// metadata filename.
func checkMetadataName(result *model.CanonicalIssueResult, metaPath string, cano model.IssueLocation) {
	short := ShortPath(metaPath, cano.Journal)
	base := filepath.Base(metaPath)

	// The filename's leading hyphen-delimited field is the journal code.
	journal, _, found := strings.Cut(base, "-")
	if !found || journal != cano.Journal {
		result.Cases.AddAnomaly(model.AnomalyInfoFileWithoutJournal, short)
	}
	if !strings.Contains(base, cano.Date) {
		result.Cases.AddAnomaly(model.AnomalyInfoFileWithoutDate, short)
	}
}

// checkPageCoverage flags original page folders with no matching canonical
// image, matched by the fixed-width page key.
func checkPageCoverage(result *model.CanonicalIssueResult, pageFolders []string, images []archive.CanonicalImage, orig model.IssueLocation) {
	keys := make(map[string]struct{}, len(images))
	for _, img := range images {
		if key := PageKeyFromImageName(img.Path); key != "" {
			keys[key] = struct{}{}
		}
	}

	shortOrig := ShortPath(orig.Path, orig.Journal)
	for _, folder := range pageFolders {
		key := PageKeyFromFolder(folder)
		if key == "" {
			continue
		}
		if _, ok := keys[key]; !ok {
			result.Cases.AddAnomaly(model.AnomalyPageWithoutImage, shortOrig+"/"+folder)
		}
	}
}

// tallySourceFormat counts one metadata record's source format. Matching is
// by substring with tif winning over png over jpg, because historic
// converter output used labels like "tiff" and "png24".
func tallySourceFormat(stats *model.StatCounters, format string) {
	label := strings.ToLower(format)
	switch {
	case strings.Contains(label, "tif"):
		stats.TifImages++
	case strings.Contains(label, "png"):
		stats.PngImages++
	case strings.Contains(label, "jpg"):
		stats.JpgImages++
	}
}

// ShortPath trims a filesystem path down to its journal-relative form for
// report listings: everything from the first occurrence of the journal
// code onward. Paths that do not contain the code are returned whole.
func ShortPath(path, journal string) string {
	if journal == "" {
		return path
	}
	if idx := strings.Index(path, journal); idx >= 0 {
		return filepath.ToSlash(path[idx:])
	}
	return filepath.ToSlash(path)
}
