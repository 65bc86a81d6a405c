package classify

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dh-archival/papercheck/internal/archive"
	"github.com/dh-archival/papercheck/internal/model"
)

// testAccessor returns an Accessor with the standard delivery layout.
func testAccessor() *archive.Accessor {
	return archive.NewAccessor("Document.zip", ".jp2", "-image-info.json")
}

// testLocation wraps a directory into an original issue location.
func testLocation(t *testing.T, dir string) model.IssueLocation {
	t.Helper()

	id, err := model.NewIssueIdentity("GDL", "1900-01-10", "a")
	if err != nil {
		t.Fatal(err)
	}
	return model.IssueLocation{IssueIdentity: id, Path: dir, Kind: model.OriginalLocation}
}

// writeContainer creates a Document.zip with the given entry names in dir.
func writeContainer(t *testing.T, dir string, entries []string) {
	t.Helper()

	f, err := os.Create(filepath.Join(dir, "Document.zip"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for _, entry := range entries {
		ew, err := w.Create(entry)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasSuffix(entry, "/") {
			if _, err := ew.Write([]byte("x")); err != nil {
				t.Fatal(err)
			}
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}

// tif returns the container entry of an acquisition tif for one page.
func tif(page string) string { return "Res/PageImg/GDL_" + page + ".tif" }

// png returns the container entry of a page png variant.
func png(page, variant string) string {
	return "Pg" + page + "/Img/Pg" + page + variant + ".png"
}

// jpg returns the container entry of a page jpg.
func jpg(page string) string { return "Pg" + page + "/Img/Pg" + page + ".jpg" }

// emptyPage returns a page folder directory entry with no images.
func emptyPage(page string) string { return "Pg" + page + "/" }

// TestIssueContainerFailures tests the two container-health cases.
func TestIssueContainerFailures(t *testing.T) {
	t.Parallel()

	t.Run("missing container", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		result := Issue(testAccessor(), testLocation(t, dir))
		if result.Case != model.CoverageNoContainer {
			t.Errorf("got %s, expected %s", result.Case, model.CoverageNoContainer)
		}
		if result.Valid() {
			t.Error("expected invalid result")
		}
	})

	t.Run("corrupt container", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "Document.zip"), []byte("garbage"), 0600); err != nil {
			t.Fatal(err)
		}

		result := Issue(testAccessor(), testLocation(t, dir))
		if result.Case != model.CoverageCorruptContainer {
			t.Errorf("got %s, expected %s", result.Case, model.CoverageCorruptContainer)
		}
	})
}

// TestIssueCoverageCases tests the terminal case assignment across format
// mixes. Each issue lands in exactly one case.
func TestIssueCoverageCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []string
		want    model.CoverageCase
	}{
		{
			name:    "all pages tif",
			entries: []string{tif("0001"), tif("0002"), emptyPage("0001"), emptyPage("0002")},
			want:    model.CoverageHomogeneousTifs,
		},
		{
			name:    "all pages jpg",
			entries: []string{jpg("0001"), jpg("0002")},
			want:    model.CoverageHomogeneousJpgs,
		},
		{
			name:    "all pages single png",
			entries: []string{png("0001", ""), png("0002", "")},
			want:    model.CoverageHomogeneousSinglePngs,
		},
		{
			name: "png pages with one multi-variant page",
			entries: []string{
				png("0001", ""), png("0002", ""), png("0003", ""),
				png("0004", ""), png("0004", "_hi"), png("0005", ""),
			},
			want: model.CoverageHomogeneousPngs,
		},
		{
			name:    "tif and png pages",
			entries: []string{tif("0001"), emptyPage("0001"), png("0002", "")},
			want:    model.CoverageHeteroTifPng,
		},
		{
			name:    "tif and jpg pages",
			entries: []string{tif("0001"), emptyPage("0001"), jpg("0002")},
			want:    model.CoverageHeteroTifJpg,
		},
		{
			name:    "png and jpg pages",
			entries: []string{png("0001", ""), jpg("0002")},
			want:    model.CoverageHeteroPngJpg,
		},
		{
			name:    "all three formats",
			entries: []string{tif("0001"), emptyPage("0001"), png("0002", ""), jpg("0003")},
			want:    model.CoverageHeteroAll,
		},
		{
			name:    "one page without any image",
			entries: []string{tif("0001"), emptyPage("0001"), emptyPage("0002")},
			want:    model.CoverageMissingPages,
		},
		{
			name:    "empty container",
			entries: nil,
			want:    model.CoverageMissingPages,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeContainer(t, dir, tt.entries)

			result := Issue(testAccessor(), testLocation(t, dir))
			if result.Case != tt.want {
				t.Errorf("got %s, expected %s", result.Case, tt.want)
			}
			if !result.Valid() {
				t.Error("expected valid result")
			}
		})
	}
}

// TestIssueCoverageCountsPartition tests that the per-page counts always
// partition the pages.
func TestIssueCoverageCountsPartition(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeContainer(t, dir, []string{
		tif("0001"), emptyPage("0001"),
		png("0002", ""), png("0002", "_hi"),
		jpg("0003"),
		emptyPage("0004"),
	})

	result := Issue(testAccessor(), testLocation(t, dir))

	if result.Pages != 4 {
		t.Errorf("got %d pages, expected 4", result.Pages)
	}
	sum := result.TifPages + result.PngPages + result.JpgPages + result.MissingPages
	if sum != result.Pages {
		t.Errorf("per-page counts sum to %d, expected %d", sum, result.Pages)
	}
	if result.TifPages != 1 || result.PngPages != 1 || result.JpgPages != 1 || result.MissingPages != 1 {
		t.Errorf("unexpected split: %+v", result)
	}
	if result.MultiPngPages != 1 || result.SinglePngPages != 0 {
		t.Errorf("unexpected png split: multi=%d single=%d", result.MultiPngPages, result.SinglePngPages)
	}
	if result.Case != model.CoverageMissingPages {
		t.Errorf("got %s, expected %s", result.Case, model.CoverageMissingPages)
	}
}

// TestIssueTifPreferredOverRaster tests the per-page format priority:
// a page carrying both tif and png counts as a tif page.
func TestIssueTifPreferredOverRaster(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeContainer(t, dir, []string{tif("0001"), png("0001", "")})

	result := Issue(testAccessor(), testLocation(t, dir))
	if result.TifPages != 1 || result.PngPages != 0 {
		t.Errorf("got tif=%d png=%d, expected tif page only", result.TifPages, result.PngPages)
	}
	if result.Case != model.CoverageHomogeneousTifs {
		t.Errorf("got %s, expected %s", result.Case, model.CoverageHomogeneousTifs)
	}

	// The image tally still counts both discovered images.
	if result.Stats.TifImages != 1 || result.Stats.PngImages != 1 {
		t.Errorf("got stats %+v, expected one tif and one png", result.Stats)
	}
}

// TestIssueStats tests the per-image tallies and document counters.
func TestIssueStats(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeContainer(t, dir, []string{
		"issue.pdf",
		png("0001", ""), png("0001", "_hi"),
		jpg("0002"),
		"Pg0002/Pg0002.pdf",
	})

	result := Issue(testAccessor(), testLocation(t, dir))

	if result.Stats.PngImages != 2 {
		t.Errorf("got %d pngs, expected 2", result.Stats.PngImages)
	}
	if result.Stats.JpgImages != 1 {
		t.Errorf("got %d jpgs, expected 1", result.Stats.JpgImages)
	}
	if result.Stats.OriginalPageFolders != 2 {
		t.Errorf("got %d page folders, expected 2", result.Stats.OriginalPageFolders)
	}
	if !result.HasIssuePDF {
		t.Error("expected issue PDF")
	}
	if result.PagePDFs != 1 {
		t.Errorf("got %d page PDFs, expected 1", result.PagePDFs)
	}
}
