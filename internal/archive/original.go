package archive

import (
	"archive/zip"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// ImageFormat tags a discovered page image with its legacy format.
type ImageFormat int

const (
	// FormatTif is the oldest acquisition format, preferred when present.
	FormatTif ImageFormat = iota
	// FormatPng replaced tif in later acquisition batches; a page may carry
	// several png variants.
	FormatPng
	// FormatJpg appears in the most recent batches.
	FormatJpg
)

// String returns the conventional lowercase format label.
func (f ImageFormat) String() string {
	switch f {
	case FormatTif:
		return "tif"
	case FormatPng:
		return "png"
	case FormatJpg:
		return "jpg"
	default:
		return "unknown"
	}
}

// PageImage is one raster image discovered for a page, tagged with its
// format and its container-relative path.
type PageImage struct {
	Format ImageFormat
	Path   string
}

// PageImageSet is the per-page image inventory of one original issue,
// built once from the container listing and discarded after classification.
type PageImageSet struct {
	// Images maps 1-based page numbers to the images discovered for them.
	// Pages with no image in any format have no entry.
	Images map[int][]PageImage

	// Folders holds the container-relative page folder paths, one per page,
	// sorted by page number. The page number is encoded in the folder's
	// final path segment.
	Folders []string

	// HasIssuePDF reports a document PDF at the container root.
	HasIssuePDF bool

	// PagePDFs counts per-page document PDFs found inside page folders.
	PagePDFs int
}

// PageCount returns the number of page folders in the container.
func (s *PageImageSet) PageCount() int { return len(s.Folders) }

// PageNumbers returns the sorted page numbers derived from the folders.
func (s *PageImageSet) PageNumbers() []int {
	nums := make([]int, 0, len(s.Folders))
	for _, folder := range s.Folders {
		if n, ok := pageNumberFromSegment(path.Base(folder)); ok {
			nums = append(nums, n)
		}
	}
	sort.Ints(nums)
	return nums
}

// ImagesInFormat returns the images of one format discovered for a page.
func (s *PageImageSet) ImagesInFormat(page int, format ImageFormat) []PageImage {
	var out []PageImage
	for _, img := range s.Images[page] {
		if img.Format == format {
			out = append(out, img)
		}
	}
	return out
}

// Accessor opens original containers and canonical directories following
// one journal's archive layout. The zero value is not usable; construct
// with NewAccessor.
type Accessor struct {
	containerName  string
	canonicalExt   string
	metadataSuffix string
}

// NewAccessor creates an Accessor for one journal's layout: the container
// filename inside each original issue directory, the canonical image
// extension, and the metadata filename suffix.
func NewAccessor(containerName, canonicalExt, metadataSuffix string) *Accessor {
	return &Accessor{
		containerName:  containerName,
		canonicalExt:   canonicalExt,
		metadataSuffix: metadataSuffix,
	}
}

// Format-specific discovery conventions inside the container. Each legacy
// format lives under its own conventional sub-path.
const (
	// tifSubPath is the path fragment under which acquisition tifs live.
	tifSubPath = "Res/PageImg/"

	// rasterSubPath marks the per-page image sub-tree for png and jpg.
	rasterSubPath = "/Img/"

	// rasterPageMarker must appear in a png/jpg path alongside rasterSubPath.
	rasterPageMarker = "/Pg"
)

// OpenOriginal opens the container of one original issue directory and
// builds its page image inventory from the entry listing alone.
//
// It returns ErrNoContainer when the container file is absent and
// ErrCorruptContainer when it cannot be parsed; both are reported as
// coverage cases by the caller, never as run failures.
func (a *Accessor) OpenOriginal(issueDir string) (*PageImageSet, error) {
	containerPath := filepath.Join(issueDir, a.containerName)

	if _, err := os.Stat(containerPath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoContainer, containerPath)
		}
		return nil, fmt.Errorf("stat container %s: %w", containerPath, err)
	}

	reader, err := zip.OpenReader(containerPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptContainer, containerPath, err)
	}
	defer reader.Close()

	set := &PageImageSet{Images: make(map[int][]PageImage)}
	folderByPage := make(map[int]string)

	for _, entry := range reader.File {
		name := entry.Name
		if name == "" {
			continue
		}
		if strings.HasSuffix(name, "/") {
			// Directory entry. A top-level page folder may appear here even
			// when it holds no files, so record it before moving on.
			trimmed := strings.TrimSuffix(name, "/")
			if !strings.Contains(trimmed, "/") {
				if page, ok := pageNumberFromSegment(trimmed); ok {
					if _, seen := folderByPage[page]; !seen {
						folderByPage[page] = trimmed
					}
				}
			}
			continue
		}

		top, rest, nested := strings.Cut(name, "/")
		if !nested {
			// Container-root entry: the issue-level document lives here.
			if strings.EqualFold(path.Ext(name), ".pdf") {
				set.HasIssuePDF = true
			}
			continue
		}

		page, isPage := pageNumberFromSegment(top)
		if isPage {
			if _, seen := folderByPage[page]; !seen {
				folderByPage[page] = top
			}
			if strings.EqualFold(path.Ext(rest), ".pdf") {
				set.PagePDFs++
			}
		}

		switch {
		case a.isTifEntry(name):
			if tifPage, ok := pageNumberFromSegment(stem(path.Base(name))); ok {
				set.Images[tifPage] = append(set.Images[tifPage], PageImage{Format: FormatTif, Path: name})
			}
		case isPage && a.isRasterEntry(name, ".png"):
			set.Images[page] = append(set.Images[page], PageImage{Format: FormatPng, Path: name})
		case isPage && a.isRasterEntry(name, ".jpg"):
			set.Images[page] = append(set.Images[page], PageImage{Format: FormatJpg, Path: name})
		}
	}

	pages := make([]int, 0, len(folderByPage))
	for page := range folderByPage {
		pages = append(pages, page)
	}
	sort.Ints(pages)
	for _, page := range pages {
		set.Folders = append(set.Folders, folderByPage[page])
	}

	return set, nil
}

// isTifEntry reports whether a container entry follows the tif convention.
func (a *Accessor) isTifEntry(name string) bool {
	return strings.Contains(name, tifSubPath) && strings.EqualFold(path.Ext(name), ".tif")
}

// isRasterEntry reports whether a container entry follows the png/jpg
// per-page convention.
func (a *Accessor) isRasterEntry(name, ext string) bool {
	return strings.Contains(name, rasterSubPath) &&
		strings.Contains(name, rasterPageMarker) &&
		strings.EqualFold(path.Ext(name), ext)
}

// pageNumberFromSegment extracts a positive page number from a path
// segment. The number is the trailing digit run of the segment, which
// tolerates plain numeric folders ("7") as well as prefixed conventions
// ("Page_7", "Pg007").
func pageNumberFromSegment(segment string) (int, bool) {
	end := len(segment)
	start := end
	for start > 0 && segment[start-1] >= '0' && segment[start-1] <= '9' {
		start--
	}
	if start == end {
		return 0, false
	}
	n := 0
	for _, c := range segment[start:end] {
		n = n*10 + int(c-'0')
	}
	if n <= 0 {
		return 0, false
	}
	return n, true
}

// stem returns a file name without its extension.
func stem(name string) string {
	return strings.TrimSuffix(name, path.Ext(name))
}
