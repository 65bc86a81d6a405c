package archive

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dh-archival/papercheck/internal/model"
)

// CanonicalImage is one converted page image in a canonical issue
// directory, with its byte size for the journal size tally.
type CanonicalImage struct {
	Path string
	Size int64
}

// ListCanonicalImages lists the converted images of a canonical issue
// directory, sorted by file name.
func (a *Accessor) ListCanonicalImages(issueDir string) ([]CanonicalImage, error) {
	entries, err := os.ReadDir(issueDir)
	if err != nil {
		return nil, fmt.Errorf("list canonical images in %s: %w", issueDir, err)
	}

	var images []CanonicalImage
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), a.canonicalExt) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat canonical image %s: %w", entry.Name(), err)
		}
		images = append(images, CanonicalImage{
			Path: filepath.Join(issueDir, entry.Name()),
			Size: info.Size(),
		})
	}

	sort.Slice(images, func(i, j int) bool { return images[i].Path < images[j].Path })
	return images, nil
}

// Metadata is the parsed canonical metadata of one issue, plus the paths of
// every candidate metadata file found (normally exactly one).
type Metadata struct {
	// Files holds the discovered metadata file paths, sorted. The records
	// come from the first file.
	Files []string

	// Records is the ordered record sequence of the metadata document,
	// conceptually one record per derived image.
	Records []model.ImageRecord
}

// ReadCanonicalMetadata finds and parses the metadata document of a
// canonical issue directory. Discovery matches the metadata suffix's file
// extension, so misnamed documents are still found and can be flagged by
// the naming checks.
//
// Returns ErrMissingMetadata when no document exists, and
// ErrMultipleMetadata when several do; in the latter case the returned
// Metadata still carries the records of the lexically first file so that
// the remaining checks can run.
func (a *Accessor) ReadCanonicalMetadata(issueDir string) (*Metadata, error) {
	entries, err := os.ReadDir(issueDir)
	if err != nil {
		return nil, fmt.Errorf("list canonical metadata in %s: %w", issueDir, err)
	}

	metaExt := filepath.Ext(a.metadataSuffix)
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), metaExt) {
			continue
		}
		files = append(files, filepath.Join(issueDir, entry.Name()))
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingMetadata, issueDir)
	}

	// From here on the Metadata is always returned, even alongside an
	// error: the filename checks still need the discovered paths when the
	// document itself is unreadable.
	meta := &Metadata{Files: files}
	data, err := os.ReadFile(files[0])
	if err != nil {
		return meta, fmt.Errorf("read canonical metadata %s: %w", files[0], err)
	}
	if err := json.Unmarshal(data, &meta.Records); err != nil {
		return meta, fmt.Errorf("parse canonical metadata %s: %w", files[0], err)
	}

	if len(files) > 1 {
		return meta, fmt.Errorf("%w: %s has %d", ErrMultipleMetadata, issueDir, len(files))
	}
	return meta, nil
}
