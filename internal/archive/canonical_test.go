package archive

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeFile writes content into dir under name.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestListCanonicalImages tests extension-filtered, sorted discovery.
func TestListCanonicalImages(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "GDL-1900-01-10-a-p0002.jp2", "bbbb")
	writeFile(t, dir, "GDL-1900-01-10-a-p0001.jp2", "aa")
	writeFile(t, dir, "GDL-1900-01-10-a-image-info.json", "[]")
	writeFile(t, dir, "thumbnail.png", "png")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0750); err != nil {
		t.Fatal(err)
	}

	images, err := testAccessor().ListCanonicalImages(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(images) != 2 {
		t.Fatalf("got %d images, expected 2", len(images))
	}
	if filepath.Base(images[0].Path) != "GDL-1900-01-10-a-p0001.jp2" {
		t.Errorf("got %q first, expected p0001", filepath.Base(images[0].Path))
	}
	if images[0].Size != 2 || images[1].Size != 4 {
		t.Errorf("got sizes %d and %d, expected 2 and 4", images[0].Size, images[1].Size)
	}
}

// TestListCanonicalImagesEmpty tests a directory with no converted images.
func TestListCanonicalImagesEmpty(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "GDL-1900-01-10-a-image-info.json", "[]")

	images, err := testAccessor().ListCanonicalImages(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(images) != 0 {
		t.Errorf("got %d images, expected 0", len(images))
	}
}

// TestReadCanonicalMetadata tests the discovery and parse paths.
func TestReadCanonicalMetadata(t *testing.T) {
	t.Parallel()

	t.Run("single valid document", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "GDL-1900-01-10-a-image-info.json",
			`[{"source_format": "tif", "source_dimensions": [100, 200], "derived_dimensions": [100, 200]}]`)
		writeFile(t, dir, "GDL-1900-01-10-a-p0001.jp2", "img")

		meta, err := testAccessor().ReadCanonicalMetadata(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(meta.Files) != 1 {
			t.Fatalf("got %d files, expected 1", len(meta.Files))
		}
		if len(meta.Records) != 1 {
			t.Fatalf("got %d records, expected 1", len(meta.Records))
		}
		if meta.Records[0].SourceFormat != "tif" {
			t.Errorf("got %q, expected %q", meta.Records[0].SourceFormat, "tif")
		}
	})

	t.Run("no document", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "GDL-1900-01-10-a-p0001.jp2", "img")

		_, err := testAccessor().ReadCanonicalMetadata(dir)
		if !errors.Is(err, ErrMissingMetadata) {
			t.Errorf("got %v, expected %v", err, ErrMissingMetadata)
		}
	})

	t.Run("multiple documents keep first file's records", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "GDL-1900-01-10-a-image-info.json", `[{"source_format": "png"}]`)
		writeFile(t, dir, "GDL-1900-01-10-b-image-info.json", `[]`)

		meta, err := testAccessor().ReadCanonicalMetadata(dir)
		if !errors.Is(err, ErrMultipleMetadata) {
			t.Fatalf("got %v, expected %v", err, ErrMultipleMetadata)
		}
		if meta == nil {
			t.Fatal("expected metadata alongside the error")
		}
		if len(meta.Files) != 2 {
			t.Errorf("got %d files, expected 2", len(meta.Files))
		}
		if len(meta.Records) != 1 || meta.Records[0].SourceFormat != "png" {
			t.Errorf("expected records of the lexically first file, got %+v", meta.Records)
		}
	})

	t.Run("unparsable document still reports its path", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "GDL-1900-01-10-a-image-info.json", "{ not json")

		meta, err := testAccessor().ReadCanonicalMetadata(dir)
		if err == nil {
			t.Fatal("expected parse error")
		}
		if meta == nil || len(meta.Files) != 1 {
			t.Fatal("expected metadata with the discovered file path")
		}
		if len(meta.Records) != 0 {
			t.Errorf("got %d records, expected 0", len(meta.Records))
		}
	})

	t.Run("misnamed document found by extension", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "wrongname.json", `[]`)

		meta, err := testAccessor().ReadCanonicalMetadata(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(meta.Files) != 1 {
			t.Errorf("got %d files, expected 1", len(meta.Files))
		}
	})
}
