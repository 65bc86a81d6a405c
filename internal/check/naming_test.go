package check

import "testing"

// TestIsWellFormedCanonicalName tests the naming grammar.
func TestIsWellFormedCanonicalName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want bool
	}{
		{"GDL-1900-01-10-a-p0001", true},
		{"01_GDL-1900-01-10-a-p0001", true},
		{"JDG-1944-06-06-2-p0042", true},
		{"GDL-1900-01-10-a-p001", false},
		{"GDL-1900-01-10-A-p0001", false},
		{"GDL-1900-1-10-a-p0001", false},
		{"GDL-1900-01-10-a-0001", false},
		{"-1900-01-10-a-p0001", false},
		{"GDL-1900-01-10-a-p0001-extra", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsWellFormedCanonicalName(tt.name); got != tt.want {
			t.Errorf("%q: got %v, expected %v", tt.name, got, tt.want)
		}
	}
}

// TestPageKeyFromImageName tests the fixed-width suffix extraction.
func TestPageKeyFromImageName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"GDL-1900-01-10-a-p0001.jp2", "0001"},
		{"/archive/GDL/1900/01/10/a/GDL-1900-01-10-a-p0042.jp2", "0042"},
		{"weird_name_0123.jp2", "0123"},
		{"ab.jp2", ""},
		{"p0007", "0007"},
	}

	for _, tt := range tests {
		if got := PageKeyFromImageName(tt.name); got != tt.want {
			t.Errorf("%q: got %q, expected %q", tt.name, got, tt.want)
		}
	}
}

// TestPageKeyFromFolder tests trailing-digit extraction with zero padding.
func TestPageKeyFromFolder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		folder string
		want   string
	}{
		{"Pg0001", "0001"},
		{"Pg0042", "0042"},
		{"7", "0007"},
		{"Page_12", "0012"},
		{"Img", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := PageKeyFromFolder(tt.folder); got != tt.want {
			t.Errorf("%q: got %q, expected %q", tt.folder, got, tt.want)
		}
	}
}

// TestPageKeysMeet tests that both extractions produce comparable keys for
// the same page.
func TestPageKeysMeet(t *testing.T) {
	t.Parallel()

	imageKey := PageKeyFromImageName("GDL-1900-01-10-a-p0007.jp2")
	folderKey := PageKeyFromFolder("Pg0007")
	if imageKey != folderKey {
		t.Errorf("keys diverge: image %q vs folder %q", imageKey, folderKey)
	}

	// Unpadded folder numbering still meets the padded image key.
	if got := PageKeyFromFolder("Pg7"); got != imageKey {
		t.Errorf("got %q, expected %q", got, imageKey)
	}
}

// TestShortPath tests journal-relative trimming for report listings.
func TestShortPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		journal string
		want    string
	}{
		{"/archive/original/GDL/1900/01/10/a", "GDL", "GDL/1900/01/10/a"},
		{"/archive/GDL/1900/01/10/a/GDL-1900-01-10-a-p0001.jp2", "GDL", "GDL/1900/01/10/a/GDL-1900-01-10-a-p0001.jp2"},
		{"/no/journal/here", "GDL", "/no/journal/here"},
		{"/archive/GDL/x", "", "/archive/GDL/x"},
	}

	for _, tt := range tests {
		if got := ShortPath(tt.path, tt.journal); got != tt.want {
			t.Errorf("ShortPath(%q, %q): got %q, expected %q", tt.path, tt.journal, got, tt.want)
		}
	}
}
