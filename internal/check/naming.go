package check

import (
	"path"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// canonicalNamePattern is the naming grammar of converted page images:
// {journal}-{yyyy}-{mm}-{dd}-{edition}-p{page}, e.g.
// "GDL-1900-01-10-a-p0001". Journal codes are alphanumeric (legacy codes
// carry prefixes like "01_GDL"), editions a single lowercase letter or
// digit, page numbers fixed-width four digits.
var canonicalNamePattern = regexp.MustCompile(
	`^[A-Za-z0-9_]+-\d{4}-\d{2}-\d{2}-[a-z0-9]-p\d{4}$`,
)

// IsWellFormedCanonicalName reports whether a canonical image basename
// (without extension) follows the naming grammar.
func IsWellFormedCanonicalName(basename string) bool {
	return canonicalNamePattern.MatchString(basename)
}

// pageKeyWidth is the fixed width of the page key encoded at the end of a
// canonical image filename, immediately before the extension.
const pageKeyWidth = 4

// PageKeyFromImageName derives the page key of a canonical image filename:
// the fixed-width suffix of its basename. This reproduces the historic
// extraction heuristic; it is isolated here so it can be hardened without
// touching the page-coverage logic.
func PageKeyFromImageName(name string) string {
	base := strings.TrimSuffix(path.Base(filepath.ToSlash(name)), path.Ext(name))
	if len(base) < pageKeyWidth {
		return ""
	}
	return base[len(base)-pageKeyWidth:]
}

// PageKeyFromFolder derives the page key of an original page folder: the
// trailing digits of its final path segment, zero-padded to the fixed
// width so it can meet PageKeyFromImageName in a direct comparison.
func PageKeyFromFolder(folder string) string {
	segment := path.Base(filepath.ToSlash(folder))
	end := len(segment)
	start := end
	for start > 0 && segment[start-1] >= '0' && segment[start-1] <= '9' {
		start--
	}
	if start == end {
		return ""
	}
	n, err := strconv.Atoi(segment[start:end])
	if err != nil {
		return ""
	}
	key := strconv.Itoa(n)
	for len(key) < pageKeyWidth {
		key = "0" + key
	}
	return key
}
