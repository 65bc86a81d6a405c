package inventory

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/dh-archival/papercheck/internal/model"
)

// DetectIssues scans one journal's tree under root and returns its issue
// locations, sorted by identity. Directories that do not follow the
// year/month/day convention are skipped silently: archive roots routinely
// carry stray folders (exports, notes) next to the real material.
func DetectIssues(root, journal string, kind model.LocationKind) ([]model.IssueLocation, error) {
	journalDir := filepath.Join(root, journal)
	if _, err := os.Stat(journalDir); err != nil {
		if os.IsNotExist(err) {
			// A journal absent from one side is not fatal; the aggregator
			// reports the imbalance through its structural counts.
			return nil, nil
		}
		return nil, fmt.Errorf("stat journal directory %s: %w", journalDir, err)
	}

	var issues []model.IssueLocation

	years, err := subDirs(journalDir)
	if err != nil {
		return nil, err
	}
	for _, year := range years {
		if !allDigits(year, 4) {
			continue
		}
		months, err := subDirs(filepath.Join(journalDir, year))
		if err != nil {
			return nil, err
		}
		for _, month := range months {
			if !allDigits(month, 2) {
				continue
			}
			days, err := subDirs(filepath.Join(journalDir, year, month))
			if err != nil {
				return nil, err
			}
			for _, day := range days {
				if !allDigits(day, 2) {
					continue
				}
				dayDir := filepath.Join(journalDir, year, month, day)
				date := year + "-" + month + "-" + day

				found, err := issuesInDay(dayDir, journal, date, kind)
				if err != nil {
					return nil, err
				}
				issues = append(issues, found...)
			}
		}
	}

	sort.Slice(issues, func(i, j int) bool {
		return issues[i].String() < issues[j].String()
	})
	return issues, nil
}

// issuesInDay resolves one day directory into issue locations. When the
// day holds edition sub-directories (a single letter or digit), each one
// is an issue; otherwise the day directory itself is the issue with the
// default edition.
func issuesInDay(dayDir, journal, date string, kind model.LocationKind) ([]model.IssueLocation, error) {
	editions, err := subDirs(dayDir)
	if err != nil {
		return nil, err
	}

	var issues []model.IssueLocation
	for _, edition := range editions {
		if !isEdition(edition) {
			continue
		}
		identity, err := model.NewIssueIdentity(journal, date, edition)
		if err != nil {
			return nil, err
		}
		issues = append(issues, model.IssueLocation{
			IssueIdentity: identity,
			Path:          filepath.Join(dayDir, edition),
			Kind:          kind,
		})
	}

	if len(issues) == 0 {
		identity, err := model.NewIssueIdentity(journal, date, model.DefaultEdition)
		if err != nil {
			return nil, err
		}
		issues = append(issues, model.IssueLocation{
			IssueIdentity: identity,
			Path:          dayDir,
			Kind:          kind,
		})
	}
	return issues, nil
}

// subDirs returns the names of dir's immediate sub-directories.
func subDirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// allDigits reports whether s is exactly n ASCII digits.
func allDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isEdition reports whether a directory name is an edition label: one
// lowercase letter or one digit.
func isEdition(name string) bool {
	if len(name) != 1 {
		return false
	}
	c := name[0]
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}
