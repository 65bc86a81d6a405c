package model

import (
	"fmt"
	"time"
)

// DateLayout is the canonical date format used in issue identities,
// directory layouts and canonical file names (ISO-8601 calendar date).
const DateLayout = "2006-01-02"

// IssueIdentity uniquely identifies one published newspaper issue.
// Two identities are equal iff journal, date and edition all match exactly,
// which makes the struct usable as a map key for pairing.
type IssueIdentity struct {
	// Journal is the journal (newspaper) code, e.g. "GDL".
	Journal string `json:"journal"`

	// Date is the publication date in DateLayout form ("1900-01-10").
	// Stored as a string rather than time.Time so that the struct stays
	// comparable and the value round-trips byte-for-byte through file names.
	Date string `json:"date"`

	// Edition distinguishes multiple editions published on the same day.
	// Single-edition days use "a".
	Edition string `json:"edition"`
}

// NewIssueIdentity builds an IssueIdentity and validates the date string.
func NewIssueIdentity(journal, date, edition string) (IssueIdentity, error) {
	if journal == "" {
		return IssueIdentity{}, fmt.Errorf("issue identity: empty journal code")
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return IssueIdentity{}, fmt.Errorf("issue identity: bad date %q: %w", date, err)
	}
	if edition == "" {
		edition = DefaultEdition
	}
	return IssueIdentity{Journal: journal, Date: date, Edition: edition}, nil
}

// DefaultEdition is assigned to issues whose directory layout carries no
// explicit edition level.
const DefaultEdition = "a"

// String renders the identity in its canonical hyphenated form,
// e.g. "GDL-1900-01-10-a". This is also the filename stem prefix the
// canonical naming grammar expects.
func (id IssueIdentity) String() string {
	return id.Journal + "-" + id.Date + "-" + id.Edition
}

// LocationKind tags an IssueLocation as pointing at original (pre-digitization)
// or canonical (post-conversion) material.
type LocationKind int

const (
	// OriginalLocation marks the scanned source material of an issue.
	OriginalLocation LocationKind = iota

	// CanonicalLocation marks the converted, standardized output of an issue.
	CanonicalLocation
)

// String returns a human-readable representation of the location kind.
func (k LocationKind) String() string {
	switch k {
	case OriginalLocation:
		return "original"
	case CanonicalLocation:
		return "canonical"
	default:
		return "unknown"
	}
}

// IssueLocation is an IssueIdentity plus the filesystem directory holding
// that issue's material. Locations are produced by the inventory package
// and are read-only inputs to the checks.
type IssueLocation struct {
	IssueIdentity

	// Path is the absolute (or run-relative) directory of the issue.
	Path string `json:"path"`

	// Kind says which side of the archive this location belongs to.
	Kind LocationKind `json:"kind"`
}
