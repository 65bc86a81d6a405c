package archive

import "errors"

// Accessor errors. All of them are recoverable at the run level: callers
// convert them into coverage or anomaly cases and continue with the next
// issue.
var (
	// ErrNoContainer is returned when the expected container file is absent
	// from an original issue directory.
	ErrNoContainer = errors.New("original container not found")

	// ErrCorruptContainer is returned when the container file exists but
	// cannot be parsed as a zip archive.
	ErrCorruptContainer = errors.New("original container is corrupt")

	// ErrMissingMetadata is returned when a canonical issue directory holds
	// no metadata document.
	ErrMissingMetadata = errors.New("canonical metadata file not found")

	// ErrMultipleMetadata is returned when a canonical issue directory holds
	// more than one metadata document. The records of the lexically first
	// file are still returned alongside this error.
	ErrMultipleMetadata = errors.New("multiple canonical metadata files")
)
