package config

import "errors"

// Configuration validation errors.
// Package-level sentinel errors let callers use errors.Is for programmatic
// handling while keeping the messages human-readable.
var (
	// ErrNoJournals is returned when no journal code was given.
	ErrNoJournals = errors.New("no journals specified: provide one or more journal codes as arguments")

	// ErrNoOriginalDir is returned when the original base directory is missing.
	ErrNoOriginalDir = errors.New("no original directory: set --original-dir")

	// ErrNoCanonicalDir is returned when the canonical base directory is
	// missing for a canonical check.
	ErrNoCanonicalDir = errors.New("no canonical directory: set --canonical-dir")

	// ErrNoReportDir is returned when the report output directory is missing.
	ErrNoReportDir = errors.New("no report directory: set --report-dir")

	// ErrInvalidWorkers is returned when the worker count is not positive.
	ErrInvalidWorkers = errors.New("invalid worker count: must be positive")
)
