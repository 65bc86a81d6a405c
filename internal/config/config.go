package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultWorkers bounds the per-issue worker pool in parallel mode.
	// Issue checks are I/O bound (zip reads, directory listings), so a
	// moderate pool keeps disks busy without thrashing network mounts.
	DefaultWorkers = 8

	// DefaultContainerName is the archive file expected in each original
	// issue directory.
	DefaultContainerName = "Document.zip"

	// DefaultCanonicalExt is the file extension of converted page images.
	DefaultCanonicalExt = ".jp2"

	// DefaultMetadataSuffix is the filename suffix of the canonical
	// metadata document, appended to "{journal}-{date}-{edition}".
	DefaultMetadataSuffix = "-image-info.json"

	// AppName is the application name used for XDG directory paths.
	AppName = "papercheck"
)

// Config holds all run options for papercheck. It is populated from CLI
// flags plus the optional config file and passed through the application
// by value injection rather than global state.
type Config struct {
	// OriginalDir is the base directory holding one sub-directory per
	// journal of original (pre-digitization) issues.
	OriginalDir string

	// CanonicalDir is the base directory holding one sub-directory per
	// journal of canonical (converted) issues. Only required by the
	// canonical check.
	CanonicalDir string

	// ReportDir is where the global CSV and per-journal detail reports
	// are written.
	ReportDir string

	// Journals is the list of journal codes to audit.
	Journals []string

	// Parallel selects the bounded worker-pool execution mode. When false,
	// issues are processed strictly sequentially, which is useful for
	// deterministic debugging.
	Parallel bool

	// Workers is the worker-pool size used when Parallel is set.
	Workers int

	// Verbose enables slog.LevelDebug output; otherwise only warnings and
	// errors are logged.
	Verbose bool

	// ConfigFilePath is an explicit config file path. If empty, the tool
	// searches for .papercheck in the current directory and then in the
	// user's home directory.
	ConfigFilePath string

	// Layouts holds layout overrides loaded from the config file.
	Layouts *File

	// NoDB disables persisting journal reports to the run database.
	NoDB bool

	// DBDir is the directory of the SQLite run database. Defaults to the
	// XDG data directory.
	DBDir string
}

// NewConfig creates a Config with default values. Callers override fields
// from CLI flags after creation.
func NewConfig() *Config {
	return &Config{
		Workers: DefaultWorkers,
		DBDir:   XDGDataDir(),
	}
}

// XDGDataDir returns the XDG data directory for papercheck.
// On Linux: ~/.local/share/papercheck.
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for papercheck.
// On Linux: ~/.config/papercheck.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Layout returns the archive layout for one journal: the file-level
// overrides from the config file merged over the defaults.
func (c *Config) Layout(journal string) JournalLayout {
	layout := JournalLayout{
		ContainerName:  DefaultContainerName,
		CanonicalExt:   DefaultCanonicalExt,
		MetadataSuffix: DefaultMetadataSuffix,
	}
	if c.Layouts == nil {
		return layout
	}
	layout.apply(c.Layouts.Defaults)
	if override, ok := c.Layouts.Journals[journal]; ok {
		layout.apply(override)
	}
	return layout
}

// Validate checks the configuration for the original check. It returns the
// first problem found; fixing one error often makes the rest irrelevant.
func (c *Config) Validate() error {
	if len(c.Journals) == 0 {
		return ErrNoJournals
	}
	if c.OriginalDir == "" {
		return ErrNoOriginalDir
	}
	if c.ReportDir == "" {
		return ErrNoReportDir
	}
	if c.Workers <= 0 {
		return ErrInvalidWorkers
	}
	return nil
}

// ValidateCanonical checks the configuration for the canonical check,
// which additionally needs the canonical base directory.
func (c *Config) ValidateCanonical() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.CanonicalDir == "" {
		return ErrNoCanonicalDir
	}
	return nil
}
