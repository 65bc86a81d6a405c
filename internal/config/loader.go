package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".papercheck"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// JournalLayout describes where one journal's archive keeps its material.
// Legacy providers deviated from the standard layout in small ways, so
// every field can be overridden per journal.
type JournalLayout struct {
	// ContainerName is the archive file inside each original issue directory.
	ContainerName string `yaml:"container"`

	// CanonicalExt is the extension of converted page images.
	CanonicalExt string `yaml:"canonical_ext"`

	// MetadataSuffix is the filename suffix of the canonical metadata file.
	MetadataSuffix string `yaml:"metadata_suffix"`
}

// apply overlays the non-empty fields of override onto l.
func (l *JournalLayout) apply(override JournalLayout) {
	if override.ContainerName != "" {
		l.ContainerName = override.ContainerName
	}
	if override.CanonicalExt != "" {
		l.CanonicalExt = override.CanonicalExt
	}
	if override.MetadataSuffix != "" {
		l.MetadataSuffix = override.MetadataSuffix
	}
}

// File is the on-disk YAML configuration: global layout defaults plus
// per-journal overrides.
type File struct {
	// Defaults applies to every journal unless overridden.
	Defaults JournalLayout `yaml:"defaults"`

	// Journals maps a journal code to its layout overrides.
	Journals map[string]JournalLayout `yaml:"journals"`
}

// LoadConfigFile loads layout configuration from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound; callers decide
// whether that is fatal based on whether the path was explicit.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	if cf.Journals == nil {
		cf.Journals = make(map[string]JournalLayout)
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .papercheck in the current directory
// 3. Look for .papercheck in the user's home directory
//
// Returns the path if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}
