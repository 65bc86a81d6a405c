package config

import (
	"errors"
	"testing"
)

// validConfig returns a config that passes Validate.
func validConfig() *Config {
	cfg := NewConfig()
	cfg.OriginalDir = "/archive/original"
	cfg.CanonicalDir = "/archive/canonical"
	cfg.ReportDir = "/tmp/reports"
	cfg.Journals = []string{"GDL"}
	return cfg
}

// TestNewConfigDefaults tests the default values.
func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	if cfg.Workers != DefaultWorkers {
		t.Errorf("got %d workers, expected %d", cfg.Workers, DefaultWorkers)
	}
	if cfg.DBDir == "" {
		t.Error("expected DBDir to default to the XDG data directory")
	}
	if cfg.Parallel {
		t.Error("expected sequential mode by default")
	}
}

// TestConfigValidate tests validation of the original-check configuration.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "valid", mutate: func(*Config) {}},
		{
			name:    "no journals",
			mutate:  func(c *Config) { c.Journals = nil },
			wantErr: ErrNoJournals,
		},
		{
			name:    "no original dir",
			mutate:  func(c *Config) { c.OriginalDir = "" },
			wantErr: ErrNoOriginalDir,
		},
		{
			name:    "no report dir",
			mutate:  func(c *Config) { c.ReportDir = "" },
			wantErr: ErrNoReportDir,
		},
		{
			name:    "zero workers",
			mutate:  func(c *Config) { c.Workers = 0 },
			wantErr: ErrInvalidWorkers,
		},
		{
			name:    "negative workers",
			mutate:  func(c *Config) { c.Workers = -1 },
			wantErr: ErrInvalidWorkers,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, expected %v", err, tt.wantErr)
			}
		})
	}
}

// TestConfigValidateCanonical tests the additional canonical-dir requirement.
func TestConfigValidateCanonical(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	if err := cfg.ValidateCanonical(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.CanonicalDir = ""
	if err := cfg.ValidateCanonical(); !errors.Is(err, ErrNoCanonicalDir) {
		t.Errorf("got %v, expected %v", err, ErrNoCanonicalDir)
	}

	// Base validation errors still surface first.
	cfg = validConfig()
	cfg.Journals = nil
	cfg.CanonicalDir = ""
	if err := cfg.ValidateCanonical(); !errors.Is(err, ErrNoJournals) {
		t.Errorf("got %v, expected %v", err, ErrNoJournals)
	}
}

// TestConfigLayout tests the defaults -> file defaults -> journal override
// merge chain.
func TestConfigLayout(t *testing.T) {
	t.Parallel()

	t.Run("no config file gives standard layout", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		layout := cfg.Layout("GDL")
		if layout.ContainerName != DefaultContainerName {
			t.Errorf("got %q, expected %q", layout.ContainerName, DefaultContainerName)
		}
		if layout.CanonicalExt != DefaultCanonicalExt {
			t.Errorf("got %q, expected %q", layout.CanonicalExt, DefaultCanonicalExt)
		}
		if layout.MetadataSuffix != DefaultMetadataSuffix {
			t.Errorf("got %q, expected %q", layout.MetadataSuffix, DefaultMetadataSuffix)
		}
	})

	t.Run("file defaults overlay builtin defaults", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.Layouts = &File{
			Defaults: JournalLayout{ContainerName: "document.zip"},
		}

		layout := cfg.Layout("GDL")
		if layout.ContainerName != "document.zip" {
			t.Errorf("got %q, expected %q", layout.ContainerName, "document.zip")
		}
		if layout.CanonicalExt != DefaultCanonicalExt {
			t.Errorf("got %q, expected builtin default %q", layout.CanonicalExt, DefaultCanonicalExt)
		}
	})

	t.Run("journal override wins over file defaults", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.Layouts = &File{
			Defaults: JournalLayout{CanonicalExt: ".jpx"},
			Journals: map[string]JournalLayout{
				"LNQ": {CanonicalExt: ".jp2", MetadataSuffix: "-pages.json"},
			},
		}

		if got := cfg.Layout("LNQ").CanonicalExt; got != ".jp2" {
			t.Errorf("got %q, expected %q", got, ".jp2")
		}
		if got := cfg.Layout("LNQ").MetadataSuffix; got != "-pages.json" {
			t.Errorf("got %q, expected %q", got, "-pages.json")
		}
		if got := cfg.Layout("GDL").CanonicalExt; got != ".jpx" {
			t.Errorf("got %q, expected file default %q", got, ".jpx")
		}
	})
}
