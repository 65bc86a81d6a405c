// Package config provides configuration structures and utilities for
// papercheck. It defines the run options shared by the check commands,
// validation of those options, and the optional YAML file carrying
// per-journal layout overrides.
package config
