package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dh-archival/papercheck/internal/config"
	"github.com/spf13/cobra"
)

//go:embed templates/papercheck.yaml
var configTemplate embed.FS

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new papercheck configuration file",
		Long: `Initialize creates a new .papercheck configuration file in the current
directory.

The generated file includes:
- The default archive layout (container name, canonical extension,
  metadata suffix)
- Commented examples for per-journal layout overrides

Examples:
  # Create .papercheck in current directory
  papercheck init

  # Create config file at a specific path
  papercheck init -o mylayouts.yaml

  # Force overwrite existing file
  papercheck init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := configTemplate.ReadFile("templates/papercheck.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	fmt.Printf("Created configuration file: %s\n", outputPath)
	fmt.Println("\nEdit this file to override the archive layout of journals whose")
	fmt.Println("provider deviated from the standard delivery:")
	fmt.Println("  - container file name inside each original issue directory")
	fmt.Println("  - canonical page-image extension")
	fmt.Println("  - metadata file suffix")

	return nil
}
