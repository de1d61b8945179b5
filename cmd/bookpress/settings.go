package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/bookpress/internal/api"
	"github.com/jackzampolin/bookpress/internal/schema"
	"github.com/jackzampolin/bookpress/internal/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Work with publishing settings",
}

var settingsResolveCmd = &cobra.Command{
	Use:   "resolve [overrides.json]",
	Short: "Print fully resolved settings",
	Long: `Resolve settings overrides into a complete settings document.

With no argument the built-in defaults are printed. With an overrides
file, presets and overrides are merged and out-of-range values clamped,
exactly as they would be for an export.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var overrides *settings.Overrides
		if len(args) == 1 {
			var err error
			overrides, _, err = loadOverrides(args[0], true)
			if err != nil {
				return err
			}
		}
		return api.Output(settings.Resolve(overrides))
	},
}

// loadOverrides reads and schema-checks a settings overrides file. When
// printWarnings is set, schema warnings go to stderr; otherwise they are
// returned to the caller.
func loadOverrides(path string, printWarnings bool) (*settings.Overrides, []string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read settings: %w", err)
	}
	warnings, err := schema.ValidateSettings(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid settings: %w", err)
	}
	if printWarnings {
		for _, warning := range warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
		}
		warnings = nil
	}
	overrides := &settings.Overrides{}
	if err := json.Unmarshal(raw, overrides); err != nil {
		return nil, nil, fmt.Errorf("invalid settings: %w", err)
	}
	return overrides, warnings, nil
}

func init() {
	settingsCmd.AddCommand(settingsResolveCmd)
	rootCmd.AddCommand(settingsCmd)
}
