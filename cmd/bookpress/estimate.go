package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/bookpress/internal/api"
	"github.com/jackzampolin/bookpress/internal/manuscript"
	"github.com/jackzampolin/bookpress/internal/server/endpoints"
	"github.com/jackzampolin/bookpress/internal/settings"
)

var estimateSettingsPath string

var estimateCmd = &cobra.Command{
	Use:   "estimate <manuscript>",
	Short: "Estimate page counts without a server",
	Long: `Estimate per-chapter page counts and the bibliography start page.

The numbers come from the same typography heuristic used to pre-populate
table of contents entries during layout.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manuscript.Load(args[0])
		if err != nil {
			return err
		}

		var overrides *settings.Overrides
		var warnings []string
		if estimateSettingsPath != "" {
			overrides, warnings, err = loadOverrides(estimateSettingsPath, false)
			if err != nil {
				return err
			}
		}

		return api.Output(endpoints.Estimate(m, settings.Resolve(overrides), warnings))
	},
}

func init() {
	estimateCmd.Flags().StringVar(&estimateSettingsPath, "settings", "", "JSON settings overrides file")

	rootCmd.AddCommand(estimateCmd)
}
