package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/bookpress/internal/server/endpoints"
)

var serverURL string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Commands that call the running server",
	Long: `API commands call the running Bookpress server via HTTP.

These commands require a running server (bookpress serve).
Use --server to specify a custom server URL.

Examples:
  bookpress api health                   # Check server health
  bookpress api exports list             # List export jobs
  bookpress api exports get <id>         # Get a specific export job
  bookpress api exports download <id> pdf`,
}

var exportsCmd = &cobra.Command{
	Use:   "exports",
	Short: "Export job commands",
}

var apiSettingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Publishing settings commands",
}

// getServerURL returns the server URL at runtime (after flag parsing).
func getServerURL() string {
	return serverURL
}

func init() {
	// Add --server flag to api command (persistent so all subcommands inherit it)
	apiCmd.PersistentFlags().StringVar(
		&serverURL, "server", "http://localhost:8390", "Server URL",
	)

	// Health endpoints at top level of api
	apiCmd.AddCommand((&endpoints.HealthEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.StatusEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.EstimateEndpoint{}).Command(getServerURL))

	// Exports as subcommand group
	exportsCmd.AddCommand((&endpoints.SubmitExportEndpoint{}).Command(getServerURL))
	exportsCmd.AddCommand((&endpoints.ListExportsEndpoint{}).Command(getServerURL))
	exportsCmd.AddCommand((&endpoints.GetExportEndpoint{}).Command(getServerURL))
	exportsCmd.AddCommand((&endpoints.CancelExportEndpoint{}).Command(getServerURL))
	exportsCmd.AddCommand((&endpoints.DownloadExportEndpoint{}).Command(getServerURL))

	// Settings as subcommand group
	apiSettingsCmd.AddCommand((&endpoints.ResolveSettingsEndpoint{}).Command(getServerURL))

	apiCmd.AddCommand(exportsCmd)
	apiCmd.AddCommand(apiSettingsCmd)
	rootCmd.AddCommand(apiCmd)
}
