package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/bookpress/internal/api"
	"github.com/jackzampolin/bookpress/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "bookpress",
	Short: "Book layout engine that turns manuscripts into print-ready files",
	Long: `Bookpress is a book layout engine. It takes a manuscript (chapters,
metadata, and an optional bibliography) plus publishing settings and
produces rendered output.

The pipeline includes:
  - Text sanitization (smart quotes, scene breaks, title echo removal)
  - Chapter headings with numbering, ornaments, and drop caps
  - Formatted citations in seven bibliography styles
  - Headers, footers, and front/back matter assembly
  - PDF, EPUB, HTML, Markdown, and plain text renderers`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.bookpress/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "bookpress home directory (default: ~/.bookpress)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}
