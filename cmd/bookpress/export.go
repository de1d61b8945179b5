package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/bookpress/internal/config"
	"github.com/jackzampolin/bookpress/internal/export"
	"github.com/jackzampolin/bookpress/internal/home"
	"github.com/jackzampolin/bookpress/internal/manuscript"
	"github.com/jackzampolin/bookpress/internal/render"
	"github.com/jackzampolin/bookpress/internal/settings"
)

var (
	exportSettingsPath string
	exportFormats      []string
	exportOutDir       string
)

var exportCmd = &cobra.Command{
	Use:   "export <manuscript>",
	Short: "Render a manuscript without a server",
	Long: `Render a manuscript directly to files.

The manuscript argument is a JSON/YAML manuscript file or a directory of
markdown chapter files. Artifacts are written to --out, or to the
exports directory under the bookpress home when --out is not given.

Examples:
  bookpress export book.json
  bookpress export chapters/ --formats pdf,epub,html
  bookpress export book.yaml --settings overrides.json --out ./dist`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		}))

		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfg := cm.Get()

		m, err := manuscript.Load(args[0])
		if err != nil {
			return err
		}

		var overrides *settings.Overrides
		if exportSettingsPath != "" {
			overrides, _, err = loadOverrides(exportSettingsPath, true)
			if err != nil {
				return err
			}
		}

		// Flags win over configured defaults.
		names := exportFormats
		if !cmd.Flags().Changed("formats") && len(cfg.Export.Formats) > 0 {
			names = cfg.Export.Formats
		}
		formats := make([]render.Format, len(names))
		for i, f := range names {
			formats[i] = render.Format(f)
		}

		coverTimeout := time.Duration(cfg.Export.CoverFetchTimeoutSeconds) * time.Second
		svc := export.NewService(export.DefaultRegistry(logger, coverTimeout), logger)
		outputs, err := svc.Export(ctx, export.Request{
			Manuscript: m,
			Settings:   overrides,
			Formats:    formats,
		})
		if err != nil {
			return err
		}

		outDir := exportOutDir
		if outDir == "" {
			outDir = cfg.Export.OutputDir
		}
		if outDir == "" {
			h, err := home.New(homeDir)
			if err != nil {
				return err
			}
			if err := h.EnsureExists(); err != nil {
				return err
			}
			outDir = h.ExportsPath()
		} else if err := os.MkdirAll(outDir, 0o755); err != nil {
			return err
		}

		for format, data := range outputs {
			path := filepath.Join(outDir, home.Slugify(m.Title)+"."+format.Extension())
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			fmt.Printf("Wrote %s (%d bytes)\n", path, len(data))
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportSettingsPath, "settings", "", "JSON settings overrides file")
	exportCmd.Flags().StringSliceVar(&exportFormats, "formats", []string{"pdf", "epub"}, "Output formats")
	exportCmd.Flags().StringVar(&exportOutDir, "out", "", "Output directory (default: <home>/exports)")

	rootCmd.AddCommand(exportCmd)
}
