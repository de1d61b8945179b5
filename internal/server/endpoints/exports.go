package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/bookpress/internal/api"
	"github.com/jackzampolin/bookpress/internal/export"
	"github.com/jackzampolin/bookpress/internal/manuscript"
	"github.com/jackzampolin/bookpress/internal/render"
	"github.com/jackzampolin/bookpress/internal/schema"
	"github.com/jackzampolin/bookpress/internal/settings"
	"github.com/jackzampolin/bookpress/internal/svcctx"
)

// SubmitExportRequest is the request body for submitting an export job.
// Settings stay raw JSON so they can be schema-checked before decoding.
type SubmitExportRequest struct {
	Manuscript *manuscript.Manuscript `json:"manuscript"`
	Settings   json.RawMessage        `json:"settings,omitempty"`
	Formats    []string               `json:"formats"`
}

// SubmitExportResponse is the response for submitting an export job.
type SubmitExportResponse struct {
	ID       string   `json:"id"`
	Warnings []string `json:"warnings,omitempty"`
}

// SubmitExportEndpoint handles POST /api/exports.
type SubmitExportEndpoint struct{}

func (e *SubmitExportEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/exports", e.handler
}

func (e *SubmitExportEndpoint) RequiresInit() bool { return true }

func (e *SubmitExportEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req SubmitExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Manuscript == nil {
		writeError(w, http.StatusBadRequest, "manuscript is required")
		return
	}
	if err := req.Manuscript.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	warnings, overrides, err := decodeSettings(req.Settings)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	formats, err := parseFormats(req.Formats)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	svc := svcctx.ExportsFrom(r.Context())
	if svc == nil {
		writeError(w, http.StatusServiceUnavailable, "export service not initialized")
		return
	}

	id, err := svc.Submit(export.Request{
		Manuscript: req.Manuscript,
		Settings:   overrides,
		Formats:    formats,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusAccepted, SubmitExportResponse{ID: id, Warnings: warnings})
}

func (e *SubmitExportEndpoint) Command(getServerURL func() string) *cobra.Command {
	var manuscriptPath, settingsPath string
	var formats []string
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit an export job",
		RunE: func(cmd *cobra.Command, args []string) error {
			if manuscriptPath == "" {
				return fmt.Errorf("--manuscript is required")
			}
			m, err := manuscript.Load(manuscriptPath)
			if err != nil {
				return err
			}
			req := SubmitExportRequest{Manuscript: m, Formats: formats}
			if settingsPath != "" {
				raw, err := readSettingsFile(settingsPath)
				if err != nil {
					return err
				}
				req.Settings = raw
			}

			client := api.NewClient(getServerURL())
			var resp SubmitExportResponse
			if err := client.Post(cmd.Context(), "/api/exports", req, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&manuscriptPath, "manuscript", "", "Manuscript file or chapter directory (required)")
	cmd.Flags().StringVar(&settingsPath, "settings", "", "JSON settings overrides file")
	cmd.Flags().StringSliceVar(&formats, "formats", []string{"pdf", "epub"}, "Output formats")
	return cmd
}

// ListExportsResponse is the response for listing export jobs.
type ListExportsResponse struct {
	Jobs []*export.Record `json:"jobs"`
}

// ListExportsEndpoint handles GET /api/exports.
type ListExportsEndpoint struct{}

func (e *ListExportsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/exports", e.handler
}

func (e *ListExportsEndpoint) RequiresInit() bool { return true }

func (e *ListExportsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	svc := svcctx.ExportsFrom(r.Context())
	if svc == nil {
		writeError(w, http.StatusServiceUnavailable, "export service not initialized")
		return
	}

	jobs := svc.List()
	if status := export.Status(r.URL.Query().Get("status")); status != "" {
		filtered := jobs[:0]
		for _, rec := range jobs {
			if rec.Status == status {
				filtered = append(filtered, rec)
			}
		}
		jobs = filtered
	}

	writeJSON(w, http.StatusOK, ListExportsResponse{Jobs: jobs})
}

func (e *ListExportsEndpoint) Command(getServerURL func() string) *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List export jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/exports"
			if status != "" {
				path += "?status=" + status
			}
			client := api.NewClient(getServerURL())
			var resp ListExportsResponse
			if err := client.Get(cmd.Context(), path, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "Filter by status")
	return cmd
}

// ExportJobResponse is one export job with rendered artifact sizes.
type ExportJobResponse struct {
	*export.Record
	Outputs map[render.Format]int `json:"outputs,omitempty"`
}

// GetExportEndpoint handles GET /api/exports/{id}.
type GetExportEndpoint struct{}

func (e *GetExportEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/exports/{id}", e.handler
}

func (e *GetExportEndpoint) RequiresInit() bool { return true }

func (e *GetExportEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	svc := svcctx.ExportsFrom(r.Context())
	if svc == nil {
		writeError(w, http.StatusServiceUnavailable, "export service not initialized")
		return
	}

	rec, err := svc.Get(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ExportJobResponse{Record: rec, Outputs: rec.OutputSizes()})
}

func (e *GetExportEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get an export job by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp ExportJobResponse
			if err := client.Get(cmd.Context(), "/api/exports/"+args[0], &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}

// CancelExportEndpoint handles POST /api/exports/{id}/cancel.
type CancelExportEndpoint struct{}

func (e *CancelExportEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/exports/{id}/cancel", e.handler
}

func (e *CancelExportEndpoint) RequiresInit() bool { return true }

func (e *CancelExportEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	svc := svcctx.ExportsFrom(r.Context())
	if svc == nil {
		writeError(w, http.StatusServiceUnavailable, "export service not initialized")
		return
	}

	id := r.PathValue("id")
	if err := svc.Cancel(id); err != nil {
		status := http.StatusConflict
		if err == export.ErrJobNotFound {
			status = http.StatusNotFound
		}
		writeError(w, status, err.Error())
		return
	}

	rec, err := svc.Get(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (e *CancelExportEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a running export job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var rec export.Record
			if err := client.Post(cmd.Context(), "/api/exports/"+args[0]+"/cancel", nil, &rec); err != nil {
				return err
			}
			return api.Output(rec)
		},
	}
}

// DownloadExportEndpoint handles GET /api/exports/{id}/{format}.
// It serves the rendered artifact bytes, not JSON.
type DownloadExportEndpoint struct{}

func (e *DownloadExportEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/exports/{id}/{format}", e.handler
}

func (e *DownloadExportEndpoint) RequiresInit() bool { return true }

func (e *DownloadExportEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	svc := svcctx.ExportsFrom(r.Context())
	if svc == nil {
		writeError(w, http.StatusServiceUnavailable, "export service not initialized")
		return
	}

	format := render.Format(r.PathValue("format"))
	data, err := svc.Result(r.PathValue("id"), format)
	if err != nil {
		status := http.StatusConflict
		if err == export.ErrJobNotFound {
			status = http.StatusNotFound
		}
		writeError(w, status, err.Error())
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (e *DownloadExportEndpoint) Command(getServerURL func() string) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "download <id> <format>",
		Short: "Download a rendered artifact from a completed export",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			data, err := client.GetRaw(cmd.Context(), "/api/exports/"+args[0]+"/"+args[1])
			if err != nil {
				return err
			}
			if out == "" {
				out = args[0] + "." + render.Format(args[1]).Extension()
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("failed to write artifact: %w", err)
			}
			fmt.Printf("Wrote %s (%d bytes)\n", out, len(data))
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "Output file path")
	return cmd
}

// parseFormats converts format strings to render formats, rejecting blanks.
func parseFormats(in []string) ([]render.Format, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("at least one format is required")
	}
	out := make([]render.Format, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, render.Format(s))
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("at least one format is required")
	}
	return out, nil
}

// readSettingsFile reads a JSON settings overrides file for CLI commands.
func readSettingsFile(path string) (json.RawMessage, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	return raw, nil
}

// decodeSettings schema-checks raw settings overrides and decodes them.
// Schema violations are warnings because resolution clamps bad values.
func decodeSettings(raw json.RawMessage) ([]string, *settings.Overrides, error) {
	if len(raw) == 0 {
		return nil, nil, nil
	}
	warnings, err := schema.ValidateSettings(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid settings: %w", err)
	}
	var overrides settings.Overrides
	if err := json.Unmarshal(raw, &overrides); err != nil {
		return nil, nil, fmt.Errorf("invalid settings: %w", err)
	}
	return warnings, &overrides, nil
}
