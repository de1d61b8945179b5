package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/bookpress/internal/api"
	"github.com/jackzampolin/bookpress/internal/estimate"
	"github.com/jackzampolin/bookpress/internal/manuscript"
	"github.com/jackzampolin/bookpress/internal/sanitize"
	"github.com/jackzampolin/bookpress/internal/settings"
)

// EstimateRequest is the request body for page count estimation.
type EstimateRequest struct {
	Manuscript *manuscript.Manuscript `json:"manuscript"`
	Settings   json.RawMessage        `json:"settings,omitempty"`
}

// ChapterEstimate is the predicted extent of one chapter.
type ChapterEstimate struct {
	Number    int    `json:"number"`
	Title     string `json:"title"`
	StartPage int    `json:"startPage"`
	Pages     int    `json:"pages"`
}

// EstimateResponse is the response for page count estimation.
type EstimateResponse struct {
	CharsPerPage          int               `json:"charsPerPage"`
	Chapters              []ChapterEstimate `json:"chapters"`
	BibliographyStartPage int               `json:"bibliographyStartPage"`
	Warnings              []string          `json:"warnings,omitempty"`
}

// EstimateEndpoint handles POST /api/estimate. Estimates run against
// sanitized chapter content so they match what the layout engine paginates.
type EstimateEndpoint struct{}

func (e *EstimateEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/estimate", e.handler
}

func (e *EstimateEndpoint) RequiresInit() bool { return false }

func (e *EstimateEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req EstimateRequest
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

	writeJSON(w, http.StatusOK, Estimate(req.Manuscript, settings.Resolve(overrides), warnings))
}

// Estimate computes the page count prediction for a manuscript under
// resolved settings. Shared by the HTTP handler and the offline CLI command.
func Estimate(m *manuscript.Manuscript, s settings.Settings, warnings []string) EstimateResponse {
	cleaned := make([]string, len(m.Chapters))
	for i, ch := range m.Chapters {
		cleaned[i] = sanitize.Sanitize(ch.Content, ch.Title, ch.Number)
	}

	cpp := estimate.CharsPerPage(s)
	starts := estimate.ChapterPageNumbers(cleaned, s)

	resp := EstimateResponse{
		CharsPerPage:          cpp,
		Chapters:              make([]ChapterEstimate, len(m.Chapters)),
		BibliographyStartPage: estimate.BibliographyStartPage(cleaned, s),
		Warnings:              warnings,
	}
	for i, ch := range m.Chapters {
		resp.Chapters[i] = ChapterEstimate{
			Number:    ch.Number,
			Title:     ch.Title,
			StartPage: starts[i],
			Pages:     estimate.ChapterPages(cleaned[i], cpp),
		}
	}
	return resp
}

func (e *EstimateEndpoint) Command(getServerURL func() string) *cobra.Command {
	var manuscriptPath, settingsPath string
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate page counts for a manuscript",
		RunE: func(cmd *cobra.Command, args []string) error {
			if manuscriptPath == "" {
				return fmt.Errorf("--manuscript is required")
			}
			m, err := manuscript.Load(manuscriptPath)
			if err != nil {
				return err
			}
			req := EstimateRequest{Manuscript: m}
			if settingsPath != "" {
				raw, err := readSettingsFile(settingsPath)
				if err != nil {
					return err
				}
				req.Settings = raw
			}

			client := api.NewClient(getServerURL())
			var resp EstimateResponse
			if err := client.Post(cmd.Context(), "/api/estimate", req, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&manuscriptPath, "manuscript", "", "Manuscript file or chapter directory (required)")
	cmd.Flags().StringVar(&settingsPath, "settings", "", "JSON settings overrides file")
	return cmd
}
