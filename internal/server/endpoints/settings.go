package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/bookpress/internal/api"
	"github.com/jackzampolin/bookpress/internal/settings"
)

// ResolveSettingsRequest is the request body for settings resolution.
type ResolveSettingsRequest struct {
	Settings json.RawMessage `json:"settings,omitempty"`
}

// ResolveSettingsResponse carries the fully resolved settings plus any
// schema warnings about the submitted overrides.
type ResolveSettingsResponse struct {
	Settings settings.Settings `json:"settings"`
	Warnings []string          `json:"warnings,omitempty"`
}

// ResolveSettingsEndpoint handles POST /api/settings/resolve. It shows a
// client exactly what a partial overrides document resolves to, including
// clamped values, without running an export.
type ResolveSettingsEndpoint struct{}

func (e *ResolveSettingsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/settings/resolve", e.handler
}

func (e *ResolveSettingsEndpoint) RequiresInit() bool { return false }

func (e *ResolveSettingsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req ResolveSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	warnings, overrides, err := decodeSettings(req.Settings)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ResolveSettingsResponse{
		Settings: settings.Resolve(overrides),
		Warnings: warnings,
	})
}

func (e *ResolveSettingsEndpoint) Command(getServerURL func() string) *cobra.Command {
	var settingsPath string
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve settings overrides into full settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := ResolveSettingsRequest{}
			if settingsPath != "" {
				raw, err := readSettingsFile(settingsPath)
				if err != nil {
					return err
				}
				req.Settings = raw
			}

			client := api.NewClient(getServerURL())
			var resp ResolveSettingsResponse
			if err := client.Post(cmd.Context(), "/api/settings/resolve", req, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&settingsPath, "settings", "", "JSON settings overrides file")
	return cmd
}
