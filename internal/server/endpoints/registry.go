package endpoints

import (
	"github.com/jackzampolin/bookpress/internal/api"
)

// All returns all endpoint instances.
func All() []api.Endpoint {
	return []api.Endpoint{
		// Health endpoints
		&HealthEndpoint{},
		&StatusEndpoint{},

		// Export job endpoints
		&SubmitExportEndpoint{},
		&ListExportsEndpoint{},
		&GetExportEndpoint{},
		&CancelExportEndpoint{},
		&DownloadExportEndpoint{},

		// Estimation and settings endpoints
		&EstimateEndpoint{},
		&ResolveSettingsEndpoint{},
	}
}
