package endpoints

import (
	"github.com/hadithlab/rawi/internal/api"
)

// Config holds dependencies needed by some endpoints.
type Config struct {
	SwaggerSpecPath string
}

// All returns all endpoint instances.
func All(cfg Config) []api.Endpoint {
	return []api.Endpoint{
		// System endpoints
		&HealthEndpoint{},
		&StatusEndpoint{},
		&SwaggerEndpoint{SpecPath: cfg.SwaggerSpecPath},

		// Collection endpoints
		&ListCollectionsEndpoint{},
		&GetCollectionEndpoint{},
		&GetExtractedEndpoint{},
		&StatsEndpoint{},

		// Processing endpoints
		&IngestEndpoint{},
		&ExtractEndpoint{},
		&ExtractAllEndpoint{},
		&RefineEndpoint{},
	}
}
