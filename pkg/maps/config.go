package maps

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every variable read by ConfigFromEnv.
const EnvPrefix = "GOOGLE_MAPS"

// ConfigFromEnv reads a ClientConfig from GOOGLE_MAPS_API_KEY,
// GOOGLE_MAPS_BASE_URL, GOOGLE_MAPS_ROADS_BASE_URL, GOOGLE_MAPS_TIMEOUT,
// GOOGLE_MAPS_MAX_RETRIES, GOOGLE_MAPS_REQUESTS_PER_SECOND and
// GOOGLE_MAPS_BURST. Unset variables leave the zero value, which NewClient
// replaces with its defaults. Fields that are not plain values (transport,
// logger, providers) must be set by the caller afterwards.
func ConfigFromEnv() (ClientConfig, error) {
	var cfg ClientConfig
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return ClientConfig{}, fmt.Errorf("loading google maps config: %w", err)
	}
	return cfg, nil
}
