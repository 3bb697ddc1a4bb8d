// Package source loads dataset documents for the comparison pipeline. Loaders
// read raw bytes from a directory or an HTTP base URL; Tolerant turns any
// load or parse failure into an empty document so the pipeline never sees a
// low-level error; Pair fetches the two sides of a comparison in parallel.
package source

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable read by LoadSettings.
const EnvPrefix = "COLORCOMPARE"

// Settings holds process-level tuning read from the environment.
type Settings struct {
	HTTPTimeout  time.Duration `envconfig:"HTTP_TIMEOUT" default:"20s"`
	FetchWorkers int           `envconfig:"FETCH_WORKERS" default:"2"`
	UserAgent    string        `envconfig:"USER_AGENT" default:"colorcompare"`
	MaxBodyBytes int64         `envconfig:"MAX_BODY_BYTES" default:"67108864"`
}

// LoadSettings reads Settings from COLORCOMPARE_* environment variables.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := envconfig.Process(EnvPrefix, &s); err != nil {
		return Settings{}, fmt.Errorf("reading environment: %w", err)
	}
	if s.FetchWorkers < 1 {
		s.FetchWorkers = 1
	}
	return s, nil
}
