package config

import (
	"time"
)

// Default values applied after all sources are merged. Domain and subdomain
// mirror the OTM installation the original frontend was built against.
const (
	DefaultHTTPAddress    = ":8000"
	DefaultRequestTimeout = 30 * time.Second
	DefaultOTMTimeout     = 30 * time.Second
	DefaultOTMDomain      = "KRAFT"
	DefaultOTMSubdomain   = "KFNA"
	DefaultStaticDir      = "static"
)

// StructuredConfig is the top-level configuration container for the
// investigator service. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string and
	// the static frontend directory.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the inbound
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// OTM holds connectivity settings for the outbound Oracle
	// Transportation Management REST API.
	OTM OTM `envPrefix:"OTM_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged under the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// StaticDir is the directory the frontend assets are served from.
	// When the directory does not exist, the root endpoint falls back to a
	// JSON banner.
	// Env: APP_STATIC_DIR
	StaticDir string `env:"STATIC_DIR"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// OTM holds connectivity settings for the external OTM REST API. BaseURL,
// Username, and Password are required; everything else has a default.
type OTM struct {
	// BaseURL is the root of the OTM installation, without the
	// /logisticsRestApi suffix (e.g. "https://otm.example.com").
	// Env: OTM_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Username and Password are the OTM basic-auth credentials attached to
	// every outbound request.
	// Env: OTM_USERNAME / OTM_PASSWORD
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`

	// Domain is the OTM domain path segment of every resource URL.
	// Env: OTM_DOMAIN
	Domain string `env:"DOMAIN"`

	// Subdomain qualifies saved-query names and shipment XIDs
	// (e.g. "KFNA" → "KFNA.FP_ORD_DIRECT").
	// Env: OTM_SUBDOMAIN
	Subdomain string `env:"SUBDOMAIN"`

	// RequestTimeout bounds each outbound OTM call. A timed-out call is
	// treated the same as a network failure, never retried here.
	// Env: OTM_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// InsecureSkipVerify disables TLS certificate validation on outbound
	// calls. OTM test instances commonly run with self-signed certificates.
	// Env: OTM_INSECURE_SKIP_VERIFY
	InsecureSkipVerify bool `env:"INSECURE_SKIP_VERIFY"`
}

// GetStructuredConfig loads, merges, and validates the service
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
