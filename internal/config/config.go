// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// StructuredConfig is the top-level configuration container for the
// go-note-vault application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// AI holds settings for the external AI gateway used by the
	// grammar/insight/translation features.
	AI AI `envPrefix:"AI_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the persistence backends used by the
// application.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite database file path used to open the connection
	// (e.g. "~/.notevault/notes.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// AI holds configuration for the external AI/LLM gateway. The gateway is an
// outbound-only collaborator: the application owns no inbound network
// protocol.
type AI struct {
	// BaseURL is the HTTP endpoint of the AI gateway
	// (e.g. "https://ai.example.com").
	// Env: AI_ADDRESS
	BaseURL string `env:"ADDRESS"`

	// APIKey authenticates outbound requests to the AI gateway.
	// Must be kept confidential.
	// Env: AI_API_KEY
	APIKey string `env:"API_KEY"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// AI request (e.g. "30s", "1m").
	// Env: AI_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Disabled turns all AI features off. The rest of the application,
	// including encryption, works fully offline.
	// Env: AI_DISABLED
	Disabled bool `env:"DISABLED"`
}

// GetConfig loads, merges, and validates the application configuration from
// all available sources in the following priority order (earlier sources
// win; later sources only fill fields still unset):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
