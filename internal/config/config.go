// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// manifest sync client. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the list of remote
	// sources and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the committed-token database and the
	// local sync root.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the address of the local control API.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the manifest server address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background sync settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Sources lists the remote source identifiers whose manifests are kept
	// in sync.
	// Env: APP_SOURCES (comma separated)
	Sources []string `env:"SOURCES" envSeparator:","`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// RunOnce makes the client run a single pass over every source and exit
	// instead of starting the background job.
	// Env: APP_RUN_ONCE
	RunOnce bool `env:"RUN_ONCE"`
}

// Storage groups the configuration for all storage backends used by the
// client.
type Storage struct {
	// DB holds the committed-token database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the local sync root settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the committed-token database.
type DB struct {
	// DSN is either a SQLite file path (client default) or a PostgreSQL
	// connection URL starting with "postgres://" or "postgresql://".
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds local file-system settings.
type Files struct {
	// RootDir is the directory manifest files are materialised under. One
	// subdirectory per source is created below it.
	// Env: STORAGE_FILES_ROOT_DIR
	RootDir string `env:"ROOT_DIR"`
}

// Server holds network settings for the local control API.
type Server struct {
	// HTTPAddress is the TCP address on which the control API listens,
	// in "host:port" format (e.g. "127.0.0.1:8081"). Empty disables the API.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// Adapter holds configuration of the manifest server connection.
type Adapter struct {
	// HTTPAddress is the base URL of the manifest server
	// (e.g. "https://sync.example.org"). A missing scheme defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every manifest fetch and file download
	// (e.g. "30s", "1m"). A timeout fails the step it occurred in.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is the period of the background sync job.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// Parallelism bounds how many entries of one manifest are applied
	// concurrently. Zero or one means sequential.
	// Env: WORKERS_PARALLELISM
	Parallelism int `env:"PARALLELISM"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
