// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// settings-sync application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the auth token and the
	// application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for all persistence backends: the client
	// data directory and the server resource database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the reference
	// store server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds configuration for the remote store client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sync holds background synchronization job settings.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// AuthToken is the bearer token presented to (client side) or expected
	// by (server side) the resource store.
	// Env: APP_AUTH_TOKEN
	AuthToken string `env:"AUTH_TOKEN"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DataDir is the client-side directory holding checkpoints, previews,
	// backups, and the synchronized resource files.
	// Env: STORAGE_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// DB holds the server resource database settings.
	DB DB `envPrefix:"DB_"`
}

// DB contains the server-side SQLite connection settings.
type DB struct {
	// DSN is the SQLite connection string for the resource store.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings for the store server.
type Server struct {
	// HTTPAddress is the TCP address on which the server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter holds configuration for the outbound remote store client.
type Adapter struct {
	// StoreAddress is the base URL of the remote resource store.
	// Env: ADAPTER_STORE_ADDRESS
	StoreAddress string `env:"STORE_ADDRESS"`

	// RequestTimeout is the default timeout for outbound requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync holds background synchronization job settings.
type Sync struct {
	// Interval defines how often the periodic sync job runs.
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`
}

func (c *StructuredConfig) validate() error {
	// Both binaries share the merged config; per-binary requirements are
	// validated in the client/server views below.
	return nil
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// StoreAddress is the base URL of the remote resource store.
	StoreAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DataDir is the root directory for all client-side durable state.
	DataDir string
}

// ClientConfig is the client-specific view assembled from [StructuredConfig].
type ClientConfig struct {
	// AuthToken is the bearer token used against the store.
	AuthToken string
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// SyncInterval defines how often the background sync job runs.
	SyncInterval time.Duration
}

func (c *ClientConfig) validate() error {
	if c.Adapter.StoreAddress == "" {
		return errors.New("client config: store address is required")
	}
	if c.Storage.DataDir == "" {
		return errors.New("client config: data dir is required")
	}
	return nil
}

// ServerConfig is the server-specific view assembled from [StructuredConfig].
type ServerConfig struct {
	// HTTPAddress is the listen address of the store server.
	HTTPAddress string
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration
	// AuthToken is the bearer token expected from clients.
	AuthToken string
	// DSN is the SQLite connection string for the resource store.
	DSN string
}

func (c *ServerConfig) validate() error {
	if c.HTTPAddress == "" {
		return errors.New("server config: listen address is required")
	}
	if c.DSN == "" {
		return errors.New("server config: database DSN is required")
	}
	return nil
}
