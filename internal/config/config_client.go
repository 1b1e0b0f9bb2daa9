package config

import (
	"fmt"
	"time"
)

// Client-side defaults applied when no source provides a value.
const (
	defaultServerURL      = "http://localhost:8080"
	defaultClientDBPath   = "homestock.db"
	defaultRequestTimeout = 15 * time.Second

	// defaultStatusPollInterval is how often the remote-status poller
	// checks for newer remote data while sync is configured.
	defaultStatusPollInterval = 15 * time.Minute
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerURL is the blob server base URL used by the client.
	ServerURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path (or ":memory:") used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// StatusPollInterval defines how often the remote status poller runs.
	StatusPollInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration, applying client defaults for any
// unset field.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			ServerURL:      cfg.Adapter.ServerURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Client.DBPath,
			},
		},
		Workers: ClientWorkers{
			StatusPollInterval: cfg.Workers.StatusPollInterval,
		},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.ServerURL == "" {
		cfg.Adapter.ServerURL = defaultServerURL
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultClientDBPath
	}
	if cfg.Workers.StatusPollInterval <= 0 {
		cfg.Workers.StatusPollInterval = defaultStatusPollInterval
	}
}
