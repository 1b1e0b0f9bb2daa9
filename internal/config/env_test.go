package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/homestock")
	t.Setenv("SERVER_ADDRESS", "localhost:8081")
	t.Setenv("ADAPTER_SERVER_URL", "http://sync.example.com")
	t.Setenv("CLIENT_DB_PATH", "/tmp/stock.db")
	t.Setenv("WORKERS_STATUS_POLL_INTERVAL", "5m")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "postgres://localhost/homestock", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, "http://sync.example.com", cfg.Adapter.ServerURL)
	assert.Equal(t, "/tmp/stock.db", cfg.Client.DBPath)
	assert.Equal(t, 5*time.Minute, cfg.Workers.StatusPollInterval)
}

func TestParseEnv_Empty(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		want    string
	}{
		{name: "localhost", input: "localhost:8080", want: "localhost:8080"},
		{name: "ip", input: "127.0.0.1:9000", want: "127.0.0.1:9000"},
		{name: "no port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:http", wantErr: true},
		{name: "negative port", input: "localhost:-1", wantErr: true},
		{name: "bad host", input: "not an ip:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}
