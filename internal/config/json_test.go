package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	payload := `{
		"app": {"version": "1.2.3"},
		"storage": {"db": {"dsn": "postgres://localhost/homestock"}},
		"server": {"http_address": "localhost:9090", "request_timeout": "30s"},
		"adapter": {"server_url": "http://sync.example.com", "request_timeout": "10s"},
		"client": {"db_path": "/tmp/homestock.db"},
		"workers": {"status_poll_interval": "15m"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "postgres://localhost/homestock", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://sync.example.com", cfg.Adapter.ServerURL)
	assert.Equal(t, "/tmp/homestock.db", cfg.Client.DBPath)
	assert.Equal(t, 15*time.Minute, cfg.Workers.StatusPollInterval)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	require.Error(t, err)
}

func TestParseJSON_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestDuration_UnmarshalVariants(t *testing.T) {
	var d Duration

	require.NoError(t, d.UnmarshalJSON([]byte(`"45s"`)))
	assert.Equal(t, Duration(45*time.Second), d)

	require.NoError(t, d.UnmarshalJSON([]byte(`1000000000`)))
	assert.Equal(t, Duration(time.Second), d)

	require.Error(t, d.UnmarshalJSON([]byte(`"bogus"`)))
}
