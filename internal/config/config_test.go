package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"log_level": "debug",
		"log_format": "pretty",
		"max_input_bytes": 2048,
		"concurrency": 8,
		"validate_schema": true,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "pretty", cfg.LogFormat)
	assert.Equal(t, 2048, cfg.MaxInputBytes)
	assert.Equal(t, 8, cfg.Concurrency)
	assert.True(t, cfg.ValidateSchema)
	assert.True(t, cfg.Verbose)
	assert.Zero(t, cfg.Port)
}

func TestLoadConfig_RelativePath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"port": 9090}`), 0644))
	t.Chdir(dir)

	cfg, err := LoadConfig("config.json")
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644))

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
		errMsg  string
	}{
		{name: "empty", cfg: Config{}},
		{name: "defaults", cfg: Defaults()},
		{name: "unknown level", cfg: Config{LogLevel: "loud"}, wantErr: true, errMsg: "log_level"},
		{name: "unknown format", cfg: Config{LogFormat: "xml"}, wantErr: true, errMsg: "log_format"},
		{name: "negative bytes", cfg: Config{MaxInputBytes: -1}, wantErr: true, errMsg: "max_input_bytes"},
		{name: "negative concurrency", cfg: Config{Concurrency: -2}, wantErr: true, errMsg: "concurrency"},
		{name: "port too large", cfg: Config{Port: 70000}, wantErr: true, errMsg: "port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{LogLevel: "warn", Concurrency: 2, Verbose: true}

	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, "warn", merged.LogLevel)
	assert.Equal(t, "json", merged.LogFormat)
	assert.Equal(t, 10<<20, merged.MaxInputBytes)
	assert.Equal(t, 2, merged.Concurrency)
	assert.Equal(t, 8080, merged.Port)
	assert.True(t, merged.Verbose)
	assert.Equal(t, "warn", cfg.LogLevel, "receiver is not modified")
	assert.Zero(t, cfg.Port)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvLogLevel:  "debug",
		EnvLogFormat: "pretty",
		EnvPort:      "3000",
	}
	cfg := Defaults()

	require.NoError(t, cfg.ApplyEnv(func(k string) string { return env[k] }))
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "pretty", cfg.LogFormat)
	assert.Equal(t, 3000, cfg.Port)
}

func TestApplyEnv_Unset(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.ApplyEnv(func(string) string { return "" }))
	assert.Equal(t, Defaults(), cfg)
}

func TestApplyEnv_BadPort(t *testing.T) {
	cfg := Defaults()
	err := cfg.ApplyEnv(func(k string) string {
		if k == EnvPort {
			return "eighty"
		}
		return ""
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid PORT")
}
