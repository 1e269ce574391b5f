package config_test

import (
	"os"
	"testing"

	"hyperkb/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("ENVIRONMENT")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("MAX_CANDIDATE_NETWORKS")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10000, cfg.MaxCandidateNetworks)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnv(t *testing.T) {
	os.Setenv("ENVIRONMENT", "production")
	os.Setenv("LOG_LEVEL", "warn")
	os.Setenv("MAX_CANDIDATE_NETWORKS", "5")
	defer func() {
		os.Unsetenv("ENVIRONMENT")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("MAX_CANDIDATE_NETWORKS")
	}()

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 5, cfg.MaxCandidateNetworks)
	assert.True(t, cfg.IsProduction())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr bool
	}{
		{
			name: "valid",
			cfg: config.Config{
				Environment:          "development",
				LogLevel:             "info",
				MaxCandidateNetworks: 100,
			},
			wantErr: false,
		},
		{
			name: "bad environment",
			cfg: config.Config{
				Environment:          "staging",
				LogLevel:             "info",
				MaxCandidateNetworks: 100,
			},
			wantErr: true,
		},
		{
			name: "bad log level",
			cfg: config.Config{
				Environment:          "development",
				LogLevel:             "trace",
				MaxCandidateNetworks: 100,
			},
			wantErr: true,
		},
		{
			name: "zero candidate ceiling",
			cfg: config.Config{
				Environment:          "development",
				LogLevel:             "info",
				MaxCandidateNetworks: 0,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
