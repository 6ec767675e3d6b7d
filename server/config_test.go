package server_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/checkout/checkout"
	"github.com/katalvlaran/checkout/server"
)

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, server.DefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*server.Config)
		want   string
	}{
		{"empty addr", func(c *server.Config) { c.Addr = " " }, "addr must not be empty"},
		{"no header timeout", func(c *server.Config) { c.ReadHeaderTimeout = 0 }, "read_header_timeout must be > 0"},
		{"negative shutdown", func(c *server.Config) { c.ShutdownTimeout = -1 }, "shutdown_timeout must be >= 0"},
		{"zero darts", func(c *server.Config) { c.MaxDarts = 0 }, "max_darts must be between 1 and 3"},
		{"four darts", func(c *server.Config) { c.MaxDarts = 4 }, "max_darts must be between 1 and 3"},
		{"bad double", func(c *server.Config) {
			c.Preferences = checkout.Preferences{FavoriteDoubles: []string{"T20"}}
		}, "preferences:"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := server.DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "server: config validation failed")
			assert.Contains(t, err.Error(), tc.want)

			_, err = server.New(cfg, nil)
			assert.Error(t, err)
		})
	}
}

func TestConfig_ValidateCollectsAll(t *testing.T) {
	cfg := server.DefaultConfig()
	cfg.Addr = ""
	cfg.MaxDarts = 9
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "addr must not be empty; max_darts")
}
