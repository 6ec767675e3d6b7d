// SPDX-License-Identifier: MIT

package server

import (
	"fmt"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/katalvlaran/checkout/checkout"
)

// Config holds the listener settings and the defaults applied to requests
// that omit them.
type Config struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration

	// PublicURL is encoded by /api/qr. Empty means "http://<request host>/".
	PublicURL string

	Preferences checkout.Preferences
	MaxDarts    int
}

// DefaultConfig returns a config listening on :8080 with the default
// preferences and a three-dart budget.
func DefaultConfig() Config {
	return Config{
		Addr:              ":8080",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   10 * time.Second,
		Preferences:       checkout.DefaultPreferences(),
		MaxDarts:          checkout.MaxDarts,
	}
}

// Validate checks that c is internally consistent.
func (c Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.Addr) == "" {
		errs = append(errs, "addr must not be empty")
	}
	if c.ReadHeaderTimeout <= 0 {
		errs = append(errs, "read_header_timeout must be > 0")
	}
	if c.ShutdownTimeout < 0 {
		errs = append(errs, "shutdown_timeout must be >= 0")
	}
	if c.MaxDarts < 1 || c.MaxDarts > checkout.MaxDarts {
		errs = append(errs, fmt.Sprintf("max_darts must be between 1 and %d", checkout.MaxDarts))
	}
	if err := c.Preferences.Validate(); err != nil {
		errs = append(errs, "preferences: "+err.Error())
	}

	if len(errs) > 0 {
		return eris.Errorf("server: config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
