package ledger

import (
	"errors"
	"time"

	"github.com/creasty/defaults"
)

// Config contains the settings required to open connections to a Fabric network.
type Config struct {
	ConnectionProfile string
	Org               string

	// ExecuteTimeout bounds a submit when the caller's context has no deadline.
	ExecuteTimeout time.Duration `default:"60s"`
	// QueryTimeout bounds an evaluate when the caller's context has no deadline.
	QueryTimeout time.Duration `default:"30s"`
}

func (c *Config) validate() error {
	if c == nil {
		return errors.New("nil config")
	}
	if c.ConnectionProfile == "" {
		return errors.New("connection_profile is required")
	}
	if c.Org == "" {
		return errors.New("org is required")
	}
	return nil
}

func (c *Config) setDefaults() error {
	return defaults.Set(c)
}
