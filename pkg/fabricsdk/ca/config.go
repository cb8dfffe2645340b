package ca

import (
	"errors"

	"github.com/creasty/defaults"
)

// Config contains the settings required to talk to one CA of one organisation.
type Config struct {
	ConnectionProfile string
	Org               string
	CAName            string

	// IdentityType is the Fabric identity type assigned on registration.
	IdentityType string `default:"client"`

	// KeystorePath overrides client.credentialStore.cryptoStore.path from the profile.
	KeystorePath string
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
	if c.CAName == "" {
		return errors.New("ca_name is required")
	}
	return nil
}

func (c *Config) setDefaults() error {
	return defaults.Set(c)
}
