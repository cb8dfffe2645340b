// Package fabricsdk holds the helpers shared by the Fabric CA and ledger adapters:
// opening the SDK from a connection profile and reading values out of that profile.
package fabricsdk

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hyperledger/fabric-sdk-go/pkg/common/providers/core"
	"github.com/hyperledger/fabric-sdk-go/pkg/core/config"
	"github.com/hyperledger/fabric-sdk-go/pkg/fabsdk"
)

// Open creates a Fabric SDK instance from the connection profile at path.
// The caller owns the returned SDK and must Close it.
func Open(path string) (*fabsdk.FabricSDK, error) {
	if path == "" {
		return nil, errors.New("connection profile path is empty")
	}
	sdk, err := fabsdk.New(config.FromFile(path))
	if err != nil {
		return nil, fmt.Errorf("failed to load connection profile %s: %w", path, err)
	}
	return sdk, nil
}

// Profile gives read access to the parts of a connection profile the adapters need.
type Profile struct {
	backends []core.ConfigBackend
}

// NewProfile wraps one or more config backends. Lookups return the first hit.
func NewProfile(backends ...core.ConfigBackend) *Profile {
	return &Profile{backends: backends}
}

// ProfileFromSDK reads the profile the SDK was created with.
func ProfileFromSDK(sdk *fabsdk.FabricSDK) (*Profile, error) {
	backend, err := sdk.Config()
	if err != nil {
		return nil, fmt.Errorf("failed to read sdk config: %w", err)
	}
	return NewProfile(backend), nil
}

// LoadProfile parses the connection profile at path without starting the SDK.
func LoadProfile(path string) (*Profile, error) {
	backends, err := config.FromFile(path)()
	if err != nil {
		return nil, fmt.Errorf("failed to load connection profile %s: %w", path, err)
	}
	return NewProfile(backends...), nil
}

func (p *Profile) lookup(key string) (interface{}, bool) {
	for _, b := range p.backends {
		if v, ok := b.Lookup(key); ok {
			return v, true
		}
	}
	return nil, false
}

// section returns the named child of a top-level map. Entity names such as
// "ca.org1.example.com" contain dots, so they cannot be part of a lookup key.
func (p *Profile) section(top, name string) map[string]interface{} {
	raw, ok := p.lookup(top)
	if !ok {
		return nil
	}
	entries, ok := raw.(map[string]interface{})
	if !ok {
		return nil
	}
	for k, v := range entries {
		if strings.EqualFold(k, name) {
			m, _ := v.(map[string]interface{})
			return m
		}
	}
	return nil
}

// OrgPeers returns the peers declared for org, in profile order.
func (p *Profile) OrgPeers(org string) []string {
	raw, ok := p.section("organizations", org)["peers"].([]interface{})
	if !ok {
		return nil
	}
	peers := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			peers = append(peers, s)
		}
	}
	return peers
}

// CARegistrar returns the registrar enrollment id configured for caName, or "".
func (p *Profile) CARegistrar(caName string) string {
	registrar, ok := p.section("certificateAuthorities", caName)["registrar"].(map[string]interface{})
	if !ok {
		return ""
	}
	for k, v := range registrar {
		if strings.EqualFold(k, "enrollId") {
			s, _ := v.(string)
			return s
		}
	}
	return ""
}

// KeystorePath returns client.credentialStore.cryptoStore.path, or "" when unset.
func (p *Profile) KeystorePath() string {
	v, ok := p.lookup("client.credentialStore.cryptoStore.path")
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}
