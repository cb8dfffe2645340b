package fabricsdk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const testProfile = `
name: test-network-org1
version: 1.0.0
client:
  organization: Org1
  credentialStore:
    path: /tmp/state-store
    cryptoStore:
      path: /tmp/msp
organizations:
  Org1:
    mspid: Org1MSP
    peers:
      - peer0.org1.example.com
      - peer1.org1.example.com
    certificateAuthorities:
      - ca.org1.example.com
certificateAuthorities:
  ca.org1.example.com:
    url: https://localhost:7054
    caName: ca-org1
    registrar:
      enrollId: admin
      enrollSecret: adminpw
`

func writeProfile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "connection-org1.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testProfile), 0o600))
	return path
}

func TestProfile_Lookups(t *testing.T) {
	p, err := LoadProfile(writeProfile(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"peer0.org1.example.com", "peer1.org1.example.com"}, p.OrgPeers("Org1"))
	assert.Empty(t, p.OrgPeers("Org2"))
	assert.Equal(t, "admin", p.CARegistrar("ca.org1.example.com"))
	assert.Equal(t, "", p.CARegistrar("ca.org2.example.com"))
	assert.Equal(t, "/tmp/msp", p.KeystorePath())
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("")
	require.Error(t, err)
}

// TestProfile_DottedNames covers entity names that contain dots, which cannot be
// addressed as dotted config keys.
func TestProfile_DottedNames(t *testing.T) {
	doc := map[string]any{
		"name": "multi-org",
		"organizations": map[string]any{
			"org2.example.com": map[string]any{
				"mspid": "Org2MSP",
				"peers": []string{"peer0.org2.example.com"},
			},
		},
		"certificateAuthorities": map[string]any{
			"ca.org2.example.com": map[string]any{
				"url":       "https://localhost:8054",
				"registrar": map[string]any{"enrollId": "registrar2"},
			},
		},
	}
	raw, err := yaml.Marshal(doc)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "connection-org2.yaml")
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	p, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"peer0.org2.example.com"}, p.OrgPeers("org2.example.com"))
	assert.Equal(t, "registrar2", p.CARegistrar("ca.org2.example.com"))
	assert.Empty(t, p.KeystorePath())
}
