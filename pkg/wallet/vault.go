package wallet

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/vault/api"
	"go.uber.org/zap"

	"github.com/chainsafe/fabric-notary-gateway/pkg/identity"
)

// VaultStore keeps credentials in a HashiCorp Vault KV v2 mount under <mount>/data/<path>/<label>.
type VaultStore struct {
	logical *api.Logical
	mount   string
	path    string
	logger  *zap.Logger
}

// NewVaultStore creates a Vault-backed wallet. The token must grant read, write, list and
// delete on the data and metadata paths of the mount.
func NewVaultStore(address, token, mount, path string, logger *zap.Logger) (*VaultStore, error) {
	if token == "" {
		return nil, fmt.Errorf("vault token is empty")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	config := api.DefaultConfig()
	config.Address = address

	client, err := api.NewClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Vault client: %w", err)
	}
	client.SetToken(token)

	return &VaultStore{
		logical: client.Logical(),
		mount:   strings.Trim(mount, "/"),
		path:    strings.Trim(path, "/"),
		logger:  logger,
	}, nil
}

func (s *VaultStore) dataPath(label string) string {
	return fmt.Sprintf("%s/data/%s/%s", s.mount, s.path, label)
}

func (s *VaultStore) metadataPath(label string) string {
	if label == "" {
		return fmt.Sprintf("%s/metadata/%s", s.mount, s.path)
	}
	return fmt.Sprintf("%s/metadata/%s/%s", s.mount, s.path, label)
}

func (s *VaultStore) Get(ctx context.Context, label string) (*identity.Credential, error) {
	secret, err := s.logical.ReadWithContext(ctx, s.dataPath(label))
	if err != nil {
		return nil, fmt.Errorf("failed to read identity %s from vault: %w", label, err)
	}
	if secret == nil || secret.Data == nil {
		return nil, ErrNotFound
	}

	data, ok := secret.Data["data"].(map[string]interface{})
	if !ok || data == nil {
		// KV v2 returns a null data block for soft-deleted versions.
		return nil, ErrNotFound
	}

	cred := &identity.Credential{
		Version:     1,
		Type:        stringField(data, "type"),
		MSPID:       stringField(data, "mspId"),
		Certificate: stringField(data, "certificate"),
		PrivateKey:  stringField(data, "privateKey"),
	}
	if err := cred.Validate(); err != nil {
		return nil, fmt.Errorf("identity %s in vault is malformed: %w", label, err)
	}
	return cred, nil
}

func (s *VaultStore) Put(ctx context.Context, label string, cred *identity.Credential) error {
	if err := cred.Validate(); err != nil {
		return err
	}

	payload := map[string]interface{}{
		"data": map[string]interface{}{
			"type":        cred.Type,
			"mspId":       cred.MSPID,
			"certificate": cred.Certificate,
			"privateKey":  cred.PrivateKey,
		},
	}
	if _, err := s.logical.WriteWithContext(ctx, s.dataPath(label), payload); err != nil {
		return fmt.Errorf("failed to write identity %s to vault: %w", label, err)
	}

	s.logger.Debug("Stored identity in vault", zap.String("label", label))
	return nil
}

func (s *VaultStore) Exists(ctx context.Context, label string) (bool, error) {
	_, err := s.Get(ctx, label)
	if err == ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes every version and the metadata of label.
func (s *VaultStore) Remove(ctx context.Context, label string) error {
	if _, err := s.logical.DeleteWithContext(ctx, s.metadataPath(label)); err != nil {
		return fmt.Errorf("failed to delete identity %s from vault: %w", label, err)
	}
	return nil
}

func (s *VaultStore) List(ctx context.Context) ([]string, error) {
	secret, err := s.logical.ListWithContext(ctx, s.metadataPath(""))
	if err != nil {
		return nil, fmt.Errorf("failed to list vault wallet: %w", err)
	}
	if secret == nil || secret.Data == nil {
		return []string{}, nil
	}

	raw, _ := secret.Data["keys"].([]interface{})
	labels := make([]string, 0, len(raw))
	for _, k := range raw {
		key, ok := k.(string)
		if !ok || strings.HasSuffix(key, "/") {
			continue
		}
		labels = append(labels, key)
	}
	sort.Strings(labels)
	return labels, nil
}

func stringField(m map[string]interface{}, key string) string {
	v, _ := m[key].(string)
	return v
}
