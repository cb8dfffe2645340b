package wallet

import (
	"context"
	"fmt"

	"github.com/hyperledger/fabric-sdk-go/pkg/gateway"

	"github.com/chainsafe/fabric-notary-gateway/pkg/identity"
)

// FileStore stores credentials as <label>.id JSON files using the Fabric SDK wallet layout,
// so wallets written by other Fabric SDKs can be shared.
type FileStore struct {
	wallet *gateway.Wallet
	path   string
}

// NewFileStore opens (creating if needed) a filesystem wallet rooted at path.
func NewFileStore(path string) (*FileStore, error) {
	w, err := gateway.NewFileSystemWallet(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open filesystem wallet %s: %w", path, err)
	}
	return &FileStore{wallet: w, path: path}, nil
}

func (s *FileStore) Get(ctx context.Context, label string) (*identity.Credential, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !s.wallet.Exists(label) {
		return nil, ErrNotFound
	}

	id, err := s.wallet.Get(label)
	if err != nil {
		return nil, fmt.Errorf("failed to read identity %s: %w", label, err)
	}

	x509, ok := id.(*gateway.X509Identity)
	if !ok {
		return nil, fmt.Errorf("identity %s is not an X.509 identity", label)
	}

	cred := identity.NewX509Credential(x509.MspID, x509.Certificate(), x509.Key())
	cred.Version = x509.Version
	return cred, nil
}

func (s *FileStore) Put(ctx context.Context, label string, cred *identity.Credential) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := cred.Validate(); err != nil {
		return err
	}

	if err := s.wallet.Put(label, gateway.NewX509Identity(cred.MSPID, cred.Certificate, cred.PrivateKey)); err != nil {
		return fmt.Errorf("failed to write identity %s: %w", label, err)
	}
	return nil
}

func (s *FileStore) Exists(ctx context.Context, label string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return s.wallet.Exists(label), nil
}

// Remove is a no-op when label is absent.
func (s *FileStore) Remove(ctx context.Context, label string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.wallet.Exists(label) {
		return nil
	}
	if err := s.wallet.Remove(label); err != nil {
		return fmt.Errorf("failed to remove identity %s: %w", label, err)
	}
	return nil
}

func (s *FileStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	labels, err := s.wallet.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list wallet %s: %w", s.path, err)
	}
	return labels, nil
}
