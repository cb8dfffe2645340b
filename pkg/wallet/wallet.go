// Package wallet implements the keyed credential store that maps a user id to its X.509 credential.
//
// Backends differ only in where the credential lives: process memory, the Fabric
// filesystem wallet layout, a PostgreSQL table, or a HashiCorp Vault KV v2 mount.
package wallet

import (
	"context"
	"errors"

	"github.com/chainsafe/fabric-notary-gateway/pkg/identity"
)

// ErrNotFound is returned when no credential is stored under a label.
var ErrNotFound = errors.New("identity not found in wallet")

// Store is the credential store consumed by registration and session establishment.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	// Get returns ErrNotFound when the label is absent.
	Get(ctx context.Context, label string) (*identity.Credential, error)
	// Put writes the credential, replacing any previous entry for label.
	Put(ctx context.Context, label string, cred *identity.Credential) error
	Exists(ctx context.Context, label string) (bool, error)
	Remove(ctx context.Context, label string) error
	List(ctx context.Context) ([]string, error)
}
