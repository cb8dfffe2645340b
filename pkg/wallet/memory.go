package wallet

import (
	"context"
	"sort"
	"sync"

	"github.com/chainsafe/fabric-notary-gateway/pkg/identity"
)

// MemoryStore keeps credentials in process memory. Used for tests and throwaway deployments.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]identity.Credential
}

// NewMemoryStore creates an empty in-memory wallet.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]identity.Credential)}
}

func (s *MemoryStore) Get(_ context.Context, label string) (*identity.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cred, ok := s.entries[label]
	if !ok {
		return nil, ErrNotFound
	}
	return &cred, nil
}

func (s *MemoryStore) Put(_ context.Context, label string, cred *identity.Credential) error {
	if err := cred.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[label] = *cred
	return nil
}

func (s *MemoryStore) Exists(_ context.Context, label string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.entries[label]
	return ok, nil
}

// Remove is a no-op when label is absent.
func (s *MemoryStore) Remove(_ context.Context, label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, label)
	return nil
}

func (s *MemoryStore) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	labels := make([]string, 0, len(s.entries))
	for label := range s.entries {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels, nil
}
