// Package session opens per-user connections to the notary channel and bundles the
// contract handles a dispatcher selects from.
package session

import (
	"errors"
	"fmt"
	"sort"

	"go.uber.org/atomic"

	"github.com/chainsafe/fabric-notary-gateway/internal/metrics"
	"github.com/chainsafe/fabric-notary-gateway/pkg/fabricsdk/ledger"
)

// Contract names deployed in the notary chaincode
const (
	NotaryContract   = "NotaryContract"
	PolicyContract   = "PolicyContract"
	IdentityContract = "IdentityContract"
)

// ContractNames lists the contracts every session acquires.
var ContractNames = []string{NotaryContract, PolicyContract, IdentityContract}

var (
	ErrUnknownIdentity = errors.New("unknown identity")
	ErrUnknownContract = errors.New("unknown contract")
	ErrSessionClosed   = errors.New("session closed")
)

// Session is one authenticated connection and its contract handles.
// A session is closed at most once; Close is safe to call repeatedly.
type Session struct {
	identityID string
	network    ledger.Network
	contracts  map[string]ledger.Contract
	closed     *atomic.Bool
}

func newSession(identityID string, network ledger.Network, contracts map[string]ledger.Contract) *Session {
	metrics.SessionsOpen.Inc()
	return &Session{
		identityID: identityID,
		network:    network,
		contracts:  contracts,
		closed:     atomic.NewBool(false),
	}
}

// IdentityID returns the wallet label the session is authenticated as.
func (s *Session) IdentityID() string {
	return s.identityID
}

// Channel returns the channel the session is bound to.
func (s *Session) Channel() string {
	return s.network.Channel()
}

// Contract returns the handle for name.
func (s *Session) Contract(name string) (ledger.Contract, error) {
	if s.closed.Load() {
		return nil, ErrSessionClosed
	}
	c, ok := s.contracts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownContract, name)
	}
	return c, nil
}

// Contracts returns the acquired contract names in sorted order.
func (s *Session) Contracts() []string {
	names := make([]string, 0, len(s.contracts))
	for name := range s.contracts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close releases the underlying network. Only the first call has an effect.
func (s *Session) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	metrics.SessionsOpen.Dec()
	return s.network.Close()
}

// Closed reports whether Close has been called.
func (s *Session) Closed() bool {
	return s.closed.Load()
}
