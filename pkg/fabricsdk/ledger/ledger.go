// Package ledger opens authenticated connections to a Fabric channel and invokes
// chaincode contracts over them.
package ledger

import (
	"context"

	"github.com/chainsafe/fabric-notary-gateway/pkg/identity"
)

// ConnectOptions selects the identity and channel of a connection.
type ConnectOptions struct {
	// Label names the identity in logs.
	Label      string
	Credential *identity.Credential
	Channel    string
	// Discovery enables service discovery. When false, requests target the peers
	// the connection profile declares for the organisation.
	Discovery bool
}

// Gateway opens network connections.
//
//go:generate mockery --name Gateway --output mocks --outpkg mocks --filename mock_gateway.go --with-expecter
type Gateway interface {
	Connect(ctx context.Context, opts ConnectOptions) (Network, error)
}

// Network is one open connection bound to a channel. It must be closed by its owner.
//
//go:generate mockery --name Network --output mocks --outpkg mocks --filename mock_network.go --with-expecter
type Network interface {
	Channel() string
	Contract(chaincode, name string) (Contract, error)
	Close() error
}

// Contract is a named contract inside a chaincode.
//
//go:generate mockery --name Contract --output mocks --outpkg mocks --filename mock_contract.go --with-expecter
type Contract interface {
	Name() string
	// SubmitTransaction endorses, orders and commits fn, returning its payload.
	SubmitTransaction(ctx context.Context, fn string, args ...string) ([]byte, error)
	// EvaluateTransaction runs fn on a single peer without ordering.
	EvaluateTransaction(ctx context.Context, fn string, args ...string) ([]byte, error)
}

// QualifiedName returns the chaincode function name for fn in contract.
func QualifiedName(contract, fn string) string {
	if contract == "" {
		return fn
	}
	return contract + ":" + fn
}
