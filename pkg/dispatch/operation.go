package dispatch

import (
	"github.com/chainsafe/fabric-notary-gateway/pkg/session"
)

// Kind selects how an operation reaches the ledger.
type Kind int

const (
	// Submit endorses, orders and commits the transaction.
	Submit Kind = iota
	// Evaluate queries a single peer without ordering.
	Evaluate
)

func (k Kind) String() string {
	switch k {
	case Submit:
		return "submit"
	case Evaluate:
		return "evaluate"
	default:
		return "unknown"
	}
}

// Operation names of the notary chaincode
const (
	CreateParticipant = "createParticipant"
	GetParticipant    = "getParticipant"
	AddNotaryLog      = "addNotaryLog"
	GetNotaryLog      = "getNotaryLog"
	GetAllNotaryLogs  = "getAllNotaryLogs"
)

// Operation describes one contract function and how it is invoked.
type Operation struct {
	Contract string
	Name     string
	Kind     Kind
	// Arity is the number of caller supplied arguments. Negative disables the check.
	Arity int

	// logEntry prepends a generated log id and timestamp to the arguments.
	logEntry bool
}

type opKey struct {
	contract string
	name     string
}

func (o Operation) key() opKey {
	return opKey{contract: o.Contract, name: o.Name}
}

// DefaultOperations returns the fixed operation table of the notary chaincode.
// PolicyContract has a handle in every session but no operations.
func DefaultOperations() []Operation {
	return []Operation{
		{Contract: session.IdentityContract, Name: CreateParticipant, Kind: Submit, Arity: 3},
		{Contract: session.IdentityContract, Name: GetParticipant, Kind: Evaluate, Arity: 1},
		{Contract: session.NotaryContract, Name: AddNotaryLog, Kind: Submit, Arity: 3, logEntry: true},
		{Contract: session.NotaryContract, Name: GetNotaryLog, Kind: Evaluate, Arity: 1},
		{Contract: session.NotaryContract, Name: GetAllNotaryLogs, Kind: Evaluate, Arity: 0},
	}
}
