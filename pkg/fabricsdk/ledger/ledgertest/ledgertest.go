// Package ledgertest provides an in-memory ledger.Gateway that emulates the notary chaincode.
package ledgertest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/atomic"

	"github.com/chainsafe/fabric-notary-gateway/pkg/fabricsdk/ledger"
)

// ErrNetworkClosed is returned by contracts of a closed network.
var ErrNetworkClosed = errors.New("network closed")

// Call records one contract invocation.
type Call struct {
	Contract string
	Function string
	Args     []string
	Submit   bool
}

// Participant is the chaincode state of IdentityContract.
type Participant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// NotaryLog is the chaincode state of NotaryContract.
type NotaryLog struct {
	LogID         string `json:"logId"`
	ParticipantID string `json:"participantId"`
	Timestamp     string `json:"timestamp"`
	Type          string `json:"type"`
	Text          string `json:"text"`
}

// Ledger is a shared world state reachable through any number of networks.
type Ledger struct {
	// ConnectErr, when set, fails every Connect.
	ConnectErr error
	// ContractErr, when set, fails every Network.Contract.
	ContractErr error
	// InvokeErr, when set, fails every transaction.
	InvokeErr error

	mu           sync.Mutex
	participants map[string]Participant
	logs         map[string]NotaryLog
	calls        []Call
	connects     []ledger.ConnectOptions

	opens  atomic.Int64
	closes atomic.Int64
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{
		participants: make(map[string]Participant),
		logs:         make(map[string]NotaryLog),
	}
}

// Connect implements ledger.Gateway.
func (l *Ledger) Connect(ctx context.Context, opts ledger.ConnectOptions) (ledger.Network, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if l.ConnectErr != nil {
		return nil, l.ConnectErr
	}

	l.mu.Lock()
	l.connects = append(l.connects, opts)
	l.mu.Unlock()

	l.opens.Inc()
	return &network{ledger: l, channel: opts.Channel}, nil
}

// Opens returns the number of networks opened.
func (l *Ledger) Opens() int64 { return l.opens.Load() }

// Closes returns the number of networks closed.
func (l *Ledger) Closes() int64 { return l.closes.Load() }

// Calls returns a copy of every recorded invocation.
func (l *Ledger) Calls() []Call {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Call(nil), l.calls...)
}

// Connects returns a copy of every accepted Connect request.
func (l *Ledger) Connects() []ledger.ConnectOptions {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]ledger.ConnectOptions(nil), l.connects...)
}

// NotaryLogs returns the stored logs ordered by id.
func (l *Ledger) NotaryLogs() []NotaryLog {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sortedLogs()
}

func (l *Ledger) sortedLogs() []NotaryLog {
	out := make([]NotaryLog, 0, len(l.logs))
	for _, entry := range l.logs {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LogID < out[j].LogID })
	return out
}

func (l *Ledger) invoke(contract, fn string, args []string, submit bool) ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.calls = append(l.calls, Call{Contract: contract, Function: fn, Args: append([]string(nil), args...), Submit: submit})
	if l.InvokeErr != nil {
		return nil, l.InvokeErr
	}

	switch ledger.QualifiedName(contract, fn) {
	case "IdentityContract:createParticipant":
		if err := wantArgs(fn, args, 3); err != nil {
			return nil, err
		}
		if _, ok := l.participants[args[0]]; ok {
			return nil, fmt.Errorf("participant %s already exists", args[0])
		}
		p := Participant{ID: args[0], Name: args[1], Role: args[2]}
		l.participants[p.ID] = p
		return json.Marshal(p)
	case "IdentityContract:getParticipant":
		if err := wantArgs(fn, args, 1); err != nil {
			return nil, err
		}
		p, ok := l.participants[args[0]]
		if !ok {
			return nil, fmt.Errorf("participant %s does not exist", args[0])
		}
		return json.Marshal(p)
	case "NotaryContract:addNotaryLog":
		if err := wantArgs(fn, args, 5); err != nil {
			return nil, err
		}
		if _, ok := l.logs[args[0]]; ok {
			return nil, fmt.Errorf("notary log %s already exists", args[0])
		}
		entry := NotaryLog{LogID: args[0], ParticipantID: args[1], Timestamp: args[2], Type: args[3], Text: args[4]}
		l.logs[entry.LogID] = entry
		return json.Marshal(entry)
	case "NotaryContract:getNotaryLog":
		if err := wantArgs(fn, args, 1); err != nil {
			return nil, err
		}
		entry, ok := l.logs[args[0]]
		if !ok {
			return nil, fmt.Errorf("notary log %s does not exist", args[0])
		}
		return json.Marshal(entry)
	case "NotaryContract:getAllNotaryLogs":
		return json.Marshal(l.sortedLogs())
	default:
		return nil, fmt.Errorf("function %s not found in contract %s", fn, contract)
	}
}

func wantArgs(fn string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%s expects %d arguments, got %d", fn, n, len(args))
	}
	return nil
}

type network struct {
	ledger  *Ledger
	channel string
	closed  atomic.Bool
}

func (n *network) Channel() string {
	return n.channel
}

func (n *network) Contract(_ string, name string) (ledger.Contract, error) {
	if n.ledger.ContractErr != nil {
		return nil, n.ledger.ContractErr
	}
	return &contract{network: n, name: name}, nil
}

func (n *network) Close() error {
	if n.closed.CompareAndSwap(false, true) {
		n.ledger.closes.Inc()
	}
	return nil
}

type contract struct {
	network *network
	name    string
}

func (c *contract) Name() string {
	return c.name
}

func (c *contract) SubmitTransaction(ctx context.Context, fn string, args ...string) ([]byte, error) {
	return c.call(ctx, fn, args, true)
}

func (c *contract) EvaluateTransaction(ctx context.Context, fn string, args ...string) ([]byte, error) {
	return c.call(ctx, fn, args, false)
}

func (c *contract) call(ctx context.Context, fn string, args []string, submit bool) ([]byte, error) {
	if c.network.closed.Load() {
		return nil, ErrNetworkClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, ledger.NewError(c.name, fn, err)
	}
	payload, err := c.network.ledger.invoke(c.name, fn, args, submit)
	if err != nil {
		return nil, ledger.NewError(c.name, fn, err)
	}
	return payload, nil
}
