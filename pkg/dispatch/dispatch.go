// Package dispatch invokes notary chaincode operations over a session and closes the
// session once the call resolves.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/fabric-notary-gateway/internal/metrics"
	apperrors "github.com/chainsafe/fabric-notary-gateway/pkg/app/errors"
	"github.com/chainsafe/fabric-notary-gateway/pkg/fabricsdk/ledger"
	"github.com/chainsafe/fabric-notary-gateway/pkg/identity"
	"github.com/chainsafe/fabric-notary-gateway/pkg/session"
)

var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrInvalidArguments = errors.New("invalid arguments")
	ErrNilSession       = errors.New("nil session")
)

// Result is the outcome of a successful dispatch.
type Result struct {
	Contract  string
	Operation string
	Kind      Kind
	Payload   []byte
	// LogID is set for operations that generate a notary log id.
	LogID string
}

// Dispatcher routes operations to contract handles by a fixed table.
type Dispatcher struct {
	ops       map[opKey]Operation
	contracts map[string]struct{}
	newID     func() string
	now       func() time.Time
	logger    *zap.Logger
}

// New creates a dispatcher with the default operation table plus any WithOperation entries.
func New(opts ...Option) *Dispatcher {
	s := applyOptions(opts)

	d := &Dispatcher{
		ops:       make(map[opKey]Operation),
		contracts: make(map[string]struct{}),
		newID:     s.newID,
		now:       s.now,
		logger:    s.logger,
	}
	for _, op := range append(DefaultOperations(), s.extra...) {
		d.ops[op.key()] = op
		d.contracts[op.Contract] = struct{}{}
	}
	return d
}

// Lookup returns the operation registered for contract and name.
func (d *Dispatcher) Lookup(contract, name string) (Operation, bool) {
	op, ok := d.ops[opKey{contract: contract, name: name}]
	return op, ok
}

// Dispatch invokes operation on contract through s. The session is closed exactly once
// when Dispatch returns, whatever the outcome. Every failure is a *errors.ServiceError.
func (d *Dispatcher) Dispatch(
	ctx context.Context,
	s *session.Session,
	contract, operation string,
	args ...string,
) (res *Result, err error) {
	if s == nil {
		return nil, apperrors.ConfigurationError(ErrNilSession, "no session to dispatch on")
	}
	defer d.closeSession(s, contract, operation)
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("Contract invocation panicked",
				zap.String("contract", contract),
				zap.String("operation", operation),
				zap.Any("panic", r),
			)
			res = nil
			err = apperrors.DependencyError(
				fmt.Errorf("panic in %s: %v", ledger.QualifiedName(contract, operation), r),
				"the following errors occurred: contract invocation failed unexpectedly",
			)
		}
	}()

	op, ok := d.Lookup(contract, operation)
	if !ok {
		return nil, d.unknown(s, contract, operation)
	}
	if op.Arity >= 0 && len(args) != op.Arity {
		return nil, apperrors.BadRequestError(
			fmt.Errorf("%w: %s expects %d, got %d", ErrInvalidArguments, operation, op.Arity, len(args)),
			fmt.Sprintf("%s expects %d arguments", operation, op.Arity),
		)
	}

	handle, err := s.Contract(contract)
	if err != nil {
		return nil, apperrors.ConfigurationError(err, fmt.Sprintf("contract %s is not available", contract))
	}

	res = &Result{Contract: contract, Operation: operation, Kind: op.Kind}
	if op.logEntry {
		entry := identity.NotaryLogEntry{
			LogID:         d.newID(),
			ParticipantID: args[0],
			Timestamp:     identity.Timestamp(d.now()),
			Type:          args[1],
			Text:          args[2],
		}
		args = entry.Args()
		res.LogID = entry.LogID
	}

	start := time.Now()
	switch op.Kind {
	case Submit:
		res.Payload, err = handle.SubmitTransaction(ctx, operation, args...)
	default:
		res.Payload, err = handle.EvaluateTransaction(ctx, operation, args...)
	}
	metrics.DispatchDuration.WithLabelValues(contract, operation, op.Kind.String()).Observe(time.Since(start).Seconds())
	metrics.DispatchTotal.WithLabelValues(contract, operation, op.Kind.String(), metrics.StatusLabel(err)).Inc()

	if err != nil {
		return nil, remoteError(op, err)
	}

	d.logger.Debug("Operation dispatched",
		zap.String("user_id", s.IdentityID()),
		zap.String("contract", contract),
		zap.String("operation", operation),
		zap.Stringer("kind", op.Kind),
		zap.Duration("duration", time.Since(start)),
	)
	return res, nil
}

// closeSession closes s and keeps a failing or panicking Close from changing the outcome.
func (d *Dispatcher) closeSession(s *session.Session, contract, operation string) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("Session close panicked",
				zap.String("user_id", s.IdentityID()),
				zap.String("contract", contract),
				zap.String("operation", operation),
				zap.Any("panic", r),
			)
		}
	}()
	if err := s.Close(); err != nil {
		d.logger.Warn("Failed to close session",
			zap.String("user_id", s.IdentityID()),
			zap.Error(err),
		)
	}
}

func (d *Dispatcher) unknown(s *session.Session, contract, operation string) error {
	if _, ok := d.contracts[contract]; !ok {
		if _, err := s.Contract(contract); errors.Is(err, session.ErrUnknownContract) {
			return apperrors.ConfigurationError(err, fmt.Sprintf("unknown contract %s", contract))
		}
	}
	return apperrors.ConfigurationError(
		fmt.Errorf("%w: %s", ErrUnknownOperation, ledger.QualifiedName(contract, operation)),
		fmt.Sprintf("unknown operation %s on contract %s", operation, contract),
	)
}

func remoteError(op Operation, err error) error {
	message := "the following errors occurred: " + err.Error()
	switch {
	case ledger.IsTimeout(err):
		return apperrors.TimeoutError(err, message)
	case op.Kind == Evaluate && ledger.IsNotFound(err):
		return apperrors.ResourceNotFoundError(err, message)
	}
	return apperrors.DependencyError(err, message)
}
