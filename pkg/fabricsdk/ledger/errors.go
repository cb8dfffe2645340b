package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hyperledger/fabric-sdk-go/pkg/common/errors/status"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

// Error is a failed contract invocation with the diagnostics the SDK exposed.
type Error struct {
	Contract string
	Function string
	Group    string
	Code     int32
	Message  string
	// Timeout is set when the peer or orderer could not be reached in time.
	Timeout bool
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s failed", QualifiedName(e.Contract, e.Function))
	if e.Group != "" {
		fmt.Fprintf(&b, " - group: %s", e.Group)
		fmt.Fprintf(&b, " - code: %d", e.Code)
	}
	if e.Message != "" {
		fmt.Fprintf(&b, " - message: %s", e.Message)
	} else if e.Err != nil {
		fmt.Fprintf(&b, " - %s", e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError classifies err raised while invoking fn on contract.
func NewError(contract, fn string, err error) *Error {
	e := &Error{Contract: contract, Function: fn, Err: err}

	if s, ok := status.FromError(err); ok && s.Code != status.OK.ToInt32() {
		e.Group = s.Group.String()
		e.Code = s.Code
		e.Message = s.Message
		switch s.Group {
		case status.GRPCTransportStatus:
			e.Timeout = isTransientCode(codes.Code(s.Code))
		case status.ClientStatus, status.EndorserClientStatus, status.OrdererClientStatus:
			e.Timeout = s.Code == status.Timeout.ToInt32()
		}
	} else if gs, ok := grpcstatus.FromError(err); ok && gs.Code() != codes.OK {
		e.Group = "gRPC"
		e.Code = int32(gs.Code())
		e.Message = gs.Message()
		e.Timeout = isTransientCode(gs.Code())
	}

	if errors.Is(err, context.DeadlineExceeded) {
		e.Timeout = true
	}
	return e
}

func isTransientCode(c codes.Code) bool {
	return c == codes.Unavailable || c == codes.DeadlineExceeded
}

// IsTimeout reports whether err means the network could not be reached in time.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	var le *Error
	if errors.As(err, &le) {
		return le.Timeout
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if gs, ok := grpcstatus.FromError(err); ok {
		return isTransientCode(gs.Code())
	}
	return false
}

// IsNotFound reports whether the chaincode rejected a read because the record does not exist.
func IsNotFound(err error) bool {
	if err == nil || IsTimeout(err) {
		return false
	}
	return strings.Contains(err.Error(), "does not exist")
}
