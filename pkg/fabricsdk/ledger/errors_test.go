package ledger

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/hyperledger/fabric-sdk-go/pkg/common/errors/status"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

func TestNewError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantGroup   string
		wantCode    int32
		wantTimeout bool
		wantInMsg   string
	}{
		{
			name:      "chaincode status",
			err:       status.New(status.ChaincodeStatus, 500, "participant u1 already exists", nil),
			wantGroup: status.ChaincodeStatus.String(),
			wantCode:  500,
			wantInMsg: "participant u1 already exists",
		},
		{
			name:        "sdk grpc transport unavailable",
			err:         status.New(status.GRPCTransportStatus, int32(codes.Unavailable), "connection refused", nil),
			wantGroup:   status.GRPCTransportStatus.String(),
			wantCode:    int32(codes.Unavailable),
			wantTimeout: true,
			wantInMsg:   "connection refused",
		},
		{
			name:        "sdk client timeout",
			err:         status.New(status.ClientStatus, status.Timeout.ToInt32(), "request timed out", nil),
			wantGroup:   status.ClientStatus.String(),
			wantCode:    status.Timeout.ToInt32(),
			wantTimeout: true,
		},
		{
			name:        "raw grpc deadline",
			err:         grpcstatus.Error(codes.DeadlineExceeded, "deadline"),
			wantGroup:   "gRPC",
			wantCode:    int32(codes.DeadlineExceeded),
			wantTimeout: true,
		},
		{
			name:        "wrapped context deadline",
			err:         fmt.Errorf("query: %w", context.DeadlineExceeded),
			wantTimeout: true,
			wantInMsg:   "deadline exceeded",
		},
		{
			name:      "plain error",
			err:       errors.New("boom"),
			wantInMsg: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewError("NotaryContract", "addNotaryLog", tt.err)

			assert.Equal(t, tt.wantGroup, got.Group)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.wantTimeout, got.Timeout)
			assert.ErrorIs(t, got, tt.err)
			assert.Contains(t, got.Error(), "NotaryContract:addNotaryLog failed")
			if tt.wantInMsg != "" {
				assert.Contains(t, got.Error(), tt.wantInMsg)
			}
		})
	}
}

func TestIsTimeout(t *testing.T) {
	assert.False(t, IsTimeout(nil))
	assert.False(t, IsTimeout(errors.New("boom")))
	assert.True(t, IsTimeout(fmt.Errorf("connect: %w", context.DeadlineExceeded)))
	assert.True(t, IsTimeout(grpcstatus.Error(codes.Unavailable, "peer down")))
	assert.False(t, IsTimeout(grpcstatus.Error(codes.PermissionDenied, "access denied")))
	assert.True(t, IsTimeout(fmt.Errorf("dispatch: %w", &Error{Timeout: true})))
	assert.False(t, IsTimeout(&Error{Group: "Chaincode status", Code: 500}))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NewError("IdentityContract", "getParticipant",
		status.New(status.ChaincodeStatus, 500, "participant p9 does not exist", nil))))
	assert.True(t, IsNotFound(NewError("NotaryContract", "getNotaryLog", errors.New("notary log l1 does not exist"))))
	assert.False(t, IsNotFound(NewError("IdentityContract", "createParticipant", errors.New("participant p1 already exists"))))
	assert.False(t, IsNotFound(grpcstatus.Error(codes.Unavailable, "peer does not exist")))
	assert.False(t, IsNotFound(nil))
}
