package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	apperrors "github.com/chainsafe/fabric-notary-gateway/pkg/app/errors"
	"github.com/chainsafe/fabric-notary-gateway/pkg/fabricsdk/ledger"
	"github.com/chainsafe/fabric-notary-gateway/pkg/fabricsdk/ledger/ledgertest"
	ledgermocks "github.com/chainsafe/fabric-notary-gateway/pkg/fabricsdk/ledger/mocks"
	"github.com/chainsafe/fabric-notary-gateway/pkg/identity"
	"github.com/chainsafe/fabric-notary-gateway/pkg/session"
	"github.com/chainsafe/fabric-notary-gateway/pkg/wallet"
)

var fixedTime = time.UnixMilli(1700000000123)

type fixture struct {
	ledger    *ledgertest.Ledger
	connector *session.Connector
}

func newFixture(t *testing.T, gw ledger.Gateway) *fixture {
	t.Helper()
	store := wallet.NewMemoryStore()
	require.NoError(t, store.Put(context.Background(), "u1", identity.NewX509Credential("Org1MSP", "cert", "key")))

	f := &fixture{}
	if gw == nil {
		f.ledger = ledgertest.New()
		gw = f.ledger
	}
	f.connector = session.NewConnector(store, gw, session.Config{Channel: "mychannel", Chaincode: "notary-chaincode"}, nil)
	return f
}

func (f *fixture) connect(t *testing.T) *session.Session {
	t.Helper()
	s, err := f.connector.Connect(context.Background(), "u1")
	require.NoError(t, err)
	return s
}

func TestDispatch_KindPerOperation(t *testing.T) {
	f := newFixture(t, nil)
	d := New(WithIDGenerator(func() string { return "log-1" }), WithClock(func() time.Time { return fixedTime }))
	ctx := context.Background()

	_, err := d.Dispatch(ctx, f.connect(t), session.IdentityContract, CreateParticipant, "p1", "Alice", "client")
	require.NoError(t, err)
	_, err = d.Dispatch(ctx, f.connect(t), session.IdentityContract, GetParticipant, "p1")
	require.NoError(t, err)
	_, err = d.Dispatch(ctx, f.connect(t), session.NotaryContract, AddNotaryLog, "p1", "signature", "signed deed")
	require.NoError(t, err)
	_, err = d.Dispatch(ctx, f.connect(t), session.NotaryContract, GetNotaryLog, "log-1")
	require.NoError(t, err)
	_, err = d.Dispatch(ctx, f.connect(t), session.NotaryContract, GetAllNotaryLogs)
	require.NoError(t, err)

	calls := f.ledger.Calls()
	require.Len(t, calls, 5)
	assert.True(t, calls[0].Submit)
	assert.False(t, calls[1].Submit)
	assert.True(t, calls[2].Submit)
	assert.False(t, calls[3].Submit)
	assert.False(t, calls[4].Submit)
	assert.EqualValues(t, 5, f.ledger.Opens())
	assert.EqualValues(t, 5, f.ledger.Closes())
}

func TestDispatch_AddNotaryLogSynthesizesHeader(t *testing.T) {
	f := newFixture(t, nil)
	d := New(WithIDGenerator(func() string { return "log-42" }), WithClock(func() time.Time { return fixedTime }))

	res, err := d.Dispatch(context.Background(), f.connect(t), session.NotaryContract, AddNotaryLog, "p1", "signature", "signed deed")
	require.NoError(t, err)

	assert.Equal(t, "log-42", res.LogID)
	assert.Equal(t, Submit, res.Kind)
	calls := f.ledger.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"log-42", "p1", "1700000000123", "signature", "signed deed"}, calls[0].Args)

	var stored ledgertest.NotaryLog
	require.NoError(t, json.Unmarshal(res.Payload, &stored))
	assert.Equal(t, "1700000000123", stored.Timestamp)
}

func TestDispatch_ConcurrentLogIDsAreUnique(t *testing.T) {
	f := newFixture(t, nil)
	d := New()

	const n = 1000
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := f.connector.Connect(context.Background(), "u1")
			if !assert.NoError(t, err) {
				return
			}
			res, err := d.Dispatch(context.Background(), s, session.NotaryContract, AddNotaryLog, "p1", "event", fmt.Sprintf("entry %d", i))
			if assert.NoError(t, err) {
				ids <- res.LogID
			}
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]struct{}, n)
	for id := range ids {
		_, dup := seen[id]
		require.False(t, dup, "duplicate log id %s", id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, n)
	assert.Len(t, f.ledger.NotaryLogs(), n)
	assert.EqualValues(t, n, f.ledger.Closes())
}

func TestDispatch_UnknownContractOrOperation(t *testing.T) {
	f := newFixture(t, nil)
	d := New()

	s := f.connect(t)
	_, err := d.Dispatch(context.Background(), s, "AuditContract", "audit")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CategoryConfiguration))
	assert.ErrorIs(t, err, session.ErrUnknownContract)
	assert.True(t, s.Closed())

	s = f.connect(t)
	_, err = d.Dispatch(context.Background(), s, session.NotaryContract, "deleteNotaryLog", "log-1")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CategoryConfiguration))
	assert.ErrorIs(t, err, ErrUnknownOperation)
	assert.True(t, s.Closed())

	s = f.connect(t)
	_, err = d.Dispatch(context.Background(), s, session.PolicyContract, "checkPolicy")
	assert.ErrorIs(t, err, ErrUnknownOperation)

	assert.Empty(t, f.ledger.Calls())
	assert.EqualValues(t, 3, f.ledger.Closes())
}

func TestDispatch_WrongArity(t *testing.T) {
	f := newFixture(t, nil)
	s := f.connect(t)

	_, err := New().Dispatch(context.Background(), s, session.IdentityContract, CreateParticipant, "p1")

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CategoryDataError))
	assert.ErrorIs(t, err, ErrInvalidArguments)
	assert.True(t, s.Closed())
}

func TestDispatch_WithOperation(t *testing.T) {
	f := newFixture(t, nil)
	d := New(WithOperation(Operation{Contract: session.PolicyContract, Name: "checkPolicy", Kind: Evaluate, Arity: -1}))

	_, err := d.Dispatch(context.Background(), f.connect(t), session.PolicyContract, "checkPolicy", "a", "b")

	// the emulated chaincode has no policy functions
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CategoryDependencyFailure))
	calls := f.ledger.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, session.PolicyContract, calls[0].Contract)
	assert.False(t, calls[0].Submit)
}

func TestDispatch_RemoteErrorsCloseSession(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		category apperrors.Category
	}{
		{"chaincode error", errors.New("participant p1 already exists"), apperrors.CategoryDependencyFailure},
		{"peer unavailable", grpcstatus.Error(codes.Unavailable, "connection refused"), apperrors.CategoryConnectionTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			f.ledger.InvokeErr = tt.err
			s := f.connect(t)

			_, err := New().Dispatch(context.Background(), s, session.IdentityContract, GetParticipant, "p1")

			require.Error(t, err)
			assert.True(t, apperrors.Is(err, tt.category))
			svcErr, _ := apperrors.As(err)
			assert.Contains(t, svcErr.Message, "IdentityContract:getParticipant failed")
			assert.True(t, s.Closed())
			assert.EqualValues(t, 1, f.ledger.Closes())
		})
	}
}

func TestDispatch_RecoversPanic(t *testing.T) {
	gw := ledgermocks.NewGateway(t)
	network := ledgermocks.NewNetwork(t)
	contract := ledgermocks.NewContract(t)

	gw.EXPECT().Connect(mock.Anything, mock.Anything).Return(network, nil)
	network.EXPECT().Contract(mock.Anything, mock.Anything).Return(contract, nil)
	network.EXPECT().Close().Return(nil).Once()
	network.EXPECT().Channel().Return("mychannel").Maybe()
	contract.EXPECT().EvaluateTransaction(mock.Anything, GetNotaryLog, "log-1").
		RunAndReturn(func(context.Context, string, ...string) ([]byte, error) {
			panic("nil peer response")
		})

	f := newFixture(t, gw)
	s := f.connect(t)

	res, err := New().Dispatch(context.Background(), s, session.NotaryContract, GetNotaryLog, "log-1")

	assert.Nil(t, res)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CategoryDependencyFailure))
	assert.True(t, s.Closed())
}

func TestDispatch_ClosePanicDoesNotEscape(t *testing.T) {
	gw := ledgermocks.NewGateway(t)
	network := ledgermocks.NewNetwork(t)
	contract := ledgermocks.NewContract(t)

	gw.EXPECT().Connect(mock.Anything, mock.Anything).Return(network, nil)
	network.EXPECT().Contract(mock.Anything, mock.Anything).Return(contract, nil)
	network.EXPECT().Channel().Return("mychannel").Maybe()
	network.EXPECT().Close().
		RunAndReturn(func() error {
			panic("close blew up")
		}).Once()
	contract.EXPECT().EvaluateTransaction(mock.Anything, GetNotaryLog, "log-1").
		Return([]byte(`{"logId":"log-1"}`), nil)

	f := newFixture(t, gw)
	s := f.connect(t)

	var (
		res *Result
		err error
	)
	require.NotPanics(t, func() {
		res, err = New().Dispatch(context.Background(), s, session.NotaryContract, GetNotaryLog, "log-1")
	})

	require.NoError(t, err)
	assert.JSONEq(t, `{"logId":"log-1"}`, string(res.Payload))
	assert.True(t, s.Closed())
}

func TestDispatch_MissingRecordIsNotFound(t *testing.T) {
	tests := []struct {
		name      string
		contract  string
		operation string
		arg       string
	}{
		{"participant", session.IdentityContract, GetParticipant, "p9"},
		{"notary log", session.NotaryContract, GetNotaryLog, "log-9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			s := f.connect(t)

			_, err := New().Dispatch(context.Background(), s, tt.contract, tt.operation, tt.arg)

			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.CategoryResourceNotFound))
			svcErr, _ := apperrors.As(err)
			assert.Contains(t, svcErr.Message, tt.arg+" does not exist")
			assert.True(t, s.Closed())
		})
	}
}

func TestDispatch_SubmitFailureIsNeverNotFound(t *testing.T) {
	f := newFixture(t, nil)
	f.ledger.InvokeErr = errors.New("participant p1 does not exist")

	_, err := New().Dispatch(context.Background(), f.connect(t), session.IdentityContract, CreateParticipant, "p1", "Alice", "client")

	assert.True(t, apperrors.Is(err, apperrors.CategoryDependencyFailure))
}

func TestDispatch_NilSession(t *testing.T) {
	_, err := New().Dispatch(context.Background(), nil, session.NotaryContract, GetAllNotaryLogs)
	assert.True(t, apperrors.Is(err, apperrors.CategoryConfiguration))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "submit", Submit.String())
	assert.Equal(t, "evaluate", Evaluate.String())
	assert.Equal(t, "unknown", Kind(7).String())
}
