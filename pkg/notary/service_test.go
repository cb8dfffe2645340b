package notary

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/chainsafe/fabric-notary-gateway/pkg/app/errors"
	"github.com/chainsafe/fabric-notary-gateway/pkg/dispatch"
	"github.com/chainsafe/fabric-notary-gateway/pkg/fabricsdk/ca"
	"github.com/chainsafe/fabric-notary-gateway/pkg/fabricsdk/ledger/ledgertest"
	"github.com/chainsafe/fabric-notary-gateway/pkg/identity"
	"github.com/chainsafe/fabric-notary-gateway/pkg/registration"
	"github.com/chainsafe/fabric-notary-gateway/pkg/session"
	"github.com/chainsafe/fabric-notary-gateway/pkg/wallet"
)

// stubCA accepts every registration and issues a certificate naming the enrollment id.
type stubCA struct{}

func (stubCA) Register(_ context.Context, req *ca.RegistrationRequest) (string, error) {
	return "secret-" + req.EnrollmentID, nil
}

func (stubCA) Enroll(_ context.Context, id, _ string, _ []identity.AttributeRequest) (*ca.Enrollment, error) {
	return &ca.Enrollment{Certificate: "cert-" + id, PrivateKey: "key-" + id}, nil
}

type stack struct {
	ledger       *ledgertest.Ledger
	registration registration.Service
	notary       Service
}

func newStack(t *testing.T) *stack {
	t.Helper()
	store := wallet.NewMemoryStore()
	reg := registration.NewService(store, stubCA{}, registration.Config{AdminID: "admin", MSPID: "Org1MSP", Affiliation: "org1"}, nil)
	_, err := reg.EnrollAdmin(context.Background(), "adminpw")
	require.NoError(t, err)

	l := ledgertest.New()
	connector := session.NewConnector(store, l, session.Config{Channel: "mychannel", Chaincode: "notary-chaincode", Discovery: true}, nil)
	d := dispatch.New(
		dispatch.WithIDGenerator(func() string { return "log-1" }),
		dispatch.WithClock(func() time.Time { return time.UnixMilli(1700000000000) }),
	)
	return &stack{ledger: l, registration: reg, notary: NewService(connector, d, nil)}
}

func TestEndToEnd_RegisterCreateAndGetParticipant(t *testing.T) {
	st := newStack(t)
	ctx := context.Background()

	resp, err := st.registration.Register(ctx, &identity.RegisterRequest{UserID: "u1", Name: "Alice", Role: "client"})
	require.NoError(t, err)
	assert.Contains(t, resp.Message, "u1")

	created, err := st.notary.CreateParticipant(ctx, "u1", &CreateParticipantRequest{ID: "u1", Name: "Alice", Role: "client"})
	require.NoError(t, err)
	assert.Equal(t, session.IdentityContract, created.Contract)

	got, err := st.notary.GetParticipant(ctx, "u1", "u1")
	require.NoError(t, err)

	var p ledgertest.Participant
	require.NoError(t, json.Unmarshal(got.Payload, &p))
	assert.Equal(t, ledgertest.Participant{ID: "u1", Name: "Alice", Role: "client"}, p)

	// one session per operation, each closed
	assert.EqualValues(t, 2, st.ledger.Opens())
	assert.EqualValues(t, 2, st.ledger.Closes())
}

func TestNotaryLogs(t *testing.T) {
	st := newStack(t)
	ctx := context.Background()
	_, err := st.registration.Register(ctx, &identity.RegisterRequest{UserID: "u1", Name: "Alice", Role: "notary"})
	require.NoError(t, err)

	added, err := st.notary.AddNotaryLog(ctx, "u1", &AddNotaryLogRequest{ParticipantID: "p1", Type: "signature", Text: "deed signed"})
	require.NoError(t, err)
	assert.Equal(t, "log-1", added.LogID)

	one, err := st.notary.GetNotaryLog(ctx, "u1", "log-1")
	require.NoError(t, err)
	var entry ledgertest.NotaryLog
	require.NoError(t, json.Unmarshal(one.Payload, &entry))
	assert.Equal(t, "1700000000000", entry.Timestamp)
	assert.Equal(t, "deed signed", entry.Text)

	all, err := st.notary.GetAllNotaryLogs(ctx, "u1")
	require.NoError(t, err)
	var entries []ledgertest.NotaryLog
	require.NoError(t, json.Unmarshal(all.Payload, &entries))
	assert.Len(t, entries, 1)
	assert.EqualValues(t, st.ledger.Opens(), st.ledger.Closes())
}

func TestService_MissingParticipantIsNotFound(t *testing.T) {
	st := newStack(t)
	ctx := context.Background()

	_, err := st.registration.Register(ctx, &identity.RegisterRequest{UserID: "u1", Name: "Alice", Role: "client"})
	require.NoError(t, err)

	_, err = st.notary.GetParticipant(ctx, "u1", "p9")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CategoryResourceNotFound))
	svcErr, _ := apperrors.As(err)
	assert.Equal(t, 404, svcErr.StatusCode())
	assert.EqualValues(t, 1, st.ledger.Closes())
}

func TestService_UnknownUserNeverConnects(t *testing.T) {
	st := newStack(t)

	_, err := st.notary.GetAllNotaryLogs(context.Background(), "ghost")

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CategoryUnauthorized))
	assert.Zero(t, st.ledger.Opens())
}

func TestService_Validation(t *testing.T) {
	st := newStack(t)
	ctx := context.Background()

	_, err := st.notary.CreateParticipant(ctx, "u1", &CreateParticipantRequest{ID: "p1"})
	assert.True(t, apperrors.Is(err, apperrors.CategoryDataError))

	_, err = st.notary.GetParticipant(ctx, "u1", "")
	assert.True(t, apperrors.Is(err, apperrors.CategoryDataError))

	_, err = st.notary.GetNotaryLog(ctx, "u1", "")
	assert.True(t, apperrors.Is(err, apperrors.CategoryDataError))

	_, err = st.notary.AddNotaryLog(ctx, "u1", nil)
	assert.True(t, apperrors.Is(err, apperrors.CategoryDataError))

	assert.Zero(t, st.ledger.Opens())
}

func TestNewResult_NonJSONPayload(t *testing.T) {
	res := newResult(&dispatch.Result{Contract: "NotaryContract", Operation: "getNotaryLog", Payload: []byte("plain text")})
	assert.JSONEq(t, `"plain text"`, string(res.Payload))

	res = newResult(&dispatch.Result{Contract: "NotaryContract", Operation: "addNotaryLog"})
	assert.Nil(t, res.Payload)
}
