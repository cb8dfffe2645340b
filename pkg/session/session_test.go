package session

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/chainsafe/fabric-notary-gateway/pkg/app/errors"
	"github.com/chainsafe/fabric-notary-gateway/pkg/fabricsdk/ledger"
	"github.com/chainsafe/fabric-notary-gateway/pkg/fabricsdk/ledger/ledgertest"
	ledgermocks "github.com/chainsafe/fabric-notary-gateway/pkg/fabricsdk/ledger/mocks"
	"github.com/chainsafe/fabric-notary-gateway/pkg/identity"
	"github.com/chainsafe/fabric-notary-gateway/pkg/wallet"
	walletmocks "github.com/chainsafe/fabric-notary-gateway/pkg/wallet/mocks"
)

var testConfig = Config{Channel: "mychannel", Chaincode: "notary-chaincode", Discovery: true}

func storeWith(t *testing.T, ids ...string) wallet.Store {
	t.Helper()
	store := wallet.NewMemoryStore()
	for _, id := range ids {
		require.NoError(t, store.Put(context.Background(), id, identity.NewX509Credential("Org1MSP", "cert-"+id, "key-"+id)))
	}
	return store
}

func TestConnect_UnknownIdentity(t *testing.T) {
	gw := ledgermocks.NewGateway(t)
	c := NewConnector(storeWith(t), gw, testConfig, nil)

	s, err := c.Connect(context.Background(), "ghost")

	require.Error(t, err)
	assert.Nil(t, s)
	assert.True(t, apperrors.Is(err, apperrors.CategoryUnauthorized))
	assert.ErrorIs(t, err, ErrUnknownIdentity)
	svcErr, _ := apperrors.As(err)
	assert.Equal(t, "An identity for the user ghost does not exist in the wallet. Register ghost first", svcErr.Message)
	gw.AssertNotCalled(t, "Connect", mock.Anything, mock.Anything)
}

func TestConnect_EmptyUserID(t *testing.T) {
	c := NewConnector(walletmocks.NewStore(t), ledgermocks.NewGateway(t), testConfig, nil)

	_, err := c.Connect(context.Background(), "")
	assert.True(t, apperrors.Is(err, apperrors.CategoryDataError))
}

func TestConnect_StoreFailure(t *testing.T) {
	store := walletmocks.NewStore(t)
	store.EXPECT().Get(mock.Anything, "u1").Return(nil, errors.New("connection refused"))

	c := NewConnector(store, ledgermocks.NewGateway(t), testConfig, nil)
	_, err := c.Connect(context.Background(), "u1")

	assert.True(t, apperrors.Is(err, apperrors.CategoryDependencyFailure))
}

func TestConnect_AcquiresAllContracts(t *testing.T) {
	l := ledgertest.New()
	c := NewConnector(storeWith(t, "u1"), l, testConfig, nil)

	s, err := c.Connect(context.Background(), "u1")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	assert.Equal(t, "u1", s.IdentityID())
	assert.Equal(t, "mychannel", s.Channel())
	assert.Equal(t, []string{IdentityContract, NotaryContract, PolicyContract}, s.Contracts())
	for _, name := range ContractNames {
		contract, err := s.Contract(name)
		require.NoError(t, err)
		assert.Equal(t, name, contract.Name())
	}

	connects := l.Connects()
	require.Len(t, connects, 1)
	assert.Equal(t, "u1", connects[0].Label)
	assert.Equal(t, "cert-u1", connects[0].Credential.Certificate)
	assert.True(t, connects[0].Discovery)
}

func TestConnect_GatewayFailure(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		category apperrors.Category
	}{
		{"remote", errors.New("failed to open channel mychannel"), apperrors.CategoryDependencyFailure},
		{"timeout", fmt.Errorf("dial: %w", context.DeadlineExceeded), apperrors.CategoryConnectionTimeout},
		{"bad credential", fmt.Errorf("credential for u1: %w", identity.ErrInvalidCredential), apperrors.CategoryConfiguration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := ledgermocks.NewGateway(t)
			gw.EXPECT().Connect(mock.Anything, mock.Anything).Return(nil, tt.err)

			c := NewConnector(storeWith(t, "u1"), gw, testConfig, nil)
			_, err := c.Connect(context.Background(), "u1")

			require.Error(t, err)
			assert.True(t, apperrors.Is(err, tt.category))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestConnect_ContractFailureClosesNetwork(t *testing.T) {
	gw := ledgermocks.NewGateway(t)
	network := ledgermocks.NewNetwork(t)
	contract := ledgermocks.NewContract(t)

	gw.EXPECT().Connect(mock.Anything, mock.MatchedBy(func(o ledger.ConnectOptions) bool {
		return o.Channel == "mychannel" && o.Label == "u1"
	})).Return(network, nil)
	network.EXPECT().Contract("notary-chaincode", NotaryContract).Return(contract, nil)
	network.EXPECT().Contract("notary-chaincode", PolicyContract).Return(nil, errors.New("chaincode not found"))
	network.EXPECT().Close().Return(nil).Once()

	c := NewConnector(storeWith(t, "u1"), gw, testConfig, nil)
	s, err := c.Connect(context.Background(), "u1")

	require.Error(t, err)
	assert.Nil(t, s)
	assert.True(t, apperrors.Is(err, apperrors.CategoryDependencyFailure))
}

func TestSession_CloseOnce(t *testing.T) {
	l := ledgertest.New()
	c := NewConnector(storeWith(t, "u1"), l, testConfig, nil)

	s, err := c.Connect(context.Background(), "u1")
	require.NoError(t, err)
	assert.False(t, s.Closed())

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	assert.True(t, s.Closed())
	assert.EqualValues(t, 1, l.Closes())

	_, err = s.Contract(NotaryContract)
	assert.ErrorIs(t, err, ErrSessionClosed)
}

func TestSession_UnknownContract(t *testing.T) {
	c := NewConnector(storeWith(t, "u1"), ledgertest.New(), testConfig, nil)
	s, err := c.Connect(context.Background(), "u1")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	_, err = s.Contract("AuditContract")
	assert.ErrorIs(t, err, ErrUnknownContract)
}
