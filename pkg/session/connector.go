package session

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/chainsafe/fabric-notary-gateway/internal/metrics"
	apperrors "github.com/chainsafe/fabric-notary-gateway/pkg/app/errors"
	"github.com/chainsafe/fabric-notary-gateway/pkg/fabricsdk/ledger"
	"github.com/chainsafe/fabric-notary-gateway/pkg/identity"
	"github.com/chainsafe/fabric-notary-gateway/pkg/wallet"
)

// Connect failure reasons used as metric labels
const (
	reasonUnknownIdentity = "unknown_identity"
	reasonStore           = "store"
	reasonConnect         = "connect"
	reasonContract        = "contract"
)

// Config holds the static connection settings.
type Config struct {
	Channel   string
	Chaincode string
	Discovery bool
}

// Connector opens sessions for identities held in the wallet.
type Connector struct {
	store   wallet.Store
	gateway ledger.Gateway
	cfg     Config
	logger  *zap.Logger
}

// NewConnector creates a connector. A nil logger disables logging.
func NewConnector(store wallet.Store, gateway ledger.Gateway, cfg Config, logger *zap.Logger) *Connector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Connector{
		store:   store,
		gateway: gateway,
		cfg:     cfg,
		logger:  logger,
	}
}

// Connect opens a session authenticated as userID and acquires the Notary, Policy and
// Identity contract handles. The network is closed on every failure path; on success
// the caller owns the session and must close it.
func (c *Connector) Connect(ctx context.Context, userID string) (*Session, error) {
	if userID == "" {
		return nil, apperrors.BadRequestError(nil, "user id is required")
	}

	cred, err := c.store.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, wallet.ErrNotFound) {
			metrics.SessionConnectFailures.WithLabelValues(reasonUnknownIdentity).Inc()
			return nil, apperrors.UnAuthorizedError(
				fmt.Errorf("%w: %s", ErrUnknownIdentity, userID),
				fmt.Sprintf("An identity for the user %s does not exist in the wallet. Register %s first", userID, userID),
			)
		}
		metrics.SessionConnectFailures.WithLabelValues(reasonStore).Inc()
		return nil, remoteError(fmt.Errorf("failed to load identity %s: %w", userID, err), "credential store unavailable")
	}

	network, err := c.gateway.Connect(ctx, ledger.ConnectOptions{
		Label:      userID,
		Credential: cred,
		Channel:    c.cfg.Channel,
		Discovery:  c.cfg.Discovery,
	})
	if err != nil {
		metrics.SessionConnectFailures.WithLabelValues(reasonConnect).Inc()
		if errors.Is(err, identity.ErrInvalidCredential) {
			return nil, apperrors.ConfigurationError(err, fmt.Sprintf("The wallet identity for %s is not usable", userID))
		}
		return nil, remoteError(err, "failed to connect to the network: "+err.Error())
	}

	contracts := make(map[string]ledger.Contract, len(ContractNames))
	for _, name := range ContractNames {
		contract, err := network.Contract(c.cfg.Chaincode, name)
		if err != nil {
			if cerr := network.Close(); cerr != nil {
				c.logger.Warn("Failed to close network", zap.String("user_id", userID), zap.Error(cerr))
			}
			metrics.SessionConnectFailures.WithLabelValues(reasonContract).Inc()
			return nil, remoteError(
				fmt.Errorf("failed to get contract %s: %w", name, err),
				fmt.Sprintf("failed to get contract %s from chaincode %s", name, c.cfg.Chaincode),
			)
		}
		contracts[name] = contract
	}

	c.logger.Debug("Session opened",
		zap.String("user_id", userID),
		zap.String("channel", network.Channel()),
		zap.Bool("discovery", c.cfg.Discovery),
	)
	return newSession(userID, network, contracts), nil
}

func remoteError(err error, message string) error {
	if ledger.IsTimeout(err) {
		return apperrors.TimeoutError(err, message)
	}
	return apperrors.DependencyError(err, message)
}
