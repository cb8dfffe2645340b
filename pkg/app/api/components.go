package api

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/chainsafe/fabric-notary-gateway/pkg/config"
	"github.com/chainsafe/fabric-notary-gateway/pkg/dispatch"
	"github.com/chainsafe/fabric-notary-gateway/pkg/fabricsdk/ca"
	"github.com/chainsafe/fabric-notary-gateway/pkg/fabricsdk/ledger"
	"github.com/chainsafe/fabric-notary-gateway/pkg/keys"
	"github.com/chainsafe/fabric-notary-gateway/pkg/notary"
	"github.com/chainsafe/fabric-notary-gateway/pkg/pgutil"
	"github.com/chainsafe/fabric-notary-gateway/pkg/registration"
	"github.com/chainsafe/fabric-notary-gateway/pkg/session"
	"github.com/chainsafe/fabric-notary-gateway/pkg/wallet"
)

// Components are the services built from one configuration.
type Components struct {
	Wallet       wallet.Store
	Registration registration.Service
	Notary       notary.Service

	closers []func() error
}

// Close releases every collaborator in reverse construction order.
func (c *Components) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Build wires the wallet, CA client, ledger gateway and services described by cfg.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Components, error) {
	c := &Components{}

	store, closeStore, err := OpenWallet(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	c.Wallet = store
	c.closers = append(c.closers, closeStore)

	caClient, err := ca.New(ca.Config{
		ConnectionProfile: cfg.Fabric.ConnectionProfile,
		Org:               cfg.Fabric.Org,
		CAName:            cfg.Fabric.CAName,
		KeystorePath:      cfg.Fabric.KeystorePath,
	}, ca.WithLogger(logger))
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("create ca client: %w", err)
	}
	c.closers = append(c.closers, func() error { caClient.Close(); return nil })

	gateway, err := ledger.New(ledger.Config{
		ConnectionProfile: cfg.Fabric.ConnectionProfile,
		Org:               cfg.Fabric.Org,
	}, ledger.WithLogger(logger))
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("create ledger gateway: %w", err)
	}

	c.Registration = registration.NewLog(
		registration.NewService(store, caClient, RegistrationConfig(cfg), logger),
		logger,
	)

	connector := session.NewConnector(store, gateway, session.Config{
		Channel:   cfg.Fabric.Channel,
		Chaincode: cfg.Fabric.Chaincode,
		Discovery: cfg.Fabric.Discovery,
	}, logger)
	c.Notary = notary.NewLog(
		notary.NewService(connector, dispatch.New(dispatch.WithLogger(logger)), logger),
		logger,
	)

	return c, nil
}

// RegistrationConfig derives the registration settings. The affiliation defaults to the org.
func RegistrationConfig(cfg *config.Config) registration.Config {
	affiliation := cfg.Fabric.Affiliation
	if affiliation == "" {
		affiliation = cfg.Fabric.Org
	}
	return registration.Config{
		AdminID:     cfg.Fabric.AdminID,
		MSPID:       cfg.Fabric.MSPID,
		Affiliation: affiliation,
	}
}

// OpenWallet opens the configured credential store. The returned func releases it.
func OpenWallet(ctx context.Context, cfg *config.Config, logger *zap.Logger) (wallet.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Wallet.Backend {
	case config.WalletMemory:
		logger.Warn("Using in-memory wallet, identities are lost on restart")
		return wallet.NewMemoryStore(), noop, nil

	case config.WalletFile:
		store, err := wallet.NewFileStore(cfg.Wallet.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open file wallet: %w", err)
		}
		logger.Info("Using file wallet", zap.String("path", cfg.Wallet.Path))
		return store, noop, nil

	case config.WalletPostgres:
		cipher, err := masterKeyCipher(cfg.Wallet.MasterKeyEnv)
		if err != nil {
			return nil, nil, err
		}
		db, err := pgutil.ConnectDB(ctx, &cfg.Database, logger)
		if err != nil {
			return nil, nil, err
		}
		return wallet.NewPostgresStore(db, cipher), db.Close, nil

	case config.WalletVault:
		token := os.Getenv(cfg.Wallet.Vault.TokenEnv)
		store, err := wallet.NewVaultStore(
			cfg.Wallet.Vault.Address,
			token,
			cfg.Wallet.Vault.Mount,
			cfg.Wallet.Vault.Path,
			logger,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("open vault wallet (token env %s): %w", cfg.Wallet.Vault.TokenEnv, err)
		}
		return store, noop, nil

	default:
		return nil, nil, fmt.Errorf("unknown wallet backend %q", cfg.Wallet.Backend)
	}
}

func masterKeyCipher(env string) (keys.KeyCipher, error) {
	encoded := os.Getenv(env)
	if encoded == "" {
		return nil, fmt.Errorf("wallet master key not set: env=%s (hint: openssl rand -base64 32)", env)
	}
	masterKey, err := keys.MasterKeyFromBase64(encoded)
	if err != nil {
		return nil, fmt.Errorf("invalid wallet master key: %w", err)
	}
	cipher, err := keys.NewMasterKeyCipher(masterKey)
	if err != nil {
		return nil, fmt.Errorf("create wallet cipher: %w", err)
	}
	return cipher, nil
}
