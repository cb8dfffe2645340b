package ca

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hyperledger/fabric-sdk-go/pkg/client/msp"
	"github.com/hyperledger/fabric-sdk-go/pkg/fabsdk"
	"go.uber.org/zap"

	"github.com/chainsafe/fabric-notary-gateway/pkg/fabricsdk"
	"github.com/chainsafe/fabric-notary-gateway/pkg/identity"
)

// FabricClient implements Client on top of the fabric-sdk-go msp client.
type FabricClient struct {
	cfg       Config
	sdk       *fabsdk.FabricSDK
	msp       *msp.Client
	registrar string
	keystore  string
	logger    *zap.Logger
}

// New opens the SDK for cfg.ConnectionProfile and binds an msp client to cfg.CAName.
// Close must be called to release the SDK.
func New(cfg Config, opts ...Option) (*FabricClient, error) {
	if err := cfg.setDefaults(); err != nil {
		return nil, fmt.Errorf("apply ca config defaults: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid ca config: %w", err)
	}
	s := applyOptions(opts)

	sdk, err := fabricsdk.Open(cfg.ConnectionProfile)
	if err != nil {
		return nil, err
	}

	profile, err := fabricsdk.ProfileFromSDK(sdk)
	if err != nil {
		sdk.Close()
		return nil, err
	}

	keystore := cfg.KeystorePath
	if keystore == "" {
		keystore = profile.KeystorePath()
	}
	if keystore == "" {
		sdk.Close()
		return nil, errors.New("no keystore path: set fabric.keystore_path or client.credentialStore.cryptoStore.path")
	}

	mspClient, err := msp.New(sdk.Context(), msp.WithOrg(cfg.Org), msp.WithCAInstance(cfg.CAName))
	if err != nil {
		sdk.Close()
		return nil, fmt.Errorf("failed to create msp client for %s: %w", cfg.CAName, err)
	}

	return &FabricClient{
		cfg:       cfg,
		sdk:       sdk,
		msp:       mspClient,
		registrar: profile.CARegistrar(cfg.CAName),
		keystore:  keystore,
		logger:    s.logger,
	}, nil
}

// Close releases the SDK.
func (c *FabricClient) Close() {
	c.sdk.Close()
}

func (c *FabricClient) Register(ctx context.Context, req *RegistrationRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	// The SDK always registers as the registrar from the connection profile.
	if c.registrar != "" && req.Registrar != "" && req.Registrar != c.registrar {
		return "", fmt.Errorf("%w: want %s, got %s", ErrRegistrarMismatch, c.registrar, req.Registrar)
	}

	secret, err := c.msp.Register(&msp.RegistrationRequest{
		Name:        req.EnrollmentID,
		Type:        c.cfg.IdentityType,
		Affiliation: req.Affiliation,
		Attributes:  toMSPAttributes(req.Attributes),
		CAName:      c.cfg.CAName,
	})
	if err != nil {
		return "", registerError(req.EnrollmentID, err)
	}

	c.logger.Debug("Registered identity with CA",
		zap.String("enrollment_id", req.EnrollmentID),
		zap.String("ca", c.cfg.CAName),
	)
	return secret, nil
}

func (c *FabricClient) Enroll(
	ctx context.Context,
	enrollmentID, secret string,
	attrReqs []identity.AttributeRequest,
) (*Enrollment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opts := []msp.EnrollmentOption{msp.WithSecret(secret)}
	if len(attrReqs) > 0 {
		opts = append(opts, msp.WithAttributeRequests(toMSPAttributeRequests(attrReqs)))
	}
	if err := c.msp.Enroll(enrollmentID, opts...); err != nil {
		return nil, fmt.Errorf("failed to enroll %s: %w", enrollmentID, err)
	}

	signer, err := c.msp.GetSigningIdentity(enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load signing identity for %s: %w", enrollmentID, err)
	}

	key, err := readPrivateKey(c.keystore, signer.PrivateKey().SKI())
	if err != nil {
		return nil, fmt.Errorf("failed to export private key for %s: %w", enrollmentID, err)
	}

	return &Enrollment{
		Certificate: string(signer.EnrollmentCertificate()),
		PrivateKey:  string(key),
	}, nil
}

// readPrivateKey loads the PEM the SDK's software keystore wrote for ski.
// registerError wraps a CA registration failure, tagging the CA's duplicate id response.
func registerError(id string, err error) error {
	if strings.Contains(err.Error(), "is already registered") {
		return fmt.Errorf("failed to register %s: %w: %w", id, ErrAlreadyRegistered, err)
	}
	return fmt.Errorf("failed to register %s: %w", id, err)
}

func readPrivateKey(keystore string, ski []byte) ([]byte, error) {
	if len(ski) == 0 {
		return nil, errors.New("private key has no subject key identifier")
	}
	path := filepath.Join(keystore, hex.EncodeToString(ski)+"_sk")
	pem, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return pem, nil
}

func toMSPAttributes(attrs []identity.Attribute) []msp.Attribute {
	out := make([]msp.Attribute, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, msp.Attribute{Name: a.Name, Value: a.Value, ECert: a.ECert})
	}
	return out
}

func toMSPAttributeRequests(reqs []identity.AttributeRequest) []*msp.AttributeRequest {
	out := make([]*msp.AttributeRequest, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, &msp.AttributeRequest{Name: r.Name, Optional: r.Optional})
	}
	return out
}
