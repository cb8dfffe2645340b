// Package registration registers application users with the Fabric CA and
// stores the enrolled credentials in the wallet.
package registration

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/chainsafe/fabric-notary-gateway/internal/metrics"
	apperrors "github.com/chainsafe/fabric-notary-gateway/pkg/app/errors"
	"github.com/chainsafe/fabric-notary-gateway/pkg/fabricsdk/ca"
	"github.com/chainsafe/fabric-notary-gateway/pkg/identity"
	"github.com/chainsafe/fabric-notary-gateway/pkg/wallet"
)

var (
	ErrMissingFields  = errors.New("all fields are mandatory")
	ErrIdentityExists = errors.New("identity already exists in the wallet")
	ErrAdminMissing   = errors.New("admin identity does not exist in the wallet")
)

// Registration kinds used as metric labels
const (
	kindUser  = "user"
	kindAdmin = "admin"
)

// Config holds the static registration settings.
type Config struct {
	AdminID     string
	MSPID       string
	Affiliation string
}

// Service defines the interface for the registration business logic
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Register(ctx context.Context, req *identity.RegisterRequest) (*identity.RegisterResponse, error)
	EnrollAdmin(ctx context.Context, secret string) (*identity.RegisterResponse, error)
}

type registrationService struct {
	store  wallet.Store
	ca     ca.Client
	cfg    Config
	locks  *keyedMutex
	logger *zap.Logger
}

// NewService creates a new registration service
func NewService(store wallet.Store, caClient ca.Client, cfg Config, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &registrationService{
		store:  store,
		ca:     caClient,
		cfg:    cfg,
		locks:  newKeyedMutex(),
		logger: logger,
	}
}

// Register creates a CA identity for the user and imports the enrolled credential into the wallet.
//
// The registration process:
//  1. Rejects requests with an empty user id, name or role
//  2. Checks the user id is not already in the wallet
//  3. Checks the admin identity is in the wallet
//  4. Registers the user with id, name and role certificate attributes
//  5. Enrolls the user requesting those attributes
//  6. Stores the credential under the user id
//
// Registrations for the same user id are serialized. Not idempotent: a second call for a
// registered id fails with a conflict.
func (s *registrationService) Register(
	ctx context.Context,
	req *identity.RegisterRequest,
) (resp *identity.RegisterResponse, err error) {
	if req == nil || req.UserID == "" || req.Name == "" || req.Role == "" {
		return nil, apperrors.BadRequestError(ErrMissingFields, ErrMissingFields.Error())
	}
	defer func() {
		metrics.RegistrationsTotal.WithLabelValues(kindUser, metrics.StatusLabel(err)).Inc()
	}()

	unlock := s.locks.Lock(req.UserID)
	defer unlock()

	exists, err := s.store.Exists(ctx, req.UserID)
	if err != nil {
		return nil, remoteError(fmt.Errorf("failed to check identity existence: %w", err), "credential store unavailable")
	}
	if exists {
		return nil, apperrors.ConflictError(
			fmt.Errorf("%w: %s", ErrIdentityExists, req.UserID),
			fmt.Sprintf("An identity for the user %s already exists in the wallet. Please enter a different id", req.UserID),
		)
	}

	// The CA signs as the profile's registrar; this only checks the admin is configured.
	if err = s.requireAdmin(ctx); err != nil {
		return nil, err
	}

	secret, err := s.ca.Register(ctx, &ca.RegistrationRequest{
		EnrollmentID: req.UserID,
		Affiliation:  s.cfg.Affiliation,
		Registrar:    s.cfg.AdminID,
		Attributes:   req.Attributes(),
	})
	if err != nil {
		switch {
		case errors.Is(err, ca.ErrRegistrarMismatch):
			return nil, apperrors.ConfigurationError(err, "configured admin is not the CA registrar")
		case errors.Is(err, ca.ErrAlreadyRegistered):
			return nil, apperrors.ConflictError(
				fmt.Errorf("%w: %w", ErrIdentityExists, err),
				fmt.Sprintf("The user %s is already registered with the CA. Please enter a different id", req.UserID),
			)
		}
		return nil, remoteError(err, "the following errors occurred: "+err.Error())
	}

	if err = s.enrollAndStore(ctx, req.UserID, secret, identity.DefaultAttributeRequests()); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", zap.String("user_id", req.UserID), zap.String("role", req.Role))

	return &identity.RegisterResponse{
		UserID:  req.UserID,
		Message: fmt.Sprintf("Successfully registered user %s. Use userId %s to login.", req.Name, req.UserID),
	}, nil
}

// EnrollAdmin enrolls the configured admin with its bootstrap secret and stores the credential.
func (s *registrationService) EnrollAdmin(ctx context.Context, secret string) (resp *identity.RegisterResponse, err error) {
	if secret == "" {
		return nil, apperrors.BadRequestError(ErrMissingFields, "enrollment secret is required")
	}
	defer func() {
		metrics.RegistrationsTotal.WithLabelValues(kindAdmin, metrics.StatusLabel(err)).Inc()
	}()

	adminID := s.cfg.AdminID
	unlock := s.locks.Lock(adminID)
	defer unlock()

	exists, err := s.store.Exists(ctx, adminID)
	if err != nil {
		return nil, remoteError(fmt.Errorf("failed to check identity existence: %w", err), "credential store unavailable")
	}
	if exists {
		return nil, apperrors.ConflictError(
			fmt.Errorf("%w: %s", ErrIdentityExists, adminID),
			fmt.Sprintf("An identity for the admin user %s already exists in the wallet", adminID),
		)
	}

	if err = s.enrollAndStore(ctx, adminID, secret, nil); err != nil {
		return nil, err
	}

	return &identity.RegisterResponse{
		UserID:  adminID,
		Message: fmt.Sprintf("Successfully enrolled admin user %s and imported it into the wallet", adminID),
	}, nil
}

func (s *registrationService) requireAdmin(ctx context.Context) error {
	ok, err := s.store.Exists(ctx, s.cfg.AdminID)
	if err != nil {
		return remoteError(fmt.Errorf("failed to check admin existence: %w", err), "credential store unavailable")
	}
	if !ok {
		return apperrors.ConfigurationError(
			fmt.Errorf("%w: %s", ErrAdminMissing, s.cfg.AdminID),
			fmt.Sprintf("An identity for the admin user %s does not exist in the wallet", s.cfg.AdminID),
		)
	}
	return nil
}

func (s *registrationService) enrollAndStore(
	ctx context.Context,
	id, secret string,
	attrReqs []identity.AttributeRequest,
) error {
	enrollment, err := s.ca.Enroll(ctx, id, secret, attrReqs)
	if err != nil {
		return remoteError(err, "the following errors occurred: "+err.Error())
	}

	cred := identity.NewX509Credential(s.cfg.MSPID, enrollment.Certificate, enrollment.PrivateKey)
	if err = s.store.Put(ctx, id, cred); err != nil {
		return remoteError(fmt.Errorf("failed to store identity %s: %w", id, err), "failed to store the enrolled identity")
	}
	return nil
}

func remoteError(err error, message string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.TimeoutError(err, message)
	}
	return apperrors.DependencyError(err, message)
}
