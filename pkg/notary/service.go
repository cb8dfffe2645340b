// Package notary exposes the notary chaincode operations. Every call opens a session
// for the calling user and dispatches exactly one operation on it.
package notary

import (
	"context"
	"errors"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/fabric-notary-gateway/pkg/app/errors"
	"github.com/chainsafe/fabric-notary-gateway/pkg/dispatch"
	"github.com/chainsafe/fabric-notary-gateway/pkg/session"
)

var ErrMissingFields = errors.New("all fields are mandatory")

// Connector opens a session for a wallet identity.
type Connector interface {
	Connect(ctx context.Context, userID string) (*session.Session, error)
}

// Dispatcher runs one operation on a session and closes it.
type Dispatcher interface {
	Dispatch(ctx context.Context, s *session.Session, contract, operation string, args ...string) (*dispatch.Result, error)
}

// Service defines the interface for the notary business logic
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	CreateParticipant(ctx context.Context, userID string, req *CreateParticipantRequest) (*Result, error)
	GetParticipant(ctx context.Context, userID, participantID string) (*Result, error)
	AddNotaryLog(ctx context.Context, userID string, req *AddNotaryLogRequest) (*Result, error)
	GetNotaryLog(ctx context.Context, userID, logID string) (*Result, error)
	GetAllNotaryLogs(ctx context.Context, userID string) (*Result, error)
}

type notaryService struct {
	connector  Connector
	dispatcher Dispatcher
	logger     *zap.Logger
}

// NewService creates a new notary service
func NewService(connector Connector, dispatcher Dispatcher, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &notaryService{
		connector:  connector,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (s *notaryService) CreateParticipant(ctx context.Context, userID string, req *CreateParticipantRequest) (*Result, error) {
	if req == nil || req.ID == "" || req.Name == "" || req.Role == "" {
		return nil, apperrors.BadRequestError(ErrMissingFields, ErrMissingFields.Error())
	}
	return s.invoke(ctx, userID, session.IdentityContract, dispatch.CreateParticipant, req.ID, req.Name, req.Role)
}

func (s *notaryService) GetParticipant(ctx context.Context, userID, participantID string) (*Result, error) {
	if participantID == "" {
		return nil, apperrors.BadRequestError(ErrMissingFields, "participant id is required")
	}
	return s.invoke(ctx, userID, session.IdentityContract, dispatch.GetParticipant, participantID)
}

// AddNotaryLog records an entry. The entry body is passed to the chaincode as is.
func (s *notaryService) AddNotaryLog(ctx context.Context, userID string, req *AddNotaryLogRequest) (*Result, error) {
	if req == nil {
		return nil, apperrors.BadRequestError(ErrMissingFields, "notary log entry is required")
	}
	return s.invoke(ctx, userID, session.NotaryContract, dispatch.AddNotaryLog, req.ParticipantID, req.Type, req.Text)
}

func (s *notaryService) GetNotaryLog(ctx context.Context, userID, logID string) (*Result, error) {
	if logID == "" {
		return nil, apperrors.BadRequestError(ErrMissingFields, "log id is required")
	}
	return s.invoke(ctx, userID, session.NotaryContract, dispatch.GetNotaryLog, logID)
}

func (s *notaryService) GetAllNotaryLogs(ctx context.Context, userID string) (*Result, error) {
	return s.invoke(ctx, userID, session.NotaryContract, dispatch.GetAllNotaryLogs)
}

func (s *notaryService) invoke(ctx context.Context, userID, contract, operation string, args ...string) (*Result, error) {
	sess, err := s.connector.Connect(ctx, userID)
	if err != nil {
		return nil, err
	}

	res, err := s.dispatcher.Dispatch(ctx, sess, contract, operation, args...)
	if err != nil {
		return nil, err
	}
	return newResult(res), nil
}
