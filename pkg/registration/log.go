package registration

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/fabric-notary-gateway/pkg/identity"
)

const serviceName = "RegistrationService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the registration Service.
// Enrollment secrets are never logged.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// Register wraps the service method with logging
func (ls *logService) Register(
	ctx context.Context,
	req *identity.RegisterRequest,
) (resp *identity.RegisterResponse, err error) {
	start := time.Now()

	var userID, role string
	if req != nil {
		userID, role = req.UserID, req.Role
	}

	ls.logger.Info("Register started",
		zap.String("service", serviceName),
		zap.String("method", "Register"),
		zap.String("user_id", userID),
		zap.String("role", role),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("Register failed",
				zap.String("service", serviceName),
				zap.String("method", "Register"),
				zap.String("user_id", userID),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Info("Register completed",
				zap.String("service", serviceName),
				zap.String("method", "Register"),
				zap.String("user_id", resp.UserID),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.Register(ctx, req)
}

// EnrollAdmin wraps the service method with logging
func (ls *logService) EnrollAdmin(ctx context.Context, secret string) (resp *identity.RegisterResponse, err error) {
	start := time.Now()

	ls.logger.Info("EnrollAdmin started",
		zap.String("service", serviceName),
		zap.String("method", "EnrollAdmin"),
		zap.Bool("has_secret", secret != ""),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("EnrollAdmin failed",
				zap.String("service", serviceName),
				zap.String("method", "EnrollAdmin"),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Info("EnrollAdmin completed",
				zap.String("service", serviceName),
				zap.String("method", "EnrollAdmin"),
				zap.String("admin_id", resp.UserID),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.EnrollAdmin(ctx, secret)
}
