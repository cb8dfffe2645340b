package notary

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const serviceName = "NotaryService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the notary Service
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) CreateParticipant(ctx context.Context, userID string, req *CreateParticipantRequest) (res *Result, err error) {
	fields := []zap.Field{zap.String("user_id", userID)}
	if req != nil {
		fields = append(fields, zap.String("participant_id", req.ID), zap.String("role", req.Role))
	}
	defer ls.track("CreateParticipant", time.Now(), &err, fields...)
	return ls.svc.CreateParticipant(ctx, userID, req)
}

func (ls *logService) GetParticipant(ctx context.Context, userID, participantID string) (res *Result, err error) {
	defer ls.track("GetParticipant", time.Now(), &err, zap.String("user_id", userID), zap.String("participant_id", participantID))
	return ls.svc.GetParticipant(ctx, userID, participantID)
}

func (ls *logService) AddNotaryLog(ctx context.Context, userID string, req *AddNotaryLogRequest) (res *Result, err error) {
	fields := []zap.Field{zap.String("user_id", userID)}
	if req != nil {
		fields = append(fields, zap.String("participant_id", req.ParticipantID), zap.String("type", req.Type))
	}
	defer func(start time.Time) {
		if res != nil {
			fields = append(fields, zap.String("log_id", res.LogID))
		}
		ls.track("AddNotaryLog", start, &err, fields...)
	}(time.Now())
	return ls.svc.AddNotaryLog(ctx, userID, req)
}

func (ls *logService) GetNotaryLog(ctx context.Context, userID, logID string) (res *Result, err error) {
	defer ls.track("GetNotaryLog", time.Now(), &err, zap.String("user_id", userID), zap.String("log_id", logID))
	return ls.svc.GetNotaryLog(ctx, userID, logID)
}

func (ls *logService) GetAllNotaryLogs(ctx context.Context, userID string) (res *Result, err error) {
	defer ls.track("GetAllNotaryLogs", time.Now(), &err, zap.String("user_id", userID))
	return ls.svc.GetAllNotaryLogs(ctx, userID)
}

func (ls *logService) track(method string, start time.Time, err *error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Duration("duration", time.Since(start)),
	)
	if *err != nil {
		ls.logger.Error("Method failed", append(fields, zap.Error(*err))...)
		return
	}
	ls.logger.Info("Method completed", fields...)
}
