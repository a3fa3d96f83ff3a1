package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/canton-identity/pkg/participant"
)

const serviceName = "IdentityService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the identity Service.
// It logs method entry/exit, duration and errors.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// AddIdentityMapping wraps the service method with logging
func (ls *logService) AddIdentityMapping(ctx context.Context, ref participant.Ref, userID string) (err error) {
	start := time.Now()
	fqi := refString(ref)

	ls.logger.Info("AddIdentityMapping started",
		zap.String("service", serviceName),
		zap.String("method", "AddIdentityMapping"),
		zap.String("user_id", userID),
		zap.String("participant", fqi),
	)

	defer func() {
		fields := []zap.Field{
			zap.String("service", serviceName),
			zap.String("method", "AddIdentityMapping"),
			zap.String("user_id", userID),
			zap.String("participant", fqi),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			ls.logger.Error("AddIdentityMapping failed", append(fields, zap.Error(err))...)
			return
		}
		ls.logger.Info("AddIdentityMapping completed", fields...)
	}()

	return ls.svc.AddIdentityMapping(ctx, ref, userID)
}

// RemoveIdentityMapping wraps the service method with logging
func (ls *logService) RemoveIdentityMapping(ctx context.Context, userID string) (err error) {
	start := time.Now()

	ls.logger.Info("RemoveIdentityMapping started",
		zap.String("service", serviceName),
		zap.String("method", "RemoveIdentityMapping"),
		zap.String("user_id", userID),
	)

	defer func() {
		fields := []zap.Field{
			zap.String("service", serviceName),
			zap.String("method", "RemoveIdentityMapping"),
			zap.String("user_id", userID),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			ls.logger.Error("RemoveIdentityMapping failed", append(fields, zap.Error(err))...)
			return
		}
		ls.logger.Info("RemoveIdentityMapping completed", fields...)
	}()

	return ls.svc.RemoveIdentityMapping(ctx, userID)
}

// GetParticipant wraps the service method with logging. Lookups are logged at debug level.
func (ls *logService) GetParticipant(ctx context.Context, userID string) (p *participant.Participant, err error) {
	start := time.Now()

	defer func() {
		fields := []zap.Field{
			zap.String("service", serviceName),
			zap.String("method", "GetParticipant"),
			zap.String("user_id", userID),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			ls.logger.Warn("GetParticipant failed", append(fields, zap.Error(err))...)
			return
		}
		ls.logger.Debug("GetParticipant completed",
			append(fields, zap.String("participant", p.FullyQualifiedIdentifier()))...)
	}()

	return ls.svc.GetParticipant(ctx, userID)
}

func refString(ref participant.Ref) string {
	if ref == nil {
		return "<nil>"
	}
	return ref.FullyQualifiedIdentifier()
}
