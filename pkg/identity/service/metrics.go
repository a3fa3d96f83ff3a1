package service

import (
	"context"
	"time"

	"github.com/chainsafe/canton-identity/internal/metrics"
	apperrors "github.com/chainsafe/canton-identity/pkg/app/errors"
	"github.com/chainsafe/canton-identity/pkg/participant"
)

type metricsService struct {
	svc Service
}

// NewMetrics creates a decorator that records operation counts and latencies.
func NewMetrics(svc Service) Service {
	return &metricsService{svc: svc}
}

func (ms *metricsService) AddIdentityMapping(ctx context.Context, ref participant.Ref, userID string) (err error) {
	defer observe("add", time.Now(), &err)
	return ms.svc.AddIdentityMapping(ctx, ref, userID)
}

func (ms *metricsService) RemoveIdentityMapping(ctx context.Context, userID string) (err error) {
	defer observe("remove", time.Now(), &err)
	return ms.svc.RemoveIdentityMapping(ctx, userID)
}

func (ms *metricsService) GetParticipant(ctx context.Context, userID string) (_ *participant.Participant, err error) {
	defer observe("get", time.Now(), &err)
	return ms.svc.GetParticipant(ctx, userID)
}

func observe(operation string, start time.Time, err *error) {
	metrics.IdentityOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	metrics.IdentityOperationsTotal.WithLabelValues(operation, metrics.Status(apperrors.CategoryOf(*err))).Inc()
}
