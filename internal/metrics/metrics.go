package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	apperrors "github.com/chainsafe/canton-identity/pkg/app/errors"
)

var (
	// IdentityOperationsTotal counts identity mapping operations by outcome
	IdentityOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "identity_operations_total",
			Help: "Total number of identity mapping operations",
		},
		[]string{"operation", "status"},
	)

	// IdentityOperationDuration tracks identity mapping operation latency
	IdentityOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "identity_operation_duration_seconds",
			Help:    "Identity mapping operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// HTTPRequestsTotal counts HTTP requests by route pattern and status code
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "identity_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "code"},
	)
)

// Status turns an error category into a status label: "success" for no error,
// otherwise the snake-cased category without its prefix, e.g. "data_conflict".
func Status(cat apperrors.Category) string {
	if cat == apperrors.CategoryNoError {
		return "success"
	}
	name := strings.TrimPrefix(cat.String(), "Category")

	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
