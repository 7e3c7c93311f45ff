package usecase

import (
	"context"
	"time"

	authDomain "github.com/allisson/caconnectors/internal/auth/domain"
	caDomain "github.com/allisson/caconnectors/internal/caconnector/domain"
	"github.com/allisson/caconnectors/internal/metrics"
)

// accessGateWithMetrics decorates AccessGate with metrics instrumentation.
type accessGateWithMetrics struct {
	next    AccessGate
	metrics metrics.BusinessMetrics
}

// NewAccessGateWithMetrics wraps an AccessGate with metrics recording.
func NewAccessGateWithMetrics(gate AccessGate, m metrics.BusinessMetrics) AccessGate {
	return &accessGateWithMetrics{
		next:    gate,
		metrics: m,
	}
}

func (a *accessGateWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "caconnector", operation, status)
	a.metrics.RecordDuration(ctx, "caconnector", operation, time.Since(start), status)
}

// Save records metrics for connector save operations.
func (a *accessGateWithMetrics) Save(
	ctx context.Context,
	principal *authDomain.Principal,
	input *caDomain.SaveConnectorInput,
) (int64, error) {
	start := time.Now()
	id, err := a.next.Save(ctx, principal, input)
	a.record(ctx, "connector_save", start, err)
	return id, err
}

// List records metrics for connector list operations.
func (a *accessGateWithMetrics) List(
	ctx context.Context,
	principal *authDomain.Principal,
	filter caDomain.ListFilter,
) ([]*caDomain.CAConnector, error) {
	start := time.Now()
	connectors, err := a.next.List(ctx, principal, filter)
	a.record(ctx, "connector_list", start, err)
	return connectors, err
}

// Delete records metrics for connector delete operations.
func (a *accessGateWithMetrics) Delete(
	ctx context.Context,
	principal *authDomain.Principal,
	name string,
) (int64, error) {
	start := time.Now()
	count, err := a.next.Delete(ctx, principal, name)
	a.record(ctx, "connector_delete", start, err)
	return count, err
}

// DescribeType records metrics for type description operations.
func (a *accessGateWithMetrics) DescribeType(
	ctx context.Context,
	principal *authDomain.Principal,
	typeID string,
) (map[string]caDomain.OptionDescription, error) {
	start := time.Now()
	options, err := a.next.DescribeType(ctx, principal, typeID)
	a.record(ctx, "connector_describe_type", start, err)
	return options, err
}
