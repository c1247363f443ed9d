package gateway

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/NilFoundation/ledger-gateway/internal/ledger"
	"github.com/NilFoundation/ledger-gateway/internal/telemetry"
	"github.com/felixge/httpsnoop"
	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "ledgergw"

type gatewayMetrics struct {
	requests      metric.Int64Counter
	duration      metric.Float64Histogram
	contractCalls metric.Int64Counter
}

func newGatewayMetrics(meter telemetry.Meter) (*gatewayMetrics, error) {
	requests, err := meter.Int64Counter("http.requests",
		metric.WithDescription("Number of served HTTP requests"))
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram("http.request.duration",
		metric.WithDescription("Duration of HTTP requests"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}
	contractCalls, err := meter.Int64Counter("contract.calls",
		metric.WithDescription("Number of ledger contract calls"))
	if err != nil {
		return nil, err
	}
	return &gatewayMetrics{
		requests:      requests,
		duration:      duration,
		contractCalls: contractCalls,
	}, nil
}

func (m *gatewayMetrics) recordContractCall(ctx context.Context, method string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	switch {
	case errors.Is(err, ledger.ErrReverted):
		outcome = "reverted"
	case err != nil:
		outcome = "error"
	}
	m.contractCalls.Add(ctx, 1, metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("outcome", outcome),
	))
}

// middleware records request count and duration per route template.
func (m *gatewayMetrics) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stats := httpsnoop.CaptureMetrics(next, w, r)

		route := "unmatched"
		if current := mux.CurrentRoute(r); current != nil {
			if template, err := current.GetPathTemplate(); err == nil {
				route = template
			}
		}
		attrs := metric.WithAttributes(
			attribute.String("method", r.Method),
			attribute.String("route", route),
			attribute.String("status", strconv.Itoa(stats.Code)),
		)
		m.requests.Add(r.Context(), 1, attrs)
		m.duration.Record(r.Context(), stats.Duration.Seconds(), attrs)
	})
}
