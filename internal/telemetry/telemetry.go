package telemetry

import (
	"context"

	"github.com/NilFoundation/ledger-gateway/internal/telemetry/internal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

type (
	Config       = internal.Config
	ExportOption = internal.ExportOption

	Meter = metric.Meter
)

const (
	ExportOptionNone   = internal.ExportOptionNone
	ExportOptionGrpc   = internal.ExportOptionGrpc
	ExportOptionReader = internal.ExportOptionReader
)

func Init(ctx context.Context, config *Config) error {
	return internal.InitMetrics(ctx, config)
}

// Shutdown flushes and stops the meter provider installed by Init.
func Shutdown(ctx context.Context) {
	internal.ShutdownMetrics(ctx)
}

func NewMeter(name string) Meter {
	return otel.Meter(name)
}
