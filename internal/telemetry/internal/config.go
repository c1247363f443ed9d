package internal

import (
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

type ExportOption int

const (
	ExportOptionNone ExportOption = iota
	ExportOptionGrpc
	// ExportOptionReader collects metrics with Config.Reader, e.g. a manual reader in tests.
	ExportOptionReader
)

const DefaultExportInterval = 10 * time.Second

type Config struct {
	ServiceName    string
	ServiceVersion string

	MetricExportOption ExportOption
	ExportInterval     time.Duration
	Reader             sdkmetric.Reader
}
