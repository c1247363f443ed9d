package internal

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

// InitMetrics installs the global meter provider. Without an export option the no-op provider stays in place.
func InitMetrics(ctx context.Context, config *Config) error {
	if config == nil || config.MetricExportOption == ExportOptionNone {
		return nil
	}

	reader, err := newReader(ctx, config)
	if err != nil {
		return err
	}

	res, err := resource.Merge(resource.Default(), resource.NewSchemaless(resourceAttributes(config)...))
	if err != nil {
		return fmt.Errorf("failed to initialize metric provider: %w", err)
	}

	otel.SetMeterProvider(sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(res),
	))
	return nil
}

func ShutdownMetrics(ctx context.Context) {
	mp, ok := otel.GetMeterProvider().(*sdkmetric.MeterProvider)
	if !ok {
		return
	}
	_ = mp.Shutdown(ctx)
}

func newReader(ctx context.Context, config *Config) (sdkmetric.Reader, error) {
	switch config.MetricExportOption {
	case ExportOptionGrpc:
		exporter, err := otlpmetricgrpc.New(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize exporter: %w", err)
		}
		interval := config.ExportInterval
		if interval <= 0 {
			interval = DefaultExportInterval
		}
		return sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(interval)), nil
	case ExportOptionReader:
		if config.Reader == nil {
			return nil, errors.New("metric reader is not set")
		}
		return config.Reader, nil
	default:
		return nil, fmt.Errorf("unknown metric export option: %d", config.MetricExportOption)
	}
}

func resourceAttributes(config *Config) []attribute.KeyValue {
	attrs := []attribute.KeyValue{attribute.String("service.name", config.ServiceName)}
	if config.ServiceVersion != "" {
		attrs = append(attrs, attribute.String("service.version", config.ServiceVersion))
	}
	return attrs
}
