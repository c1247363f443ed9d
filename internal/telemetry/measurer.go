package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Measurer counts an operation and records how long it took, in seconds.
// A Measurer times one operation at a time.
type Measurer struct {
	counter   metric.Int64Counter
	histogram metric.Float64Histogram
	startTime time.Time
}

func NewMeasurer(meter Meter, name string) (*Measurer, error) {
	counter, err := meter.Int64Counter(name)
	if err != nil {
		return nil, err
	}
	histogram, err := meter.Float64Histogram(name+".duration", metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}
	return &Measurer{
		counter:   counter,
		histogram: histogram,
		startTime: time.Now(),
	}, nil
}

func (m *Measurer) Restart() {
	m.startTime = time.Now()
}

func (m *Measurer) Measure(ctx context.Context, attrs ...attribute.KeyValue) {
	set := metric.WithAttributes(attrs...)
	m.counter.Add(ctx, 1, set)
	m.histogram.Record(ctx, time.Since(m.startTime).Seconds(), set)
}
