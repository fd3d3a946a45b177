package app

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"space/gfx"
)

const instrumentationName = "space/app"

// metrics are recorded on the global meter provider, a no-op unless the
// process installs one.
type metrics struct {
	frame     metric.Float64Histogram
	drawCalls metric.Int64Counter
	triangles metric.Int64Counter
	attrs     metric.MeasurementOption
}

func newMetrics() (*metrics, error) {
	m := otel.Meter(instrumentationName)
	var (
		out metrics
		err error
	)
	out.frame, err = m.Float64Histogram(
		"space.frame.duration",
		metric.WithDescription("Time between consecutive frames"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating frame histogram: %w", err)
	}
	out.drawCalls, err = m.Int64Counter(
		"space.draw.calls",
		metric.WithDescription("Draw calls issued"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating draw call counter: %w", err)
	}
	out.triangles, err = m.Int64Counter(
		"space.triangles",
		metric.WithDescription("Triangles submitted"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating triangle counter: %w", err)
	}
	out.attrs = metric.WithAttributes(attribute.String("renderer", "software"))
	return &out, nil
}

func (m *metrics) record(dt float64, st gfx.Stats) {
	ctx := context.Background()
	m.frame.Record(ctx, dt, m.attrs)
	m.drawCalls.Add(ctx, int64(st.DrawCalls), m.attrs)
	m.triangles.Add(ctx, int64(st.Triangles), m.attrs)
}
