// Package observability wires structured logging, Prometheus metrics, and
// OpenTelemetry tracing for the xgbtree CLI. Unlike a long-running server,
// the CLI has no network-reachable OTLP collector to push to, so metrics
// are exported through the Prometheus bridge exporter instead of
// otlpmetricgrpc: a caller that wants them serves the default Prometheus
// registry itself.
package observability

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "xgbtree"
	meterName  = "xgbtree"

	defaultShutdownTimeoutSec = 5
)

// Providers holds the initialized observability providers.
type Providers struct {
	// Tracer is the named tracer for creating spans around a parse.
	Tracer trace.Tracer

	// Meter is the named meter for creating instruments.
	Meter metric.Meter

	// Logger is the structured logger handed to the dispatcher context and
	// every ambient package.
	Logger *slog.Logger

	// Shutdown flushes pending telemetry and releases resources. Must be
	// called before process exit.
	Shutdown func(ctx context.Context) error
}

// Init builds the logger and OTel providers described by cfg.
func Init(cfg Config) (Providers, error) {
	res, err := buildResource(cfg)
	if err != nil {
		return Providers{}, err
	}

	mp, mpShutdown, err := buildMeterProvider(cfg, res)
	if err != nil {
		return Providers{}, fmt.Errorf("build meter provider: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.TraceSampleRatio))),
	)

	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)

	logger := buildLogger(cfg)

	shutdown := func(shutdownCtx context.Context) error {
		deadlineCtx, cancel := context.WithTimeout(shutdownCtx, defaultShutdownTimeoutSec*time.Second)
		defer cancel()

		return errors.Join(tp.Shutdown(deadlineCtx), mpShutdown(deadlineCtx))
	}

	return Providers{
		Tracer:   tp.Tracer(tracerName),
		Meter:    mp.Meter(meterName),
		Logger:   logger,
		Shutdown: shutdown,
	}, nil
}

func buildResource(cfg Config) (*resource.Resource, error) {
	attrs := []resource.Option{
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	}

	if cfg.Environment != "" {
		attrs = append(attrs, resource.WithAttributes(attribute.String("environment", cfg.Environment)))
	}

	res, err := resource.New(context.Background(), attrs...)
	if err != nil {
		return nil, fmt.Errorf("build otel resource: %w", err)
	}

	return res, nil
}

type shutdownFunc func(ctx context.Context) error

func buildMeterProvider(cfg Config, res *resource.Resource) (metric.MeterProvider, shutdownFunc, error) {
	exporter, err := prometheus.New(prometheus.WithNamespace(cfg.ServiceName))
	if err != nil {
		return nil, nil, fmt.Errorf("create prometheus exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
		sdkmetric.WithResource(res),
	)

	return mp, mp.Shutdown, nil
}

func buildLogger(cfg Config) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}

	var handler slog.Handler
	if cfg.LogJSON {
		handler = slog.NewJSONHandler(os.Stderr, handlerOpts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, handlerOpts)
	}

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
