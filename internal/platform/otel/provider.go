// Package otel configures OpenTelemetry tracing for site processes.
package otel

import (
	"context"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	// EnvEnabled disables tracing when set to "false".
	EnvEnabled = "JPPF_SITE_OTEL_ENABLED"
	// EnvEndpoint is the OTLP/HTTP collector URL. Tracing stays off while empty.
	EnvEndpoint = "JPPF_SITE_OTEL_ENDPOINT"
)

const instrumentationPrefix = "github.com/jppf-project/site/"

// Setup initialises OpenTelemetry tracing for the given service.
//
// Tracing is opt-in: when JPPF_SITE_OTEL_ENDPOINT is empty or
// JPPF_SITE_OTEL_ENABLED is "false", Setup returns a no-op shutdown function
// and the global provider is left untouched.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }

	if strings.EqualFold(os.Getenv(EnvEnabled), "false") {
		return noop, nil
	}

	endpoint := strings.TrimSpace(os.Getenv(EnvEndpoint))
	if endpoint == "" {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(endpoint),
	)
	if err != nil {
		return noop, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a tracer from the global provider scoped to a package path
// relative to the module root, e.g. Tracer("storage/sqlite").
func Tracer(pkg string) trace.Tracer {
	return otel.Tracer(instrumentationPrefix + strings.TrimPrefix(strings.TrimSpace(pkg), "/"))
}
