// Package telemetry exports chat screen traces over OTLP/HTTP.
package telemetry

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const tracerName = "chatscreen/ui"

// Span and attribute names recorded for each send action.
const (
	SpanSend = "chat.send"

	AttrSessionID     = attribute.Key("chat.session.id")
	AttrMessageIndex  = attribute.Key("chat.message.index")
	AttrMessageLength = attribute.Key("chat.message.length")
	AttrSendPolicy    = attribute.Key("chat.send.policy")
)

// Options configures the OTLP exporter.
type Options struct {
	Endpoint    string // host:port or URL; empty disables export
	ServiceName string
	Insecure    bool
}

// SendEvent describes one send action. Index is -1 when the send was refused.
type SendEvent struct {
	SessionID string
	Index     int
	Length    int
	Policy    string
	Err       error
}

// Provider owns the tracer provider. A zero or disabled Provider records nothing.
type Provider struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// New creates an OTLP exporter when opts.Endpoint is set. Otherwise the
// returned Provider uses a no-op tracer.
func New(ctx context.Context, opts Options) (*Provider, error) {
	if opts.Endpoint == "" {
		return Disabled(), nil
	}

	var exOpts []otlptracehttp.Option
	if strings.Contains(opts.Endpoint, "://") {
		exOpts = append(exOpts, otlptracehttp.WithEndpointURL(opts.Endpoint))
	} else {
		exOpts = append(exOpts, otlptracehttp.WithEndpoint(opts.Endpoint))
	}
	if opts.Insecure {
		exOpts = append(exOpts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, exOpts...)
	if err != nil {
		return nil, err
	}

	serviceName := opts.ServiceName
	if serviceName == "" {
		serviceName = "chatscreen"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	return NewWithTracerProvider(sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)), nil
}

// NewWithTracerProvider wraps an existing SDK provider.
func NewWithTracerProvider(tp *sdktrace.TracerProvider) *Provider {
	return &Provider{provider: tp, tracer: tp.Tracer(tracerName)}
}

// Disabled returns a Provider backed by a no-op tracer.
func Disabled() *Provider {
	return &Provider{tracer: noop.NewTracerProvider().Tracer(tracerName)}
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool {
	return p != nil && p.provider != nil
}

// RecordSend emits a chat.send span for ev.
func (p *Provider) RecordSend(ctx context.Context, ev SendEvent) {
	if p == nil || p.tracer == nil {
		return
	}
	_, span := p.tracer.Start(ctx, SpanSend)
	defer span.End()

	span.SetAttributes(
		AttrSessionID.String(ev.SessionID),
		AttrMessageIndex.Int(ev.Index),
		AttrMessageLength.Int(ev.Length),
		AttrSendPolicy.String(ev.Policy),
	)
	if ev.Err != nil {
		span.RecordError(ev.Err)
		span.SetStatus(codes.Error, ev.Err.Error())
	}
}

// Shutdown flushes pending spans and stops the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
