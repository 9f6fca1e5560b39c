package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRecorded(t *testing.T) (*Provider, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	p := NewWithTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr)))
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })
	return p, sr
}

func attrs(kvs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value, len(kvs))
	for _, kv := range kvs {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestNew_DisabledWithoutEndpoint(t *testing.T) {
	p, err := New(context.Background(), Options{})
	require.NoError(t, err)
	assert.False(t, p.Enabled())
	assert.NoError(t, p.Shutdown(context.Background()))

	// No-op tracer must not panic.
	p.RecordSend(context.Background(), SendEvent{SessionID: "s", Index: 0})
}

func TestProvider_NilSafe(t *testing.T) {
	var p *Provider
	assert.False(t, p.Enabled())
	assert.NoError(t, p.Shutdown(context.Background()))
	p.RecordSend(context.Background(), SendEvent{})
}

func TestRecordSend_Success(t *testing.T) {
	p, sr := newRecorded(t)
	assert.True(t, p.Enabled())

	p.RecordSend(context.Background(), SendEvent{SessionID: "abc", Index: 2, Length: 5, Policy: "allow-empty"})

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, SpanSend, spans[0].Name())
	got := attrs(spans[0].Attributes())
	assert.Equal(t, "abc", got[AttrSessionID].AsString())
	assert.EqualValues(t, 2, got[AttrMessageIndex].AsInt64())
	assert.EqualValues(t, 5, got[AttrMessageLength].AsInt64())
	assert.Equal(t, "allow-empty", got[AttrSendPolicy].AsString())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
}

func TestRecordSend_Error(t *testing.T) {
	p, sr := newRecorded(t)

	p.RecordSend(context.Background(), SendEvent{SessionID: "abc", Index: -1, Err: errors.New("blank")})

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "blank", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}
