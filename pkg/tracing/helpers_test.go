package tracing

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opencensus.io/trace"
)

type spanRecorder struct {
	spans []*trace.SpanData
}

func (r *spanRecorder) ExportSpan(s *trace.SpanData) {
	r.spans = append(r.spans, s)
}

func recordSpans(t *testing.T) *spanRecorder {
	t.Helper()
	trace.ApplyConfig(trace.Config{DefaultSampler: trace.AlwaysSample()})
	rec := &spanRecorder{}
	trace.RegisterExporter(rec)
	t.Cleanup(func() { trace.UnregisterExporter(rec) })
	return rec
}

func TestStartServiceSpan(t *testing.T) {
	rec := recordSpans(t)

	ctx, span := StartServiceSpan(context.Background(), "LeadService", "UpdateLead")
	require.NotNil(t, span)
	assert.Same(t, span, trace.FromContext(ctx))
	EndSpan(span, nil)

	if assert.Len(t, rec.spans, 1) {
		assert.Equal(t, "LeadService.UpdateLead", rec.spans[0].Name)
		assert.Equal(t, int32(trace.StatusCodeOK), rec.spans[0].Status.Code)
	}
}

func TestEndSpan_RecordsError(t *testing.T) {
	rec := recordSpans(t)

	_, span := trace.StartSpan(context.Background(), "failing", trace.WithSampler(trace.AlwaysSample()))
	EndSpan(span, errors.New("boom"))

	require.Len(t, rec.spans, 1)
	assert.Equal(t, int32(trace.StatusCodeUnknown), rec.spans[0].Status.Code)
	assert.Equal(t, "boom", rec.spans[0].Status.Message)
}

func TestAddAttribute(t *testing.T) {
	rec := recordSpans(t)

	ctx, span := trace.StartSpan(context.Background(), "attrs", trace.WithSampler(trace.AlwaysSample()))
	AddAttribute(ctx, "lead_id", int64(42))
	AddAttribute(ctx, "page", 3)
	AddAttribute(ctx, "scope", "group")
	AddAttribute(ctx, "archived", true)
	AddAttribute(ctx, "ratio", 0.5)
	span.End()

	require.Len(t, rec.spans, 1)
	attrs := rec.spans[0].Attributes
	assert.Equal(t, int64(42), attrs["lead_id"])
	assert.Equal(t, int64(3), attrs["page"])
	assert.Equal(t, "group", attrs["scope"])
	assert.Equal(t, true, attrs["archived"])
	assert.Equal(t, "0.5", attrs["ratio"])
}

func TestAddAttribute_NoSpan(t *testing.T) {
	assert.NotPanics(t, func() {
		AddAttribute(context.Background(), "key", "value")
		MarkSpanError(context.Background(), errors.New("ignored"))
	})
}

func TestMarkSpanError(t *testing.T) {
	rec := recordSpans(t)

	ctx, span := trace.StartSpan(context.Background(), "mark", trace.WithSampler(trace.AlwaysSample()))
	MarkSpanError(ctx, nil)
	MarkSpanError(ctx, errors.New("lead not found"))
	span.End()

	require.Len(t, rec.spans, 1)
	assert.Equal(t, "lead not found", rec.spans[0].Status.Message)
}

func TestHTTPHandlerOptions(t *testing.T) {
	h := HTTPHandlerOptions()

	assert.True(t, h.IsHealthEndpoint(httptest.NewRequest("GET", "/health", nil)))
	assert.True(t, h.IsHealthEndpoint(httptest.NewRequest("GET", "/db-check", nil)))
	assert.False(t, h.IsHealthEndpoint(httptest.NewRequest("GET", "/api/leads", nil)))
	assert.Equal(t, "POST /api/groups/1/leads", h.FormatSpanName(httptest.NewRequest("POST", "/api/groups/1/leads", nil)))
}
