package transport

import (
	"context"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/dans-knaw/go-dataverse/transport"

// startSpan opens a client span for one dispatch attempt. With no global
// tracer provider installed this is a no-op span.
func (c *Client) startSpan(ctx context.Context, req *Request, u *url.URL, attempt int) (context.Context, trace.Span) {
	tracer := otel.Tracer(tracerName)
	return tracer.Start(ctx, req.Method+" "+u.Path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("url.path", u.Path),
			attribute.Int("dataverse.attempt", attempt),
		),
	)
}

func endSpanStatus(span trace.Span, statusCode int) {
	span.SetAttributes(attribute.Int("http.response.status_code", statusCode))
	if statusCode >= 400 {
		span.SetStatus(codes.Error, "")
	}
}

func endSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
