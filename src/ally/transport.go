package ally

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jiaming2012/ally-invest/src/responses"
)

var (
	ErrRateLimited = errors.New("too many requests")
	ErrURITooLong  = errors.New("request uri too long, chunk the symbols")
)

// TransportError is a response with a non-2xx status.
type TransportError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
	Body       string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Method, e.URL, e.Status)
}

func (e *TransportError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusRequestURITooLong:
		return ErrURITooLong
	default:
		return nil
	}
}

// Transport performs one signed exchange per call and returns the decoded body.
type Transport interface {
	Get(ctx context.Context, url string) (*responses.Payload, error)
	Post(ctx context.Context, url string, body []byte, header http.Header) (*responses.Payload, error)
	Delete(ctx context.Context, url string) (*responses.Payload, error)
}

type HTTPTransport struct {
	credentials Credentials
	format      responses.Format
	client      *http.Client
	now         func() time.Time
}

func NewHTTPTransport(credentials Credentials, format responses.Format) *HTTPTransport {
	return &HTTPTransport{
		credentials: credentials,
		format:      format,
		client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   10 * time.Second,
		},
		now: time.Now,
	}
}

func (t *HTTPTransport) Get(ctx context.Context, url string) (*responses.Payload, error) {
	return t.do(ctx, http.MethodGet, url, nil, nil)
}

func (t *HTTPTransport) Post(ctx context.Context, url string, body []byte, header http.Header) (*responses.Payload, error) {
	return t.do(ctx, http.MethodPost, url, body, header)
}

func (t *HTTPTransport) Delete(ctx context.Context, url string) (*responses.Payload, error) {
	return t.do(ctx, http.MethodDelete, url, nil, nil)
}

func (t *HTTPTransport) do(ctx context.Context, method, url string, body []byte, header http.Header) (*responses.Payload, error) {
	tracer := otel.GetTracerProvider().Tracer("HTTPTransport")
	ctx, span := tracer.Start(ctx, "HTTPTransport."+method, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	requestID := uuid.New().String()
	span.SetAttributes(attribute.String("request_id", requestID), attribute.String("url", url))

	logger := log.WithContext(ctx).WithFields(log.Fields{
		"request_id": requestID,
		"method":     method,
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("HTTPTransport: failed to create request: %w", err)
	}

	// keys are copied as given; the API expects TKI_OVERRIDE verbatim
	for key, values := range header {
		req.Header[key] = append(req.Header[key], values...)
	}

	auth := t.credentials.Authorize(t.now())

	logger.Tracef("sending request to %s", url)

	res, err := auth.Client(ctx, t.client).Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return nil, fmt.Errorf("HTTPTransport: %s %s: request failed: %w", method, url, err)
	}

	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("HTTPTransport: failed to read response body: %w", err)
	}

	span.SetAttributes(attribute.Int("status_code", res.StatusCode))

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		terr := &TransportError{
			Method:     method,
			URL:        url,
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Body:       string(data),
		}

		logger.Errorf("HTTPTransport: invalid status code: %s", res.Status)
		span.SetStatus(codes.Error, terr.Error())

		return nil, terr
	}

	payload, err := responses.DecodePayload(t.format, data)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("HTTPTransport: %w", err)
	}

	logger.Debugf("received %d bytes from %s", len(data), url)

	return payload, nil
}
