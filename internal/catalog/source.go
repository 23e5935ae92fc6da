package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/alexisbeaulieu97/themeswitch/internal/ports"
	apperrors "github.com/alexisbeaulieu97/themeswitch/pkg/errors"
)

// DefaultEndpoint is the public product listing used when none is configured.
const DefaultEndpoint = "https://fakestoreapi.com/products"

// maxBodyBytes bounds the product payload read from the upstream API.
const maxBodyBytes = 8 << 20

// ProductSource fetches the complete product collection.
type ProductSource interface {
	Fetch(ctx context.Context) ([]Product, error)
}

// HTTPSource fetches products from a JSON endpoint with a single GET. It never
// retries and sends no pagination or query parameters.
type HTTPSource struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
	logger     ports.Logger
}

// HTTPOption customises an HTTPSource.
type HTTPOption func(*HTTPSource)

// WithHTTPClient replaces the default client, mainly for tests.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(s *HTTPSource) {
		if client != nil {
			s.httpClient = client
		}
	}
}

// WithUserAgent sets the User-Agent header sent upstream.
func WithUserAgent(ua string) HTTPOption {
	return func(s *HTTPSource) {
		s.userAgent = ua
	}
}

// NewHTTPSource creates a source for endpoint. A non-positive timeout falls
// back to 30 seconds.
func NewHTTPSource(endpoint string, timeout time.Duration, logger ports.Logger, opts ...HTTPOption) *HTTPSource {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          4,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	s := &HTTPSource{
		endpoint:  endpoint,
		userAgent: "themeswitch",
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Endpoint returns the configured product URL.
func (s *HTTPSource) Endpoint() string {
	return s.endpoint
}

// Fetch performs the GET and decodes and validates the product array.
func (s *HTTPSource) Fetch(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return nil, apperrors.NewFetchError(s.endpoint, 0, fmt.Errorf("create GET request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	started := time.Now()
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewFetchError(s.endpoint, 0, err)
	}
	defer resp.Body.Close()

	if s.logger != nil {
		s.logger.Debug(ctx, "product request completed",
			"endpoint", s.endpoint,
			"status", resp.StatusCode,
			"duration_ms", time.Since(started).Milliseconds(),
		)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, apperrors.NewFetchError(s.endpoint, resp.StatusCode, nil)
	}

	var products []Product
	decoder := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes))
	if err := decoder.Decode(&products); err != nil {
		return nil, apperrors.NewDecodeError(s.endpoint, 0, err)
	}
	if products == nil {
		return nil, apperrors.NewDecodeError(s.endpoint, 0, fmt.Errorf("expected a JSON array of products"))
	}

	if err := ValidateProducts(products); err != nil {
		return nil, err
	}

	return products, nil
}

var _ ProductSource = (*HTTPSource)(nil)
