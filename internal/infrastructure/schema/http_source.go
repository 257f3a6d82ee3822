// Package schema provides the sources the navigation document is read from.
package schema

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/logging"
)

const (
	// DefaultEndpoint serves the navigation document.
	DefaultEndpoint = "https://portosprivados.org.br/api.php"

	// HTTP client timeout for the document request.
	defaultTimeout = 15 * time.Second

	// Maximum document size (8MB) - prevents unbounded downloads.
	maxDocumentSize = 8 * 1024 * 1024

	defaultUserAgent = "tabshell"
)

// HTTPSource fetches the document with a single GET. There is no retry.
type HTTPSource struct {
	client    *http.Client
	endpoint  string
	userAgent string
}

var _ port.SchemaSource = (*HTTPSource)(nil)

// NewHTTPSource creates a source for endpoint. Zero values select defaults.
func NewHTTPSource(endpoint string, timeout time.Duration, userAgent string) *HTTPSource {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &HTTPSource{
		client:    &http.Client{Timeout: timeout},
		endpoint:  endpoint,
		userAgent: userAgent,
	}
}

// HTTPOption customizes an HTTPSource.
type HTTPOption func(*HTTPSource)

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) HTTPOption {
	return func(s *HTTPSource) {
		if d > 0 {
			s.client.Timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) HTTPOption {
	return func(s *HTTPSource) {
		if ua != "" {
			s.userAgent = ua
		}
	}
}

// WithHTTPClient replaces the client, keeping its own timeout.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(s *HTTPSource) {
		if c != nil {
			s.client = c
		}
	}
}

// Endpoint returns the URL the document is fetched from.
func (s *HTTPSource) Endpoint() string {
	return s.endpoint
}

// Fetch implements port.SchemaSource. Every error wraps port.ErrSchemaFetch.
func (s *HTTPSource) Fetch(ctx context.Context) (any, error) {
	log := logging.FromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", port.ErrSchemaFetch, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", s.userAgent)

	started := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", port.ErrSchemaFetch, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: endpoint returned status %d", port.ErrSchemaFetch, resp.StatusCode)
	}

	var doc any
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxDocumentSize)).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: failed to decode document: %w", port.ErrSchemaFetch, err)
	}

	log.Debug().
		Str(logging.FieldURL, logging.TruncateURL(s.endpoint, logging.URLFieldLen)).
		Dur("elapsed", time.Since(started)).
		Msg("schema document fetched")

	return doc, nil
}
