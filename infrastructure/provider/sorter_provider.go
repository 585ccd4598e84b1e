package provider

import (
	"TUI_playlist_sorter/internal/core/domain"
	"TUI_playlist_sorter/internal/core/ports"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL     = "http://localhost:5000"
	defaultTimeout     = 30 * time.Second
	defaultSessionPath = "/api/playlists"
	maxResponseBytes   = 32 << 20

	// The auth handshake waits for the user in the browser and sort inserts
	// every item server side.
	defaultLongTimeout = 10 * time.Minute

	requestIDHeader = "X-Request-ID"
)

// Config configures the sorter service client. Zero values get defaults.
type Config struct {
	BaseURL     string
	SessionPath string
	Timeout     time.Duration
	// LongTimeout bounds the login handshake and playlist creation; a
	// negative value leaves them to the caller's context.
	LongTimeout time.Duration
	// RateLimit is the maximum number of requests per second; 0 disables it.
	RateLimit float64
	// HTTPClient overrides the default client. It should carry a cookie jar.
	HTTPClient *http.Client
}

// SorterProvider talks to the playlist sorter HTTP service. The session
// cookie set by the service is kept in the client's cookie jar and sent with
// every request.
type SorterProvider struct {
	baseURL     *url.URL
	sessionPath string
	client      *http.Client
	timeout     time.Duration
	longTimeout time.Duration
	limiter     *rate.Limiter
	log         ports.LoggerPort
}

func NewSorterProvider(cfg Config, logger ports.LoggerPort) (*SorterProvider, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.SessionPath == "" {
		cfg.SessionPath = defaultSessionPath
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.LongTimeout == 0 {
		cfg.LongTimeout = defaultLongTimeout
	}

	baseURL, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid sorter base URL %q: %w", cfg.BaseURL, err)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("invalid sorter base URL %q: scheme and host are required", cfg.BaseURL)
	}

	client := cfg.HTTPClient
	if client == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("error while creating cookie jar: %w", err)
		}
		client = &http.Client{Jar: jar}
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}

	return &SorterProvider{
		baseURL:     baseURL,
		sessionPath: cfg.SessionPath,
		client:      client,
		timeout:     cfg.Timeout,
		longTimeout: cfg.LongTimeout,
		limiter:     limiter,
		log:         logger,
	}, nil
}

// BaseURL returns the service root the provider talks to.
func (s *SorterProvider) BaseURL() string {
	return s.baseURL.String()
}

type apiError struct {
	Error string `json:"error"`
}

// do sends one request bounded by the regular timeout.
func (s *SorterProvider) do(ctx context.Context, method, path string, query url.Values, payload any) (int, []byte, error) {
	return s.send(ctx, s.timeout, method, path, query, payload)
}

// doLong is do for calls that wait on the user or on bulk work server side.
func (s *SorterProvider) doLong(ctx context.Context, method, path string, query url.Values, payload any) (int, []byte, error) {
	return s.send(ctx, s.longTimeout, method, path, query, payload)
}

// send returns the status code and raw body. Only transport failures are
// returned as errors. A non-positive timeout adds no deadline.
func (s *SorterProvider) send(ctx context.Context, timeout time.Duration, method, path string, query url.Values, payload any) (int, []byte, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return 0, nil, fmt.Errorf("rate limiter: %w", err)
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	endpoint := s.baseURL.JoinPath(path)
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("error while encoding request body: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Error("Request to sorter service failed", err, "method", method, "path", path, "request_id", requestID)
		return 0, nil, fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response of %s %s: %w", method, path, err)
	}

	s.log.Debug("Sorter service response", "method", method, "path", path, "status", resp.StatusCode,
		"request_id", requestID, "elapsed", time.Since(started).String())

	return resp.StatusCode, raw, nil
}

// checkStatus maps non-2xx responses onto domain errors.
func checkStatus(status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}

	var apiErr apiError
	_ = json.Unmarshal(body, &apiErr)

	kind := domain.ErrAPIRequest
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		kind = domain.ErrNotAuthenticated
	}

	return &domain.RemoteError{Kind: kind, Status: status, Message: apiErr.Error}
}

func (s *SorterProvider) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	status, body, err := s.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	if err := checkStatus(status, body); err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("error while decoding response of %s: %w", path, err)
	}
	return nil
}
