package dhl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	retrierconfig "orchestrator/pkg/retrier"
	"orchestrator/pkg/retrier/backoff_adapter"
)

const (
	tokenPath    = "/parcel/de/account/auth/ropc/v1/token"
	ordersPath   = "/parcel/de/shipping/v2/orders"
	trackingPath = "/track/shipments"

	apiKeyHeader = "DHL-API-Key"
)

const (
	defaultTimeout     = 30 * time.Second
	defaultTokenTTL    = 3600 * time.Second
	tokenRefreshBefore = 60 * time.Second

	initialInterval = 200 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 10 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
	maxRetries      = 2
)

type HTTPAPIClientConfig struct {
	BaseURL   string
	APIKey    string
	APISecret string
	Username  string
	Password  string
	Timeout   time.Duration
}

// HTTPAPIClient ходит в DHL по HTTP. OAuth токен (password grant) кешируется
// и обновляется за минуту до истечения.
type HTTPAPIClient struct {
	cfg        HTTPAPIClientConfig
	httpClient *http.Client
	retrier    retrier
	now        func() time.Time

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

type Option func(*HTTPAPIClient)

func WithHTTPClient(client *http.Client) Option {
	return func(c *HTTPAPIClient) {
		c.httpClient = client
	}
}

func WithRetrier(r retrier) Option {
	return func(c *HTTPAPIClient) {
		c.retrier = r
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *HTTPAPIClient) {
		c.now = now
	}
}

func NewHTTPAPIClient(cfg HTTPAPIClientConfig, opts ...Option) *HTTPAPIClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	c := &HTTPAPIClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		retrier: backoff_adapter.New(retrierconfig.Config{
			InitialInterval: initialInterval,
			MaxInterval:     maxInterval,
			MaxElapsedTime:  maxElapsedTime,
			Randomization:   randomization,
			Multiplier:      multiplier,
			MaxRetries:      maxRetries,
			ShouldRetry:     isRetryable,
		}),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *HTTPAPIClient) CreateOrder(ctx context.Context, req *OrderRequest) (*OrderResponse, error) {
	query := url.Values{"validate": []string{"false"}}

	var resp OrderResponse
	if err := c.call(ctx, "CreateOrder", http.MethodPost, ordersPath, query, req, true, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPAPIClient) GetLabel(ctx context.Context, shipmentNo string) (*OrderResponse, error) {
	query := url.Values{"shipment": []string{shipmentNo}}

	var resp OrderResponse
	if err := c.call(ctx, "GetLabel", http.MethodGet, ordersPath, query, nil, true, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPAPIClient) CancelOrder(ctx context.Context, shipmentNo string) (*OrderResponse, error) {
	query := url.Values{"shipment": []string{shipmentNo}}

	var resp OrderResponse
	if err := c.call(ctx, "CancelOrder", http.MethodDelete, ordersPath, query, nil, true, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TrackShipment Unified Tracking API авторизуется только заголовком DHL-API-Key.
func (c *HTTPAPIClient) TrackShipment(ctx context.Context, trackingNumber string) (*TrackingResponse, error) {
	query := url.Values{"trackingNumber": []string{trackingNumber}}

	var resp TrackingResponse
	if err := c.call(ctx, "TrackShipment", http.MethodGet, trackingPath, query, nil, false, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPAPIClient) call(
	ctx context.Context,
	method, httpMethod, path string,
	query url.Values,
	body any,
	bearer bool,
	out any,
) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("dhl %s: marshal request: %w", method, err)
		}
	}

	return c.executeWithMetrics(ctx, method, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, httpMethod, c.cfg.BaseURL+path+"?"+query.Encode(), bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("dhl %s: build request: %w", method, err)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set(apiKeyHeader, c.cfg.APIKey)
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		if bearer {
			token, err := c.accessToken(ctx)
			if err != nil {
				return err
			}
			req.Header.Set("Authorization", "Bearer "+token)
		}

		return c.do(req, out)
	})
}

func (c *HTTPAPIClient) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read dhl response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusUnauthorized {
			c.invalidateToken()
		}
		return newAPIError(resp.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode dhl response: %w", err)
	}
	return nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func (c *HTTPAPIClient) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Before(c.tokenExpiry.Add(-tokenRefreshBefore)) {
		return c.token, nil
	}

	form := url.Values{
		"grant_type":    []string{"password"},
		"username":      []string{c.cfg.Username},
		"password":      []string{c.cfg.Password},
		"client_id":     []string{c.cfg.APIKey},
		"client_secret": []string{c.cfg.APISecret},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build dhl token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	var token tokenResponse
	if err := c.do(req, &token); err != nil {
		return "", fmt.Errorf("dhl token: %w", err)
	}
	if token.AccessToken == "" {
		return "", errors.New("dhl token: empty access_token")
	}

	ttl := time.Duration(token.ExpiresIn) * time.Second
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	c.token = token.AccessToken
	c.tokenExpiry = c.now().Add(ttl)

	return c.token, nil
}

func (c *HTTPAPIClient) invalidateToken() {
	if c.mu.TryLock() {
		c.token = ""
		c.mu.Unlock()
	}
}

type errorBody struct {
	Title  string      `json:"title"`
	Detail string      `json:"detail"`
	Status *Status     `json:"status,omitempty"`
	Items  []OrderItem `json:"items,omitempty"`
}

func newAPIError(statusCode int, raw []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Title:      http.StatusText(statusCode),
		Body:       raw,
	}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		apiErr.Detail = strings.TrimSpace(string(raw))
		return apiErr
	}

	if body.Title != "" {
		apiErr.Title = body.Title
	}
	apiErr.Detail = body.Detail
	if body.Status != nil {
		if body.Status.Title != "" {
			apiErr.Title = body.Status.Title
		}
		if body.Status.Detail != "" {
			apiErr.Detail = body.Status.Detail
		}
	}
	if len(body.Items) > 0 && body.Items[0].Sstatus != nil {
		apiErr.ItemStatus = body.Items[0].Sstatus.Detail
		if apiErr.ItemStatus == "" {
			apiErr.ItemStatus = body.Items[0].Sstatus.Title
		}
	}

	return apiErr
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		default:
			return false
		}
	}

	// Сетевые ошибки транспорта считаем временными
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

func (c *HTTPAPIClient) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := c.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	code := httpCode(err)
	GatewayRequestDuration.WithLabelValues(Name, method, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(Name, method, code).Inc()
	}

	return err
}

func httpCode(err error) string {
	if err == nil {
		return "OK"
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return strconv.Itoa(apiErr.StatusCode)
	}
	return "ERROR"
}
