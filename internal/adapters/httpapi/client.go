package httpapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/bnema/insightly-cli/internal/logging"
	"github.com/bnema/insightly-cli/internal/ports"
)

const (
	DefaultTimeout = 30 * time.Second
	refreshPath    = "/auth/token/refresh/"
	maxBodyBytes   = 10 << 20
)

var errServerStatus = errors.New("server status")

type Options struct {
	BaseURL     string
	Credentials ports.CredentialStore
	HTTPClient  *http.Client
	Timeout     time.Duration
	// RateLimit caps outgoing requests per second. Zero disables it.
	RateLimit float64
	// Breaker trips after consecutive transport or 5xx failures.
	Breaker   bool
	UserAgent string
}

// Client is the single gateway for API traffic. It attaches the bearer token,
// recovers from expired access tokens and reports failures to subscribers.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	creds     ports.CredentialStore
	limiter   *rate.Limiter
	breaker   *gobreaker.CircuitBreaker[*http.Response]
	refresh   *refresher
	events    *eventBus
}

type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any

	retried bool
	bearer  string
	sent    string
}

func (r *Request) clone() *Request {
	cloned := *r
	cloned.retried = false
	cloned.bearer = ""
	cloned.sent = ""
	return &cloned
}

type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

func NewClient(opts Options) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("base url is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if opts.Credentials == nil {
		return nil, fmt.Errorf("credential store is required")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = "insightly-cli"
	}

	client := &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		http:      httpClient,
		creds:     opts.Credentials,
		refresh:   &refresher{},
		events:    newEventBus(),
	}

	if opts.RateLimit > 0 {
		burst := int(opts.RateLimit)
		if burst < 1 {
			burst = 1
		}
		client.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}

	if opts.Breaker {
		client.breaker = gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
			Name:    "insightly-api",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logging.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
			},
		})
	}

	return client, nil
}

// Subscribe registers handler for notices and session expiry. The returned
// func removes it.
func (c *Client) Subscribe(handler Handler) func() {
	return c.events.subscribe(handler)
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Send(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Send(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

func (c *Client) Patch(ctx context.Context, path string, body any) (*Response, error) {
	return c.Send(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Send(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// Send issues req. A 401 triggers at most one refresh-and-replay for this
// request; concurrent 401s share a single refresh.
func (c *Client) Send(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("nil request")
	}
	return c.send(ctx, req.clone())
}

func (c *Client) send(ctx context.Context, req *Request) (*Response, error) {
	resp, err := c.do(ctx, req)
	if err == nil {
		return resp, nil
	}

	if IsStatus(err, http.StatusUnauthorized) && !req.retried {
		return c.recoverUnauthorized(ctx, req, err)
	}

	c.notify(req, err)
	return nil, err
}

func (c *Client) recoverUnauthorized(ctx context.Context, req *Request, cause error) (*Response, error) {
	req.retried = true

	access, err := c.refresh.await(ctx, req.sent, c.creds.AccessToken, func(ctx context.Context) (string, error) {
		return c.refreshTokens(ctx, cause)
	})
	if err != nil {
		return nil, err
	}

	logging.Debug().Str("method", req.Method).Str("path", req.Path).Msg("replaying request after token refresh")
	req.bearer = access
	return c.send(ctx, req)
}

func (c *Client) do(ctx context.Context, req *Request) (*Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &TransportError{Method: req.Method, Path: req.Path, Err: err}
		}
	}

	token := req.bearer
	if token == "" {
		stored, err := c.creds.AccessToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("load access token: %w", err)
		}
		token = stored
	}
	req.sent = token

	httpReq, err := c.newHTTPRequest(ctx, req, token)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	httpResp, err := c.roundTrip(httpReq)
	if err != nil {
		return nil, &TransportError{Method: req.Method, Path: req.Path, Err: err}
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, maxBodyBytes))
	if err != nil {
		return nil, &TransportError{Method: req.Method, Path: req.Path, Err: fmt.Errorf("read body: %w", err)}
	}

	logging.Debug().
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", httpResp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Bool("retried", req.retried).
		Msg("api request")

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, newStatusError(req.Method, req.Path, httpResp.StatusCode, body)
	}

	return &Response{StatusCode: httpResp.StatusCode, Header: httpResp.Header, Body: body}, nil
}

func (c *Client) newHTTPRequest(ctx context.Context, req *Request, token string) (*http.Request, error) {
	endpoint := c.baseURL + "/" + strings.TrimLeft(req.Path, "/")
	if len(req.Query) > 0 {
		endpoint += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s body: %w", req.Method, req.Path, err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", req.Method, req.Path, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	return httpReq, nil
}

func (c *Client) roundTrip(httpReq *http.Request) (*http.Response, error) {
	if c.breaker == nil {
		return c.http.Do(httpReq)
	}

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		resp, err := c.http.Do(httpReq)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			return resp, errServerStatus
		}
		return resp, nil
	})
	if errors.Is(err, errServerStatus) {
		return resp, nil
	}
	return resp, err
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

type refreshResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}

// refreshTokens exchanges the stored refresh token for a new pair. Any
// failure ends the session.
func (c *Client) refreshTokens(ctx context.Context, cause error) (string, error) {
	refreshToken, err := c.creds.RefreshToken(ctx)
	if err != nil {
		return "", c.expireSession(ctx, fmt.Errorf("load refresh token: %w", err))
	}
	if refreshToken == "" {
		return "", c.expireSession(ctx, fmt.Errorf("%w: %w", ErrNoRefreshToken, cause))
	}

	tokens, err := c.postRefresh(ctx, refreshToken)
	if err != nil {
		return "", c.expireSession(ctx, err)
	}

	next := tokens.Refresh
	if next == "" {
		next = refreshToken
	}
	if err := c.creds.SetTokens(ctx, tokens.Access, next); err != nil {
		return "", c.expireSession(ctx, fmt.Errorf("store refreshed tokens: %w", err))
	}

	logging.Debug().Msg("access token refreshed")
	return tokens.Access, nil
}

// postRefresh bypasses Send so a failing refresh can never recurse.
func (c *Client) postRefresh(ctx context.Context, refreshToken string) (refreshResponse, error) {
	req := &Request{Method: http.MethodPost, Path: refreshPath, Body: refreshRequest{Refresh: refreshToken}}
	httpReq, err := c.newHTTPRequest(ctx, req, "")
	if err != nil {
		return refreshResponse{}, err
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return refreshResponse{}, &TransportError{Method: req.Method, Path: req.Path, Err: err}
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, maxBodyBytes))
	if err != nil {
		return refreshResponse{}, &TransportError{Method: req.Method, Path: req.Path, Err: err}
	}
	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return refreshResponse{}, newStatusError(req.Method, req.Path, httpResp.StatusCode, body)
	}

	var tokens refreshResponse
	if err := json.Unmarshal(body, &tokens); err != nil {
		return refreshResponse{}, fmt.Errorf("decode refresh response: %w", err)
	}
	if tokens.Access == "" {
		return refreshResponse{}, fmt.Errorf("refresh response missing access token")
	}

	return tokens, nil
}

func (c *Client) expireSession(ctx context.Context, cause error) error {
	if err := c.creds.ClearTokens(ctx); err != nil {
		logging.Error().Err(err).Msg("failed to clear credentials after refresh failure")
	}
	logging.Warn().Err(cause).Msg("session expired")

	c.events.emit(Event{Type: EventSessionExpired, Err: cause})
	return fmt.Errorf("%w: %w", ErrSessionExpired, cause)
}

func (c *Client) notify(req *Request, err error) {
	eventType, ok := classify(err)
	if !ok {
		return
	}
	c.events.emit(Event{
		Type:       eventType,
		Method:     req.Method,
		Path:       req.Path,
		StatusCode: StatusCode(err),
		Err:        err,
	})
}

func classify(err error) (EventType, bool) {
	if errors.Is(err, ErrSessionExpired) {
		return "", false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		switch {
		case statusErr.StatusCode >= http.StatusInternalServerError:
			return NoticeServerError, true
		case statusErr.StatusCode == http.StatusForbidden:
			return NoticePermissionDenied, true
		case statusErr.StatusCode == http.StatusTooManyRequests:
			return NoticeRateLimited, true
		}
		return "", false
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		if errors.Is(err, context.Canceled) {
			return "", false
		}
		return NoticeNetworkError, true
	}

	return "", false
}
