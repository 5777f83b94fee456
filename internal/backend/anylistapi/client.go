// Package anylistapi implements the service.Service interface over the
// AnyList HTTP API.
package anylistapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"anylist/internal/service"
)

const (
	// DefaultBaseURL is the AnyList API endpoint.
	DefaultBaseURL = "https://www.anylist.com/api/v1"

	// APITimeout is the timeout for API calls.
	APITimeout = 15 * time.Second

	// UploadTimeout is the timeout for photo uploads, which carry the
	// full binary by value.
	UploadTimeout = 60 * time.Second
)

// Client implements service.Service against the AnyList HTTP API.
// One Client owns one session; the embedded http.Client and token
// source make concurrent in-flight operations safe.
type Client struct {
	baseURL  string
	http     *http.Client
	clientID string

	tokens oauth2.TokenSource

	mu    sync.Mutex
	saved service.SavedTokens // snapshot, updated on every refresh
}

// Option customizes a Client. Used by tests to point at a local server.
type Option func(*Client)

// WithBaseURL overrides the API endpoint.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(baseURL, "/") }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// tokenResponse is the auth payload returned by login and refresh.
type tokenResponse struct {
	AccessToken   string `json:"access_token"`
	RefreshToken  string `json:"refresh_token"`
	ExpiresIn     int    `json:"expires_in"`
	UserID        string `json:"user_id"`
	IsPremiumUser bool   `json:"is_premium_user"`
}

// Login authenticates with email and password and returns a Client
// holding a fresh session.
func Login(ctx context.Context, email, password string, opts ...Option) (*Client, error) {
	c := newClient(opts...)

	var resp tokenResponse
	err := c.doUnauthenticated(ctx, http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}

	c.installTokens(resp)
	return c, nil
}

// FromTokens builds a Client from previously saved tokens without any
// network I/O. The access token is treated as expired, so the first
// operation refreshes it and thereby validates the session.
func FromTokens(tokens service.SavedTokens, opts ...Option) (*Client, error) {
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		return nil, fmt.Errorf("missing tokens")
	}

	c := newClient(opts...)
	c.saved = tokens
	initial := &oauth2.Token{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		Expiry:       time.Now(), // force refresh on first use
	}
	c.tokens = oauth2.ReuseTokenSource(initial, &refreshSource{c: c})
	return c, nil
}

func newClient(opts ...Option) *Client {
	c := &Client{
		baseURL:  DefaultBaseURL,
		http:     &http.Client{},
		clientID: uuid.NewString(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// installTokens stores a fresh auth payload and (re)builds the token
// source around it.
func (c *Client) installTokens(resp tokenResponse) {
	c.mu.Lock()
	c.saved = service.SavedTokens{
		AccessToken:   resp.AccessToken,
		RefreshToken:  resp.RefreshToken,
		UserID:        resp.UserID,
		IsPremiumUser: resp.IsPremiumUser,
	}
	c.mu.Unlock()

	initial := &oauth2.Token{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		Expiry:       time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second),
	}
	c.tokens = oauth2.ReuseTokenSource(initial, &refreshSource{c: c})
}

// refreshSource exchanges the refresh token for a new access token.
// oauth2.ReuseTokenSource serializes calls to Token, so no extra
// locking is needed around the exchange itself.
type refreshSource struct {
	c *Client
}

func (s *refreshSource) Token() (*oauth2.Token, error) {
	s.c.mu.Lock()
	refreshToken := s.c.saved.RefreshToken
	s.c.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), APITimeout)
	defer cancel()

	var resp tokenResponse
	err := s.c.doUnauthenticated(ctx, http.MethodPost, "/auth/refresh", map[string]string{
		"refresh_token": refreshToken,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.RefreshToken == "" {
		resp.RefreshToken = refreshToken
	}

	s.c.mu.Lock()
	s.c.saved.AccessToken = resp.AccessToken
	s.c.saved.RefreshToken = resp.RefreshToken
	if resp.UserID != "" {
		s.c.saved.UserID = resp.UserID
	}
	s.c.saved.IsPremiumUser = resp.IsPremiumUser
	s.c.mu.Unlock()

	return &oauth2.Token{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		Expiry:       time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second),
	}, nil
}

// UserID implements service.Service.
func (c *Client) UserID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saved.UserID
}

// IsPremiumUser implements service.Service.
func (c *Client) IsPremiumUser() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saved.IsPremiumUser
}

// ClientIdentifier implements service.Service.
func (c *Client) ClientIdentifier() string {
	return c.clientID
}

// ExportTokens implements service.Service. Local accessor: it returns
// the stored snapshot without touching the network.
func (c *Client) ExportTokens() service.SavedTokens {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saved
}

// do performs an authenticated JSON request against the API.
// body and out may be nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	tok, err := c.tokens.Token()
	if err != nil {
		return wrapError(err)
	}

	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	tok.SetAuthHeader(req)
	req.Header.Set("X-AnyList-Client-Identifier", c.clientID)

	return wrapError(c.send(req, out))
}

// doUnauthenticated performs a JSON request without a bearer token.
// Used for the auth endpoints.
func (c *Client) doUnauthenticated(ctx context.Context, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	return wrapError(c.send(req, out))
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp)
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// apiError carries the HTTP status alongside the server's message.
type apiError struct {
	status  int
	message string
}

func (e *apiError) Error() string {
	if e.message != "" {
		return e.message
	}
	return fmt.Sprintf("HTTP %d", e.status)
}

// statusError decodes the server's error payload from a non-2xx
// response.
func statusError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err := json.Unmarshal(data, &payload); err == nil && payload.Error != "" {
		return &apiError{status: resp.StatusCode, message: payload.Error}
	}
	return &apiError{status: resp.StatusCode}
}

// wrapError maps API failures to short diagnostics.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	if apiErr, ok := err.(*apiError); ok {
		switch apiErr.status {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("token expired or revoked")
		case http.StatusNotFound:
			if apiErr.message != "" {
				return fmt.Errorf("not found: %s", apiErr.message)
			}
			return fmt.Errorf("not found")
		}
		return apiErr
	}

	if strings.Contains(err.Error(), "context deadline exceeded") {
		return fmt.Errorf("request timed out")
	}
	return err
}

// pathEscape escapes an opaque id for use as a path segment.
func pathEscape(id string) string {
	return url.PathEscape(id)
}
