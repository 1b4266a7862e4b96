// Package storefront implements the ordering client: the catalog snapshot,
// the in-memory cart with option-based pricing, the auth session lifecycle,
// order submission, and order-history reconciliation.
package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/chmanikanta24/cafe-storefront/internal/domain"
)

// Client talks to the café API. A zero base URL means no remote is
// configured; callers fall back to offline behavior (built-in menu,
// simulated receipts).
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenStore
}

func NewClient(baseURL string, tokens TokenStore) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		tokens:     tokens,
	}
}

// Configured reports whether a remote API base URL is set.
func (c *Client) Configured() bool {
	return c.baseURL != ""
}

func (c *Client) FetchMenu(ctx context.Context) ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	if err := c.request(ctx, http.MethodGet, "/menu", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.CreateOrderResponse, error) {
	var resp domain.CreateOrderResponse
	if err := c.request(ctx, http.MethodPost, "/orders", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) FetchOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.request(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*domain.AuthResponse, error) {
	var resp domain.AuthResponse
	req := domain.LoginRequest{Email: email, Password: password}
	if err := c.request(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Signup(ctx context.Context, name, email, password string) (*domain.AuthResponse, error) {
	var resp domain.AuthResponse
	req := domain.SignupRequest{Email: email, Password: password, Name: name}
	if err := c.request(ctx, http.MethodPost, "/auth/signup", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CurrentUser(ctx context.Context) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	if err := c.request(ctx, http.MethodGet, "/auth/me", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) SubmitContact(ctx context.Context, req domain.ContactRequest) (*domain.ContactResponse, error) {
	var resp domain.ContactResponse
	if err := c.request(ctx, http.MethodPost, "/contact", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) request(ctx context.Context, method, path string, body, out interface{}) error {
	if !c.Configured() {
		return &APIError{Kind: KindTransport, Message: "API base URL not configured"}
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &APIError{Kind: KindValidation, Message: "failed to encode request", Err: err}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return &APIError{Kind: KindTransport, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.tokens.Load(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Kind: KindTransport, Message: "network error", Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return errorFromResponse(res)
	}

	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return &APIError{Kind: KindTransport, Message: "failed to decode response", Err: err}
		}
	}
	return nil
}

// errorFromResponse maps an HTTP failure onto the error taxonomy, preferring
// the server's {"error": ...} message when one is present.
func errorFromResponse(res *http.Response) *APIError {
	message := fmt.Sprintf("Request failed: %d", res.StatusCode)
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err == nil && body.Error != "" {
		message = body.Error
	}

	kind := KindTransport
	switch res.StatusCode {
	case http.StatusBadRequest:
		kind = KindValidation
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = KindAuth
	case http.StatusNotFound:
		kind = KindNotFound
	}

	return &APIError{Kind: kind, Message: message}
}
