// Package client implements the HTTP client for the auth server API used by
// the authctl CLI.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// APIError is a non-2xx response from the server, carrying the decoded
// {"detail": "..."} message.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("server returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("%s (status %d)", e.Detail, e.StatusCode)
}

// User is the public account view returned by the server.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FirstName *string   `json:"first_name,omitempty"`
	LastName  *string   `json:"last_name,omitempty"`
	Company   *string   `json:"company,omitempty"`
	Industry  *string   `json:"industry,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenResponse is the envelope both signup and signin return.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// SignUpRequest mirrors the server's signup payload.
type SignUpRequest struct {
	Email     string  `json:"email"`
	Username  string  `json:"username"`
	Password  string  `json:"password"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Company   *string `json:"company,omitempty"`
	Industry  *string `json:"industry,omitempty"`
}

type signInRequest struct {
	EmailOrUsername string `json:"email_or_username"`
	Password        string `json:"password"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// SignUp registers a new account and returns the issued token envelope.
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (*TokenResponse, error) {
	out := &TokenResponse{}
	if err := c.do(ctx, http.MethodPost, "/api/auth/signup", "", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// SignIn authenticates with an email or username plus password.
func (c *Client) SignIn(ctx context.Context, login string, password string) (*TokenResponse, error) {
	out := &TokenResponse{}
	req := signInRequest{EmailOrUsername: login, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/signin", "", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Me resolves an access token to the account it was issued for.
func (c *Client) Me(ctx context.Context, token string) (*User, error) {
	out := &User{}
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", token, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, body any, out any) error {

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var detail struct {
			Detail string `json:"detail"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&detail); err == nil {
			apiErr.Detail = detail.Detail
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
