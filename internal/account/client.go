package account

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Request-level errors. Anything else comes back wrapped with the provider's
// status and message.
var (
	// ErrInvalidCredentials means the provider rejected the email/password.
	ErrInvalidCredentials = errors.New("account: invalid credentials")
	// ErrNoSession means the token is missing, expired or revoked.
	ErrNoSession = errors.New("account: no active session")
)

// Credentials carries a sign-in or sign-up request. Username is only used
// on sign-up.
type Credentials struct {
	Email    string
	Password string
	Username string
}

// User is the authenticated identity returned by the provider.
type User struct {
	ID       string
	Email    string
	Username string
}

// Session is an authenticated session: the bearer token plus its user.
type Session struct {
	Token string
	User  User
}

// Client talks to the hosted auth provider over REST. All persistence and
// protocol concerns live on the provider's side.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates an auth client for the provider at baseURL.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Provider wire types.
type authResponse struct {
	AccessToken string   `json:"access_token"`
	User        wireUser `json:"user"`
}

type wireUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Metadata struct {
		Username string `json:"username"`
	} `json:"user_metadata"`
}

type authError struct {
	Message string `json:"msg"`
	Error   string `json:"error_description"`
}

// SignUp validates the credentials and registers a new account. Returns the
// fresh session on success.
func (c *Client) SignUp(ctx context.Context, creds Credentials) (*Session, error) {
	if err := ValidateEmail(creds.Email); err != nil {
		return nil, err
	}
	if err := ValidatePassword(creds.Password); err != nil {
		return nil, err
	}
	if err := ValidateUsername(creds.Username); err != nil {
		return nil, err
	}

	body := map[string]any{
		"email":    creds.Email,
		"password": creds.Password,
		"data":     map[string]string{"username": creds.Username},
	}
	var resp authResponse
	if err := c.post(ctx, "/auth/v1/signup", "", body, &resp); err != nil {
		return nil, err
	}
	return sessionFrom(resp), nil
}

// SignIn validates the credentials and exchanges them for a session.
func (c *Client) SignIn(ctx context.Context, creds Credentials) (*Session, error) {
	if err := ValidateEmail(creds.Email); err != nil {
		return nil, err
	}
	if err := ValidatePassword(creds.Password); err != nil {
		return nil, err
	}

	body := map[string]any{
		"email":    creds.Email,
		"password": creds.Password,
	}
	var resp authResponse
	err := c.post(ctx, "/auth/v1/token?grant_type=password", "", body, &resp)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && (statusErr.Status == http.StatusBadRequest || statusErr.Status == http.StatusUnauthorized) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return sessionFrom(resp), nil
}

// SignOut revokes the session token. A missing session is not an error.
func (c *Client) SignOut(ctx context.Context, token string) error {
	err := c.post(ctx, "/auth/v1/logout", token, nil, nil)
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.Status == http.StatusUnauthorized {
		return nil
	}
	return err
}

// GetSession resolves a token to its user, or ErrNoSession.
func (c *Client) GetSession(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, ErrNoSession
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("account: build request: %w", err)
	}
	c.setHeaders(req, token)

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("account: get session: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden {
		return nil, ErrNoSession
	}
	if res.StatusCode != http.StatusOK {
		return nil, readStatusError(res)
	}

	var wu wireUser
	if err := json.NewDecoder(res.Body).Decode(&wu); err != nil {
		return nil, fmt.Errorf("account: decode user: %w", err)
	}
	u := userFrom(wu)
	return &u, nil
}

// post issues a JSON POST and decodes the response into out when non-nil.
func (c *Client) post(ctx context.Context, path, token string, body, out any) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("account: encode request: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("account: build request: %w", err)
	}
	c.setHeaders(req, token)

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("account: request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return readStatusError(res)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("account: decode response: %w", err)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request, token string) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// StatusError is a non-2xx provider response.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("account: provider returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("account: provider returned %d", e.Status)
}

func readStatusError(res *http.Response) error {
	var ae authError
	_ = json.NewDecoder(res.Body).Decode(&ae)
	msg := ae.Message
	if msg == "" {
		msg = ae.Error
	}
	return &StatusError{Status: res.StatusCode, Message: msg}
}

func sessionFrom(resp authResponse) *Session {
	return &Session{
		Token: resp.AccessToken,
		User:  userFrom(resp.User),
	}
}

func userFrom(wu wireUser) User {
	return User{
		ID:       wu.ID,
		Email:    wu.Email,
		Username: wu.Metadata.Username,
	}
}
