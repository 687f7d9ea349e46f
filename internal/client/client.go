// Package client is a typed HTTP client for the enrollment API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL matches the server's default port.
const DefaultBaseURL = "http://localhost:5000/api"

// ErrTokenUnreadable means login succeeded but the response had no token.
var ErrTokenUnreadable = errors.New("Login efetuado, mas não foi possível entender o Token")

// Course is a catalog entry as returned by the API.
type Course struct {
	Code string `json:"codigo"`
	Name string `json:"nome"`
}

// APIError is a non-2xx response.
type APIError struct {
	StatusCode int
	Msg        string
}

func (e *APIError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return fmt.Sprintf("servidor respondeu %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// IsUnauthorized reports whether err is a 401 from the API.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// Client calls the API rooted at baseURL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client. A nil httpClient gets a 30 second timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type messageBody struct {
	Msg string `json:"msg"`
}

// Register creates an account and returns the server's confirmation.
func (c *Client) Register(ctx context.Context, name, email, password string) (string, error) {
	var out messageBody
	req := map[string]string{"nome": name, "email": email, "senha": password}
	if err := c.do(ctx, http.MethodPost, "/cadastrar", "", req, &out); err != nil {
		return "", err
	}
	return out.Msg, nil
}

// Token exchanges credentials for an access token.
func (c *Client) Token(ctx context.Context, email, password string) (string, error) {
	var out struct {
		AccessToken string `json:"access_token"`
	}
	req := map[string]string{"email": email, "senha": password}
	if err := c.do(ctx, http.MethodPost, "/token", "", req, &out); err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", ErrTokenUnreadable
	}
	return out.AccessToken, nil
}

// Check returns the email bound to token.
func (c *Client) Check(ctx context.Context, token string) (string, error) {
	var email string
	if err := c.do(ctx, http.MethodGet, "/check", token, nil, &email); err != nil {
		return "", err
	}
	return email, nil
}

// Enroll enrolls the token's user in the course and returns the confirmation.
func (c *Client) Enroll(ctx context.Context, token, courseCode string) (string, error) {
	var out messageBody
	req := map[string]string{"codigo_curso": courseCode}
	if err := c.do(ctx, http.MethodPost, "/inscrever", token, req, &out); err != nil {
		return "", err
	}
	return out.Msg, nil
}

// Courses lists the whole catalog.
func (c *Client) Courses(ctx context.Context, token string) ([]Course, error) {
	var out []Course
	if err := c.do(ctx, http.MethodGet, "/cursos", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MyCourses lists the token's user's enrollments.
func (c *Client) MyCourses(ctx context.Context, token string) ([]Course, error) {
	var out []Course
	if err := c.do(ctx, http.MethodGet, "/cursos/meus", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, data)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		if path == "/token" {
			return ErrTokenUnreadable
		}
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(status int, data []byte) error {
	apiErr := &APIError{StatusCode: status}
	var body messageBody
	if err := json.Unmarshal(data, &body); err == nil && body.Msg != "" {
		apiErr.Msg = body.Msg
	} else if text := strings.TrimSpace(string(data)); text != "" && !strings.HasPrefix(text, "{") {
		apiErr.Msg = text
	}
	return apiErr
}
