// Package client talks to the timers HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

type Timer struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Start       time.Time  `json:"start"`
	End         *time.Time `json:"end"`
	IsActive    bool       `json:"isActive"`
	Duration    *int64     `json:"duration"`
	Progress    int64      `json:"progress"`
}

type StartedTimer struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sessionResponse struct {
	SessionID string `json:"sessionId"`
}

func (c *Client) Signup(ctx context.Context, username, password string) (string, error) {
	return c.authenticate(ctx, "/signup", username, password)
}

func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	return c.authenticate(ctx, "/login", username, password)
}

func (c *Client) authenticate(ctx context.Context, path, username, password string) (string, error) {
	var resp sessionResponse
	if err := c.do(ctx, http.MethodPost, path, "", credentials{Username: username, Password: password}, &resp); err != nil {
		return "", err
	}
	if resp.SessionID == "" {
		return "", fmt.Errorf("%s: empty session in response", path)
	}
	return resp.SessionID, nil
}

func (c *Client) Logout(ctx context.Context, sessionID string) error {
	return c.do(ctx, http.MethodGet, "/logout", sessionID, nil, nil)
}

func (c *Client) ListTimers(ctx context.Context, sessionID string) ([]Timer, error) {
	var timers []Timer
	if err := c.do(ctx, http.MethodGet, "/api/timers", sessionID, nil, &timers); err != nil {
		return nil, err
	}
	return timers, nil
}

func (c *Client) StartTimer(ctx context.Context, sessionID, description string) (*StartedTimer, error) {
	var started StartedTimer
	body := map[string]string{"description": description}
	if err := c.do(ctx, http.MethodPost, "/api/timers", sessionID, body, &started); err != nil {
		return nil, err
	}
	return &started, nil
}

func (c *Client) StopTimer(ctx context.Context, sessionID, timerID string) error {
	return c.do(ctx, http.MethodPost, "/api/timers/"+url.PathEscape(timerID)+"/stop", sessionID, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path, sessionID string, body, out interface{}) error {
	target, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("build url: %w", err)
	}
	if sessionID != "" {
		query := target.Query()
		query.Set("sessionId", sessionID)
		target.RawQuery = query.Encode()
	}

	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	respErr := &ResponseError{Status: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
		respErr.Code = envelope.Error.Code
		respErr.Message = envelope.Error.Message
	}
	return respErr
}
