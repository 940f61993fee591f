// Package identity integrates with the hosted identity provider. Sessions
// are created and managed by the provider; this client only asks it whether
// a session token is valid and which user it belongs to.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	coreidentity "jobtrack/src/core/identity"
)

const (
	DefaultURL = "http://localhost:9100"
)

// VerifyRequest represents the request structure for session verification
type VerifyRequest struct {
	Token string `json:"token"`
}

// VerifyResponse represents the response structure from session verification
type VerifyResponse struct {
	UserID string `json:"user_id"`
	Active bool   `json:"active"`
}

// Client represents an identity provider API client
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new identity provider API client
func NewClient(baseURL string, c *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}

	return &Client{
		httpClient: c,
		baseURL:    baseURL,
	}
}

// Verify checks the session token with the provider and returns the user
// identifier bound to it. Inactive or unknown sessions report
// ErrUnauthenticated; transport errors are returned as-is so callers can
// distinguish provider outage from a rejected session.
func (c *Client) Verify(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", coreidentity.ErrUnauthenticated
	}

	body, err := json.Marshal(VerifyRequest{Token: token})
	if err != nil {
		return "", fmt.Errorf("failed to marshal verify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/sessions/verify", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create verify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call identity provider: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusNotFound:
		return "", coreidentity.ErrUnauthenticated
	default:
		return "", fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	var vr VerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return "", fmt.Errorf("failed to decode verify response: %w", err)
	}

	if !vr.Active || vr.UserID == "" {
		return "", coreidentity.ErrUnauthenticated
	}

	return vr.UserID, nil
}
