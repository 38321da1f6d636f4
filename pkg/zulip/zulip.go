// Package zulip is a minimal client for the parts of the Zulip REST API
// the validation engine needs: listing every known user.
package zulip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is used when no realm URL is configured.
const DefaultBaseURL = "https://example.zulipchat.com"

// User is one user record returned by the Zulip API.
type User struct {
	UserID   int64  `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"delivery_email"`
}

// Client talks to a Zulip realm with bot credentials.
type Client struct {
	baseURL    string
	email      string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a Client for the given realm. Empty credentials are
// allowed; RequireAuth reports them before any request is made.
func NewClient(baseURL, email, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		email:   email,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// RequireAuth reports whether credentials are configured. It performs no
// network call; a bad key surfaces as an error on the first query instead.
func (c *Client) RequireAuth(ctx context.Context) error {
	if c.email == "" || c.apiKey == "" {
		return errors.New("no Zulip credentials configured (set ZULIP_EMAIL and ZULIP_API_KEY)")
	}
	return nil
}

// GetUsers returns every user known to the realm.
func (c *Client) GetUsers(ctx context.Context) ([]User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/users", nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.SetBasicAuth(c.email, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying zulip users: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("zulip returned status %d: %s", resp.StatusCode, body)
	}

	var payload struct {
		Members []User `json:"members"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding zulip users: %w", err)
	}
	return payload.Members, nil
}
