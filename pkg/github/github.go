// Package github adapts the GitHub REST API to the directory queries the
// validation engine needs: resolving current logins for numeric user ids.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v71/github"
	"golang.org/x/time/rate"
)

// Directory resolves GitHub account information for the directory-dependent
// checks. Lookups are rate limited client-side so that a large people set
// doesn't trip the API's secondary limits.
type Directory struct {
	client  *gh.Client
	limiter *rate.Limiter
	token   string
}

// NewDirectory creates a Directory authenticated with the given token. An
// empty token is allowed; RequireAuth reports it before any query runs.
func NewDirectory(token string) *Directory {
	client := gh.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	return newDirectory(client, token)
}

// NewDirectoryWithClient creates a Directory around an existing client.
// Tests use it to point the adapter at a stub server.
func NewDirectoryWithClient(client *gh.Client) *Directory {
	return newDirectory(client, "test")
}

func newDirectory(client *gh.Client, token string) *Directory {
	return &Directory{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(5), 10),
		token:   token,
	}
}

// RequireAuth reports whether a token is configured.
func (d *Directory) RequireAuth(ctx context.Context) error {
	if d.token == "" {
		return errors.New("no GitHub token configured (set GITHUB_TOKEN or run `teamdir auth login`)")
	}
	return nil
}

// Usernames maps each id to the account's current login. Ids whose account
// no longer exists are left out of the result rather than failing the
// whole query.
func (d *Directory) Usernames(ctx context.Context, ids []int64) (map[int64]string, error) {
	usernames := make(map[int64]string, len(ids))
	for _, id := range ids {
		if err := d.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		user, resp, err := d.client.Users.GetByID(ctx, id)
		if err != nil {
			if resp != nil && resp.StatusCode == http.StatusNotFound {
				continue
			}
			return nil, fmt.Errorf("resolving GitHub user id %d: %w", id, err)
		}
		usernames[id] = user.GetLogin()
	}
	return usernames, nil
}
