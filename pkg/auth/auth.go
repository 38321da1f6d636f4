package auth

import "context"

const (
	// ServiceName namespaces teamdir's entries in the OS keyring.
	ServiceName = "teamdir"
	// GithubToken is the keyring key holding the GitHub access token.
	GithubToken = "github-token"
)

// Provider is an authentication flow that produces and stores a token for
// the code-host directory.
type Provider interface {
	// Login runs the authentication flow and stores the token.
	Login(ctx context.Context) error
	// GetToken retrieves the stored token.
	GetToken(ctx context.Context) (string, error)
	// Logout removes the stored token.
	Logout(ctx context.Context) error
}

// Config holds configuration for the auth package.
type Config struct {
	GithubClientID string
}
