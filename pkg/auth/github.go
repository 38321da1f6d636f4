package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"

	"github.com/orgtools/teamdir/pkg/oskeyring"
)

// ErrTokenNotFound is returned by GetToken when no token is stored.
var ErrTokenNotFound = errors.New("authentication token not found in keyring")

// GithubProvider implements Provider using the GitHub OAuth device flow.
type GithubProvider struct {
	config  Config
	keyring oskeyring.Service
}

// NewGithubProvider creates a GithubProvider storing tokens in the given
// keyring.
func NewGithubProvider(cfg Config, keyring oskeyring.Service) *GithubProvider {
	return &GithubProvider{config: cfg, keyring: keyring}
}

func (p *GithubProvider) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID: p.config.GithubClientID,
		// read:org is enough: the directory checks only resolve accounts.
		Scopes:   []string{"read:org"},
		Endpoint: github.Endpoint,
	}
}

// Login runs the GitHub device flow and stores the resulting token in the
// keyring.
func (p *GithubProvider) Login(ctx context.Context) error {
	if p.config.GithubClientID == "" {
		return errors.New("GitHub Client ID is required for authentication")
	}

	cfg := p.oauthConfig()
	deviceCode, err := cfg.DeviceAuth(ctx)
	if err != nil {
		return fmt.Errorf("requesting device code: %w", err)
	}

	fmt.Printf("Please visit %s and enter the code: %s\n", deviceCode.VerificationURI, deviceCode.UserCode)
	fmt.Println("Waiting for the authentication to complete...")

	token, err := cfg.DeviceAccessToken(ctx, deviceCode)
	if err != nil {
		return fmt.Errorf("getting access token: %w", err)
	}

	if err := p.keyring.Set(ServiceName, GithubToken, token.AccessToken); err != nil {
		return fmt.Errorf("storing token in keyring: %w", err)
	}
	return nil
}

// GetToken retrieves the stored GitHub token.
func (p *GithubProvider) GetToken(ctx context.Context) (string, error) {
	token, err := p.keyring.Get(ServiceName, GithubToken)
	if err != nil {
		if errors.Is(err, oskeyring.ErrNotFound) {
			return "", ErrTokenNotFound
		}
		return "", fmt.Errorf("getting token from keyring: %w", err)
	}
	return token, nil
}

// Logout removes the stored token.
func (p *GithubProvider) Logout(ctx context.Context) error {
	if err := p.keyring.Delete(ServiceName, GithubToken); err != nil {
		return fmt.Errorf("removing token from keyring: %w", err)
	}
	return nil
}

// Ensure GithubProvider implements Provider.
var _ Provider = (*GithubProvider)(nil)
