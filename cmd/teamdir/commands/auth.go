package commands

import (
	"fmt"

	"github.com/orgtools/teamdir/pkg/auth"
)

type AuthCmd struct {
	Login  LoginCmd  `cmd:"" help:"Authenticate with GitHub using the device flow."`
	Logout LogoutCmd `cmd:"" help:"Remove stored GitHub credentials."`

	GithubClientID string `env:"TEAMDIR_GITHUB_CLIENT_ID" help:"GitHub OAuth App Client ID." short:"c"`
}

type LoginCmd struct{}

func (c *LoginCmd) Run(ctx *cliCtx, parent *AuthCmd) error {
	if parent.GithubClientID == "" {
		return fmt.Errorf("GitHub Client ID must be provided via --github-client-id flag or TEAMDIR_GITHUB_CLIENT_ID env var")
	}

	provider := auth.NewGithubProvider(auth.Config{GithubClientID: parent.GithubClientID}, ctx.OSKeyring)

	ctx.Logger.Info("Starting GitHub device login flow...")
	if err := provider.Login(ctx); err != nil {
		ctx.Logger.Error("Authentication failed", "error", err)
		return fmt.Errorf("authentication failed: %w", err)
	}
	ctx.Logger.Info("Authentication successful.")
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *cliCtx, parent *AuthCmd) error {
	provider := auth.NewGithubProvider(auth.Config{GithubClientID: parent.GithubClientID}, ctx.OSKeyring)
	if err := provider.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	ctx.Logger.Info("Credentials removed.")
	return nil
}
