package commands

import (
	"errors"
	"fmt"

	"github.com/orgtools/teamdir/pkg/auth"
	"github.com/orgtools/teamdir/pkg/github"
	"github.com/orgtools/teamdir/pkg/model"
	"github.com/orgtools/teamdir/pkg/validate"
	"github.com/orgtools/teamdir/pkg/zulip"
)

type ValidateCmd struct {
	Path   string   `arg:"" optional:"" default:"." help:"Path to the data repository"`
	Strict bool     `help:"Fail when the GitHub directory is unavailable instead of skipping its checks"`
	Skip   []string `help:"Check names to skip (see 'teamdir checks')" sep:","`

	GithubToken string `env:"GITHUB_TOKEN" help:"GitHub token for the directory-dependent checks."`
	ZulipURL    string `env:"ZULIP_URL" help:"Zulip realm URL."`
	ZulipEmail  string `env:"ZULIP_EMAIL" help:"Zulip bot email."`
	ZulipAPIKey string `env:"ZULIP_API_KEY" help:"Zulip bot API key."`
}

func (c *ValidateCmd) Run(ctx *cliCtx) error {
	data, err := model.Load(c.Path)
	if err != nil {
		return fmt.Errorf("loading data repository: %w", err)
	}

	token := c.GithubToken
	if token == "" {
		// Fall back to a token stored by `teamdir auth login`.
		provider := auth.NewGithubProvider(auth.Config{}, ctx.OSKeyring)
		stored, err := provider.GetToken(ctx)
		switch {
		case err == nil:
			token = stored
		case errors.Is(err, auth.ErrTokenNotFound):
			ctx.Logger.Debug("no GitHub token in keyring")
		default:
			return err
		}
	}

	return validate.Validate(ctx, data, validate.Options{
		GitHub: github.NewDirectory(token),
		Zulip:  zulip.NewClient(c.ZulipURL, c.ZulipEmail, c.ZulipAPIKey),
		Strict: c.Strict,
		Skip:   c.Skip,
		Logger: ctx.Logger,
	})
}
