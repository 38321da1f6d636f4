package commands

import (
	"fmt"

	"github.com/orgtools/teamdir/pkg/validate"
)

type ChecksCmd struct{}

func (c *ChecksCmd) Run(ctx *cliCtx) error {
	local, github, zulipTier := validate.CheckNames()

	fmt.Println("Local checks (always run):")
	for _, name := range local {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println("GitHub checks (need a GitHub token):")
	for _, name := range github {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println("Zulip checks (need Zulip credentials):")
	for _, name := range zulipTier {
		fmt.Printf("  %s\n", name)
	}
	return nil
}
