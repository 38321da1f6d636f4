// Package validate implements the consistency checks run against a team
// data repository before it is published.
//
// Checks are grouped into three tiers: local checks that only read the
// data graph, checks that need the GitHub directory, and checks that need
// the Zulip directory. Every check appends human-readable violations to a
// shared ErrorLog and never aborts the run; the runner dedups and sorts
// the collected messages so the report is deterministic.
package validate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/orgtools/teamdir/pkg/model"
	"github.com/orgtools/teamdir/pkg/zulip"
)

// GitHubDirectory is the code-host directory the github tier queries.
type GitHubDirectory interface {
	// RequireAuth reports whether the directory can be queried at all.
	RequireAuth(ctx context.Context) error
	// Usernames maps numeric account ids to current logins. Ids without
	// a live account may be absent from the result.
	Usernames(ctx context.Context, ids []int64) (map[int64]string, error)
}

// ZulipDirectory is the chat-platform directory the zulip tier queries.
type ZulipDirectory interface {
	RequireAuth(ctx context.Context) error
	GetUsers(ctx context.Context) ([]zulip.User, error)
}

type checkFunc func(*model.Data, *ErrorLog)

type githubCheckFunc func(context.Context, *model.Data, GitHubDirectory, *ErrorLog)

type zulipCheckFunc func(context.Context, *model.Data, ZulipDirectory, *ErrorLog)

type check[F any] struct {
	name string
	fn   F
}

// The three registries are static and ordered: skip-by-name and warning
// output reference these names, so they are part of the CLI surface.
var localChecks = []check[checkFunc]{
	{"name-prefixes", checkNamePrefixes},
	{"subteam-hierarchy", checkSubteamHierarchy},
	{"team-leads", checkTeamLeads},
	{"team-members", checkTeamMembers},
	{"alumni", checkAlumni},
	{"inactive-members", checkInactiveMembers},
	{"list-email-addresses", checkListEmailAddresses},
	{"list-extra-people", checkListExtraPeople},
	{"list-extra-teams", checkListExtraTeams},
	{"list-addresses", checkListAddresses},
	{"people-addresses", checkPeopleAddresses},
	{"duplicate-permissions", checkDuplicatePermissions},
	{"permissions", checkPermissions},
	{"rfcbot-labels", checkRfcbotLabels},
	{"rfcbot-exclude-members", checkRfcbotExcludeMembers},
	{"team-names", checkTeamNames},
	{"github-teams", checkGitHubTeams},
	{"zulip-stream-name", checkZulipStreamName},
	{"project-groups-have-parent-teams", checkProjectGroupsHaveParentTeams},
	{"discord-ids", checkDiscordIDs},
	{"zulip-group-ids", checkZulipGroupIDs},
	{"zulip-group-extra-people", checkZulipGroupExtraPeople},
	{"repos", checkRepos},
}

var githubChecks = []check[githubCheckFunc]{
	{"github-usernames", checkGitHubUsernames},
}

var zulipChecks = []check[zulipCheckFunc]{
	{"zulip-users", checkZulipUsers},
}

// CheckNames returns the registered check names per tier, in execution
// order. The CLI uses it so operators know what --skip accepts.
func CheckNames() (local, github, zulipTier []string) {
	for _, c := range localChecks {
		local = append(local, c.name)
	}
	for _, c := range githubChecks {
		github = append(github, c.name)
	}
	for _, c := range zulipChecks {
		zulipTier = append(zulipTier, c.name)
	}
	return local, github, zulipTier
}

// Options configures a validation run.
type Options struct {
	// GitHub backs the directory-dependent tier. May be nil.
	GitHub GitHubDirectory
	// Zulip backs the chat-dependent tier. May be nil.
	Zulip ZulipDirectory
	// Strict makes GitHub directory unavailability fatal instead of a
	// warning. Zulip unavailability never is.
	Strict bool
	// Skip lists check names to skip.
	Skip []string
	// Logger receives skip warnings and the final violation report.
	// Defaults to slog.Default.
	Logger *slog.Logger
}

// Validate runs every registered check against the data graph. It returns
// nil when the data is consistent, and an aggregate error carrying the
// violation count otherwise; the individual violations are logged.
func Validate(ctx context.Context, data *model.Data, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	skip := make(map[string]bool, len(opts.Skip))
	for _, name := range opts.Skip {
		skip[name] = true
	}

	log := new(ErrorLog)

	for _, c := range localChecks {
		if skip[c.name] {
			logger.Warn("skipped check", "check", c.name)
			continue
		}
		c.fn(data, log)
	}

	if err := requireDirectory(ctx, opts.GitHub); err != nil {
		if opts.Strict {
			return fmt.Errorf("GitHub directory is unavailable: %w", err)
		}
		logger.Warn("couldn't perform checks relying on the GitHub API, some errors will not be detected", "cause", err)
	} else {
		for _, c := range githubChecks {
			if skip[c.name] {
				logger.Warn("skipped check", "check", c.name)
				continue
			}
			c.fn(ctx, data, opts.GitHub, log)
		}
	}

	if err := requireZulip(ctx, opts.Zulip); err != nil {
		logger.Warn("couldn't perform checks relying on the Zulip API, some errors will not be detected", "cause", err)
	} else {
		for _, c := range zulipChecks {
			if skip[c.name] {
				logger.Warn("skipped check", "check", c.name)
				continue
			}
			c.fn(ctx, data, opts.Zulip, log)
		}
	}

	messages := log.Messages()
	if len(messages) == 0 {
		return nil
	}
	for _, msg := range messages {
		logger.Error("validation error", "error", msg)
	}
	return fmt.Errorf("%d validation errors found", len(messages))
}

func requireDirectory(ctx context.Context, dir GitHubDirectory) error {
	if dir == nil {
		return errors.New("no GitHub directory configured")
	}
	return dir.RequireAuth(ctx)
}

func requireZulip(ctx context.Context, dir ZulipDirectory) error {
	if dir == nil {
		return errors.New("no Zulip directory configured")
	}
	return dir.RequireAuth(ctx)
}
