package model

import (
	"fmt"
)

// TeamKind classifies a team entry in the data repository.
type TeamKind string

const (
	KindTeam         TeamKind = "team"
	KindWorkingGroup TeamKind = "working-group"
	KindProjectGroup TeamKind = "project-group"
	KindMarkerTeam   TeamKind = "marker-team"
	KindUnknown      TeamKind = "unknown"
)

// String returns the human-readable form used in violation messages.
func (k TeamKind) String() string {
	switch k {
	case KindTeam:
		return "team"
	case KindWorkingGroup:
		return "working group"
	case KindProjectGroup:
		return "project group"
	case KindMarkerTeam:
		return "marker team"
	default:
		return "unknown team kind"
	}
}

// Team is one team entry from the data repository. The leaf-to-root
// hierarchy is expressed through SubteamOf.
type Team struct {
	Name             string         `toml:"name"`
	Kind             TeamKind       `toml:"kind"`
	SubteamOf        string         `toml:"subteam-of"`
	Archived         bool           `toml:"archived"`
	Leads            []string       `toml:"leads"`
	Members          []string       `toml:"members"`
	Alumni           []string       `toml:"alumni"`
	IncludedTeams    []string       `toml:"included-teams"`
	GitHub           *GitHubData    `toml:"github"`
	Website          *WebsiteData   `toml:"website"`
	DiscordRoles     []DiscordRole  `toml:"discord-roles"`
	RawZulipGroups   []RawZulipGroup `toml:"zulip-groups"`
	RawLists         []TeamList     `toml:"lists"`
	Permissions      Permissions    `toml:"permissions"`
	LeadsPermissions Permissions    `toml:"leads-permissions"`
	Rfcbot           *RfcbotData    `toml:"rfcbot"`
}

// GitHubData holds the code-host team mappings of a team.
type GitHubData struct {
	Teams []GitHubTeam `toml:"teams"`
}

// GitHubTeam is one (org, team) pair on the code host.
type GitHubTeam struct {
	Org  string `toml:"org"`
	Name string `toml:"name"`
}

// WebsiteData is the published-site metadata of a team.
type WebsiteData struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Email       string `toml:"email"`
	Repo        string `toml:"repo"`
	ZulipStream string `toml:"zulip-stream"`
}

// DiscordRole binds a team to a role on the chat platform.
type DiscordRole struct {
	Name  string `toml:"name"`
	Color string `toml:"color"`
}

// TeamList is a mailing list bound to a team.
type TeamList struct {
	Address     string   `toml:"address"`
	ExtraPeople []string `toml:"extra-people"`
	ExtraTeams  []string `toml:"extra-teams"`
}

// RawZulipGroup is a team's Zulip user group binding as written in the
// data repository, before member resolution.
type RawZulipGroup struct {
	Name                string   `toml:"name"`
	IncludesTeamMembers *bool    `toml:"includes-team-members"`
	ExtraPeople         []string `toml:"extra-people"`
	ExtraIDs            []int64  `toml:"extra-ids"`
}

// includesTeamMembers defaults to true when the field is omitted.
func (g *RawZulipGroup) includesTeamMembers() bool {
	return g.IncludesTeamMembers == nil || *g.IncludesTeamMembers
}

// RfcbotData is a team's bot-integration configuration.
type RfcbotData struct {
	Label          string   `toml:"label"`
	ExcludeMembers []string `toml:"exclude-members"`
}

// EffectiveMembers resolves the full member set of the team: the explicit
// members plus the members of every included team, transitively. It fails
// when an included team cannot be resolved.
func (t *Team) EffectiveMembers(data *Data) (map[string]bool, error) {
	members := make(map[string]bool)
	if err := t.collectMembers(data, members, nil); err != nil {
		return nil, err
	}
	return members, nil
}

func (t *Team) collectMembers(data *Data, members map[string]bool, visited []string) error {
	for _, v := range visited {
		if v == t.Name {
			// Inclusion cycles are tolerated here; the hierarchy checks
			// report structural problems separately.
			return nil
		}
	}
	visited = append(visited, t.Name)

	for _, m := range t.Members {
		members[m] = true
	}
	for _, included := range t.IncludedTeams {
		other := data.Team(included)
		if other == nil {
			return fmt.Errorf("can't resolve members of team `%s`: included team `%s` doesn't exist", t.Name, included)
		}
		if err := other.collectMembers(data, members, visited); err != nil {
			return err
		}
	}
	return nil
}

// GitHubTeams returns the code-host (org, team) pairs mapped to this team.
// A mapping without an explicit name defaults to the team's own name.
func (t *Team) GitHubTeams() []GitHubTeam {
	if t.GitHub == nil {
		return nil
	}
	out := make([]GitHubTeam, 0, len(t.GitHub.Teams))
	for _, gt := range t.GitHub.Teams {
		if gt.Name == "" {
			gt.Name = t.Name
		}
		out = append(out, gt)
	}
	return out
}

// ZulipGroups resolves the team's Zulip user group bindings into groups
// with materialized member lists. It fails when the team's effective
// membership cannot be resolved.
func (t *Team) ZulipGroups(data *Data) ([]*ZulipGroup, error) {
	if len(t.RawZulipGroups) == 0 {
		return nil, nil
	}

	var groups []*ZulipGroup
	for _, raw := range t.RawZulipGroups {
		group := &ZulipGroup{
			Name:                raw.Name,
			IncludesTeamMembers: raw.includesTeamMembers(),
		}

		if group.IncludesTeamMembers {
			members, err := t.EffectiveMembers(data)
			if err != nil {
				return nil, err
			}
			for _, handle := range sortedKeys(members) {
				group.Members = append(group.Members, zulipMemberFor(data, handle))
			}
		}
		for _, handle := range raw.ExtraPeople {
			// Nonexistent extra people are reported by their own check;
			// group resolution only records what it can see.
			if data.Person(handle) == nil {
				continue
			}
			group.Members = append(group.Members, zulipMemberFor(data, handle))
		}
		for _, id := range raw.ExtraIDs {
			group.Members = append(group.Members, ZulipMemberID{ID: id})
		}

		groups = append(groups, group)
	}
	return groups, nil
}

func zulipMemberFor(data *Data, handle string) ZulipMember {
	if p := data.Person(handle); p != nil && p.ZulipID != nil {
		return ZulipMemberWithID{GitHub: handle, ID: *p.ZulipID}
	}
	return ZulipMemberMissingID{GitHub: handle}
}
