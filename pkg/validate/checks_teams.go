package validate

import (
	"slices"
	"strings"
	"unicode"

	"github.com/orgtools/teamdir/pkg/model"
)

// Exemption lists are kind-specific: a name on the working-group list is
// only exempt from the working-group prefix rules, not from the
// project-group ones.
var prefixExceptions = map[model.TeamKind][]string{
	model.KindWorkingGroup: {"wg-leads"},
	model.KindProjectGroup: {"project-group-leads"},
}

// checkNamePrefixes ensures working group names start with `wg-` and
// project group names with `project-`, and that no other kind carries
// those prefixes.
func checkNamePrefixes(data *model.Data, errs *ErrorLog) {
	ensurePrefix := func(team *model.Team, kind model.TeamKind, prefix string) {
		if slices.Contains(prefixExceptions[kind], team.Name) {
			return
		}
		if team.Kind == kind && !strings.HasPrefix(team.Name, prefix) {
			errs.Addf("%s `%s`'s name doesn't start with `%s`", kind, team.Name, prefix)
		} else if team.Kind != kind && strings.HasPrefix(team.Name, prefix) {
			errs.Addf("%s `%s` seems like a %s (since it has the `%s` prefix)", team.Kind, team.Name, kind, prefix)
		}
	}
	for _, team := range data.Teams() {
		ensurePrefix(team, model.KindWorkingGroup, "wg-")
		ensurePrefix(team, model.KindProjectGroup, "project-")
	}
}

// checkSubteamHierarchy walks parent links from every team, reporting
// cycles, dangling parents, and nesting deeper than two levels for
// non-team kinds.
func checkSubteamHierarchy(data *model.Data, errs *ErrorLog) {
	for _, team := range data.Teams() {
		cursor := team
		var visited []string
		for cursor.SubteamOf != "" {
			parentName := cursor.SubteamOf
			visited = append(visited, cursor.Name)

			if slices.Contains(visited, parentName) {
				errs.Addf("team `%s` is a subteam of itself: %s => %s",
					parentName, strings.Join(visited, " => "), parentName)
				break
			}

			parent := data.Team(parentName)
			if parent == nil {
				errs.Addf("the parent of team `%s` doesn't exist: `%s`", cursor.Name, parentName)
				break
			}

			// Only top-level teams may have working-group or
			// project-group children.
			if cursor.Kind != model.KindTeam && parent.SubteamOf != "" {
				errs.Addf("%s `%s` can't be a subteam of a subteam (`%s`)", cursor.Kind, cursor.Name, parent.Name)
				break
			}

			cursor = parent
		}
	}
}

// checkTeamLeads ensures team leads are members of the teams they lead.
func checkTeamLeads(data *model.Data, errs *ErrorLog) {
	for _, team := range data.Teams() {
		members, err := team.EffectiveMembers(data)
		if err != nil {
			errs.AddErr(err)
			continue
		}
		for _, lead := range team.Leads {
			if !members[lead] {
				errs.Addf("`%s` leads team `%s`, but is not a member of it", lead, team.Name)
			}
		}
	}
}

// checkTeamMembers ensures every team member resolves to a person.
func checkTeamMembers(data *model.Data, errs *ErrorLog) {
	for _, team := range data.Teams() {
		members, err := team.EffectiveMembers(data)
		if err != nil {
			errs.AddErr(err)
			continue
		}
		for _, member := range sortedNames(members) {
			if data.Person(member) == nil {
				errs.Addf("person `%s` is member of team `%s` but doesn't exist", member, team.Name)
			}
		}
	}
}

// checkTeamNames ensures team names are alphanumeric plus dashes.
func checkTeamNames(data *model.Data, errs *ErrorLog) {
	for _, team := range data.Teams() {
		for _, c := range team.Name {
			if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '-' {
				errs.Addf("team name `%s` can only be alphanumeric with dashes", team.Name)
				break
			}
		}
	}
}

// checkGitHubTeams ensures code-host team mappings are globally unique and
// live in allowed orgs.
func checkGitHubTeams(data *model.Data, errs *ErrorLog) {
	found := make(map[model.GitHubTeam]string)
	for _, team := range data.Teams() {
		for _, gt := range team.GitHubTeams() {
			if !data.Config().AllowsGitHubOrg(gt.Org) {
				errs.Addf("GitHub organization `%s` isn't allowed (in team `%s`)", gt.Org, team.Name)
			}
			if other, ok := found[gt]; ok {
				errs.Addf("GitHub team `%s/%s` is defined for both the `%s` and `%s` teams",
					gt.Org, gt.Name, team.Name, other)
			} else {
				found[gt] = team.Name
			}
		}
	}
}

// checkZulipStreamName ensures nobody pastes a stream URL where the
// stream name belongs.
func checkZulipStreamName(data *model.Data, errs *ErrorLog) {
	for _, team := range data.Teams() {
		if team.Website == nil || team.Website.ZulipStream == "" {
			continue
		}
		if strings.HasPrefix(team.Website.ZulipStream, "https://") {
			errs.Addf("the zulip stream name of the team `%s` is a link: only the name is required", team.Name)
		}
	}
}

// checkProjectGroupsHaveParentTeams ensures each project group declares a
// parent team.
func checkProjectGroupsHaveParentTeams(data *model.Data, errs *ErrorLog) {
	for _, team := range data.Teams() {
		if team.Kind == model.KindProjectGroup && team.SubteamOf == "" {
			errs.Addf("the project group `%s` doesn't have a parent team, but it's required to have one", team.Name)
		}
	}
}

// checkDiscordIDs ensures every member of a team with Discord role
// bindings has a Discord id. The universal `all` team is exempt.
func checkDiscordIDs(data *model.Data, errs *ErrorLog) {
	for _, team := range data.Teams() {
		if len(team.DiscordRoles) == 0 || team.Name == "all" {
			continue
		}
		members, err := team.EffectiveMembers(data)
		if err != nil {
			errs.AddErr(err)
			continue
		}
		var missing []string
		for _, member := range sortedNames(members) {
			if p := data.Person(member); p != nil && p.DiscordID == nil {
				missing = append(missing, member)
			}
		}
		if len(missing) > 0 {
			errs.Addf("the following members of the \"%s\" team do not have discord_ids: %s",
				team.Name, strings.Join(missing, ", "))
		}
	}
}
