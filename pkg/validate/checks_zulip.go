package validate

import (
	"context"
	"fmt"
	"strings"

	"github.com/orgtools/teamdir/pkg/model"
)

// checkZulipGroupIDs ensures every member of a team whose Zulip groups
// include the team membership has a Zulip id.
func checkZulipGroupIDs(data *model.Data, errs *ErrorLog) {
	for _, team := range data.Teams() {
		groups, err := team.ZulipGroups(data)
		if err != nil {
			errs.AddErr(err)
			continue
		}
		includesMembers := false
		for _, g := range groups {
			if g.IncludesTeamMembers {
				includesMembers = true
				break
			}
		}
		if !includesMembers {
			continue
		}
		members, err := team.EffectiveMembers(data)
		if err != nil {
			errs.AddErr(err)
			continue
		}
		for _, member := range sortedNames(members) {
			if person := data.Person(member); person != nil && person.ZulipID == nil {
				errs.Addf("person `%s` in '%s' is a member of a Zulip user group but has no Zulip id",
					person.GitHub, team.Name)
			}
		}
	}
}

// checkZulipGroupExtraPeople ensures the extra people of a Zulip group
// binding exist.
func checkZulipGroupExtraPeople(data *model.Data, errs *ErrorLog) {
	for _, team := range data.Teams() {
		for _, group := range team.RawZulipGroups {
			for _, person := range group.ExtraPeople {
				if data.Person(person) == nil {
					errs.Addf("person `%s` does not exist (in Zulip group `%s`)", person, group.Name)
				}
			}
		}
	}
}

// checkZulipUsers resolves every Zulip group member against the chat
// directory's known-id set. A member encoded as a handle without an id is
// always reported; id-bearing members are reported only when the id is
// unknown to the directory.
func checkZulipUsers(ctx context.Context, data *model.Data, dir ZulipDirectory, errs *ErrorLog) {
	users, err := dir.GetUsers(ctx)
	if err != nil {
		errs.Addf("couldn't verify Zulip users: %s", err)
		return
	}
	byID := make(map[int64]bool, len(users))
	for _, u := range users {
		byID[u.UserID] = true
	}

	groups, err := data.ZulipGroups()
	if err != nil {
		errs.Addf("couldn't get all the Zulip groups: %s", err)
		return
	}

	for _, name := range sortedKeys(groups) {
		group := groups[name]
		missing := make(map[string]bool)
		for _, member := range group.Members {
			switch m := member.(type) {
			case model.ZulipMemberWithID:
				if !byID[m.ID] {
					missing[m.GitHub] = true
				}
			case model.ZulipMemberID:
				if !byID[m.ID] {
					missing[fmt.Sprintf("ID: %d", m.ID)] = true
				}
			case model.ZulipMemberMissingID:
				missing[m.GitHub] = true
			}
		}
		if len(missing) > 0 {
			errs.Addf("the \"%s\" Zulip group includes members who don't appear on Zulip: %s",
				name, strings.Join(sortedNames(missing), ", "))
		}
	}
}
