package validate

import (
	"sort"
	"strings"

	"github.com/orgtools/teamdir/pkg/model"
)

// checkAlumni ensures the distinguished `alumni` team contains no active
// member, and that nobody is listed there explicitly while already being
// an alumni of another team.
func checkAlumni(data *model.Data, errs *ErrorLog) {
	active, err := data.ActiveMembers()
	if err != nil {
		errs.AddErr(err)
		return
	}
	alumniTeam := data.Team("alumni")
	if alumniTeam == nil {
		return
	}

	members, err := alumniTeam.EffectiveMembers(data)
	if err != nil {
		errs.AddErr(err)
		return
	}
	for _, member := range sortedNames(members) {
		if active[member] {
			errs.Addf("alumni team includes active member '%s'", member)
		}
	}

	// A person marked alumni on some team must not also be explicitly
	// listed on the alumni team. The duplication is attributed to the
	// first team found; once matched, the entry is consumed so later
	// occurrences don't re-report.
	explicit := make(map[string]bool, len(alumniTeam.Members))
	for _, member := range alumniTeam.Members {
		explicit[member] = true
	}
	for _, team := range data.Teams() {
		if team.Name == "alumni" {
			continue
		}
		for _, member := range team.Alumni {
			if explicit[member] {
				delete(explicit, member)
				errs.Addf("alumni team explicitly includes member '%s' who was specified as an alumni already in '%s'", member, team.Name)
			}
		}
	}
}

// checkInactiveMembers ensures every person is referenced by some team
// (active or archived), holds a permission directly, or is an individual
// contributor on some repo. Anything else is orphaned data.
func checkInactiveMembers(data *model.Data, errs *ErrorLog) {
	referenced := make(map[string]bool)
	for _, team := range append(data.Teams(), data.ArchivedTeams()...) {
		members, err := team.EffectiveMembers(data)
		if err != nil {
			errs.AddErr(err)
		} else {
			for member := range members {
				referenced[member] = true
			}
		}
		for _, person := range team.Alumni {
			referenced[person] = true
		}
		for _, list := range team.RawLists {
			for _, person := range list.ExtraPeople {
				referenced[person] = true
			}
		}
	}

	contributors := make(map[string]bool)
	for _, repo := range data.Repos() {
		for person := range repo.Access.Individuals {
			contributors[person] = true
		}
	}

	for _, person := range data.People() {
		if referenced[person.GitHub] {
			continue
		}
		if person.Permissions.HasAny() || contributors[person.GitHub] {
			continue
		}
		errs.Addf("person `%s` is not a member of any team (active or archived), has no permissions, and is not an individual contributor to any repo", person.GitHub)
	}
}

// checkPeopleAddresses ensures declared email addresses look like one.
func checkPeopleAddresses(data *model.Data, errs *ErrorLog) {
	for _, person := range data.People() {
		if person.Email != "" && !strings.Contains(person.Email, "@") {
			errs.Addf("invalid email address of `%s`: %s", person.GitHub, person.Email)
		}
	}
}

// checkDuplicatePermissions ensures nobody holds a permission both
// directly and through a team granting it.
func checkDuplicatePermissions(data *model.Data, errs *ErrorLog) {
	for _, team := range data.Teams() {
		members, err := team.EffectiveMembers(data)
		if err != nil {
			errs.AddErr(err)
			continue
		}
		for _, member := range sortedNames(members) {
			person := data.Person(member)
			if person == nil {
				continue
			}
			for _, permission := range data.Config().AvailablePermissions {
				if team.Permissions.Has(permission) && person.Permissions.Has(permission) {
					errs.Addf("user `%s` has the permission `%s` both explicitly and through the `%s` team",
						member, permission, team.Name)
				}
			}
		}
	}
}

// checkPermissions ensures every granted permission is one of the
// configured available permissions.
func checkPermissions(data *model.Data, errs *ErrorLog) {
	for _, team := range data.Teams() {
		for _, name := range team.Permissions.Unknown(data.Config()) {
			errs.Addf("team `%s` has unknown permission `%s`", team.Name, name)
		}
		for _, name := range team.LeadsPermissions.Unknown(data.Config()) {
			errs.Addf("team `%s` has unknown permission `%s`", team.Name, name)
		}
	}
	for _, person := range data.People() {
		for _, name := range person.Permissions.Unknown(data.Config()) {
			errs.Addf("user `%s` has unknown permission `%s`", person.GitHub, name)
		}
	}
}

func sortedNames(set map[string]bool) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
