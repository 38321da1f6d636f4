package validate

import (
	"regexp"

	"github.com/orgtools/teamdir/pkg/model"
)

var listAddressRe = regexp.MustCompile(`^[a-zA-Z0-9_\.-]+@([a-zA-Z0-9_\.-]+)$`)

// checkListEmailAddresses ensures every member of a team with a mailing
// list has an email address.
func checkListEmailAddresses(data *model.Data, errs *ErrorLog) {
	for _, team := range data.Teams() {
		if len(team.RawLists) == 0 {
			continue
		}
		members, err := team.EffectiveMembers(data)
		if err != nil {
			errs.AddErr(err)
			continue
		}
		for _, member := range sortedNames(members) {
			if person := data.Person(member); person != nil && person.Email == "" {
				errs.Addf("person `%s` is a member of a mailing list but has no email address", person.GitHub)
			}
		}
	}
}

// checkListExtraPeople ensures the extra people of a list exist.
func checkListExtraPeople(data *model.Data, errs *ErrorLog) {
	for _, team := range data.Teams() {
		for _, list := range team.RawLists {
			for _, person := range list.ExtraPeople {
				if data.Person(person) == nil {
					errs.Addf("person `%s` does not exist (in list `%s`)", person, list.Address)
				}
			}
		}
	}
}

// checkListExtraTeams ensures the extra teams of a list exist.
func checkListExtraTeams(data *model.Data, errs *ErrorLog) {
	for _, team := range data.Teams() {
		for _, list := range team.RawLists {
			for _, listTeam := range list.ExtraTeams {
				if data.Team(listTeam) == nil {
					errs.Addf("team `%s` does not exist (in list `%s`)", listTeam, list.Address)
				}
			}
		}
	}
}

// checkListAddresses ensures list addresses are well-formed and on a
// domain the organization owns.
func checkListAddresses(data *model.Data, errs *ErrorLog) {
	for _, team := range data.Teams() {
		for _, list := range team.RawLists {
			captures := listAddressRe.FindStringSubmatch(list.Address)
			if captures == nil {
				errs.Addf("invalid list address: `%s`", list.Address)
				continue
			}
			if !data.Config().AllowsMailingListDomain(captures[1]) {
				errs.Addf("list address on a domain we don't own: `%s`", list.Address)
			}
		}
	}
}
