package validate

import (
	"github.com/orgtools/teamdir/pkg/model"
)

// checkRfcbotLabels ensures rfcbot labels are globally unique. The
// seen-labels set lives across the whole iteration, which is why checks
// run strictly in sequence.
func checkRfcbotLabels(data *model.Data, errs *ErrorLog) {
	labels := make(map[string]bool)
	for _, team := range data.Teams() {
		if team.Rfcbot == nil {
			continue
		}
		if labels[team.Rfcbot.Label] {
			errs.Addf("duplicate rfcbot label: %s", team.Rfcbot.Label)
		} else {
			labels[team.Rfcbot.Label] = true
		}
	}
}

// checkRfcbotExcludeMembers ensures exclude-members entries are unique and
// each names a current member of the team.
func checkRfcbotExcludeMembers(data *model.Data, errs *ErrorLog) {
	for _, team := range data.Teams() {
		if team.Rfcbot == nil {
			continue
		}
		members, err := team.EffectiveMembers(data)
		if err != nil {
			errs.AddErr(err)
			continue
		}
		exclude := make(map[string]bool)
		for _, member := range team.Rfcbot.ExcludeMembers {
			if exclude[member] {
				errs.Addf("duplicate member in `%s` rfcbot.exclude-members: %s", team.Name, member)
				continue
			}
			exclude[member] = true
			if !members[member] {
				errs.Addf("person `%s` is not a member of team `%s` (in rfcbot.exclude-members)", member, team.Name)
			}
		}
	}
}
