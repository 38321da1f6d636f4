package validate

import (
	"github.com/orgtools/teamdir/pkg/model"
)

// checkRepos ensures every repo lives in an allowed org, every team grant
// references a known code-host team of that org, and every individual
// grant names a person.
func checkRepos(data *model.Data, errs *ErrorLog) {
	githubTeams := data.GitHubTeams()
	for _, repo := range data.Repos() {
		if !data.Config().AllowsGitHubOrg(repo.Org) {
			errs.Addf("the repo '%s' is in an invalid org '%s'", repo.Name, repo.Org)
		}
		for _, teamName := range sortedKeys(repo.Access.Teams) {
			if !githubTeams[model.GitHubTeam{Org: repo.Org, Name: teamName}] {
				errs.Addf("access for %s/%s is invalid: '%s' is not configured as a GitHub team for the '%s' org",
					repo.Org, repo.Name, teamName, repo.Org)
			}
		}
		for _, person := range sortedKeys(repo.Access.Individuals) {
			if data.Person(person) == nil {
				errs.Addf("access for %s/%s is invalid: '%s' is not the name of a person in the data repository",
					repo.Org, repo.Name, person)
			}
		}
	}
}
