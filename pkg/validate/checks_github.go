package validate

import (
	"context"
	"sort"

	"github.com/orgtools/teamdir/pkg/model"
)

// checkGitHubUsernames resolves every person's numeric account id against
// the code-host directory and reports handles that no longer match the
// account's current login.
func checkGitHubUsernames(ctx context.Context, data *model.Data, dir GitHubDirectory, errs *ErrorLog) {
	all := data.People()
	people := make(map[int64]*model.Person, len(all))
	ids := make([]int64, 0, len(all))
	for _, person := range all {
		people[person.GitHubID] = person
		ids = append(ids, person.GitHubID)
	}

	usernames, err := dir.Usernames(ctx, ids)
	if err != nil {
		errs.Addf("couldn't verify GitHub usernames: %s", err)
		return
	}
	for _, id := range sortedIDs(usernames) {
		current := usernames[id]
		if original := people[id].GitHub; original != current {
			errs.Addf("user `%s` changed username to `%s`", original, current)
		}
	}
}

func sortedIDs(m map[int64]string) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
