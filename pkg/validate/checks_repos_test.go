package validate

import (
	"context"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/orgtools/teamdir/pkg/model"
)

func TestCheckRepos(t *testing.T) {
	cfg := &model.Config{AllowedGitHubOrgs: []string{"acme"}}
	teams := []*model.Team{{
		Name:   "core",
		Kind:   model.KindTeam,
		GitHub: &model.GitHubData{Teams: []model.GitHubTeam{{Org: "acme", Name: "core"}}},
	}}
	people := []*model.Person{person("alice", 1)}

	t.Run("valid repo", func(t *testing.T) {
		data := model.NewData(cfg, teams, nil, people, []*model.Repo{{
			Org:  "acme",
			Name: "tools",
			Access: model.RepoAccess{
				Teams:       map[string]model.RepoPermission{"core": model.RepoWrite},
				Individuals: map[string]model.RepoPermission{"alice": model.RepoTriage},
			},
		}})
		log := new(ErrorLog)
		checkRepos(data, log)
		assert.Equal(t, 0, log.Len())
	})

	t.Run("repo in a disallowed org", func(t *testing.T) {
		data := model.NewData(cfg, teams, nil, people, []*model.Repo{{Org: "evil", Name: "tools"}})
		log := new(ErrorLog)
		checkRepos(data, log)
		assert.Equal(t, []string{"the repo 'tools' is in an invalid org 'evil'"}, log.Messages())
	})

	t.Run("team grant without a matching github team", func(t *testing.T) {
		data := model.NewData(cfg, teams, nil, people, []*model.Repo{{
			Org:    "acme",
			Name:   "tools",
			Access: model.RepoAccess{Teams: map[string]model.RepoPermission{"ops": model.RepoAdmin}},
		}})
		log := new(ErrorLog)
		checkRepos(data, log)
		assert.Equal(t, []string{"access for acme/tools is invalid: 'ops' is not configured as a GitHub team for the 'acme' org"}, log.Messages())
	})

	t.Run("individual grant naming a missing person", func(t *testing.T) {
		data := model.NewData(cfg, teams, nil, people, []*model.Repo{{
			Org:    "acme",
			Name:   "tools",
			Access: model.RepoAccess{Individuals: map[string]model.RepoPermission{"ghost": model.RepoWrite}},
		}})
		log := new(ErrorLog)
		checkRepos(data, log)
		assert.Equal(t, []string{"access for acme/tools is invalid: 'ghost' is not the name of a person in the data repository"}, log.Messages())
	})
}

func TestCheckGitHubUsernamesRenamedAccount(t *testing.T) {
	data := model.NewData(nil, nil, nil,
		[]*model.Person{person("alice", 1), person("bob", 2)},
		nil,
	)
	dir := &fakeGitHub{usernames: map[int64]string{1: "alice", 2: "bobby"}}

	log := new(ErrorLog)
	checkGitHubUsernames(context.Background(), data, dir, log)
	assert.Equal(t, []string{"user `bob` changed username to `bobby`"}, log.Messages())
}
