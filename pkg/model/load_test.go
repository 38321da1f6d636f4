package model

import (
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestLoad(t *testing.T) {
	data, err := Load(filepath.Join("testdata", "valid"))
	assert.NoError(t, err)

	cfg := data.Config()
	assert.True(t, cfg.AllowsGitHubOrg("acme"))
	assert.False(t, cfg.AllowsGitHubOrg("evil"))
	assert.True(t, cfg.AllowsMailingListDomain("lists.acme.dev"))

	teams := data.Teams()
	assert.Equal(t, 2, len(teams))
	assert.Equal(t, "core", teams[0].Name)
	assert.Equal(t, "wg-tools", teams[1].Name)

	// Kind defaults to "team", name defaults from the filename stem.
	wg := data.Team("wg-tools")
	assert.Equal(t, KindWorkingGroup, wg.Kind)
	assert.Equal(t, KindTeam, data.Team("core").Kind)

	archived := data.ArchivedTeams()
	assert.Equal(t, 1, len(archived))
	assert.Equal(t, "old-guard", archived[0].Name)
	assert.Zero(t, data.Team("old-guard"))

	people := data.People()
	assert.Equal(t, 4, len(people))
	alice := data.Person("alice")
	assert.Equal(t, "Alice Doe", alice.Name)
	assert.Equal(t, int64(1), alice.GitHubID)
	assert.Equal(t, int64(100), *alice.ZulipID)
	assert.Equal(t, int64(200), *data.Person("bob").ZulipID)

	repos := data.Repos()
	assert.Equal(t, 1, len(repos))
	repo := repos[0]
	assert.Equal(t, "acme", repo.Org)
	assert.Equal(t, "tools", repo.Name)
	assert.Equal(t, RepoWrite, repo.Access.Teams["core"])
	assert.Equal(t, RepoTriage, repo.Access.Individuals["carol"])
	assert.Equal(t, "main", repo.BranchProtections[0].Pattern)
}

func TestLoadDuplicateTeam(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "duplicate-team"))
	assert.Error(t, err)
	assert.Equal(t, "team `core` is defined in both core-again.toml and core.toml", err.Error())
}

func TestLoadMissingConfig(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}
