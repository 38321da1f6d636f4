// Package model holds the entities of the team data repository and the
// read-only accessor surface the validation engine consumes.
package model

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Load reads a data repository from disk and materializes the Data graph.
//
// Expected layout:
//
//	config.toml
//	teams/<name>.toml      (archived = true marks an archived team)
//	people/<github>.toml
//	repos/<org>/<name>.toml
func Load(dir string) (*Data, error) {
	var cfg Config
	if _, err := toml.DecodeFile(filepath.Join(dir, "config.toml"), &cfg); err != nil {
		return nil, fmt.Errorf("loading config.toml: %w", err)
	}

	teams, archived, err := loadTeams(filepath.Join(dir, "teams"))
	if err != nil {
		return nil, err
	}
	people, err := loadPeople(filepath.Join(dir, "people"))
	if err != nil {
		return nil, err
	}
	repos, err := loadRepos(filepath.Join(dir, "repos"))
	if err != nil {
		return nil, err
	}

	return NewData(&cfg, teams, archived, people, repos), nil
}

func loadTeams(dir string) (active, archived []*Team, err error) {
	paths, err := tomlFiles(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("listing teams: %w", err)
	}

	seen := make(map[string]string)
	for _, path := range paths {
		var team Team
		if _, err := toml.DecodeFile(path, &team); err != nil {
			return nil, nil, fmt.Errorf("loading team %s: %w", filepath.Base(path), err)
		}
		if team.Name == "" {
			team.Name = stem(path)
		}
		if team.Kind == "" {
			team.Kind = KindTeam
		}
		if other, ok := seen[team.Name]; ok {
			return nil, nil, fmt.Errorf("team `%s` is defined in both %s and %s", team.Name, other, filepath.Base(path))
		}
		seen[team.Name] = filepath.Base(path)

		if team.Archived {
			archived = append(archived, &team)
		} else {
			active = append(active, &team)
		}
	}
	return active, archived, nil
}

func loadPeople(dir string) ([]*Person, error) {
	paths, err := tomlFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("listing people: %w", err)
	}

	var people []*Person
	seen := make(map[string]string)
	for _, path := range paths {
		var person Person
		if _, err := toml.DecodeFile(path, &person); err != nil {
			return nil, fmt.Errorf("loading person %s: %w", filepath.Base(path), err)
		}
		if person.GitHub == "" {
			person.GitHub = stem(path)
		}
		if other, ok := seen[person.GitHub]; ok {
			return nil, fmt.Errorf("person `%s` is defined in both %s and %s", person.GitHub, other, filepath.Base(path))
		}
		seen[person.GitHub] = filepath.Base(path)
		people = append(people, &person)
	}
	return people, nil
}

func loadRepos(dir string) ([]*Repo, error) {
	orgs, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing repos: %w", err)
	}

	var repos []*Repo
	for _, org := range orgs {
		if !org.IsDir() {
			continue
		}
		paths, err := tomlFiles(filepath.Join(dir, org.Name()))
		if err != nil {
			return nil, fmt.Errorf("listing repos for org %s: %w", org.Name(), err)
		}
		for _, path := range paths {
			var repo Repo
			if _, err := toml.DecodeFile(path, &repo); err != nil {
				return nil, fmt.Errorf("loading repo %s/%s: %w", org.Name(), filepath.Base(path), err)
			}
			if repo.Org == "" {
				repo.Org = org.Name()
			}
			if repo.Name == "" {
				repo.Name = stem(path)
			}
			repos = append(repos, &repo)
		}
	}
	return repos, nil
}

func tomlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}

func stem(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".toml")
}
