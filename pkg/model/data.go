package model

import (
	"sort"
)

// Data is the materialized, read-only graph of the data repository. It is
// built once before validation and never mutated afterwards; all accessors
// iterate in a deterministic (sorted) order.
type Data struct {
	config   *Config
	teams    map[string]*Team
	archived map[string]*Team
	people   map[string]*Person
	repos    []*Repo
}

// NewData assembles a Data graph from already-parsed entities. The loader
// uses it, and tests use it to build fixtures without touching the disk.
func NewData(cfg *Config, teams, archived []*Team, people []*Person, repos []*Repo) *Data {
	if cfg == nil {
		cfg = &Config{}
	}
	d := &Data{
		config:   cfg,
		teams:    make(map[string]*Team, len(teams)),
		archived: make(map[string]*Team, len(archived)),
		people:   make(map[string]*Person, len(people)),
	}
	for _, t := range teams {
		d.teams[t.Name] = t
	}
	for _, t := range archived {
		d.archived[t.Name] = t
	}
	for _, p := range people {
		d.people[p.GitHub] = p
	}
	d.repos = append(d.repos, repos...)
	sort.Slice(d.repos, func(i, j int) bool {
		if d.repos[i].Org != d.repos[j].Org {
			return d.repos[i].Org < d.repos[j].Org
		}
		return d.repos[i].Name < d.repos[j].Name
	})
	return d
}

// Config returns the repository-wide configuration.
func (d *Data) Config() *Config {
	return d.config
}

// Team looks up an active team by name.
func (d *Data) Team(name string) *Team {
	return d.teams[name]
}

// Person looks up a person by GitHub handle.
func (d *Data) Person(handle string) *Person {
	return d.people[handle]
}

// Teams returns all active teams, sorted by name.
func (d *Data) Teams() []*Team {
	return sortedTeams(d.teams)
}

// ArchivedTeams returns all archived teams, sorted by name.
func (d *Data) ArchivedTeams() []*Team {
	return sortedTeams(d.archived)
}

// People returns all people, sorted by GitHub handle.
func (d *Data) People() []*Person {
	out := make([]*Person, 0, len(d.people))
	for _, handle := range sortedKeys(d.people) {
		out = append(out, d.people[handle])
	}
	return out
}

// Repos returns all repositories, sorted by org then name.
func (d *Data) Repos() []*Repo {
	return d.repos
}

// ActiveMembers returns the union of the effective member sets of every
// active team except the distinguished `alumni` team.
func (d *Data) ActiveMembers() (map[string]bool, error) {
	active := make(map[string]bool)
	for _, team := range d.Teams() {
		if team.Name == "alumni" {
			continue
		}
		members, err := team.EffectiveMembers(d)
		if err != nil {
			return nil, err
		}
		for m := range members {
			active[m] = true
		}
	}
	return active, nil
}

// GitHubTeams returns the set of (org, team) pairs derived from every
// active team's code-host mappings.
func (d *Data) GitHubTeams() map[GitHubTeam]bool {
	out := make(map[GitHubTeam]bool)
	for _, team := range d.Teams() {
		for _, gt := range team.GitHubTeams() {
			out[gt] = true
		}
	}
	return out
}

// ZulipGroups resolves every team's Zulip group bindings, merging bindings
// that share a group name. It fails when any team's membership cannot be
// resolved.
func (d *Data) ZulipGroups() (map[string]*ZulipGroup, error) {
	groups := make(map[string]*ZulipGroup)
	for _, team := range d.Teams() {
		teamGroups, err := team.ZulipGroups(d)
		if err != nil {
			return nil, err
		}
		for _, g := range teamGroups {
			if existing, ok := groups[g.Name]; ok {
				existing.Members = append(existing.Members, g.Members...)
				existing.IncludesTeamMembers = existing.IncludesTeamMembers || g.IncludesTeamMembers
			} else {
				groups[g.Name] = g
			}
		}
	}
	return groups, nil
}

func sortedTeams(teams map[string]*Team) []*Team {
	out := make([]*Team, 0, len(teams))
	for _, name := range sortedKeys(teams) {
		out = append(out, teams[name])
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
