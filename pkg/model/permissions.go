package model

import "sort"

// Permissions is a set of named capability grants. A grant written as
// `false` in the data repository is treated as absent.
type Permissions map[string]bool

// Has reports whether the named permission is granted.
func (p Permissions) Has(name string) bool {
	return p[name]
}

// HasAny reports whether any permission is granted.
func (p Permissions) HasAny() bool {
	for _, granted := range p {
		if granted {
			return true
		}
	}
	return false
}

// Unknown returns the granted permission names that are not declared in
// the configuration's available-permission list, sorted for deterministic
// reporting.
func (p Permissions) Unknown(cfg *Config) []string {
	available := make(map[string]bool, len(cfg.AvailablePermissions))
	for _, name := range cfg.AvailablePermissions {
		available[name] = true
	}

	var unknown []string
	for name, granted := range p {
		if granted && !available[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return unknown
}
