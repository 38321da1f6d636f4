package model

// Config is the repository-wide configuration (config.toml): the
// allow-lists and the set of permissions that may be granted.
type Config struct {
	AllowedGitHubOrgs         []string `toml:"allowed-github-orgs"`
	AllowedMailingListDomains []string `toml:"allowed-mailing-list-domains"`
	AvailablePermissions      []string `toml:"permissions"`
}

// AllowsGitHubOrg reports whether the org is on the allow-list.
func (c *Config) AllowsGitHubOrg(org string) bool {
	for _, allowed := range c.AllowedGitHubOrgs {
		if allowed == org {
			return true
		}
	}
	return false
}

// AllowsMailingListDomain reports whether the domain is on the allow-list.
func (c *Config) AllowsMailingListDomain(domain string) bool {
	for _, allowed := range c.AllowedMailingListDomains {
		if allowed == domain {
			return true
		}
	}
	return false
}
