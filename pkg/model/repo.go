package model

// RepoPermission is an access level granted on a repository.
type RepoPermission string

const (
	RepoWrite    RepoPermission = "write"
	RepoAdmin    RepoPermission = "admin"
	RepoMaintain RepoPermission = "maintain"
	RepoTriage   RepoPermission = "triage"
)

// RepoAccess holds the per-team and per-person access grants of a repo.
type RepoAccess struct {
	Teams       map[string]RepoPermission `toml:"teams"`
	Individuals map[string]RepoPermission `toml:"individuals"`
}

// BranchProtection is one branch-protection rule of a repo.
type BranchProtection struct {
	Pattern            string   `toml:"pattern"`
	CIChecks           []string `toml:"ci-checks"`
	DismissStaleReview bool     `toml:"dismiss-stale-review"`
}

// Repo is one repository entry from the data repository.
type Repo struct {
	Org               string             `toml:"org"`
	Name              string             `toml:"name"`
	Description       string             `toml:"description"`
	Bots              []string           `toml:"bots"`
	Access            RepoAccess         `toml:"access"`
	BranchProtections []BranchProtection `toml:"branch-protections"`
}
