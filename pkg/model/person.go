package model

// Person is one person entry from the data repository. The GitHub handle
// is the identity key used everywhere else in the data.
type Person struct {
	Name        string      `toml:"name"`
	GitHub      string      `toml:"github"`
	GitHubID    int64       `toml:"github-id"`
	Email       string      `toml:"email"`
	ZulipID     *int64      `toml:"zulip-id"`
	DiscordID   *int64      `toml:"discord-id"`
	Permissions Permissions `toml:"permissions"`
}
