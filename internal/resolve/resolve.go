// Package resolve merges per-invocation flags with profile defaults and
// hard-coded fallbacks into the immutable configuration that drives planning
// and rendering. Precedence is uniform for every field: explicit flag value,
// then profile value, then fallback.
package resolve

import "github.com/cratekit-labs/cratekit/internal/profile"

// Fallback values applied when neither a flag nor the profile provides one.
const (
	DefaultLicense    = "MIT"
	PlaceholderOrg    = "Your Org"
	PlaceholderGithub = "your-github"
)

// Options holds the raw per-invocation inputs from the CLI.
type Options struct {
	ProjectName string
	Bin         bool
	License     string // empty means "not given"
}

// Config is the fully resolved configuration for one scaffold invocation.
// It is constructed once and never mutated afterward.
type Config struct {
	ProjectName  string
	Bin          bool
	License      string // always non-empty
	AuthorName   string // empty when the profile has none
	AuthorEmail  string // empty when the profile has none
	GithubHandle string // empty when the profile has none
	Organization string // always non-empty
}

// Resolve merges CLI options with the profile (which may be nil) into a Config.
func Resolve(opts Options, p *profile.Profile) Config {
	var name, email, github, license, org string
	if p != nil {
		name = p.Name
		email = p.Email
		github = p.Github
		license = p.License
		org = p.Organization
	}

	return Config{
		ProjectName:  opts.ProjectName,
		Bin:          opts.Bin,
		License:      pick(opts.License, license, DefaultLicense),
		AuthorName:   pick("", name, ""),
		AuthorEmail:  pick("", email, ""),
		GithubHandle: pick("", github, ""),
		Organization: pick("", org, PlaceholderOrg),
	}
}

// pick applies the one precedence contract shared by every field:
// explicit flag value > profile value > fallback.
func pick(explicit, fromProfile, fallback string) string {
	if explicit != "" {
		return explicit
	}
	if fromProfile != "" {
		return fromProfile
	}
	return fallback
}
