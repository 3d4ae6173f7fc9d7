// Package render produces the text content of each scaffolded artifact from
// the resolved configuration. Parameterized artifacts (manifest patch, readme,
// license, changelog) interpolate config values; the CI workflow and the
// test/bench stubs are embedded verbatim and identical across invocations.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
	"time"

	"github.com/cratekit-labs/cratekit/internal/plan"
	"github.com/cratekit-labs/cratekit/internal/resolve"
)

//go:embed templates
var templateFS embed.FS

// data holds the template variables for the parameterized artifacts.
type data struct {
	ProjectName  string
	License      string
	Organization string
	BadgeHandle  string // GitHub handle, or the placeholder when unknown
	Attribution  string // pre-rendered "Created by" block, empty without a handle
	Year         int
}

func newData(cfg resolve.Config, now time.Time) data {
	d := data{
		ProjectName:  cfg.ProjectName,
		License:      cfg.License,
		Organization: cfg.Organization,
		BadgeHandle:  resolve.PlaceholderGithub,
		Year:         now.Year(),
	}
	if cfg.GithubHandle != "" {
		d.BadgeHandle = cfg.GithubHandle
		d.Attribution = fmt.Sprintf("Created by [%s](https://github.com/%s)\n\n",
			cfg.GithubHandle, cfg.GithubHandle)
	}
	return d
}

// Render produces the content for one artifact kind. Every config field has a
// default, so rendering never fails for a well-formed config; the error
// covers template execution only.
func Render(kind plan.Kind, cfg resolve.Config, now time.Time) (string, error) {
	switch kind {
	case plan.ManifestPatch:
		return renderManifestPatch(cfg), nil
	case plan.Readme:
		return renderTemplate("readme.md.tmpl", newData(cfg, now))
	case plan.License:
		return renderTemplate("license.tmpl", newData(cfg, now))
	case plan.Changelog:
		return renderTemplate("changelog.md.tmpl", newData(cfg, now))
	case plan.CiWorkflow:
		return readStatic("ci.yml")
	case plan.TestStub:
		return readStatic("basic.rs")
	case plan.BenchStub:
		return readStatic("bench.rs")
	default:
		return "", fmt.Errorf("unknown artifact kind %v", kind)
	}
}

// renderManifestPatch builds the metadata lines appended to Cargo.toml:
// an authors line when the profile names one, the resolved license, and a
// repository URL when the GitHub handle is known.
func renderManifestPatch(cfg resolve.Config) string {
	var b strings.Builder
	if cfg.AuthorName != "" {
		fmt.Fprintf(&b, "authors = [\"%s <%s>\"]\n", cfg.AuthorName, cfg.AuthorEmail)
	}
	fmt.Fprintf(&b, "license = %q\n", cfg.License)
	if cfg.GithubHandle != "" {
		fmt.Fprintf(&b, "repository = \"https://github.com/%s/%s\"\n",
			cfg.GithubHandle, cfg.ProjectName)
	}
	return b.String()
}

func renderTemplate(name string, d data) (string, error) {
	tmplBytes, err := fs.ReadFile(templateFS, "templates/"+name)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Parse(string(tmplBytes))
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, d); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}

func readStatic(name string) (string, error) {
	b, err := fs.ReadFile(templateFS, "templates/"+name)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", name, err)
	}
	return string(b), nil
}
