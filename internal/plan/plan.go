// Package plan decides, per artifact, whether scaffolding should create a new
// file, skip an existing one, or append metadata fields into the crate
// manifest. Planning only reads the filesystem (existence checks); all writes
// happen later in the apply package.
package plan

import (
	"fmt"
	"os"
	"path/filepath"
)

// Kind identifies one generated artifact.
type Kind int

const (
	ManifestPatch Kind = iota
	Readme
	License
	Changelog
	CiWorkflow
	TestStub
	BenchStub
)

var kindNames = map[Kind]string{
	ManifestPatch: "manifest",
	Readme:        "readme",
	License:       "license",
	Changelog:     "changelog",
	CiWorkflow:    "ci-workflow",
	TestStub:      "test-stub",
	BenchStub:     "bench-stub",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Action is the planner's decision for one artifact.
type Action int

const (
	Create Action = iota
	Skip
	AppendFields
)

func (a Action) String() string {
	switch a {
	case Create:
		return "create"
	case Skip:
		return "skip"
	case AppendFields:
		return "append"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Step pairs an artifact with its decided action and its path relative to
// the crate directory.
type Step struct {
	Kind   Kind
	Action Action
	Path   string
}

// Plan is the ordered decision set produced before any write occurs. The
// manifest patch always comes first; the remaining artifacts are
// order-independent.
type Plan []Step

// ArtifactPath returns the path of an artifact relative to the crate root.
func ArtifactPath(k Kind) string {
	switch k {
	case ManifestPatch:
		return "Cargo.toml"
	case Readme:
		return "README.md"
	case License:
		return "LICENSE"
	case Changelog:
		return "CHANGELOG.md"
	case CiWorkflow:
		return filepath.Join(".github", "workflows", "ci.yml")
	case TestStub:
		return filepath.Join("tests", "basic.rs")
	case BenchStub:
		return filepath.Join("benches", "bench.rs")
	default:
		return ""
	}
}

// creatableKinds lists every artifact subject to the exists-means-skip rule,
// in plan order.
var creatableKinds = []Kind{Readme, License, Changelog, CiWorkflow, TestStub, BenchStub}

// Build produces the plan for targetDir. The manifest patch is always
// AppendFields: cargo new has just generated Cargo.toml, so it cannot yet
// contain the fields the patch adds. Re-running against the same manifest
// duplicates those fields; that non-idempotence is deliberate. Every other
// artifact is Skip when its path already exists, Create otherwise, which
// keeps re-runs non-destructive.
func Build(targetDir string) (Plan, error) {
	p := Plan{{Kind: ManifestPatch, Action: AppendFields, Path: ArtifactPath(ManifestPatch)}}

	for _, k := range creatableKinds {
		rel := ArtifactPath(k)
		action := Create
		if _, err := os.Stat(filepath.Join(targetDir, rel)); err == nil {
			action = Skip
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("checking %s: %w", rel, err)
		}
		p = append(p, Step{Kind: k, Action: action, Path: rel})
	}

	return p, nil
}
