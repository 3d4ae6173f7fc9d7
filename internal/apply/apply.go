// Package apply executes a scaffold plan against the crate directory: it
// writes new artifact files, appends the metadata patch to the manifest, and
// reports what happened per artifact. Failures are reported with the artifact
// that failed; already-written artifacts stay on disk (no rollback).
package apply

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cratekit-labs/cratekit/internal/plan"
)

// Report summarizes what Apply did, keyed by artifact kind in plan order.
type Report struct {
	Created  []plan.Kind
	Skipped  []plan.Kind
	Appended []plan.Kind
}

// Apply executes the plan in order. contents maps each non-skipped artifact
// kind to its rendered text. The first I/O failure aborts the run; entries
// completed before it remain on disk.
func Apply(targetDir string, p plan.Plan, contents map[plan.Kind]string) (*Report, error) {
	report := &Report{}

	for _, step := range p {
		path := filepath.Join(targetDir, step.Path)

		switch step.Action {
		case plan.Skip:
			report.Skipped = append(report.Skipped, step.Kind)

		case plan.Create:
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return report, fmt.Errorf("creating directory for %s: %w", step.Kind, err)
			}
			if err := os.WriteFile(path, []byte(contents[step.Kind]), 0644); err != nil {
				return report, fmt.Errorf("writing %s: %w", step.Kind, err)
			}
			report.Created = append(report.Created, step.Kind)

		case plan.AppendFields:
			existing, err := os.ReadFile(path)
			if err != nil {
				return report, fmt.Errorf("reading %s: %w", step.Kind, err)
			}
			patched := append(existing, []byte(contents[step.Kind])...)
			if err := os.WriteFile(path, patched, 0644); err != nil {
				return report, fmt.Errorf("rewriting %s: %w", step.Kind, err)
			}
			report.Appended = append(report.Appended, step.Kind)

		default:
			return report, fmt.Errorf("unknown action %v for %s", step.Action, step.Kind)
		}
	}

	return report, nil
}
