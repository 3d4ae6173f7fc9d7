package cli

import (
	"fmt"
	"io"
	"regexp"
	"time"

	"github.com/cratekit-labs/cratekit/internal/apply"
	"github.com/cratekit-labs/cratekit/internal/cargo"
	"github.com/cratekit-labs/cratekit/internal/plan"
	"github.com/cratekit-labs/cratekit/internal/profile"
	"github.com/cratekit-labs/cratekit/internal/render"
	"github.com/cratekit-labs/cratekit/internal/resolve"
	"github.com/spf13/cobra"
)

// Crate names: lowercase alphanumerics, underscores, hyphens.
var namePattern = regexp.MustCompile(`^[a-z0-9_][a-z0-9_-]*$`)

var (
	newBin     bool
	newLicense string
)

// newRunner is swapped out in tests to avoid invoking the real cargo binary.
var newRunner cargo.Runner = &cargo.ExecRunner{}

func init() {
	newCmd.Flags().BoolVar(&newBin, "bin", false, "Create a binary crate (default is library)")
	newCmd.Flags().StringVar(&newLicense, "license", "", "License override (e.g. MIT, Apache-2.0)")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a crate with profile-based extras",
	Long: `Run cargo new, then enrich the fresh crate with metadata from your
profile (~/.cratekit.toml): manifest authors/license/repository fields, a
README with a CI badge, a LICENSE file, a changelog, a GitHub Actions
workflow, and test/bench stubs. Files that already exist are left alone.

Examples:
  cratekit new my-lib
  cratekit new my-tool --bin --license Apache-2.0`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if !namePattern.MatchString(name) {
			return fmt.Errorf("invalid crate name %q: must match pattern [a-z0-9_][a-z0-9_-]*", name)
		}

		cfg := resolve.Resolve(resolve.Options{
			ProjectName: name,
			Bin:         newBin,
			License:     newLicense,
		}, profile.Load())

		// cargo new must succeed before any enrichment happens.
		if err := newRunner.New(cmd.Context(), name, cfg.Bin); err != nil {
			return err
		}

		steps, err := plan.Build(name)
		if err != nil {
			return err
		}

		now := time.Now()
		contents := make(map[plan.Kind]string, len(steps))
		for _, step := range steps {
			if step.Action == plan.Skip {
				continue
			}
			content, err := render.Render(step.Kind, cfg, now)
			if err != nil {
				return err
			}
			contents[step.Kind] = content
		}

		report, err := apply.Apply(name, steps, contents)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printSteps(out, steps)
		fmt.Fprintf(out, "\nScaffolded project `%s` with license `%s` (%d created, %d skipped).\n",
			name, cfg.License, len(report.Created), len(report.Skipped))
		return nil
	},
}

// printSteps reports each artifact in plan order. Apply executes the whole
// plan or returns an error, so after a successful run the plan's actions are
// exactly what happened on disk.
func printSteps(out io.Writer, steps plan.Plan) {
	for _, step := range steps {
		switch step.Action {
		case plan.AppendFields:
			fmt.Fprintf(out, "  [ ++ ] Updated %s\n", step.Path)
		case plan.Create:
			fmt.Fprintf(out, "  [ OK ] Created %s\n", step.Path)
		case plan.Skip:
			fmt.Fprintf(out, "  [SKIP] %s already exists\n", step.Path)
		}
	}
}
