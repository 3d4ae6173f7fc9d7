package cli

import (
	"fmt"
	"os"

	"github.com/cratekit-labs/cratekit/internal/branding"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` wraps cargo new and enriches the fresh crate with metadata from
your user profile: manifest authors/license/repository fields, a README with a
CI badge, a LICENSE file, a changelog, a GitHub Actions workflow, and
test/bench stubs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
