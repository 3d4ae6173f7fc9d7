package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/cratekit-labs/cratekit/internal/branding"
	"github.com/cratekit-labs/cratekit/internal/cargo"
	"github.com/cratekit-labs/cratekit/internal/manifest"
	"github.com/cratekit-labs/cratekit/internal/profile"
	"github.com/spf13/cobra"
)

var checkManifestPath string

func init() {
	doctorCmd.Flags().StringVar(&checkManifestPath, "check-manifest", "", "Parse a Cargo.toml at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the " + branding.CLIName() + " environment",
	Long:  `Run diagnostic checks on the cargo toolchain and your profile file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		runCargoCheck(cmd.Context(), out)
		runProfileCheck(out)
		if checkManifestPath != "" {
			return runManifestCheck(out, checkManifestPath)
		}
		return nil
	},
}

func runCargoCheck(ctx context.Context, out io.Writer) {
	fmt.Fprintln(out, "Cargo check:")

	path, err := exec.LookPath("cargo")
	if err != nil {
		fmt.Fprintln(out, "  [MISS] cargo not found on PATH")
		return
	}
	fmt.Fprintf(out, "  [ OK ] cargo found at %s\n", path)

	v, err := cargo.Version(ctx)
	if err != nil {
		fmt.Fprintf(out, "  [WARN] could not determine cargo version: %v\n", err)
		return
	}
	if !cargo.MeetsMinVersion(v) {
		fmt.Fprintf(out, "  [WARN] cargo %s is older than %s\n", v, cargo.MinVersion)
		return
	}
	fmt.Fprintf(out, "  [ OK ] cargo %s (>= %s)\n", v, cargo.MinVersion)
}

func runProfileCheck(out io.Writer) {
	fmt.Fprintln(out, "Profile check:")

	path, err := profile.Path()
	if err != nil {
		fmt.Fprintf(out, "  [WARN] cannot resolve profile path: %v\n", err)
		return
	}
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(out, "  [INFO] no profile at %s (scaffolds use built-in defaults)\n", path)
		return
	}

	result, err := profile.Inspect(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %s: %v\n", path, err)
		return
	}
	if !result.Valid {
		fmt.Fprintf(out, "  [FAIL] %s has %d validation issue(s):\n", path, len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Path != "" {
				fmt.Fprintf(out, "    - %s: %s\n", issue.Path, issue.Message)
			} else {
				fmt.Fprintf(out, "    - %s\n", issue.Message)
			}
		}
		return
	}
	fmt.Fprintf(out, "  [ OK ] %s is valid\n", path)
}

func runManifestCheck(out io.Writer, path string) error {
	fmt.Fprintf(out, "Manifest check: %s\n", path)

	m, err := manifest.Parse(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return fmt.Errorf("manifest check failed: %w", err)
	}
	fmt.Fprintf(out, "  [ OK ] %s v%s (edition %s)\n", m.Package.Name, m.Package.Version, m.Package.Edition)
	return nil
}
