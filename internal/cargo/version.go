package cargo

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MinVersion is the oldest cargo release the doctor command considers healthy.
const MinVersion = "1.60.0"

// Version runs `cargo --version` and parses the reported release.
func Version(ctx context.Context) (*semver.Version, error) {
	out, err := exec.CommandContext(ctx, "cargo", "--version").Output()
	if err != nil {
		return nil, fmt.Errorf("running cargo --version: %w", err)
	}
	return ParseVersion(string(out))
}

// ParseVersion extracts the semver release from `cargo --version` output,
// e.g. "cargo 1.75.0 (1d8b05cdd 2023-11-20)".
func ParseVersion(output string) (*semver.Version, error) {
	fields := strings.Fields(strings.TrimSpace(output))
	if len(fields) < 2 || fields[0] != "cargo" {
		return nil, fmt.Errorf("unexpected cargo version output %q", strings.TrimSpace(output))
	}
	v, err := semver.NewVersion(strings.TrimPrefix(fields[1], "v"))
	if err != nil {
		return nil, fmt.Errorf("parsing cargo version %q: %w", fields[1], err)
	}
	return v, nil
}

// MeetsMinVersion reports whether v is at least MinVersion.
func MeetsMinVersion(v *semver.Version) bool {
	min := semver.MustParse(MinVersion)
	return v.Compare(min) >= 0
}
