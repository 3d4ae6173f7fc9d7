package profile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cratekit-labs/cratekit/internal/branding"
)

// Path returns the location of the profile file.
// It checks the CRATEKIT_PROFILE environment variable first,
// then falls back to ~/.cratekit.toml.
func Path() (string, error) {
	if v := os.Getenv(branding.EnvVar("PROFILE")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.ProfileFile()), nil
}
