package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPath_EnvOverride(t *testing.T) {
	t.Setenv("CRATEKIT_PROFILE", "/tmp/test-profile.toml")
	p, err := Path()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != "/tmp/test-profile.toml" {
		t.Errorf("expected /tmp/test-profile.toml, got %s", p)
	}
}

func TestPath_Default(t *testing.T) {
	t.Setenv("CRATEKIT_PROFILE", "")
	p, err := Path()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".cratekit.toml")
	if p != expected {
		t.Errorf("expected %s, got %s", expected, p)
	}
}
