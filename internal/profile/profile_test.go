package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing profile fixture: %v", err)
	}
	return path
}

func TestLoadFrom_FullProfile(t *testing.T) {
	path := writeProfile(t, `name = "Alice Smith"
email = "alice@example.com"
github = "alice"
license = "Apache-2.0"
organization = "Acme Inc"
`)

	got := loadFrom(path)
	if got == nil {
		t.Fatal("expected profile, got nil")
	}

	want := &Profile{
		Name:         "Alice Smith",
		Email:        "alice@example.com",
		Github:       "alice",
		License:      "Apache-2.0",
		Organization: "Acme Inc",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("profile mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFrom_PartialProfile(t *testing.T) {
	path := writeProfile(t, `github = "alice"
license = "Apache-2.0"
`)

	got := loadFrom(path)
	if got == nil {
		t.Fatal("expected profile, got nil")
	}
	if got.Github != "alice" || got.License != "Apache-2.0" {
		t.Errorf("unexpected fields: %+v", got)
	}
	if got.Name != "" || got.Email != "" || got.Organization != "" {
		t.Errorf("absent fields should stay empty: %+v", got)
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	if p := loadFrom(filepath.Join(t.TempDir(), "nope.toml")); p != nil {
		t.Errorf("missing file should yield nil, got %+v", p)
	}
}

func TestLoadFrom_MalformedTOML(t *testing.T) {
	path := writeProfile(t, `name = "unclosed`)
	if p := loadFrom(path); p != nil {
		t.Errorf("malformed profile should degrade to nil, got %+v", p)
	}
}

func TestLoadFrom_WrongFieldType(t *testing.T) {
	path := writeProfile(t, `license = 3`)
	if p := loadFrom(path); p != nil {
		t.Errorf("schema-invalid profile should degrade to nil, got %+v", p)
	}
}

func TestLoad_UsesEnvOverride(t *testing.T) {
	path := writeProfile(t, `name = "Bob"`)
	t.Setenv("CRATEKIT_PROFILE", path)

	got := Load()
	if got == nil {
		t.Fatal("expected profile, got nil")
	}
	if got.Name != "Bob" {
		t.Errorf("Name = %q, want %q", got.Name, "Bob")
	}
}
