package cargo

import (
	"testing"

	"github.com/Masterminds/semver/v3"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    string
		wantErr bool
	}{
		{"stable", "cargo 1.75.0 (1d8b05cdd 2023-11-20)\n", "1.75.0", false},
		{"bare", "cargo 1.60.0", "1.60.0", false},
		{"nightly", "cargo 1.82.0-nightly (ba8b39413 2024-08-16)", "1.82.0-nightly", false},
		{"garbage", "not cargo at all", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseVersion(tt.output)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.output)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseVersion(%q) error: %v", tt.output, err)
			}
			if v.Original() != tt.want {
				t.Errorf("ParseVersion(%q) = %s, want %s", tt.output, v.Original(), tt.want)
			}
		})
	}
}

func TestMeetsMinVersion(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"1.60.0", true},
		{"1.75.0", true},
		{"2.0.0", true},
		{"1.59.9", false},
		{"0.9.0", false},
	}

	for _, tt := range tests {
		v := semver.MustParse(tt.version)
		if got := MeetsMinVersion(v); got != tt.want {
			t.Errorf("MeetsMinVersion(%s) = %v, want %v", tt.version, got, tt.want)
		}
	}
}
