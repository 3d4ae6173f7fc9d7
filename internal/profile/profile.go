package profile

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Profile represents the user-level defaults file. Every field is optional.
type Profile struct {
	Name         string `mapstructure:"name"`
	Email        string `mapstructure:"email"`
	Github       string `mapstructure:"github"`
	License      string `mapstructure:"license"`
	Organization string `mapstructure:"organization"`
}

// Load reads the profile file and returns nil when it is missing, unreadable,
// fails TOML parsing, or fails schema validation. Scaffolding must never abort
// because of a bad profile, so every failure here degrades to "no profile".
func Load() *Profile {
	path, err := Path()
	if err != nil {
		return nil
	}
	return loadFrom(path)
}

// loadFrom is the testable core of Load.
func loadFrom(path string) *Profile {
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil
	}

	result, err := Validate(v.AllSettings())
	if err != nil || !result.Valid {
		return nil
	}

	var p Profile
	if err := v.Unmarshal(&p); err != nil {
		return nil
	}
	return &p
}

// Inspect reads and validates the profile file for diagnostics. Unlike Load,
// it reports what went wrong instead of degrading to "no profile".
func Inspect(path string) (*ValidationResult, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}
	return Validate(v.AllSettings())
}
