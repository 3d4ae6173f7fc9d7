package profile

import "testing"

func TestValidate_ValidSettings(t *testing.T) {
	result, err := Validate(map[string]any{
		"name":    "Alice",
		"github":  "alice",
		"license": "MIT",
	})
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got issues: %+v", result.Issues)
	}
}

func TestValidate_EmptySettings(t *testing.T) {
	result, err := Validate(map[string]any{})
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("all fields are optional; empty profile should validate, got: %+v", result.Issues)
	}
}

func TestValidate_WrongType(t *testing.T) {
	result, err := Validate(map[string]any{
		"license": 3,
	})
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected validation failure for non-string license")
	}
	found := false
	for _, issue := range result.Issues {
		if issue.Path == "/license" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an issue at /license, got: %+v", result.Issues)
	}
}

func TestValidate_UnknownFieldsAllowed(t *testing.T) {
	result, err := Validate(map[string]any{
		"name":   "Alice",
		"editor": "vim",
	})
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("unknown fields should be tolerated, got: %+v", result.Issues)
	}
}
