package config

import (
	"testing"
)

func TestValidateProfile(t *testing.T) {
	tests := []struct {
		name        string
		profile     Profile
		expectedErr int
	}{
		{
			name:        "Valid profile",
			profile:     Profile{BaseURL: "https://api.example.com", Token: "abc", Type: "json"},
			expectedErr: 0,
		},
		{
			name:        "Type is optional",
			profile:     Profile{BaseURL: "https://api.example.com"},
			expectedErr: 0,
		},
		{
			name:        "Missing baseUrl",
			profile:     Profile{Type: "text"},
			expectedErr: 1,
		},
		{
			name:        "Relative baseUrl",
			profile:     Profile{BaseURL: "/api"},
			expectedErr: 1,
		},
		{
			name:        "Token is an object",
			profile:     Profile{BaseURL: "https://api.example.com", Token: map[string]any{"name": "John"}},
			expectedErr: 1,
		},
		{
			name:        "Token with a line break",
			profile:     Profile{BaseURL: "https://api.example.com", Token: "two\nlines"},
			expectedErr: 1,
		},
		{
			name:        "Everything wrong",
			profile:     Profile{Token: true, Type: "fghjk"},
			expectedErr: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateProfile("p", tt.profile)
			if len(errs) != tt.expectedErr {
				t.Errorf("Expected %d errors, got %d: %v", tt.expectedErr, len(errs), errs)
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Path: "profiles.a.baseUrl", Message: "baseUrl is required"},
		{Path: "default", Message: "profile not found: b"},
	}
	expected := "invalid config: profiles.a.baseUrl: baseUrl is required; default: profile not found: b"
	if errs.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, errs.Error())
	}
}
