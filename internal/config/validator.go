package config

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/wesleyorama2/fetcher/http"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Path    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors collects every problem found in a Config.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	msgs := make([]string, len(ve))
	for i, err := range ve {
		msgs[i] = err.Error()
	}
	return "invalid config: " + strings.Join(msgs, "; ")
}

// ValidateConfig checks every profile and the default reference.
func ValidateConfig(config *Config) ValidationErrors {
	var errors ValidationErrors

	if config.Default != "" {
		if _, ok := config.Profiles[strings.ToLower(config.Default)]; !ok {
			errors = append(errors, ValidationError{
				Path:    "default",
				Message: fmt.Sprintf("profile not found: %s", config.Default),
			})
		}
	}

	names := make([]string, 0, len(config.Profiles))
	for name := range config.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		errors = append(errors, ValidateProfile(name, config.Profiles[name])...)
	}

	return errors
}

// ValidateProfile checks a single profile.
func ValidateProfile(name string, profile Profile) ValidationErrors {
	var errors ValidationErrors
	prefix := "profiles." + name

	if profile.BaseURL == "" {
		errors = append(errors, ValidationError{
			Path:    prefix + ".baseUrl",
			Message: "baseUrl is required",
		})
	} else if u, err := url.Parse(profile.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errors = append(errors, ValidationError{
			Path:    prefix + ".baseUrl",
			Message: fmt.Sprintf("invalid baseUrl: %s", profile.BaseURL),
		})
	}

	if _, err := http.TokenFromValue(profile.Token); err != nil {
		errors = append(errors, ValidationError{
			Path:    prefix + ".token",
			Message: err.Error(),
		})
	}

	if profile.Type != "" {
		if _, err := http.ParseContentType(profile.Type); err != nil {
			errors = append(errors, ValidationError{
				Path:    prefix + ".type",
				Message: fmt.Sprintf("invalid type: %s", profile.Type),
			})
		}
	}

	return errors
}
