package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultProfile is used when neither the caller nor the file names one.
const DefaultProfile = "default"

// Config is the content of a profile file.
//
//	default: staging
//	profiles:
//	  staging:
//	    baseUrl: https://staging.example.com/api
//	    token: abc
//	    type: json
type Config struct {
	Default  string             `mapstructure:"default"`
	Profiles map[string]Profile `mapstructure:"profiles"`

	// overrides read from FETCHER_BASE_URL and FETCHER_TOKEN
	envBaseURL string
	envToken   string
}

// Profile describes one target API. Token is left untyped so a
// non-string value in the file can be reported instead of coerced.
type Profile struct {
	BaseURL string `mapstructure:"baseUrl"`
	Token   any    `mapstructure:"token"`
	Type    string `mapstructure:"type"`
}

// LoadConfig reads the profile file at path, JSON or YAML by extension.
// An empty path yields an empty Config that still carries environment
// overrides. A .env file in the working directory is loaded first.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("fetcher")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	if err := v.BindEnv("base-url"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("token"); err != nil {
		return nil, err
	}

	config := &Config{}
	if path != "" {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}

		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".json":
			v.SetConfigType("json")
		case ".yaml", ".yml", "":
			v.SetConfigType("yaml")
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if err := v.Unmarshal(config); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}

	config.envBaseURL = v.GetString("base-url")
	config.envToken = v.GetString("token")

	if errs := ValidateConfig(config); len(errs) > 0 {
		return nil, errs
	}

	return config, nil
}

// Profile returns the named profile, the file's default when name is
// empty, with environment overrides applied. Profile names are
// case-insensitive.
func (c *Config) Profile(name string) (Profile, error) {
	if name == "" {
		name = c.Default
	}
	// a missing implicit default profile is not an error
	explicit := name != ""
	if !explicit {
		name = DefaultProfile
	}

	profile, ok := c.Profiles[strings.ToLower(name)]
	if !ok && explicit {
		return Profile{}, fmt.Errorf("profile not found: %s", name)
	}

	if c.envBaseURL != "" {
		profile.BaseURL = c.envBaseURL
	}
	if c.envToken != "" {
		profile.Token = c.envToken
	}

	return profile, nil
}
