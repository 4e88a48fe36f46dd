package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// PrefixStyleNone leaves generated titles unprefixed.
	PrefixStyleNone = "none"
	// PrefixStyleConventional prefixes titles with a Conventional Commits type.
	PrefixStyleConventional = "conventional"
	// PrefixStyleGitmoji prefixes titles with gitmoji emoji.
	PrefixStyleGitmoji = "gitmoji"
)

// Settings is the top-level configuration for msgforge.
type Settings struct {
	Message      MessageOptions   `yaml:"message"`
	Prefix       PrefixConfig     `yaml:"prefix"`
	Providers    []ProviderConfig `yaml:"providers"`
	AutoComplete bool             `yaml:"auto_complete"`
}

// PrefixConfig selects how generated titles are prefixed.
type PrefixConfig struct {
	Style      string `yaml:"style"`      // "none", "conventional", "gitmoji"
	Value      string `yaml:"value"`      // Overrides the style's default prefix
	Capitalize bool   `yaml:"capitalize"` // Capitalize the first word after the prefix
}

// ProviderConfig describes a single Git hosting provider used to look up
// dependency metadata.
type ProviderConfig struct {
	Type    string `yaml:"type"`     // "github", "gitlab", "azuredevops"
	Token   string `yaml:"token"`    // Inline, ${ENV_VAR}, or file path
	BaseURL string `yaml:"base_url"` // Self-hosted instance URL, empty for the public one
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewSettings reads and parses a settings file, expanding environment
// variables and resolving token file paths.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", unmarshalErr)
	}

	// Resolve tokens (env vars and file paths)
	for i := range settings.Providers {
		settings.Providers[i].Token = resolveToken(settings.Providers[i].Token)
	}

	if validateErr := validate(&settings); validateErr != nil {
		return nil, validateErr
	}

	return &settings, nil
}

// FindConfigFile searches for a settings file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".msgforge.yaml",
		".msgforge.yml",
		"msgforge.yaml",
		"msgforge.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("settings file not found in default locations")
}

// resolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func resolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	// Expand ${ENV_VAR} references
	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	// If the resolved value is a path to an existing file, read the token from it
	if _, statErr := os.Stat(resolved); statErr == nil {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Infof("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

// validate checks for required settings values.
func validate(settings *Settings) error {
	switch settings.Prefix.Style {
	case "", PrefixStyleNone, PrefixStyleConventional, PrefixStyleGitmoji:
	default:
		return fmt.Errorf("prefix.style %q is not supported", settings.Prefix.Style)
	}

	for i, p := range settings.Providers {
		if p.Type == "" {
			return fmt.Errorf("providers[%d].type is required", i)
		}
		if p.Token == "" {
			return fmt.Errorf(
				"providers[%d].token is required (set inline, via ${ENV_VAR}, or as file path)",
				i,
			)
		}
	}

	return nil
}
