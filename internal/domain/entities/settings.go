package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const defaultManager = "pip"

// SupportedManagers lists the package manager backends a config may name.
var SupportedManagers = []string{"pip", "uv"} //nolint:gochecknoglobals // fixed allow-list

// Settings is the top-level configuration for modinstaller.
type Settings struct {
	Interpreter  string            `yaml:"interpreter"`   // Host interpreter path, inline or ${ENV_VAR}
	Manager      string            `yaml:"manager"`       // "pip" or "uv"
	InstallFlags []string          `yaml:"install_flags"` // Flags of the configured manager, passed verbatim
	Env          map[string]string `yaml:"env"`           // Extra environment for child processes
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Manager:      defaultManager,
		InstallFlags: []string{},
		Env:          map[string]string{},
	}
}

// NewSettings reads and parses a configuration file, expanding environment
// variables in the interpreter path and env values.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	if settings.Manager == "" {
		settings.Manager = defaultManager
	}
	settings.Interpreter = expandEnv(settings.Interpreter)
	for key, value := range settings.Env {
		settings.Env[key] = expandEnv(value)
	}

	if validateErr := validateSettings(settings); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// LoadSettings loads the given config path, or discovers one. A missing
// config file is not an error: defaults are returned instead.
func LoadSettings(path string) (*Settings, error) {
	if path != "" {
		return NewSettings(path)
	}

	found, err := FindConfigFile()
	if err != nil {
		logger.Debugf("No config file found, using defaults: %v", err)
		return DefaultSettings(), nil
	}

	logger.Debugf("Using config file: %s", found)
	return NewSettings(found)
}

// FindConfigFile searches for a configuration file in standard locations.
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
		".modinstaller.yaml",
		".modinstaller.yml",
		"modinstaller.yaml",
		"modinstaller.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// EnvList renders Env as KEY=VALUE pairs.
func (it *Settings) EnvList() []string {
	env := make([]string, 0, len(it.Env))
	for key, value := range it.Env {
		env = append(env, key+"="+value)
	}
	return env
}

// expandEnv expands ${VAR} references, warning about unset variables.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// validateSettings checks for malformed configuration values.
func validateSettings(settings *Settings) error {
	if !slices.Contains(SupportedManagers, settings.Manager) {
		return fmt.Errorf(
			"manager %q is not supported; use one of: %s",
			settings.Manager, strings.Join(SupportedManagers, ", "),
		)
	}

	for i, flag := range settings.InstallFlags {
		if !strings.HasPrefix(flag, "-") {
			return fmt.Errorf(
				"install_flags[%d] %q must be a flag; package names are given per install",
				i, flag,
			)
		}
	}

	for key := range settings.Env {
		if key == "" || strings.Contains(key, "=") {
			return fmt.Errorf("env key %q is invalid", key)
		}
	}

	return nil
}
