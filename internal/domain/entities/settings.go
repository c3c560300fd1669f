package entities

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultBaseURL is used for canonical links when nothing else is configured.
	DefaultBaseURL = "http://localhost:8080"
	// DefaultAnalysisDir is where analysis reports are looked up by default.
	DefaultAnalysisDir = "analysis"

	envBaseURL      = "BASE_URL"
	envGaugesSiteID = "GAUGES_SITE_ID"
)

// Settings is the process-wide configuration. It is resolved once at startup
// and never mutated afterwards.
type Settings struct {
	BaseURL      string `yaml:"base_url"`       // Root of canonical status and badge links
	GaugesSiteID string `yaml:"gauges_site_id"` // Optional; enables the Gauges tracker
	AnalysisDir  string `yaml:"analysis_dir"`   // Directory holding analysis reports
	MetricsFile  string `yaml:"metrics_file"`   // Optional node-exporter textfile target
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewSettings loads the settings file at path, or the first one found in the
// default locations when path is empty. A missing default file is not an error.
// BASE_URL and GAUGES_SITE_ID from the environment override the file.
func NewSettings(path string) (*Settings, error) {
	if path == "" {
		found, err := FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, using defaults: %v", err)
		}
		path = found
	}

	settings := &Settings{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
		if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
		}
		settings.BaseURL = expandEnv(settings.BaseURL)
		settings.GaugesSiteID = expandEnv(settings.GaugesSiteID)
		settings.AnalysisDir = expandEnv(settings.AnalysisDir)
		settings.MetricsFile = expandEnv(settings.MetricsFile)
	}

	if baseURL, ok := os.LookupEnv(envBaseURL); ok {
		settings.BaseURL = baseURL
	}
	if siteID, ok := os.LookupEnv(envGaugesSiteID); ok {
		settings.GaugesSiteID = siteID
	}

	applyDefaults(settings)
	if err := validate(settings); err != nil {
		return nil, err
	}
	return settings, nil
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
		".depstatus.yaml",
		".depstatus.yml",
		"depstatus.yaml",
		"depstatus.yml",
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

// expandEnv replaces ${VAR} references with their environment values.
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

func applyDefaults(settings *Settings) {
	settings.BaseURL = strings.TrimRight(strings.TrimSpace(settings.BaseURL), "/")
	if settings.BaseURL == "" {
		settings.BaseURL = DefaultBaseURL
	}
	settings.GaugesSiteID = strings.TrimSpace(settings.GaugesSiteID)
	if settings.AnalysisDir == "" {
		settings.AnalysisDir = DefaultAnalysisDir
	}
}

// validate checks that the settings can produce absolute links.
func validate(settings *Settings) error {
	parsed, err := url.Parse(settings.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url %q is not a valid URL: %w", settings.BaseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("base_url %q must use http or https", settings.BaseURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("base_url %q must include a host", settings.BaseURL)
	}
	return nil
}
