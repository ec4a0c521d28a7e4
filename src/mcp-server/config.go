// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/H0llyW00dzZ/pem-cert-tree/src/mcp-server/templates"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// ConfigEnv names the environment variable holding the configuration file path.
const ConfigEnv = "MCP_PEM_TREE_CONFIG_FILE"

// Output formats of the render_cert_tree tool.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
)

const (
	defaultWarnDays = 30
	defaultTimeout  = 30
)

// ErrInvalidConfig is returned when a configuration file does not match the embedded schema.
var ErrInvalidConfig = errors.New("mcpserver: invalid configuration")

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config represents the MCP server configuration structure.
//
// The configuration can be loaded from a JSON or YAML file specified by the
// MCP_PEM_TREE_CONFIG_FILE environment variable or the --config flag, with
// defaults applied for any missing values.
type Config struct {
	// Defaults: Default arguments of the certificate tools
	Defaults struct {
		// WarnDays: Number of days before expiry to flag a certificate as going to expire
		WarnDays int `json:"warnDays" yaml:"warnDays"`
		// Timeout: Upper bound in seconds for a single tool call
		Timeout int `json:"timeoutSeconds" yaml:"timeoutSeconds"`
		// Format: Default output format of render_cert_tree
		Format string `json:"format" yaml:"format"`
		// ShowPosition: Annotate nodes with their position in the bundle
		ShowPosition bool `json:"showPosition" yaml:"showPosition"`
		// ShowExpiry: Annotate healthy nodes with their expiry date
		ShowExpiry bool `json:"showExpiry" yaml:"showExpiry"`
	} `json:"defaults" yaml:"defaults"`

	// Log: Server-side logging, written to stderr so stdio traffic is untouched
	Log struct {
		Enabled bool `json:"enabled" yaml:"enabled"`
	} `json:"log" yaml:"log"`
}

// defaultConfig returns a Config holding the built-in defaults.
func defaultConfig() *Config {
	config := &Config{}
	config.Defaults.WarnDays = defaultWarnDays
	config.Defaults.Timeout = defaultTimeout
	config.Defaults.Format = FormatText
	return config
}

// detectConfigFormat determines the configuration file format based on file extension.
// Matching is case-insensitive; anything that is not .yaml or .yml is read as JSON.
func detectConfigFormat(configPath string) configFormat {
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the specified format.
// The target may be a *Config or a generic document used for schema validation.
func unmarshalConfig(data []byte, target any, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, target); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, target); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// validateConfig checks a parsed configuration document against the embedded JSON schema.
//
// Returns:
//   - error: [ErrInvalidConfig] wrapped with every schema violation, or a schema loading error
func validateConfig(doc any) error {
	if doc == nil {
		// An empty YAML file decodes to nil.
		doc = map[string]any{}
	}

	schema, err := templates.MagicEmbed.ReadFile(templates.ConfigSchemaFile)
	if err != nil {
		return fmt.Errorf("failed to load config schema: %w", err)
	}

	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schema), gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("failed to validate config: %w", err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		problems = append(problems, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
}

// loadConfig loads MCP server configuration from a JSON or YAML file or applies defaults.
//
// Parameters:
//   - configPath: Path to the configuration file (optional, can be empty)
//     Supported formats: .json, .yaml, .yml
//
// Returns:
//   - A pointer to the loaded Config struct with defaults applied
//   - An error if the configuration file cannot be read, parsed or validated
//
// Configuration Priority:
//  1. Default values are set
//  2. MCP_PEM_TREE_CONFIG_FILE environment variable is checked if configPath is empty
//  3. Config file values override defaults once the file passes schema validation
func loadConfig(configPath string) (*Config, error) {
	config := defaultConfig()

	if configPath == "" {
		configPath = os.Getenv(ConfigEnv)
	}
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	format := detectConfigFormat(configPath)

	var doc any
	if err := unmarshalConfig(data, &doc, format); err != nil {
		return nil, err
	}
	if err := validateConfig(doc); err != nil {
		return nil, err
	}
	if err := unmarshalConfig(data, config, format); err != nil {
		return nil, err
	}

	return config, nil
}
