package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"jira_mcp/internal/auth"
	"jira_mcp/internal/jira"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Transport selects how the MCP server is exposed
type Transport string

const (
	TransportStdio Transport = "stdio"
	TransportSSE   Transport = "sse"
)

// Config holds all configuration for the application.
// It is built once by Load and not mutated afterwards.
type Config struct {
	// Jira configuration
	BaseURL            string        `yaml:"base_url"`
	Timeout            time.Duration `yaml:"timeout"`
	InsecureSkipVerify bool          `yaml:"insecure_skip_verify"`

	// Server configuration
	ServerName    string    `yaml:"server_name"`
	ServerVersion string    `yaml:"server_version"`
	Transport     Transport `yaml:"transport"`
	Addr          string    `yaml:"addr"`
	PublicURL     string    `yaml:"public_url"` // Optional: base URL advertised by the SSE transport

	// Log level
	LogLevel string `yaml:"log_level"`

	// S3 credential source, used by the Lambda entry point only
	CredentialStore CredentialStore `yaml:"credential_store"`

	// Credentials are resolved from flags and environment, never from the file
	Credentials auth.Credentials `yaml:"-"`
}

// CredentialStore locates an encrypted credential object in S3
type CredentialStore struct {
	Bucket string `yaml:"bucket"`
	Object string `yaml:"object"`
	KeyHex string `yaml:"-"` // hex-encoded 32-byte AES key, from JIRA_CREDENTIALS_KEY_HEX only
}

// Enabled reports whether an S3 credential source is configured.
func (c CredentialStore) Enabled() bool {
	return c.Bucket != "" && c.Object != ""
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		BaseURL:            jira.DefaultBaseURL,
		Timeout:            jira.DefaultTimeout,
		InsecureSkipVerify: true,
		ServerName:         "ssg-jira",
		ServerVersion:      "1.0.0",
		Transport:          TransportStdio,
		Addr:               ":8080",
		LogLevel:           "info",
	}
}

// Load builds the configuration from args (without the program name), the
// environment and an optional YAML file. Precedence: flag > env > file > default.
func Load(args []string) (*Config, error) {
	return load(args, os.LookupEnv)
}

func load(args []string, lookup func(string) (string, bool)) (*Config, error) {
	fs := pflag.NewFlagSet("jira-mcp", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	configPath := fs.String("config", "", "Path to a YAML configuration file")
	transport := fs.String("transport", "", "Transport: stdio or sse")
	addr := fs.String("addr", "", "Listen address for the sse transport")
	logLevel := fs.String("log-level", "", "Log level (debug, info, warn, error)")
	// Declared so they are consumed here; resolved by auth.Resolver.
	fs.String(auth.UsernameKey, "", "Jira username")
	fs.String(auth.APITokenKey, "", "Jira API token")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	cfg := Default()

	path := *configPath
	if path == "" {
		path, _ = lookup("JIRA_CONFIG")
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	envOverrides := map[string]*string{
		"JIRA_BASE_URL":            &cfg.BaseURL,
		"LOG_LEVEL":                &cfg.LogLevel,
		"JIRA_CREDENTIALS_BUCKET":  &cfg.CredentialStore.Bucket,
		"JIRA_CREDENTIALS_OBJECT":  &cfg.CredentialStore.Object,
		"JIRA_CREDENTIALS_KEY_HEX": &cfg.CredentialStore.KeyHex,
	}
	for env, ptr := range envOverrides {
		if v, ok := lookup(env); ok && v != "" {
			*ptr = v
		}
	}

	if *transport != "" {
		cfg.Transport = Transport(*transport)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	resolver := &auth.Resolver{Args: args, Lookup: lookup}
	cfg.Credentials = resolver.Credentials()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// Validate checks the settings that would otherwise fail later at runtime.
func (c *Config) Validate() error {
	var problems []string
	if c.BaseURL == "" {
		problems = append(problems, "base_url is empty")
	}
	if c.Timeout <= 0 {
		problems = append(problems, "timeout must be positive")
	}
	switch c.Transport {
	case TransportStdio, TransportSSE:
	default:
		problems = append(problems, fmt.Sprintf("unsupported transport %q", c.Transport))
	}
	if len(problems) > 0 {
		return errors.New("invalid configuration: " + strings.Join(problems, ", "))
	}
	return nil
}

// Headers returns the auth header set, or nil when credentials are incomplete.
func (c *Config) Headers() *auth.HeaderSet {
	return auth.HeadersFor(c.Credentials)
}
