// Package config loads the settings shared by the chat commands.
//
// Sources are applied in order: an optional YAML file, an optional .env file
// (exported into the process environment), then environment variables.
// Command line flags are applied by the caller on top of the result.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrMissingAPIKey is returned when the hosted backend has no credential.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY is required")

const (
	DefaultModel       = "gpt-3.5-turbo"
	DefaultLocalModel  = "microsoft/Phi-4-mini-instruct"
	DefaultLocalURL    = "http://localhost:8080/v1"
	DefaultPython      = "python3"
	DefaultPlayground  = "playground"
	DefaultSearchURL   = "https://www.googleapis.com/customsearch/v1"
	defaultEnvFileName = ".env"
)

// Config holds every tunable of the chat commands.
type Config struct {
	// APIKey authenticates against the hosted backend (OPENAI_API_KEY).
	APIKey string `yaml:"api_key"`
	// BaseURL overrides the hosted API endpoint (OPENAI_BASE_URL).
	BaseURL string `yaml:"base_url"`
	// Model is the hosted model identifier (MODEL_NAME).
	Model string `yaml:"model"`

	// Playground scopes file edits and shell commands (PLAYGROUND_PATH).
	Playground string `yaml:"playground"`
	// Python is the interpreter used for code execution and pip (PYTHON).
	Python string `yaml:"python"`

	// LocalURL is the OpenAI compatible endpoint serving the local model (LOCAL_MODEL_URL).
	LocalURL string `yaml:"local_url"`
	// LocalModel names the locally served model (LOCAL_MODEL).
	LocalModel string `yaml:"local_model"`

	Search SearchConfig `yaml:"search"`

	// LogLevel is one of DEBUG, INFO, WARN, ERROR (LOG_LEVEL).
	LogLevel string `yaml:"log_level"`
	// LogFile, when set, receives logs instead of stderr (LOG_FILE).
	LogFile string `yaml:"log_file"`
}

// SearchConfig configures the Google Custom Search backend.
type SearchConfig struct {
	APIKey   string `yaml:"api_key"`  // GOOGLE_SEARCH_API_KEY
	CX       string `yaml:"cx"`       // GOOGLE_SEARCH_CX
	Endpoint string `yaml:"endpoint"` // GOOGLE_SEARCH_ENDPOINT
}

// Load builds a Config from the YAML file at path (skipped when empty), the
// .env file in the working directory if present, and the environment.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(defaultEnvFileName); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", defaultEnvFileName, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() {
	setFromEnv(&c.APIKey, "OPENAI_API_KEY")
	setFromEnv(&c.BaseURL, "OPENAI_BASE_URL")
	setFromEnv(&c.Model, "MODEL_NAME")
	setFromEnv(&c.Playground, "PLAYGROUND_PATH")
	setFromEnv(&c.Python, "PYTHON")
	setFromEnv(&c.LocalURL, "LOCAL_MODEL_URL")
	setFromEnv(&c.LocalModel, "LOCAL_MODEL")
	setFromEnv(&c.Search.APIKey, "GOOGLE_SEARCH_API_KEY")
	setFromEnv(&c.Search.CX, "GOOGLE_SEARCH_CX")
	setFromEnv(&c.Search.Endpoint, "GOOGLE_SEARCH_ENDPOINT")
	setFromEnv(&c.LogLevel, "LOG_LEVEL")
	setFromEnv(&c.LogFile, "LOG_FILE")
}

func (c *Config) applyDefaults() {
	setDefault(&c.Model, DefaultModel)
	setDefault(&c.Playground, DefaultPlayground)
	setDefault(&c.Python, DefaultPython)
	setDefault(&c.LocalURL, DefaultLocalURL)
	setDefault(&c.LocalModel, DefaultLocalModel)
	setDefault(&c.Search.Endpoint, DefaultSearchURL)
	setDefault(&c.LogLevel, "INFO")
}

// Validate checks the settings needed by the hosted tool chat.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// EnsurePlayground resolves the playground to an absolute path and creates it
// if it does not exist yet.
func (c *Config) EnsurePlayground() (string, error) {
	abs, err := filepath.Abs(c.Playground)
	if err != nil {
		return "", fmt.Errorf("resolve playground: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return "", fmt.Errorf("create playground: %w", err)
	}
	c.Playground = abs
	return abs, nil
}

func setFromEnv(field *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*field = v
	}
}

func setDefault(field *string, fallback string) {
	if *field == "" {
		*field = fallback
	}
}
