// ABOUTME: Configuration management for the client with env and YAML file support
// ABOUTME: Defines configuration structures for backend, encyclopedia, and storage settings

package config

import (
	"errors"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	// Backend contains backend API configuration
	Backend BackendConfig `yaml:"backend"`

	// Wikipedia contains encyclopedia API configuration
	Wikipedia WikipediaConfig `yaml:"wikipedia"`

	// Credentials contains credential storage configuration
	Credentials CredentialsConfig `yaml:"credentials"`

	// LogLevel controls logging verbosity (debug/info/warn/error)
	LogLevel string `yaml:"log_level"`
}

// BackendConfig holds backend API configuration
type BackendConfig struct {
	// URL is the backend origin, e.g. http://localhost:3000
	URL string `yaml:"url"`

	// TimeoutSeconds is the per-request HTTP timeout
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// WikipediaConfig holds encyclopedia API configuration
type WikipediaConfig struct {
	// Language is the default search language (e.g. "it", "en")
	Language string `yaml:"language"`
}

// CredentialsConfig holds credential storage configuration
type CredentialsConfig struct {
	// Store specifies the credential backend (sqlite/memory)
	Store string `yaml:"store"`

	// Path is the SQLite database file path
	Path string `yaml:"path"`
}

// supportedLanguages lists the encyclopedia locales the client accepts.
var supportedLanguages = map[string]bool{
	"it": true,
	"en": true,
}

// SupportedLanguage reports whether lang is a locale the client can search.
func SupportedLanguage(lang string) bool {
	return supportedLanguages[lang]
}

// Load builds the configuration: defaults, then the optional YAML file,
// then environment variables, each layer overriding the previous one.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.loadEnv()

	return cfg, nil
}

// LoadFromEnv loads configuration from defaults and environment variables only
func LoadFromEnv() (*Config, error) {
	return Load("")
}

func defaults() *Config {
	return &Config{
		Backend: BackendConfig{
			URL:            "http://localhost:3000",
			TimeoutSeconds: 30,
		},
		Wikipedia: WikipediaConfig{
			Language: "it",
		},
		Credentials: CredentialsConfig{
			Store: "sqlite",
			Path:  "openwiki.db",
		},
		LogLevel: "info",
	}
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, c)
}

func (c *Config) loadEnv() {
	c.Backend.URL = getEnvOrDefault("BACKEND_URL", c.Backend.URL)
	c.Backend.TimeoutSeconds = getEnvAsIntOrDefault("HTTP_TIMEOUT", c.Backend.TimeoutSeconds)
	c.Wikipedia.Language = getEnvOrDefault("WIKI_LANGUAGE", c.Wikipedia.Language)
	c.Credentials.Store = getEnvOrDefault("CREDENTIAL_STORE", c.Credentials.Store)
	c.Credentials.Path = getEnvOrDefault("CREDENTIAL_DB_PATH", c.Credentials.Path)
	c.LogLevel = getEnvOrDefault("LOG_LEVEL", c.LogLevel)
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Backend.URL == "" {
		return errors.New("backend URL cannot be empty")
	}

	if c.Backend.TimeoutSeconds < 1 {
		return errors.New("HTTP timeout must be at least 1 second")
	}

	if !SupportedLanguage(c.Wikipedia.Language) {
		return errors.New("wikipedia language must be one of: it, en")
	}

	if c.Credentials.Store != "sqlite" && c.Credentials.Store != "memory" {
		return errors.New("credential store must be 'sqlite' or 'memory'")
	}

	if c.Credentials.Store == "sqlite" && c.Credentials.Path == "" {
		return errors.New("credential database path cannot be empty when using sqlite")
	}

	return nil
}
