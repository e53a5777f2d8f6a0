package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/fwojciec/pagesum/anthropic"
	"github.com/fwojciec/pagesum/gemini"
	"github.com/fwojciec/pagesum/openai"
	"github.com/joho/godotenv"
)

// Config holds settings read from the environment.
type Config struct {
	// DBPath is the preferences database. Empty means ~/.pagesum/pagesum.db.
	DBPath string `env:"PAGESUM_DB"`

	// FetchTimeout bounds loading a single page.
	FetchTimeout time.Duration `env:"PAGESUM_FETCH_TIMEOUT" envDefault:"10s"`

	// RequestTimeout bounds a provider request. Zero means no timeout.
	RequestTimeout time.Duration `env:"PAGESUM_REQUEST_TIMEOUT" envDefault:"0s"`

	GeminiURL    string `env:"PAGESUM_GEMINI_URL"`
	OpenAIURL    string `env:"PAGESUM_OPENAI_URL"`
	AnthropicURL string `env:"PAGESUM_ANTHROPIC_URL"`
}

// LoadConfig parses configuration from environ. A nil environ reads the
// process environment.
func LoadConfig(environ map[string]string) (Config, error) {
	cfg := Config{
		GeminiURL:    gemini.DefaultBaseURL,
		OpenAIURL:    openai.DefaultBaseURL,
		AnthropicURL: anthropic.DefaultBaseURL,
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("invalid environment: %w", err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath()
	}
	return cfg, nil
}

// ReadEnvironment returns the process environment layered over the
// variables defined in envFile. Process variables win. A missing envFile is
// not an error.
func ReadEnvironment(envFile string) (map[string]string, error) {
	vars, err := godotenv.Read(envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading %s: %w", envFile, err)
	}
	if vars == nil {
		vars = make(map[string]string)
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	return vars, nil
}

// defaultEnvFile is read for configuration when present.
func defaultEnvFile() string {
	return filepath.Join(stateDir(), "env")
}

func defaultDBPath() string {
	return filepath.Join(stateDir(), "pagesum.db")
}

func stateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".pagesum")
}
