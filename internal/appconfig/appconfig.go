// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// legacyConfigPath is the path to the configuration file used in previous versions.
	legacyConfigPath = "config.json"
	// defaultRequestTimeout is the default timeout for API requests.
	defaultRequestTimeout = 30 * time.Second
	// defaultArticleTimeout is the default timeout for guide article probes.
	defaultArticleTimeout = 10 * time.Second
	// defaultDecksDir is where fetched decks are stored when the config omits it.
	defaultDecksDir = "decks"
	// defaultMoxfieldURL is the Moxfield deck API base URL.
	defaultMoxfieldURL = "https://api2.moxfield.com"
	// defaultEdhrecURL is the EDHREC JSON page base URL.
	defaultEdhrecURL = "https://json.edhrec.com"
	// defaultRecommendLimit caps recommendation listings when the config omits the value.
	defaultRecommendLimit = 50
	// defaultSuggestLimit caps suggested additions when the config omits the value.
	defaultSuggestLimit = 20
	// defaultCutLimit caps suggested cuts when the config omits the value.
	defaultCutLimit = 10
)

// Config represents the top-level application configuration.
type Config struct {
	DecksDir              string   `json:"decksDir,omitempty"`
	Debug                 bool     `json:"debug"`
	JSONMode              bool     `json:"jsonMode"`
	TimeoutSeconds        int      `json:"timeout,omitempty"`
	ArticleTimeoutSeconds int      `json:"articleTimeout,omitempty"`
	LogFile               string   `json:"logFile,omitempty"`
	MoxfieldURL           string   `json:"moxfieldUrl,omitempty"`
	EdhrecURL             string   `json:"edhrecUrl,omitempty"`
	RecommendLimit        int      `json:"recommendLimit,omitempty"`
	SuggestLimit          int      `json:"suggestLimit,omitempty"`
	CutLimit              int      `json:"cutLimit,omitempty"`
	ExtraStaples          []string `json:"extraStaples,omitempty"`
	ConfigPath            string   `json:"-"`
}

// RequestTimeout returns the timeout duration for API requests, falling back to the default if not specified.
func (c Config) RequestTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ArticleTimeout returns the timeout duration for guide article probes.
func (c Config) ArticleTimeout() time.Duration {
	if c.ArticleTimeoutSeconds <= 0 {
		return defaultArticleTimeout
	}
	return time.Duration(c.ArticleTimeoutSeconds) * time.Second
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return "deckhand.log"
}

// DecksDirPath returns the directory decks are saved under, applying a default if not set.
func (c Config) DecksDirPath() string {
	if dir := strings.TrimSpace(c.DecksDir); dir != "" {
		return dir
	}
	return defaultDecksDir
}

// MoxfieldBaseURL returns the Moxfield API base URL, applying a default if not set.
func (c Config) MoxfieldBaseURL() string {
	if u := strings.TrimSpace(c.MoxfieldURL); u != "" {
		return strings.TrimRight(u, "/")
	}
	return defaultMoxfieldURL
}

// EdhrecBaseURL returns the EDHREC JSON base URL, applying a default if not set.
func (c Config) EdhrecBaseURL() string {
	if u := strings.TrimSpace(c.EdhrecURL); u != "" {
		return strings.TrimRight(u, "/")
	}
	return defaultEdhrecURL
}

// RecommendCount returns the configured recommendation listing cap.
func (c Config) RecommendCount() int {
	if c.RecommendLimit <= 0 {
		return defaultRecommendLimit
	}
	return c.RecommendLimit
}

// SuggestCount returns the configured cap on suggested additions.
func (c Config) SuggestCount() int {
	if c.SuggestLimit <= 0 {
		return defaultSuggestLimit
	}
	return c.SuggestLimit
}

// CutCount returns the configured cap on suggested cuts.
func (c Config) CutCount() int {
	if c.CutLimit <= 0 {
		return defaultCutLimit
	}
	return c.CutLimit
}

// Load reads the application configuration from the specified path, with
// fallback to a legacy path. A missing file is not an error: the tool
// runs fine on defaults alone.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err == nil {
		config.ConfigPath = path
		return config, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		if path == DefaultConfigPath {
			config, legacyErr := loadFromPath(legacyConfigPath)
			if legacyErr == nil {
				config.ConfigPath = legacyConfigPath
				return config, nil
			}
			if errors.Is(legacyErr, os.ErrNotExist) {
				return Config{}, nil
			}
			return Config{}, fmt.Errorf("could not read config file %q: %w", legacyConfigPath, legacyErr)
		}
		return Config{}, fmt.Errorf("no configuration file found at %q", path)
	}

	return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, err
	}
	if config.TimeoutSeconds <= 0 {
		config.TimeoutSeconds = int(defaultRequestTimeout.Seconds())
	}

	return config, nil
}
