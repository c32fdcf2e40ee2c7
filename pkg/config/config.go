// Package config handles local configuration management.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/kelmorin/bland-cli/pkg/bland"
)

var (
	mu         sync.RWMutex
	globalCfg  *Config
	configPath string
)

// Config represents the CLI configuration.
type Config struct {
	APIUrl                string            `json:"api_url"`
	RenderFormat          string            `json:"render_format,omitempty"`
	Voice                 string            `json:"voice,omitempty"`
	Model                 string            `json:"model,omitempty"`
	Language              string            `json:"language,omitempty"`
	MaxDuration           int               `json:"max_duration,omitempty"`
	Temperature           float64           `json:"temperature,omitempty"`
	InterruptionThreshold int               `json:"interruption_threshold,omitempty"`
	ListLimit             int               `json:"list_limit,omitempty"`
	CustomSettings        map[string]string `json:"custom,omitempty"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		APIUrl:                bland.DefaultBaseURL,
		RenderFormat:          "auto",
		Voice:                 "mason",
		Model:                 "enhanced",
		Language:              "en-US",
		MaxDuration:           30,
		Temperature:           0.7,
		InterruptionThreshold: 100,
		ListLimit:             1000,
		CustomSettings:        make(map[string]string),
	}
}

// Dir returns the directory holding config and session files,
// honoring the BLAND_CONFIG_DIR override.
func Dir() (string, error) {
	if dir := os.Getenv("BLAND_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".bland"), nil
}

// Load reads the configuration from disk, creating defaults if needed.
func Load() (*Config, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalCfg != nil {
		return globalCfg, nil
	}

	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}

	configPath = filepath.Join(dir, "config.json")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		globalCfg = Default()
		if err := save(globalCfg); err != nil {
			return nil, fmt.Errorf("save default config: %w", err)
		}
	} else {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		var cfg Config
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
		if cfg.CustomSettings == nil {
			cfg.CustomSettings = make(map[string]string)
		}
		globalCfg = &cfg
	}

	// Override from environment
	if apiURL := os.Getenv("BLAND_API_URL"); apiURL != "" {
		globalCfg.APIUrl = apiURL
	}

	return globalCfg, nil
}

// save writes the config to disk.
func save(cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Save persists the current config to disk.
func Save() error {
	mu.Lock()
	defer mu.Unlock()

	if globalCfg == nil {
		return fmt.Errorf("no config loaded")
	}

	return save(globalCfg)
}

// Get retrieves a config value by key.
func Get(key string) (string, error) {
	mu.RLock()
	defer mu.RUnlock()

	if globalCfg == nil {
		return "", fmt.Errorf("config not loaded")
	}

	switch key {
	case "api_url":
		return globalCfg.APIUrl, nil
	case "render.format":
		return globalCfg.RenderFormat, nil
	case "call.voice":
		return globalCfg.Voice, nil
	case "call.model":
		return globalCfg.Model, nil
	case "call.language":
		return globalCfg.Language, nil
	case "call.max_duration":
		return strconv.Itoa(globalCfg.MaxDuration), nil
	case "call.temperature":
		return strconv.FormatFloat(globalCfg.Temperature, 'f', -1, 64), nil
	case "call.interruption_threshold":
		return strconv.Itoa(globalCfg.InterruptionThreshold), nil
	case "list.limit":
		return strconv.Itoa(globalCfg.ListLimit), nil
	default:
		if val, ok := globalCfg.CustomSettings[key]; ok {
			return val, nil
		}
		return "", fmt.Errorf("unknown config key: %s", key)
	}
}

// Set updates a config value by key.
func Set(key, value string) error {
	mu.Lock()
	defer mu.Unlock()

	if globalCfg == nil {
		return fmt.Errorf("config not loaded")
	}

	switch key {
	case "api_url":
		globalCfg.APIUrl = value
	case "render.format":
		globalCfg.RenderFormat = value
	case "call.voice":
		globalCfg.Voice = value
	case "call.model":
		if err := checkEnumValue(key, value, bland.Models); err != nil {
			return err
		}
		globalCfg.Model = value
	case "call.language":
		globalCfg.Language = value
	case "call.max_duration":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("invalid value for %s: %q", key, value)
		}
		globalCfg.MaxDuration = n
	case "call.temperature":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 || f > 1 {
			return fmt.Errorf("invalid value for %s: %q (must be between 0 and 1)", key, value)
		}
		globalCfg.Temperature = f
	case "call.interruption_threshold":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid value for %s: %q", key, value)
		}
		globalCfg.InterruptionThreshold = n
	case "list.limit":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("invalid value for %s: %q", key, value)
		}
		globalCfg.ListLimit = n
	default:
		globalCfg.CustomSettings[key] = value
	}

	return save(globalCfg)
}

func checkEnumValue(key, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("invalid value for %s: %q (allowed: %v)", key, value, allowed)
}

// List returns all config key-value pairs.
func List() (map[string]string, error) {
	mu.RLock()
	defer mu.RUnlock()

	if globalCfg == nil {
		return nil, fmt.Errorf("config not loaded")
	}

	result := map[string]string{
		"api_url":                     globalCfg.APIUrl,
		"render.format":               globalCfg.RenderFormat,
		"call.voice":                  globalCfg.Voice,
		"call.model":                  globalCfg.Model,
		"call.language":               globalCfg.Language,
		"call.max_duration":           strconv.Itoa(globalCfg.MaxDuration),
		"call.temperature":            strconv.FormatFloat(globalCfg.Temperature, 'f', -1, 64),
		"call.interruption_threshold": strconv.Itoa(globalCfg.InterruptionThreshold),
		"list.limit":                  strconv.Itoa(globalCfg.ListLimit),
	}
	for k, v := range globalCfg.CustomSettings {
		result[k] = v
	}

	return result, nil
}

// GetAPIUrl returns the configured API URL.
func GetAPIUrl() string {
	mu.RLock()
	defer mu.RUnlock()

	if globalCfg == nil {
		return bland.DefaultBaseURL
	}

	return globalCfg.APIUrl
}

// Defaults converts the configured call parameters into client defaults.
func (c *Config) Defaults() bland.Defaults {
	return bland.Defaults{
		Model:                 c.Model,
		Voice:                 c.Voice,
		Language:              c.Language,
		MaxDuration:           c.MaxDuration,
		Temperature:           c.Temperature,
		InterruptionThreshold: c.InterruptionThreshold,
		Limit:                 c.ListLimit,
	}
}

// Reset clears the cached config so the next Load rereads it. Used by tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	globalCfg = nil
	configPath = ""
}
