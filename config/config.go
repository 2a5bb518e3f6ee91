package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

type CloudConfig struct {
	BaseURL string `toml:"base_url"`
	Model   string `toml:"model"`
}

type OllamaConfig struct {
	Host           string `toml:"host"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// FileConfig mirrors config.toml.
type FileConfig struct {
	DefaultService        string       `toml:"default_service"`
	DataDirectory         string       `toml:"data_directory"`
	RequestTimeoutSeconds int          `toml:"request_timeout_seconds"`
	OpenAI                CloudConfig  `toml:"openai"`
	Gemini                CloudConfig  `toml:"gemini"`
	Ollama                OllamaConfig `toml:"ollama"`
}

// Config is the resolved runtime configuration. API keys are only ever
// populated from the environment and are never written back to disk.
type Config struct {
	FileConfig

	OpenAIAPIKey string
	GeminiAPIKey string
}

var Debug = false
var DebugLog *log.Logger

func (c *Config) DataDir() string {
	return ExpandPath(c.DataDirectory)
}

func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

func (c *Config) OllamaTimeout() time.Duration {
	return time.Duration(c.Ollama.TimeoutSeconds) * time.Second
}

func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("SPORTAI_OPENAI_API_KEY"); key != "" {
		c.OpenAIAPIKey = key
	}
	if key := os.Getenv("SPORTAI_GEMINI_API_KEY"); key != "" {
		c.GeminiAPIKey = key
	}
	if host := os.Getenv("SPORTAI_OLLAMA_HOST"); host != "" {
		c.Ollama.Host = host
	}
	if service := os.Getenv("SPORTAI_SERVICE"); service != "" {
		c.DefaultService = service
	}
	if dataDir := os.Getenv("SPORTAI_DATA_DIR"); dataDir != "" {
		c.DataDirectory = dataDir
	}
}

// applyDefaults fills fields left empty or invalid in the file.
func (c *Config) applyDefaults() {
	defaults := DefaultFileConfig()
	if c.DefaultService == "" {
		c.DefaultService = defaults.DefaultService
	}
	if c.DataDirectory == "" {
		c.DataDirectory = defaults.DataDirectory
	}
	if c.RequestTimeoutSeconds <= 0 {
		c.RequestTimeoutSeconds = defaults.RequestTimeoutSeconds
	}
	if c.Ollama.Host == "" {
		c.Ollama.Host = defaults.Ollama.Host
	}
	if c.Ollama.TimeoutSeconds <= 0 {
		c.Ollama.TimeoutSeconds = defaults.Ollama.TimeoutSeconds
	}
}

func CheckDebug() bool {
	debug := os.Getenv("SPORTAI_DEBUG")
	return debug == "true" || debug == "1"
}

func InitDebugLog(dataDir string) {
	if !CheckDebug() {
		return
	}

	if err := EnsureDataDirPermissions(dataDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not create data directory %s: %v\n", dataDir, err)
		return
	}

	Debug = true
	logPath := filepath.Join(dataDir, "debug.log")

	// 0600: the log may contain server addresses and prompts
	f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not open debug log at %s: %v\n", logPath, err)
		return
	}

	DebugLog = log.New(f, "", log.Ldate|log.Ltime|log.Lmicroseconds|log.Lshortfile)
	DebugLog.Printf("=== Debug logging started (SPORTAI_DEBUG=%s) ===", os.Getenv("SPORTAI_DEBUG"))
	DebugLog.Printf("Log path: %s", logPath)
}

// Load reads the config file from its default location, writing the
// template first if it does not exist yet.
func Load() (*Config, error) {
	path := GetConfigFilePath()
	if !FileExists(path) {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}
		if err := os.WriteFile(path, []byte(GenerateConfigTemplate()), 0600); err != nil {
			return nil, fmt.Errorf("failed to write config template: %w", err)
		}
	}
	return LoadFrom(path)
}

// LoadFrom reads config from path. A missing file yields the defaults.
// Environment overrides are applied last.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{FileConfig: *DefaultFileConfig()}

	if FileExists(path) {
		var fileCfg FileConfig
		if _, err := toml.DecodeFile(path, &fileCfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		cfg.FileConfig = fileCfg
	}

	cfg.applyDefaults()
	cfg.applyEnvOverrides()
	return cfg, nil
}
