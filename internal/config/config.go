package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"pdf-summary-agent/internal/domain"

	"gopkg.in/yaml.v3"
)

const (
	DefaultOllamaURL      = "http://localhost:11434/api/generate"
	DefaultModelName      = "deepseek-r1:latest"
	DefaultTempUploadPath = "temp_uploaded_pdf.pdf"
	DefaultMaxPromptChars = 2000
	DefaultMaxFileSize    = 50 * 1024 * 1024
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort     string   `yaml:"server_port"`
	LogLevel       string   `yaml:"log_level"`
	MaxFileSize    int64    `yaml:"max_file_size"`
	TempUploadPath string   `yaml:"temp_upload_path"`
	OllamaURL      string   `yaml:"ollama_url"`
	ModelName      string   `yaml:"model_name"`
	MaxPromptChars int      `yaml:"max_prompt_chars"`
	StatusPolicy   string   `yaml:"status_policy"`
	SpeechCommand  string   `yaml:"speech_command"`
	SpeechArgs     []string `yaml:"speech_args"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// NewConfig builds the configuration from defaults, the optional YAML file named by
// CONFIG_FILE, and environment variables, in increasing order of precedence.
func NewConfig() (domain.Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		ServerPort:     "8080",
		LogLevel:       "info",
		MaxFileSize:    DefaultMaxFileSize,
		TempUploadPath: DefaultTempUploadPath,
		OllamaURL:      DefaultOllamaURL,
		ModelName:      DefaultModelName,
		MaxPromptChars: DefaultMaxPromptChars,
		StatusPolicy:   "standard",
		SpeechCommand:  defaultSpeechCommand(),
		AllowedOrigins: []string{
			"http://localhost:5173",
			"http://localhost:3000",
		},
	}
}

func (c *AppConfig) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *AppConfig) applyEnv() {
	// Cloud Run (and many PaaS) provide the listening port via PORT.
	// Keep SERVER_PORT for local/dev compatibility.
	c.ServerPort = getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", c.ServerPort))
	c.LogLevel = getEnvOrDefault("LOG_LEVEL", c.LogLevel)
	c.MaxFileSize = getEnvInt64OrDefault("MAX_FILE_SIZE", c.MaxFileSize)
	c.TempUploadPath = getEnvOrDefault("TEMP_UPLOAD_PATH", c.TempUploadPath)
	c.OllamaURL = getEnvOrDefault("OLLAMA_URL", c.OllamaURL)
	c.ModelName = getEnvOrDefault("MODEL_NAME", c.ModelName)
	c.MaxPromptChars = int(getEnvInt64OrDefault("MAX_PROMPT_CHARS", int64(c.MaxPromptChars)))
	c.StatusPolicy = getEnvOrDefault("OLLAMA_STATUS_POLICY", c.StatusPolicy)
	c.SpeechCommand = getEnvOrDefault("SPEECH_COMMAND", c.SpeechCommand)
	if v := os.Getenv("SPEECH_ARGS"); v != "" {
		c.SpeechArgs = strings.Fields(v)
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		c.AllowedOrigins = splitList(v)
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetMaxFileSize returns the maximum allowed upload size in bytes
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetTempUploadPath returns the fixed path uploads are written to
func (c *AppConfig) GetTempUploadPath() string {
	return c.TempUploadPath
}

// GetOllamaURL returns the generate endpoint
func (c *AppConfig) GetOllamaURL() string {
	return c.OllamaURL
}

// GetModelName returns the model identifier sent with each prompt
func (c *AppConfig) GetModelName() string {
	return c.ModelName
}

// GetMaxPromptChars returns the truncation budget for extracted text
func (c *AppConfig) GetMaxPromptChars() int {
	return c.MaxPromptChars
}

// GetStatusPolicy returns which HTTP status the model client accepts as success
func (c *AppConfig) GetStatusPolicy() string {
	return c.StatusPolicy
}

// GetSpeechCommand returns the text-to-speech binary
func (c *AppConfig) GetSpeechCommand() string {
	return c.SpeechCommand
}

// GetSpeechArgs returns extra arguments placed before the text
func (c *AppConfig) GetSpeechArgs() []string {
	return c.SpeechArgs
}

// GetAllowedOrigins returns the CORS allow-list
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

func defaultSpeechCommand() string {
	if runtime.GOOS == "darwin" {
		return "say"
	}
	return "espeak"
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
