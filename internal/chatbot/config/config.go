package config

import (
	"time"

	"finance-chatbot/pkg/apperror"
	"finance-chatbot/pkg/common"
	"finance-chatbot/pkg/config"
)

const missingSecretsMessage = "GEMINI_API_KEY or MONGO_URI is missing! Please check your environment variables."

// Mongo holds the document store configuration.
type Mongo struct {
	URI            string        `mapstructure:"uri"`
	Database       string        `mapstructure:"database"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

// Gemini holds the configuration for the Gemini API.
type Gemini struct {
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model"`
	MaxAttempts int           `mapstructure:"max_attempts"`
	RetryDelay  time.Duration `mapstructure:"retry_delay"`
}

// YahooFinance holds the history window requested from Yahoo Finance.
type YahooFinance struct {
	Period   string `mapstructure:"period"`
	Interval string `mapstructure:"interval"`
}

// Config holds the full configuration for the chatbot service.
type Config struct {
	App          config.App    `mapstructure:"app"`
	Logger       config.Logger `mapstructure:"logger"`
	API          config.API    `mapstructure:"api"`
	Mongo        Mongo         `mapstructure:"mongo"`
	Gemini       Gemini        `mapstructure:"gemini"`
	YahooFinance YahooFinance  `mapstructure:"yahoo_finance"`
}

var defaults = map[string]interface{}{
	"app.name":               "finance-chatbot",
	"app.env":                "development",
	"app.version":            "1.0.0",
	"logger.level":           "info",
	"logger.encoding":        "json",
	"api.host":               "",
	"api.port":               8000,
	"mongo.uri":              "",
	"mongo.database":         "finance_chatbot",
	"mongo.connect_timeout":  "10s",
	"gemini.api_key":         "",
	"gemini.model":           common.DefaultGeminiModel,
	"gemini.max_attempts":    3,
	"gemini.retry_delay":     "5s",
	"yahoo_finance.period":   "1d",
	"yahoo_finance.interval": "1d",
}

// Load loads the chatbot configuration from the given path and the environment, then validates it.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, defaults, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects a configuration missing either required secret.
func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" || c.Mongo.URI == "" {
		return apperror.New(apperror.KindFatalConfig, missingSecretsMessage)
	}
	return nil
}
