package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Anthropic AnthropicConfig `yaml:"anthropic" mapstructure:"anthropic"`
	Risk      RiskConfig      `yaml:"risk" mapstructure:"risk"`
	TradeOff  TradeOffConfig  `yaml:"tradeoff" mapstructure:"tradeoff"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// AnthropicConfig holds settings for the narrative-generation client.
type AnthropicConfig struct {
	Key            string  `yaml:"key" mapstructure:"key"`
	Model          string  `yaml:"model" mapstructure:"model"`
	MaxTokens      int64   `yaml:"max_tokens" mapstructure:"max_tokens"`
	RequestsPerSec float64 `yaml:"requests_per_sec" mapstructure:"requests_per_sec"`
}

// RiskConfig holds the risk engine's commute thresholds.
type RiskConfig struct {
	ElevatedMinutes int `yaml:"elevated_minutes" mapstructure:"elevated_minutes"`
	ModerateMinutes int `yaml:"moderate_minutes" mapstructure:"moderate_minutes"`
}

// TradeOffConfig holds the analyzer's scoring weights and targets.
type TradeOffConfig struct {
	Weights          map[string]float64 `yaml:"weights" mapstructure:"weights"`
	BudgetBaseline   float64            `yaml:"budget_baseline" mapstructure:"budget_baseline"`
	WorkplaceMinutes int                `yaml:"workplace_minutes" mapstructure:"workplace_minutes"`
}

// ServerConfig configures the boundary HTTP server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("ADVISOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("anthropic.model", "claude-sonnet-4-5-20250929")
	v.SetDefault("anthropic.max_tokens", 2048)
	v.SetDefault("anthropic.requests_per_sec", 2)
	v.SetDefault("risk.elevated_minutes", 90)
	v.SetDefault("risk.moderate_minutes", 45)
	v.SetDefault("tradeoff.budget_baseline", 50000)
	v.SetDefault("tradeoff.workplace_minutes", 30)
	v.SetDefault("tradeoff.weights", map[string]float64{
		"cost":        0.30,
		"commute":     0.25,
		"convenience": 0.20,
		"transport":   0.15,
		"amenities":   0.10,
	})

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
