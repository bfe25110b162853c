package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DiscordToken       string       `yaml:"discord_token"`
	Prefix             string       `yaml:"prefix"`
	OwnerID            string       `yaml:"owner_id"`
	SupportRoleID      string       `yaml:"support_role_id"`
	DatabasePath       string       `yaml:"database_path"`
	LogLevel           string       `yaml:"log_level"`
	Health             HealthConfig `yaml:"health"`
	SnipeChannelCap    int          `yaml:"snipe_channel_cap"`
	MuteDefaultMinutes int          `yaml:"mute_default_minutes"`
	Statuses           []string     `yaml:"statuses"`
}

type HealthConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

func DefaultConfig() Config {
	return Config{
		Prefix:             ",",
		DatabasePath:       "/data/teamdesk.db",
		LogLevel:           "info",
		Health:             HealthConfig{Enabled: false, Addr: ":3000"},
		SnipeChannelCap:    512,
		MuteDefaultMinutes: 10,
		Statuses: []string{
			"I put the 'pro' in procrastination",
			"Sarcasm is my love language",
			"I'm not arguing, I'm explaining why I'm right",
			"I'm silently correcting your grammar",
			"I love deadlines. I love the whooshing sound they make as they fly by",
		},
	}
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
	}

	applyEnv(&cfg)
	if cfg.DiscordToken == "" {
		return Config{}, errors.New("DISCORD_TOKEN is required")
	}
	if cfg.OwnerID == "" {
		return Config{}, errors.New("OWNER_ID is required")
	}
	if cfg.Prefix == "" {
		cfg.Prefix = ","
	}
	if cfg.SnipeChannelCap <= 0 {
		cfg.SnipeChannelCap = 512
	}
	if cfg.MuteDefaultMinutes <= 0 {
		cfg.MuteDefaultMinutes = 10
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.DiscordToken = envString("DISCORD_TOKEN", cfg.DiscordToken)
	cfg.Prefix = envString("COMMAND_PREFIX", cfg.Prefix)
	cfg.OwnerID = envString("OWNER_ID", cfg.OwnerID)
	cfg.SupportRoleID = envString("SUPPORT_ROLE_ID", cfg.SupportRoleID)
	cfg.DatabasePath = envString("DATABASE_PATH", cfg.DatabasePath)
	cfg.LogLevel = envString("LOG_LEVEL", cfg.LogLevel)
	cfg.Health.Enabled = envBool("HEALTH_ENABLED", cfg.Health.Enabled)
	cfg.Health.Addr = envString("HEALTH_ADDR", cfg.Health.Addr)
	cfg.SnipeChannelCap = envInt("SNIPE_CHANNEL_CAP", cfg.SnipeChannelCap)
	cfg.MuteDefaultMinutes = envInt("MUTE_DEFAULT_MINUTES", cfg.MuteDefaultMinutes)
}

func BuildLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "json"
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.MessageKey = "message"
	cfg.EncoderConfig.LevelKey = "level"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	lvl := strings.ToLower(level)
	switch lvl {
	case "debug", "info", "warn", "error":
		cfg.Level = zap.NewAtomicLevelAt(parseLevel(lvl))
	default:
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	return cfg.Build()
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		lower := strings.ToLower(value)
		return lower == "1" || lower == "true" || lower == "yes"
	}
	return fallback
}
