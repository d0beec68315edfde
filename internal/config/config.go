package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/i-am-called-glitchy/kirka-bot-go/internal/constants"
	"github.com/joho/godotenv"
)

type Config struct {
	Kirka     KirkaConfig
	Bot       BotConfig
	Cooldown  CooldownConfig
	Blacklist BlacklistConfig
	Chat      ChatConfig
	Logging   LoggingConfig
}

type KirkaConfig struct {
	Domain     string
	ChatWSURL  string
	APIBaseURL string
	Token      string
}

type BotConfig struct {
	Prefix string
}

type CooldownConfig struct {
	Window     time.Duration
	MaxEntries int
}

type BlacklistConfig struct {
	CommandTTL  time.Duration
	MaxCommands int
}

type ChatConfig struct {
	SendRatePerSecond float64
	SendBurst         int
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	domain := getEnv("KIRKA_DOMAIN", "kirka.io")

	cfg := &Config{
		Kirka: KirkaConfig{
			Domain:     domain,
			ChatWSURL:  getEnv("KIRKA_CHAT_WS_URL", fmt.Sprintf("wss://chat.%s/", domain)),
			APIBaseURL: getEnv("KIRKA_API_BASE_URL", fmt.Sprintf("https://api.%s", domain)),
			Token:      getEnv("KIRKA_TOKEN", ""),
		},
		Bot: BotConfig{
			Prefix: getEnv("BOT_PREFIX", "."),
		},
		Cooldown: CooldownConfig{
			Window:     time.Duration(getEnvInt("COOLDOWN_SECONDS", int(constants.CooldownConfig.Window/time.Second))) * time.Second,
			MaxEntries: getEnvInt("COOLDOWN_MAX_ENTRIES", constants.CooldownConfig.MaxEntries),
		},
		Blacklist: BlacklistConfig{
			CommandTTL:  time.Duration(getEnvInt("BLACKLIST_COMMAND_TTL_SECONDS", int(constants.BlacklistConfig.CommandTTL/time.Second))) * time.Second,
			MaxCommands: getEnvInt("BLACKLIST_MAX_COMMANDS", constants.BlacklistConfig.MaxCommands),
		},
		Chat: ChatConfig{
			SendRatePerSecond: getEnvFloat("CHAT_SEND_RATE", constants.ChatSendConfig.RatePerSecond),
			SendBurst:         getEnvInt("CHAT_SEND_BURST", constants.ChatSendConfig.Burst),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Kirka.Token == "" {
		return fmt.Errorf("KIRKA_TOKEN is required")
	}
	if c.Kirka.ChatWSURL == "" {
		return fmt.Errorf("KIRKA_CHAT_WS_URL is required")
	}
	if c.Kirka.APIBaseURL == "" {
		return fmt.Errorf("KIRKA_API_BASE_URL is required")
	}
	if c.Bot.Prefix == "" {
		return fmt.Errorf("BOT_PREFIX must not be empty")
	}
	if c.Cooldown.Window <= 0 {
		return fmt.Errorf("COOLDOWN_SECONDS must be positive")
	}
	if c.Cooldown.MaxEntries <= 0 {
		return fmt.Errorf("COOLDOWN_MAX_ENTRIES must be positive")
	}
	if c.Blacklist.CommandTTL <= 0 {
		return fmt.Errorf("BLACKLIST_COMMAND_TTL_SECONDS must be positive")
	}
	if c.Blacklist.MaxCommands <= 0 {
		return fmt.Errorf("BLACKLIST_MAX_COMMANDS must be positive")
	}
	if c.Chat.SendRatePerSecond <= 0 {
		return fmt.Errorf("CHAT_SEND_RATE must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
