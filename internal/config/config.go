package config

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken string
	Database DatabaseConfig
	Proxy    ProxyConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// ProxyConfig holds optional SOCKS5 proxy settings for the Telegram API.
type ProxyConfig struct {
	Host     string
	Port     string
	Login    string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken: os.Getenv("BOT_TOKEN"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "pairbot"),
			User:     getEnv("DB_USER", "pairbot"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		Proxy: ProxyConfig{
			Host:     os.Getenv("PROXY_HOST"),
			Port:     os.Getenv("PROXY_PORT"),
			Login:    os.Getenv("PROXY_LOGIN"),
			Password: os.Getenv("PROXY_PASS"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	if err := cfg.Proxy.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

// Enabled reports whether a proxy is configured.
func (p ProxyConfig) Enabled() bool {
	return p.Host != ""
}

// Addr returns the proxy host:port address.
func (p ProxyConfig) Addr() string {
	return net.JoinHostPort(p.Host, p.Port)
}

func (p ProxyConfig) validate() error {
	if !p.Enabled() {
		if p.Port != "" || p.Login != "" || p.Password != "" {
			return fmt.Errorf("PROXY_HOST is required when other proxy settings are set")
		}
		return nil
	}
	if p.Port == "" {
		return fmt.Errorf("PROXY_PORT is required when PROXY_HOST is set")
	}
	if (p.Login == "") != (p.Password == "") {
		return fmt.Errorf("PROXY_LOGIN and PROXY_PASS must be set together")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
