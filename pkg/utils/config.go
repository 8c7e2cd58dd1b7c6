package utils

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	CMS      CMSConfig
	Cache    CacheConfig
	Database DatabaseConfig
	Email    EmailConfig
	State    StateConfig
}

type AppConfig struct {
	Name     string
	Port     string
	Debug    bool
	LogPath  string
	DemoUser string
}

type CMSConfig struct {
	BaseURL    string
	BucketSlug string
	ReadKey    string
	WriteKey   string
	Timeout    time.Duration
}

type CacheConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type EmailConfig struct {
	Host       string
	Port       int
	User       string
	Password   string
	From       string
	Moderators []string
}

// StateConfig selects where per-user watch state is kept.
type StateConfig struct {
	Backend string // memory | postgres
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "Letterboxd Clone")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DEMO_USER", "Demo User")
	viper.SetDefault("COSMIC_BASE_URL", "https://api.cosmicjs.com/v3")
	viper.SetDefault("COSMIC_TIMEOUT", "10s")
	viper.SetDefault("CACHE_ENABLED", false)
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("CACHE_TTL", "60s")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("STATE_BACKEND", "memory")

	// .env is optional, plain environment variables are enough
	if err := viper.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:     viper.GetString("APP_NAME"),
			Port:     viper.GetString("PORT"),
			Debug:    viper.GetBool("DEBUG"),
			LogPath:  viper.GetString("LOG_PATH"),
			DemoUser: viper.GetString("DEMO_USER"),
		},
		CMS: CMSConfig{
			BaseURL:    viper.GetString("COSMIC_BASE_URL"),
			BucketSlug: viper.GetString("COSMIC_BUCKET_SLUG"),
			ReadKey:    viper.GetString("COSMIC_READ_KEY"),
			WriteKey:   viper.GetString("COSMIC_WRITE_KEY"),
			Timeout:    viper.GetDuration("COSMIC_TIMEOUT"),
		},
		Cache: CacheConfig{
			Enabled:  viper.GetBool("CACHE_ENABLED"),
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASS"),
			DB:       viper.GetInt("REDIS_DB"),
			TTL:      viper.GetDuration("CACHE_TTL"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Email: EmailConfig{
			Host:       viper.GetString("SMTP_HOST"),
			Port:       viper.GetInt("SMTP_PORT"),
			User:       viper.GetString("SMTP_USER"),
			Password:   viper.GetString("SMTP_PASS"),
			From:       viper.GetString("EMAIL_FROM"),
			Moderators: splitList(viper.GetString("MODERATOR_EMAILS")),
		},
		State: StateConfig{
			Backend: strings.ToLower(viper.GetString("STATE_BACKEND")),
		},
	}

	if config.CMS.BucketSlug == "" {
		return nil, errors.New("COSMIC_BUCKET_SLUG is required")
	}

	return config, nil
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
