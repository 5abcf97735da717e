package config

import (
	"log"

	"github.com/spf13/viper"
)

type WebServerConfig struct {
	Port            string `mapstructure:"port"`
	IP              string `mapstructure:"ip"`
	Scheme          string `mapstructure:"scheme"`
	BaseURL         string `mapstructure:"base_url"`
	ReadTimeout     int    `mapstructure:"read_timeout"`
	WriteTimeout    int    `mapstructure:"write_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

type RedisConfig struct {
	Address          string `mapstructure:"address"`
	Password         string `mapstructure:"password"`
	DB               int    `mapstructure:"db"`
	PoolSize         int    `mapstructure:"pool_size"`
	MinIdleConns     int    `mapstructure:"min_idle_conns"`
	OperationTimeout int    `mapstructure:"operation_timeout"`
}

type CacheConfig struct {
	Enabled     bool `mapstructure:"enabled"`
	MaxSizeMB   int  `mapstructure:"max_size_mb"`
	TTLSeconds  int  `mapstructure:"ttl_seconds"`
	CounterSize int  `mapstructure:"counter_size"`
}

// RateLimitConfig holds the global per-IP limits plus a stricter tier for
// the endpoints that cost money or send mail (chat, contact).
type RateLimitConfig struct {
	RequestsPerSecond       float64 `mapstructure:"requests_per_second"`
	Burst                   int     `mapstructure:"burst"`
	StrictRequestsPerSecond float64 `mapstructure:"strict_requests_per_second"`
	StrictBurst             int     `mapstructure:"strict_burst"`
}

// WakaTimeConfig controls the coding-activity client. The API key is
// intentionally env-only (WAKATIME_API_KEY) so it never lands in config files.
type WakaTimeConfig struct {
	APIKeyEnv           string `mapstructure:"api_key_env"`
	BaseURL             string `mapstructure:"base_url"`
	Editor              string `mapstructure:"editor"`          // tracked editor name, e.g. "Cursor"
	Project             string `mapstructure:"project"`         // tracked project name for the liveness fallback
	RequestTimeout      int    `mapstructure:"request_timeout"` // seconds
	PollIntervalSeconds int    `mapstructure:"poll_interval_seconds"`
	HeartbeatLimit      int    `mapstructure:"heartbeat_limit"`
	HistorySize         int    `mapstructure:"history_size"` // snapshots kept in Redis
}

type ChatConfig struct {
	Enabled        bool    `mapstructure:"enabled"`
	APIKeyEnv      string  `mapstructure:"api_key_env"`
	BaseURL        string  `mapstructure:"base_url"`
	Model          string  `mapstructure:"model"`
	Temperature    float64 `mapstructure:"temperature"`
	RequestTimeout int     `mapstructure:"request_timeout"` // seconds
	MaxQuestionLen int     `mapstructure:"max_question_len"`
}

type ContactConfig struct {
	ForwardURL     string `mapstructure:"forward_url"` // forms endpoint (e.g. Formspree)
	RequestTimeout int    `mapstructure:"request_timeout"`
	SpamEnabled    bool   `mapstructure:"spam_enabled"`
	MaxMessageLen  int    `mapstructure:"max_message_len"`
}

type EmailConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     string `mapstructure:"smtp_port"`
	SMTPUsername string `mapstructure:"smtp_username"`
	FromEmail    string `mapstructure:"from_email"`
	FromName     string `mapstructure:"from_name"`
	NotifyEmail  string `mapstructure:"notify_email"` // where contact notifications go
}

type SecurityConfig struct {
	AdminAPIKeyEnv   string `mapstructure:"admin_api_key_env"`
	AdminAuthEnabled bool   `mapstructure:"admin_auth_enabled"`
}

type Config struct {
	WebServer WebServerConfig `mapstructure:"webserver"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Cache     CacheConfig     `mapstructure:"cache"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	WakaTime  WakaTimeConfig  `mapstructure:"wakatime"`
	Chat      ChatConfig      `mapstructure:"chat"`
	Contact   ContactConfig   `mapstructure:"contact"`
	Email     EmailConfig     `mapstructure:"email"`
	Security  SecurityConfig  `mapstructure:"security"`
}

func LoadConfig() (Config, error) {
	var config Config

	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Enable environment variable overrides
	viper.SetEnvPrefix("PORTFOLIO")
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Error reading config file: %v", err)
		return config, err
	}

	if err := viper.Unmarshal(&config); err != nil {
		log.Printf("Unable to decode into struct: %v", err)
		return config, err
	}

	log.Println("Configuration loaded successfully")
	return config, nil
}

func MustLoadConfig() Config {
	config, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	return config
}

func setDefaults() {
	// WebServer defaults
	viper.SetDefault("webserver.port", "8080")
	viper.SetDefault("webserver.ip", "127.0.0.1")
	viper.SetDefault("webserver.scheme", "http")
	viper.SetDefault("webserver.base_url", "")
	viper.SetDefault("webserver.read_timeout", 15)
	viper.SetDefault("webserver.write_timeout", 15)
	viper.SetDefault("webserver.shutdown_timeout", 30)

	// Redis defaults
	viper.SetDefault("redis.address", "localhost:6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.pool_size", 10)
	viper.SetDefault("redis.min_idle_conns", 5)
	viper.SetDefault("redis.operation_timeout", 5)

	// Cache defaults
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.max_size_mb", 50)
	viper.SetDefault("cache.ttl_seconds", 60)
	viper.SetDefault("cache.counter_size", 100000)

	// RateLimit defaults
	viper.SetDefault("ratelimit.requests_per_second", 10.0)
	viper.SetDefault("ratelimit.burst", 20)
	viper.SetDefault("ratelimit.strict_requests_per_second", 0.5)
	viper.SetDefault("ratelimit.strict_burst", 3)

	// WakaTime defaults
	viper.SetDefault("wakatime.api_key_env", "WAKATIME_API_KEY")
	viper.SetDefault("wakatime.base_url", "https://wakatime.com/api/v1")
	viper.SetDefault("wakatime.editor", "Cursor")
	viper.SetDefault("wakatime.project", "")
	viper.SetDefault("wakatime.request_timeout", 10)
	viper.SetDefault("wakatime.poll_interval_seconds", 30)
	viper.SetDefault("wakatime.heartbeat_limit", 5)
	viper.SetDefault("wakatime.history_size", 1000)

	// Chat defaults
	viper.SetDefault("chat.enabled", true)
	viper.SetDefault("chat.api_key_env", "GEMINI_API_KEY")
	viper.SetDefault("chat.base_url", "https://generativelanguage.googleapis.com")
	viper.SetDefault("chat.model", "gemini-3-flash-preview")
	viper.SetDefault("chat.temperature", 0.7)
	viper.SetDefault("chat.request_timeout", 30)
	viper.SetDefault("chat.max_question_len", 500)

	// Contact defaults
	viper.SetDefault("contact.forward_url", "")
	viper.SetDefault("contact.request_timeout", 10)
	viper.SetDefault("contact.spam_enabled", true)
	viper.SetDefault("contact.max_message_len", 5000)

	// Email defaults
	viper.SetDefault("email.enabled", false)
	viper.SetDefault("email.smtp_host", "")
	viper.SetDefault("email.smtp_port", "587")
	viper.SetDefault("email.smtp_username", "")
	viper.SetDefault("email.from_email", "")
	viper.SetDefault("email.from_name", "Portfolio Contact")
	viper.SetDefault("email.notify_email", "")

	// Security defaults
	viper.SetDefault("security.admin_api_key_env", "PORTFOLIO_ADMIN_KEY")
	viper.SetDefault("security.admin_auth_enabled", true)
}
