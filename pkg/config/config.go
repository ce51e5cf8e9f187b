package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" json:"server" jsonschema:"description=HTTP server configuration"`
	Database  DatabaseConfig  `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Scheduler SchedulerConfig `yaml:"scheduler" json:"scheduler" jsonschema:"description=Source check scheduler configuration"`
	Fetch     FetchConfig     `yaml:"fetch" json:"fetch" jsonschema:"description=Content fetching configuration"`
	Telegram  TelegramConfig  `yaml:"telegram" json:"telegram" jsonschema:"description=Telegram bot configuration"`
	Message   MessageConfig   `yaml:"message" json:"message" jsonschema:"description=Message rendering configuration"`
}

// ServerConfig holds http server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:newsbot.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// SchedulerConfig holds check loop, retry and delivery settings
type SchedulerConfig struct {
	Interval              time.Duration `yaml:"interval" json:"interval" jsonschema:"default=5m,description=Pause between check cycles"`
	MaxRetries            int           `yaml:"max_retries" json:"max_retries" jsonschema:"default=3,minimum=0,description=Fetch retries after the first attempt"`
	RetryDelay            time.Duration `yaml:"retry_delay" json:"retry_delay" jsonschema:"default=5s,description=First retry delay doubled on each next retry"`
	MaxItemsPerUpdate     int           `yaml:"max_items_per_update" json:"max_items_per_update" jsonschema:"default=5,minimum=1,description=Maximum items sent per source check"`
	BatchSize             int           `yaml:"batch_size" json:"batch_size" jsonschema:"default=10,minimum=1,description=Sources checked concurrently"`
	BatchDelay            time.Duration `yaml:"batch_delay" json:"batch_delay" jsonschema:"default=1s,description=Pause between batches"`
	ErrorCooldown         time.Duration `yaml:"error_cooldown" json:"error_cooldown" jsonschema:"default=60s,description=Pause after a failed cycle"`
	DeliveryInterval      time.Duration `yaml:"delivery_interval" json:"delivery_interval" jsonschema:"default=100ms,description=Minimal pause between two sent messages"`
	DeactivateUnreachable bool          `yaml:"deactivate_unreachable" json:"deactivate_unreachable" jsonschema:"default=false,description=Deactivate subscriptions of users who blocked the bot"`
}

// FetchConfig holds source fetching settings
type FetchConfig struct {
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout per fetch attempt"`
	UserAgent    string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Mozilla/5.0 FeedAggregatorBot/1.0,description=User agent for HTTP requests"`
	AllowPrivate bool          `yaml:"allow_private" json:"allow_private" jsonschema:"default=false,description=Allow fetching from private and loopback addresses"`
	MaxPageItems int           `yaml:"max_page_items" json:"max_page_items" jsonschema:"default=5,minimum=1,description=Maximum items scraped from a web page"`
}

// TelegramConfig holds bot api settings
type TelegramConfig struct {
	Token   string        `yaml:"token" json:"token" jsonschema:"description=Bot token (can use environment variable)"`
	APIURL  string        `yaml:"api_url" json:"api_url" jsonschema:"default=https://api.telegram.org,description=Bot API endpoint"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Bot API request timeout"`
}

// MessageConfig holds rendering settings
type MessageConfig struct {
	MaxLength int `yaml:"max_length" json:"max_length" jsonschema:"default=4000,minimum=100,maximum=4096,description=Maximum message length in characters"`
}

// Load reads configuration from a YAML file. Keys missing in the file keep their defaults,
// overrides are applied before validation.
func Load(path string, overrides ...func(*Config)) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	cfg := defaults()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	for _, o := range overrides {
		o(cfg)
	}
	cfg.Telegram.Token = strings.TrimSpace(cfg.Telegram.Token)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(cfg); err != nil {
		// schema validation is supplementary
		lgr.Printf("[WARN] schema validation failed: %v", err)
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{Listen: ":8080", Timeout: 30 * time.Second},
		Database: DatabaseConfig{
			DSN:             "file:newsbot.db?cache=shared&mode=rwc&_txlock=immediate",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 3600,
		},
		Scheduler: SchedulerConfig{
			Interval:          5 * time.Minute,
			MaxRetries:        3,
			RetryDelay:        5 * time.Second,
			MaxItemsPerUpdate: 5,
			BatchSize:         10,
			BatchDelay:        time.Second,
			ErrorCooldown:     60 * time.Second,
			DeliveryInterval:  100 * time.Millisecond,
		},
		Fetch: FetchConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "Mozilla/5.0 FeedAggregatorBot/1.0",
			MaxPageItems: 5,
		},
		Telegram: TelegramConfig{APIURL: "https://api.telegram.org", Timeout: 30 * time.Second},
		Message:  MessageConfig{MaxLength: 4000},
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	var errs []error

	if cfg.Telegram.Token == "" {
		errs = append(errs, errors.New("telegram.token is required"))
	}
	if cfg.Telegram.Timeout <= 0 {
		errs = append(errs, errors.New("telegram.timeout must be positive"))
	}

	sc := cfg.Scheduler
	if sc.Interval <= 0 {
		errs = append(errs, errors.New("scheduler.interval must be positive"))
	}
	if sc.MaxRetries < 0 {
		errs = append(errs, errors.New("scheduler.max_retries must be non-negative"))
	}
	if sc.RetryDelay <= 0 {
		errs = append(errs, errors.New("scheduler.retry_delay must be positive"))
	}
	if sc.MaxItemsPerUpdate < 1 {
		errs = append(errs, errors.New("scheduler.max_items_per_update must be at least 1"))
	}
	if sc.BatchSize < 1 {
		errs = append(errs, errors.New("scheduler.batch_size must be at least 1"))
	}
	if sc.BatchDelay < 0 || sc.ErrorCooldown < 0 || sc.DeliveryInterval < 0 {
		errs = append(errs, errors.New("scheduler delays must be non-negative"))
	}

	if cfg.Fetch.Timeout <= 0 {
		errs = append(errs, errors.New("fetch.timeout must be positive"))
	}
	if cfg.Message.MaxLength < 100 || cfg.Message.MaxLength > 4096 {
		errs = append(errs, errors.New("message.max_length must be between 100 and 4096"))
	}
	if cfg.Server.Timeout < time.Second {
		errs = append(errs, errors.New("server timeout must be at least 1 second"))
	}

	return errors.Join(errs...)
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
