package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	API         APIConfig         `yaml:"api"`
	Poll        PollConfig        `yaml:"poll"`
	Credentials CredentialsConfig `yaml:"credentials"`
	UI          UIConfig          `yaml:"ui"`
	Events      EventsConfig      `yaml:"events"`
	LogLevel    string            `yaml:"log_level"`
	LogFile     string            `yaml:"log_file"`
}

type APIConfig struct {
	BaseURL           string        `yaml:"base_url"`
	Timeout           time.Duration `yaml:"timeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Burst             int           `yaml:"burst"`
}

type PollConfig struct {
	Interval      time.Duration `yaml:"interval"`
	Timeout       time.Duration `yaml:"timeout"`
	WatchdogEvery time.Duration `yaml:"watchdog_every"`
}

type CredentialsConfig struct {
	Path string `yaml:"path"`
}

type UIConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// EventsConfig configures the optional RabbitMQ event sink. An empty URL
// disables it.
type EventsConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

func (e EventsConfig) Enabled() bool {
	return e.URL != ""
}

// Load reads the YAML file at path, expanding environment variables. A missing
// file is not an error: the defaults are returned instead.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config file: %w", err)
	default:
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	home, _ := os.UserHomeDir()

	if c.API.BaseURL == "" {
		c.API.BaseURL = "https://twitter.com"
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = 60 * time.Second
	}
	if c.API.RequestsPerSecond == 0 {
		c.API.RequestsPerSecond = 1
	}
	if c.API.Burst == 0 {
		c.API.Burst = 5
	}
	if c.Poll.Interval == 0 {
		c.Poll.Interval = 2 * time.Minute
	}
	if c.Poll.Timeout == 0 {
		c.Poll.Timeout = 30 * time.Second
	}
	if c.Poll.WatchdogEvery == 0 {
		c.Poll.WatchdogEvery = 5 * time.Second
	}
	if c.Credentials.Path == "" {
		c.Credentials.Path = filepath.Join(home, ".twitteruirc")
	}
	if c.UI.Title == "" {
		c.UI.Title = "Twitter UI"
	}
	if c.Events.Exchange == "" {
		c.Events.Exchange = "twitterui"
	}
	if c.Events.RoutingKey == "" {
		c.Events.RoutingKey = "timeline"
	}
	if c.Events.QueueName == "" {
		c.Events.QueueName = "twitterui_events"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFile == "" {
		c.LogFile = filepath.Join(home, ".twitterui.log")
	}
}
