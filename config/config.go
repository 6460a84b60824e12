package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"server-monitor/clock"
)

// Container collection modes.
const (
	ContainersAuto = "auto"
	ContainersOn   = "on"
	ContainersOff  = "off"
)

// Config holds the collector settings. Precedence, lowest first:
// defaults, YAML file, environment (including the env file), flags.
type Config struct {
	DBPath          string        `yaml:"db_path"`
	Timezone        string        `yaml:"timezone"`
	TimestampLayout string        `yaml:"timestamp_layout"`
	Interval        time.Duration `yaml:"interval"`
	CPUSampleWindow time.Duration `yaml:"cpu_sample_window"`

	GPU        bool   `yaml:"gpu"`
	Containers string `yaml:"containers"`

	PingTargets    []string      `yaml:"ping_targets"`
	PingCount      int           `yaml:"ping_count"`
	PingTimeout    time.Duration `yaml:"ping_timeout"`
	PingPrivileged bool          `yaml:"ping_privileged"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Sources lists the files that contributed to this config.
	Sources []string `yaml:"-"`
}

// Default returns the built-in settings: one pass, 1s CPU sample,
// Cairo time, GPU on, containers when Docker is present.
func Default() *Config {
	return &Config{
		DBPath:          "server-monitor.db",
		Timezone:        clock.DefaultTimezone,
		TimestampLayout: clock.DefaultLayout,
		Interval:        0,
		CPUSampleWindow: time.Second,
		GPU:             true,
		Containers:      ContainersAuto,
		PingCount:       3,
		PingTimeout:     2 * time.Second,
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

// Load reads the env file and YAML file (either may be absent) and
// applies environment overrides.
func Load(configPath, envFile string) (*Config, error) {
	cfg := Default()

	// Kalo gak ada .env ya pake env biasa
	if envFile != "" {
		if err := godotenv.Load(envFile); err == nil {
			cfg.Sources = append(cfg.Sources, envFile)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading env file %s: %w", envFile, err)
		}
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", configPath, err)
			}
			cfg.Sources = append(cfg.Sources, configPath)
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("reading config %s: %w", configPath, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.DBPath = getEnv("MONITOR_DB_PATH", c.DBPath)
	c.Timezone = getEnv("MONITOR_TIMEZONE", c.Timezone)
	c.TimestampLayout = getEnv("MONITOR_TIMESTAMP_LAYOUT", c.TimestampLayout)
	c.Containers = getEnv("MONITOR_CONTAINERS", c.Containers)
	c.LogLevel = getEnv("MONITOR_LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnv("MONITOR_LOG_FORMAT", c.LogFormat)

	if v := os.Getenv("MONITOR_INTERVAL_SECONDS"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil || seconds < 0 {
			return fmt.Errorf("MONITOR_INTERVAL_SECONDS: invalid value %q", v)
		}
		c.Interval = time.Duration(seconds) * time.Second
	}
	if v := os.Getenv("MONITOR_CPU_SAMPLE_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms < 1 {
			return fmt.Errorf("MONITOR_CPU_SAMPLE_MS: invalid value %q", v)
		}
		c.CPUSampleWindow = time.Duration(ms) * time.Millisecond
	}
	if v := os.Getenv("MONITOR_GPU"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("MONITOR_GPU: invalid value %q", v)
		}
		c.GPU = enabled
	}
	if v := os.Getenv("MONITOR_PING_TARGETS"); v != "" {
		c.PingTargets = splitList(v)
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return errors.New("db_path is required")
	}
	if _, err := clock.NewStamper(clock.Real(), c.Timezone, c.TimestampLayout); err != nil {
		return err
	}
	if c.Interval < 0 {
		return fmt.Errorf("interval must not be negative, got %v", c.Interval)
	}
	if c.CPUSampleWindow <= 0 {
		return fmt.Errorf("cpu_sample_window must be positive, got %v", c.CPUSampleWindow)
	}
	if c.Interval > 0 && c.Interval <= c.CPUSampleWindow {
		return fmt.Errorf("interval %v must exceed cpu_sample_window %v", c.Interval, c.CPUSampleWindow)
	}
	switch c.Containers {
	case ContainersAuto, ContainersOn, ContainersOff:
	default:
		return fmt.Errorf("containers must be auto, on or off, got %q", c.Containers)
	}
	if len(c.PingTargets) > 0 && c.PingCount < 1 {
		return fmt.Errorf("ping_count must be at least 1, got %d", c.PingCount)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be text or json, got %q", c.LogFormat)
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// getEnv ambil env dengan fallback
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(v string) []string {
	var items []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
