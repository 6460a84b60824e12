package config

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/pflag"
)

// FromArgs parses command-line flags, loads the files they point at,
// and applies any flag that was set explicitly on top. The result is
// validated.
func FromArgs(name string, args []string, output io.Writer) (*Config, error) {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.SetOutput(output)

	var (
		configPath = flags.String("config", "config.yaml", "path to the YAML config file")
		envFile    = flags.String("env-file", ".env", "path to the env file")
		dbPath     = flags.String("db", "", "path to the SQLite database")
		interval   = flags.Duration("interval", 0, "collection interval; 0 runs a single pass")
		once       = flags.Bool("once", false, "run a single pass regardless of the configured interval")
		timezone   = flags.String("timezone", "", "IANA timezone for timestamps")
		sample     = flags.Duration("cpu-sample", 0, "CPU utilization sampling window")
		logLevel   = flags.String("log-level", "", "log level: debug, info, warn, error")
		logFormat  = flags.String("log-format", "", "log format: text or json")
	)

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := Load(*configPath, *envFile)
	if err != nil {
		return nil, err
	}

	if flags.Changed("db") {
		cfg.DBPath = *dbPath
	}
	if flags.Changed("interval") {
		cfg.Interval = *interval
	}
	if *once {
		cfg.Interval = 0
	}
	if flags.Changed("timezone") {
		cfg.Timezone = *timezone
	}
	if flags.Changed("cpu-sample") {
		cfg.CPUSampleWindow = *sample
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = *logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = *logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Once reports whether a single collection pass was requested.
func (c *Config) Once() bool {
	return c.Interval == time.Duration(0)
}
