package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"server-monitor/clock"
	"server-monitor/collector"
	"server-monitor/config"
	"server-monitor/models"
	"server-monitor/storage"
)

// Build info
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "server-monitor: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	// Load config
	cfg, err := config.FromArgs("server-monitor", args, stderr)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg, stderr)
	if err != nil {
		return err
	}

	logger.Info("server-monitor starting", "version", version, "commit", commit, "built", date)
	logger.Info("configuration",
		"db", cfg.DBPath,
		"timezone", cfg.Timezone,
		"interval", cfg.Interval,
		"cpu_sample", cfg.CPUSampleWindow,
		"sources", cfg.Sources,
	)

	stamper, err := clock.NewStamper(clock.Real(), cfg.Timezone, cfg.TimestampLayout)
	if err != nil {
		return err
	}

	store, err := storage.Open(storage.Config{Path: cfg.DBPath, Logger: logger})
	if err != nil {
		return err
	}
	defer store.Close()

	if passes, err := store.Count(context.Background(), models.KindProfile); err == nil {
		logger.Info("store ready", "path", cfg.DBPath, "previous_passes", passes, "timezone", stamper.Location().String())
	}

	caps := collector.DetectCapabilities(logger)
	opts := collector.Options{
		SampleWindow:   cfg.CPUSampleWindow,
		GPU:            cfg.GPU,
		Containers:     containersEnabled(cfg.Containers, caps),
		PingTargets:    cfg.PingTargets,
		PingCount:      cfg.PingCount,
		PingTimeout:    cfg.PingTimeout,
		PingPrivileged: cfg.PingPrivileged,
		Logger:         logger,
	}
	tasks := collector.Tasks(collector.DefaultProviders(opts), opts)

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Once() {
		collectMetrics(ctx, logger, tasks, stamper, store)
		return nil
	}

	runCollector(ctx, logger, tasks, stamper, store, cfg.Interval)
	logger.Info("shutting down")
	return nil
}

func newLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// containersEnabled resolves the auto mode against the detected socket.
func containersEnabled(mode string, caps collector.Capabilities) bool {
	switch mode {
	case config.ContainersOn:
		return true
	case config.ContainersOff:
		return false
	default:
		return caps.HasDockerSocket
	}
}

// runCollector loop
func runCollector(ctx context.Context, logger *slog.Logger, tasks []collector.Task, stamper *clock.Stamper, sink storage.Sink, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Collect immediately
	collectMetrics(ctx, logger, tasks, stamper, sink)

	for {
		select {
		case <-ticker.C:
			collectMetrics(ctx, logger, tasks, stamper, sink)
		case <-ctx.Done():
			return
		}
	}
}

// collectMetrics runs every task once. A failing category is logged and
// skipped; it never stops the others. Returns the number of records
// persisted.
func collectMetrics(ctx context.Context, logger *slog.Logger, tasks []collector.Task, stamper *clock.Stamper, sink storage.Sink) int {
	start := time.Now()
	written := 0

	// One stamp per pass so rows from the same pass join on collected_at.
	stamp := stamper.Stamp()

	for _, task := range tasks {
		if ctx.Err() != nil {
			break
		}

		record, err := task.Collect(ctx)
		if err != nil {
			logger.Error("collection failed", "category", task.Name, "error", err)
			continue
		}

		if err := sink.Write(ctx, stamp, record); err != nil {
			logger.Error("write failed", "category", task.Name, "error", err)
			continue
		}
		logger.Debug("collected", "category", task.Name, "at", stamp)
		written++
	}

	logger.Info("collection pass complete",
		"records", written,
		"categories", len(tasks),
		"took", time.Since(start).Round(time.Millisecond),
	)
	return written
}
