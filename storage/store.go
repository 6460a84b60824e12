// Package storage persists stamped metric records to SQLite. Each
// record kind has its own table; list fields (partitions, GPUs,
// containers, ping targets) are stored as JSON text.
package storage

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"server-monitor/models"
)

//go:embed schema.sql
var schema string

// Sink accepts a record together with the timestamp it was collected at.
type Sink interface {
	Write(ctx context.Context, stamp string, record models.Record) error
}

// Config holds the parameters for opening a Store.
type Config struct {
	// Path is the SQLite database file. The parent directory must
	// exist. ":memory:" gives a throwaway database.
	Path string

	// Logger receives open/close and write messages. If nil, a no-op
	// logger is used.
	Logger *slog.Logger
}

// Store is a Sink backed by a single SQLite connection. Writes are
// serialized; the connection is not safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	conn   *sqlite.Conn
	logger *slog.Logger
	path   string
}

// Open opens (creating if needed) the database and ensures every table
// exists.
func Open(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("storage: Path is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	conn, err := sqlite.OpenConn(cfg.Path, sqlite.OpenReadWrite|sqlite.OpenCreate|sqlite.OpenWAL)
	if err != nil {
		return nil, fmt.Errorf("storage: opening %s: %w", cfg.Path, err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if err := sqlitex.ExecuteTransient(conn, pragma, nil); err != nil {
			conn.Close()
			return nil, fmt.Errorf("storage: %s: %w", pragma, err)
		}
	}

	if err := sqlitex.ExecuteScript(conn, schema, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("storage: creating tables: %w", err)
	}

	logger.Info("metrics store opened", "path", cfg.Path)

	return &Store{conn: conn, logger: logger, path: cfg.Path}, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.conn.Close(); err != nil {
		return fmt.Errorf("storage: closing %s: %w", s.path, err)
	}
	s.logger.Info("metrics store closed", "path", s.path)
	return nil
}

// Write inserts record into the table for its kind.
func (s *Store) Write(ctx context.Context, stamp string, record models.Record) error {
	query, args, err := insertFor(stamp, record)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.conn.SetInterrupt(ctx.Done())
	defer s.conn.SetInterrupt(nil)

	if err := sqlitex.Execute(s.conn, query, &sqlitex.ExecOptions{Args: args}); err != nil {
		return fmt.Errorf("storage: insert %s: %w", record.Kind(), err)
	}

	s.logger.Debug("record stored", "kind", record.Kind(), "collected_at", stamp)
	return nil
}

// insertFor maps a record positionally onto its table's INSERT.
func insertFor(stamp string, record models.Record) (string, []any, error) {
	switch r := record.(type) {
	case models.SystemProfile:
		return `INSERT INTO system_profile (collected_at, os, system_name, os_release, os_version,
				processor_arch, processor_type, physical_cores, logical_cores)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			[]any{stamp, r.OS, r.SystemName, r.OSRelease, r.OSVersion,
				r.ProcessorArch, r.ProcessorType, r.PhysicalCores, r.LogicalCores}, nil

	case models.CPUStats:
		return `INSERT INTO cpu_stats (collected_at, max_cpu_freq_ghz, min_cpu_freq_ghz,
				current_cpu_freq_ghz, cpu_usage_percent)
			VALUES (?, ?, ?, ?, ?)`,
			[]any{stamp, r.MaxFreqGHz, r.MinFreqGHz, r.CurrentFreqGHz, r.UsagePercent}, nil

	case models.MemoryStats:
		return `INSERT INTO ram_stats (collected_at, total_ram_gb, free_ram_gb, used_ram_gb,
				ram_usage_percent, total_swap_gb, free_swap_gb, used_swap_gb, swap_usage_percent)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			[]any{stamp, r.TotalRAMGB, r.FreeRAMGB, r.UsedRAMGB, r.RAMUsagePercent,
				r.TotalSwapGB, r.FreeSwapGB, r.UsedSwapGB, r.SwapUsagePercent}, nil

	case models.DiskStats:
		partitions, err := encodeList(r.Partitions)
		if err != nil {
			return "", nil, err
		}
		return `INSERT INTO storage_stats (collected_at, total_storage_gb, used_storage_gb,
				free_storage_gb, storage_usage_percent, partitions_count, partitions)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			[]any{stamp, r.TotalStorageGB, r.UsedStorageGB, r.FreeStorageGB,
				r.StorageUsagePercent, r.PartitionsCount, partitions}, nil

	case models.GPUSummary:
		gpus, err := encodeList(r.GPUs)
		if err != nil {
			return "", nil, err
		}
		return `INSERT INTO gpu_stats (collected_at, gpus_count, max_temperature, total_gpu_gb,
				total_used_gpu_gb, total_free_gpu_gb, gpu_usage_percent, gpus)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			[]any{stamp, r.GPUsCount, r.MaxTemperature, r.TotalGPUGB,
				r.TotalUsedGPUGB, r.TotalFreeGPUGB, r.GPUUsagePercent, gpus}, nil

	case models.ContainerStats:
		containers, err := encodeList(r.Containers)
		if err != nil {
			return "", nil, err
		}
		return `INSERT INTO container_stats (collected_at, containers_count, running_count, containers)
			VALUES (?, ?, ?, ?)`,
			[]any{stamp, r.ContainersCount, r.RunningCount, containers}, nil

	case models.LatencyStats:
		targets, err := encodeList(r.Targets)
		if err != nil {
			return "", nil, err
		}
		return `INSERT INTO latency_stats (collected_at, reachable_count, targets)
			VALUES (?, ?, ?)`,
			[]any{stamp, r.ReachableCount, targets}, nil
	}

	return "", nil, fmt.Errorf("storage: unsupported record kind %q (%T)", record.Kind(), record)
}

// encodeList renders a slice as a JSON array; nil encodes as [].
func encodeList[T any](items []T) (string, error) {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("storage: encoding list: %w", err)
	}
	return string(data), nil
}

var tables = map[string]bool{
	models.KindProfile:    true,
	models.KindCPU:        true,
	models.KindMemory:     true,
	models.KindStorage:    true,
	models.KindGPU:        true,
	models.KindContainers: true,
	models.KindLatency:    true,
}

// Count returns the number of rows stored for a record kind.
func (s *Store) Count(ctx context.Context, kind string) (int, error) {
	if !tables[kind] {
		return 0, fmt.Errorf("storage: unknown record kind %q", kind)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.conn.SetInterrupt(ctx.Done())
	defer s.conn.SetInterrupt(nil)

	var count int
	err := sqlitex.Execute(s.conn, "SELECT COUNT(*) FROM "+kind, &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			count = stmt.ColumnInt(0)
			return nil
		},
	})
	if err != nil {
		return 0, fmt.Errorf("storage: counting %s: %w", kind, err)
	}
	return count, nil
}
