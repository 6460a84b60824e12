package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"server-monitor/clock"
	"server-monitor/collector"
	"server-monitor/config"
	"server-monitor/models"
)

type write struct {
	stamp  string
	record models.Record
}

type fakeSink struct {
	mu     sync.Mutex
	writes []write
	fail   map[string]bool
}

func (s *fakeSink) Write(ctx context.Context, stamp string, record models.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail[record.Kind()] {
		return errors.New("disk full")
	}
	s.writes = append(s.writes, write{stamp, record})
	return nil
}

func (s *fakeSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.writes)
}

func task(name string, record models.Record, err error) collector.Task {
	return collector.Task{Name: name, Collect: func(context.Context) (models.Record, error) {
		return record, err
	}}
}

func testStamper(t *testing.T) *clock.Stamper {
	t.Helper()
	stamper, _ := fakeStamper(t)
	return stamper
}

func fakeStamper(t *testing.T) (*clock.Stamper, *clock.FakeClock) {
	t.Helper()
	fake := clock.Fake(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
	stamper, err := clock.NewStamper(fake, "UTC", "")
	if err != nil {
		t.Fatalf("NewStamper: %v", err)
	}
	return stamper, fake
}

func TestCollectMetricsIsolatesFailures(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	sink := &fakeSink{fail: map[string]bool{models.KindMemory: true}}
	stamper, fake := fakeStamper(t)

	// The CPU sample holds the pass open across a second boundary.
	sampling := collector.Task{Name: models.KindCPU, Collect: func(context.Context) (models.Record, error) {
		fake.Advance(1500 * time.Millisecond)
		return nil, collector.ErrCPUStatsUnavailable
	}}

	tasks := []collector.Task{
		task(models.KindProfile, models.SystemProfile{OS: "Linux"}, nil),
		sampling,
		task(models.KindMemory, models.MemoryStats{TotalRAMGB: 16}, nil),
		task(models.KindStorage, models.DiskStats{}, nil),
	}

	written := collectMetrics(context.Background(), logger, tasks, stamper, sink)
	if written != 2 {
		t.Fatalf("written = %d, want 2", written)
	}

	if got := sink.writes[0].record.Kind(); got != models.KindProfile {
		t.Errorf("first write = %s, want %s", got, models.KindProfile)
	}
	if got := sink.writes[1].record.Kind(); got != models.KindStorage {
		t.Errorf("second write = %s, want %s", got, models.KindStorage)
	}
	for _, w := range sink.writes {
		if w.stamp != "2024-03-01 10:00:00" {
			t.Errorf("%s stamp = %q, want the pass stamp 2024-03-01 10:00:00", w.record.Kind(), w.stamp)
		}
	}

	out := logs.String()
	if !strings.Contains(out, "category="+models.KindCPU) {
		t.Errorf("cpu failure not logged:\n%s", out)
	}
	if !strings.Contains(out, "write failed") {
		t.Errorf("memory write failure not logged:\n%s", out)
	}
}

func TestCollectMetricsStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sink := &fakeSink{}
	tasks := []collector.Task{task(models.KindProfile, models.SystemProfile{}, nil)}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if written := collectMetrics(ctx, logger, tasks, testStamper(t), sink); written != 0 {
		t.Errorf("written = %d after cancellation, want 0", written)
	}
}

func TestRunCollectorCollectsImmediatelyAndStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sink := &fakeSink{}
	tasks := []collector.Task{task(models.KindProfile, models.SystemProfile{}, nil)}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	done := make(chan struct{})
	go func() {
		runCollector(ctx, logger, tasks, testStamper(t), sink, time.Hour)
		close(done)
	}()

	deadline := time.Now().Add(5 * time.Second)
	for sink.count() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("no immediate collection pass")
		}
		time.Sleep(10 * time.Millisecond)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("runCollector did not stop after cancellation")
	}
	if got := sink.count(); got != 1 {
		t.Errorf("writes = %d, want 1 with an hour-long interval", got)
	}
}

func TestContainersEnabled(t *testing.T) {
	withDocker := collector.Capabilities{HasDockerSocket: true}
	without := collector.Capabilities{}

	tests := []struct {
		mode string
		caps collector.Capabilities
		want bool
	}{
		{config.ContainersAuto, withDocker, true},
		{config.ContainersAuto, without, false},
		{config.ContainersOn, without, true},
		{config.ContainersOff, withDocker, false},
	}
	for _, tt := range tests {
		if got := containersEnabled(tt.mode, tt.caps); got != tt.want {
			t.Errorf("containersEnabled(%q, docker=%v) = %v, want %v", tt.mode, tt.caps.HasDockerSocket, got, tt.want)
		}
	}
}

func TestNewLogger(t *testing.T) {
	cfg := config.Default()
	cfg.LogFormat = "json"
	cfg.LogLevel = "warn"

	var buf bytes.Buffer
	logger, err := newLogger(cfg, &buf)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level: %s", out)
	}
	if !strings.HasPrefix(out, "{") || !strings.Contains(out, `"msg":"shown"`) {
		t.Errorf("expected a JSON warn record, got %s", out)
	}
}
