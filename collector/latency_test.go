package collector

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestLatencyReader(t *testing.T) {
	pinger := fakePinger{
		results: map[string]PingResult{
			"1.1.1.1":     {PacketsSent: 3, PacketsRecv: 3, AvgRtt: 12340 * time.Microsecond},
			"10.0.0.99":   {PacketsSent: 3, PacketsRecv: 0, PacketLoss: 100},
			"192.168.1.1": {PacketsSent: 3, PacketsRecv: 2, PacketLoss: 33.333333, AvgRtt: 800 * time.Microsecond},
		},
		errs: map[string]error{
			"bad.invalid": errors.New("no such host"),
		},
	}
	targets := []string{"1.1.1.1", "10.0.0.99", "bad.invalid", "192.168.1.1"}

	stats := NewLatencyReader(pinger, targets, discardLogger()).Read(context.Background())

	if len(stats.Targets) != 4 {
		t.Fatalf("got %d targets, want 4", len(stats.Targets))
	}
	if stats.ReachableCount != 2 {
		t.Errorf("ReachableCount = %d, want 2", stats.ReachableCount)
	}

	tests := []struct {
		target  string
		success bool
		latency float64
		loss    float64
	}{
		{"1.1.1.1", true, 12.34, 0},
		{"10.0.0.99", false, 0, 100},
		{"bad.invalid", false, 0, 100},
		{"192.168.1.1", true, 0.8, 33.33},
	}
	for i, test := range tests {
		got := stats.Targets[i]
		if got.Target != test.target || got.Success != test.success ||
			got.LatencyMs != test.latency || got.PacketLossPercent != test.loss {
			t.Errorf("target %d = %+v, want %+v", i, got, test)
		}
	}
}
