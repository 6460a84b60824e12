package collector

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryReaderConvertsToGB(t *testing.T) {
	provider := fakeMemory{
		virtual: VirtualMemory{
			Total:       16 * gib,
			Available:   6 * gib,
			Used:        8 * gib,
			UsedPercent: 62.51234,
		},
		swap: SwapMemory{
			Total:       2 * gib,
			Free:        gib + gib/2,
			Used:        gib / 2,
			UsedPercent: 25,
		},
	}

	stats, err := NewMemoryReader(provider).Read(context.Background())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	checks := []struct {
		name      string
		got, want float64
	}{
		{"TotalRAMGB", stats.TotalRAMGB, 16},
		{"FreeRAMGB", stats.FreeRAMGB, 6},
		{"UsedRAMGB", stats.UsedRAMGB, 8},
		{"RAMUsagePercent", stats.RAMUsagePercent, 62.51},
		{"TotalSwapGB", stats.TotalSwapGB, 2},
		{"FreeSwapGB", stats.FreeSwapGB, 1.5},
		{"UsedSwapGB", stats.UsedSwapGB, 0.5},
		{"SwapUsagePercent", stats.SwapUsagePercent, 25},
	}
	for _, check := range checks {
		if check.got != check.want {
			t.Errorf("%s = %v, want %v", check.name, check.got, check.want)
		}
	}
}

// Cached and buffered memory sits outside both "used" and "available",
// so only per-field bounds hold.
func TestMemoryReaderFieldsWithinTotal(t *testing.T) {
	provider := fakeMemory{
		virtual: VirtualMemory{
			Total:       7_812_345_678,
			Available:   3_123_456_789,
			Used:        2_987_654_321,
			UsedPercent: 60.02,
		},
	}

	stats, err := NewMemoryReader(provider).Read(context.Background())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	const epsilon = 0.01
	for name, value := range map[string]float64{
		"FreeRAMGB": stats.FreeRAMGB,
		"UsedRAMGB": stats.UsedRAMGB,
	} {
		if value < 0 || value > stats.TotalRAMGB+epsilon {
			t.Errorf("%s = %v, want within [0, %v]", name, value, stats.TotalRAMGB)
		}
	}
	if stats.TotalSwapGB != 0 || stats.SwapUsagePercent != 0 {
		t.Errorf("swap = %v GB / %v%%, want zero for host without swap", stats.TotalSwapGB, stats.SwapUsagePercent)
	}
}

func TestMemoryReaderPropagatesOSErrors(t *testing.T) {
	tests := []struct {
		name     string
		provider fakeMemory
	}{
		{"virtual memory", fakeMemory{err: errors.New("meminfo unreadable")}},
		{"swap memory", fakeMemory{swapErr: errors.New("swaps unreadable")}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewMemoryReader(test.provider).Read(context.Background())
			if !errors.Is(err, ErrOSQuery) {
				t.Errorf("error = %v, want ErrOSQuery", err)
			}
		})
	}
}
