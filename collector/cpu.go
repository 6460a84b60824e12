package collector

import (
	"context"
	"fmt"
	"time"

	"server-monitor/models"
	"server-monitor/units"
)

// DefaultSampleWindow is how long CPUReader measures utilization.
const DefaultSampleWindow = time.Second

// CPUReader reports CPU frequency and utilization over a sample window.
type CPUReader struct {
	provider CPUProvider
	window   time.Duration
}

// NewCPUReader uses DefaultSampleWindow when window is not positive.
func NewCPUReader(provider CPUProvider, window time.Duration) *CPUReader {
	if window <= 0 {
		window = DefaultSampleWindow
	}
	return &CPUReader{provider: provider, window: window}
}

// Read blocks for the sample window. Frequencies are GHz with one
// decimal; utilization has two.
func (r *CPUReader) Read(ctx context.Context) (models.CPUStats, error) {
	freq, err := r.provider.Frequency(ctx)
	if err != nil {
		return models.CPUStats{}, fmt.Errorf("%w: %w", ErrCPUStatsUnavailable, err)
	}

	usage, err := r.provider.Utilization(ctx, r.window)
	if err != nil {
		return models.CPUStats{}, fmt.Errorf("%w: %w", ErrOSQuery, err)
	}

	return models.CPUStats{
		MaxFreqGHz:     mhzToGHz(freq.MaxMHz),
		MinFreqGHz:     mhzToGHz(freq.MinMHz),
		CurrentFreqGHz: mhzToGHz(freq.CurrentMHz),
		UsagePercent:   units.Round(clampPercent(usage), 2),
	}, nil
}

func mhzToGHz(mhz float64) float64 {
	return units.Round(mhz/1000, 1)
}

func clampPercent(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}
