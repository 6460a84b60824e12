package collector

import (
	"context"
	"log/slog"

	"server-monitor/models"
	"server-monitor/units"
)

// GPUReader reports per-GPU and aggregate GPU memory.
type GPUReader struct {
	provider GPUProvider
	logger   *slog.Logger
}

func NewGPUReader(provider GPUProvider, logger *slog.Logger) *GPUReader {
	return &GPUReader{provider: provider, logger: logger}
}

// Read never fails: most hosts have no GPU, so an unavailable driver is
// reported as zero GPUs. Per-GPU usage_percent is left unrounded.
func (r *GPUReader) Read(ctx context.Context) models.GPUSummary {
	devices, err := r.provider.GPUs(ctx)
	if err != nil {
		r.logger.Debug("gpu query unavailable, reporting no gpus", "error", err)
		devices = nil
	}

	summary := models.GPUSummary{
		GPUs: make([]models.GPUStats, 0, len(devices)),
	}

	// Sums in MB, converted once.
	var totalMB, usedMB, freeMB float64
	var maxTemperature float64

	for _, device := range devices {
		totalMB += device.MemoryTotalMB
		usedMB += device.MemoryUsedMB
		freeMB += device.MemoryFreeMB

		// Strictly greater: ties keep the earlier GPU.
		if device.TemperatureC > maxTemperature {
			maxTemperature = device.TemperatureC
		}

		summary.GPUs = append(summary.GPUs, models.GPUStats{
			Name:          device.Name,
			ID:            device.ID,
			TotalMemoryGB: units.MBToGB(device.MemoryTotalMB),
			UsedMemoryGB:  units.MBToGB(device.MemoryUsedMB),
			FreeMemoryGB:  units.MBToGB(device.MemoryFreeMB),
			UsagePercent:  device.MemoryUtil * 100,
			Temperature:   device.TemperatureC,
		})
	}

	summary.GPUsCount = len(summary.GPUs)
	summary.MaxTemperature = maxTemperature
	summary.TotalGPUGB = units.MBToGB(totalMB)
	summary.TotalUsedGPUGB = units.MBToGB(usedMB)
	summary.TotalFreeGPUGB = units.MBToGB(freeMB)
	summary.GPUUsagePercent = usagePercent(usedMB, totalMB)

	return summary
}
