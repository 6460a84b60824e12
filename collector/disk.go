package collector

import (
	"context"
	"fmt"
	"log/slog"

	"server-monitor/models"
	"server-monitor/units"
)

// DiskReader reports per-partition and aggregate storage usage.
type DiskReader struct {
	provider DiskProvider
	logger   *slog.Logger
}

func NewDiskReader(provider DiskProvider, logger *slog.Logger) *DiskReader {
	return &DiskReader{provider: provider, logger: logger}
}

// Read skips partitions whose usage cannot be read (unmounted media,
// permission denied) and aggregates the rest. Only a failure to list
// partitions at all is an error.
func (r *DiskReader) Read(ctx context.Context) (models.DiskStats, error) {
	partitions, err := r.provider.Partitions(ctx)
	if err != nil {
		return models.DiskStats{}, fmt.Errorf("%w: %w", ErrDiskEnumeration, err)
	}

	stats := models.DiskStats{
		Partitions: make([]models.PartitionStats, 0, len(partitions)),
	}

	// Running sums stay in bytes and are converted once at the end.
	var totalBytes, usedBytes, freeBytes uint64

	for _, partition := range partitions {
		usage, err := r.provider.Usage(ctx, partition.Mountpoint)
		if err != nil {
			r.logger.Warn("skipping unreadable partition",
				"device", partition.Device,
				"mountpoint", partition.Mountpoint,
				"error", err,
			)
			continue
		}

		totalBytes += usage.Total
		usedBytes += usage.Used
		freeBytes += usage.Free

		stats.Partitions = append(stats.Partitions, models.PartitionStats{
			Name:         partition.Device,
			Mountpoint:   partition.Mountpoint,
			FSType:       partition.FSType,
			TotalGB:      units.BytesToGB(usage.Total),
			UsedGB:       units.BytesToGB(usage.Used),
			FreeGB:       units.BytesToGB(usage.Free),
			UsagePercent: units.Round(usage.UsedPercent, 2),
		})
	}

	stats.PartitionsCount = len(stats.Partitions)
	stats.TotalStorageGB = units.BytesToGB(totalBytes)
	stats.UsedStorageGB = units.BytesToGB(usedBytes)
	stats.FreeStorageGB = units.BytesToGB(freeBytes)
	stats.StorageUsagePercent = usagePercent(float64(usedBytes), float64(totalBytes))

	return stats, nil
}

// usagePercent is used/total*100 rounded to two places, or 0 when
// total is 0.
func usagePercent(used, total float64) float64 {
	if total == 0 {
		return 0
	}
	return units.Round(used/total*100, 2)
}
