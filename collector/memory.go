package collector

import (
	"context"
	"fmt"

	"server-monitor/models"
	"server-monitor/units"
)

// MemoryReader reports RAM and swap in GB.
type MemoryReader struct {
	provider MemoryProvider
}

func NewMemoryReader(provider MemoryProvider) *MemoryReader {
	return &MemoryReader{provider: provider}
}

// Read converts each byte counter independently. Percentages come from
// the OS rather than from the rounded GB values; used + free need not
// equal total because of cache and buffers.
func (r *MemoryReader) Read(ctx context.Context) (models.MemoryStats, error) {
	virtual, err := r.provider.VirtualMemory(ctx)
	if err != nil {
		return models.MemoryStats{}, fmt.Errorf("%w: %w", ErrOSQuery, err)
	}
	swap, err := r.provider.SwapMemory(ctx)
	if err != nil {
		return models.MemoryStats{}, fmt.Errorf("%w: %w", ErrOSQuery, err)
	}

	return models.MemoryStats{
		TotalRAMGB:       units.BytesToGB(virtual.Total),
		FreeRAMGB:        units.BytesToGB(virtual.Available),
		UsedRAMGB:        units.BytesToGB(virtual.Used),
		RAMUsagePercent:  units.Round(virtual.UsedPercent, 2),
		TotalSwapGB:      units.BytesToGB(swap.Total),
		FreeSwapGB:       units.BytesToGB(swap.Free),
		UsedSwapGB:       units.BytesToGB(swap.Used),
		SwapUsagePercent: units.Round(swap.UsedPercent, 2),
	}, nil
}
