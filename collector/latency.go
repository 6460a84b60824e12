package collector

import (
	"context"
	"log/slog"
	"time"

	"server-monitor/models"
	"server-monitor/units"
)

// LatencyReader pings each configured target in turn.
type LatencyReader struct {
	pinger  Pinger
	targets []string
	logger  *slog.Logger
}

func NewLatencyReader(pinger Pinger, targets []string, logger *slog.Logger) *LatencyReader {
	return &LatencyReader{pinger: pinger, targets: targets, logger: logger}
}

// Read records an unreachable target as Success=false with 100% loss;
// it does not fail the whole reading.
func (r *LatencyReader) Read(ctx context.Context) models.LatencyStats {
	stats := models.LatencyStats{
		Targets: make([]models.LatencyInfo, 0, len(r.targets)),
	}

	for _, target := range r.targets {
		info := models.LatencyInfo{
			Target:            target,
			PacketLossPercent: 100,
		}

		result, err := r.pinger.Ping(ctx, target)
		if err != nil {
			r.logger.Warn("ping failed", "target", target, "error", err)
		} else {
			info.PacketLossPercent = units.Round(result.PacketLoss, 2)
			if result.PacketsRecv > 0 {
				info.Success = true
				info.LatencyMs = units.Round(float64(result.AvgRtt)/float64(time.Millisecond), 2)
				stats.ReachableCount++
			}
		}

		stats.Targets = append(stats.Targets, info)
	}

	return stats
}
