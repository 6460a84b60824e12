package models

// LatencyInfo is the ping result for one target
type LatencyInfo struct {
	Target            string  `json:"target"`
	LatencyMs         float64 `json:"latency_ms"`
	PacketLossPercent float64 `json:"packet_loss_percent"`
	Success           bool    `json:"success"`
}

type LatencyStats struct {
	Targets        []LatencyInfo `json:"targets"`
	ReachableCount int           `json:"reachable_count"`
}

func (LatencyStats) Kind() string { return KindLatency }
