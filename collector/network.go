package collector

import (
	"context"
	"fmt"
	"time"

	probing "github.com/prometheus-community/pro-bing"
)

// ICMPPinger measures latency with ICMP echo requests.
type ICMPPinger struct {
	Count   int
	Timeout time.Duration

	// Privileged selects raw sockets over unprivileged UDP ping.
	Privileged bool
}

func NewICMPPinger(count int, timeout time.Duration, privileged bool) *ICMPPinger {
	if count <= 0 {
		count = 3
	}
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &ICMPPinger{Count: count, Timeout: timeout, Privileged: privileged}
}

func (p *ICMPPinger) Ping(ctx context.Context, target string) (PingResult, error) {
	pinger, err := probing.NewPinger(target)
	if err != nil {
		return PingResult{}, fmt.Errorf("resolve %s: %w", target, err)
	}
	pinger.Count = p.Count
	pinger.Timeout = p.Timeout
	pinger.SetPrivileged(p.Privileged)

	if err := pinger.RunWithContext(ctx); err != nil {
		return PingResult{}, fmt.Errorf("ping %s: %w", target, err)
	}

	stats := pinger.Statistics()
	return PingResult{
		PacketsSent: stats.PacketsSent,
		PacketsRecv: stats.PacketsRecv,
		PacketLoss:  stats.PacketLoss,
		AvgRtt:      stats.AvgRtt,
	}, nil
}
