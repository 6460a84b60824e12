package collector

import (
	"context"
	"time"

	"server-monitor/models"
)

// HostFacts are static identity facts as reported by the OS.
type HostFacts struct {
	OS            string
	Hostname      string
	Release       string
	Version       string
	Machine       string
	Processor     string
	PhysicalCores int
	LogicalCores  int
}

// HostProvider reads host identity.
type HostProvider interface {
	HostFacts(ctx context.Context) (HostFacts, error)
}

// Frequency is a CPU frequency triple in MHz.
type Frequency struct {
	MaxMHz     float64
	MinMHz     float64
	CurrentMHz float64
}

// CPUProvider reads CPU frequency and utilization.
type CPUProvider interface {
	Frequency(ctx context.Context) (Frequency, error)

	// Utilization blocks for window and returns the busy percentage
	// averaged over all logical cores during that window.
	Utilization(ctx context.Context, window time.Duration) (float64, error)
}

// VirtualMemory holds RAM counters in bytes.
type VirtualMemory struct {
	Total       uint64
	Available   uint64
	Used        uint64
	UsedPercent float64
}

// SwapMemory holds swap counters in bytes.
type SwapMemory struct {
	Total       uint64
	Free        uint64
	Used        uint64
	UsedPercent float64
}

// MemoryProvider reads RAM and swap counters.
type MemoryProvider interface {
	VirtualMemory(ctx context.Context) (VirtualMemory, error)
	SwapMemory(ctx context.Context) (SwapMemory, error)
}

// Partition is a mounted filesystem as enumerated by the OS.
type Partition struct {
	Device     string
	Mountpoint string
	FSType     string
}

// Usage holds filesystem counters in bytes.
type Usage struct {
	Total       uint64
	Used        uint64
	Free        uint64
	UsedPercent float64
}

// DiskProvider enumerates partitions and reads their usage.
type DiskProvider interface {
	Partitions(ctx context.Context) ([]Partition, error)
	Usage(ctx context.Context, mountpoint string) (Usage, error)
}

// GPUDevice is one GPU as reported by the vendor driver. Memory values
// are in MB; MemoryUtil is used/total in [0,1].
type GPUDevice struct {
	ID            string
	Name          string
	MemoryTotalMB float64
	MemoryUsedMB  float64
	MemoryFreeMB  float64
	MemoryUtil    float64
	TemperatureC  float64
}

// GPUProvider enumerates GPUs. An error means the vendor subsystem is
// unavailable.
type GPUProvider interface {
	GPUs(ctx context.Context) ([]GPUDevice, error)
}

// ContainerProvider lists containers known to the local engine.
type ContainerProvider interface {
	Containers(ctx context.Context) ([]models.ContainerInfo, error)
}

// PingResult summarizes an echo exchange with one target.
type PingResult struct {
	PacketsSent int
	PacketsRecv int
	PacketLoss  float64
	AvgRtt      time.Duration
}

// Pinger measures round-trip latency to a host.
type Pinger interface {
	Ping(ctx context.Context, target string) (PingResult, error)
}
