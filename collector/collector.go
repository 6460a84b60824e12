package collector

import (
	"context"
	"io"
	"log/slog"
	"time"

	"server-monitor/models"
)

// Task pairs a metric category with the reader that produces it. Each
// task is an independent unit of failure.
type Task struct {
	Name    string
	Collect func(ctx context.Context) (models.Record, error)
}

// Providers are the OS and driver backends behind the readers.
type Providers struct {
	Host       HostProvider
	CPU        CPUProvider
	Memory     MemoryProvider
	Disk       DiskProvider
	GPU        GPUProvider
	Containers ContainerProvider
	Pinger     Pinger
}

// Options selects and tunes the readers.
type Options struct {
	SampleWindow time.Duration
	GPU          bool
	Containers   bool

	PingTargets    []string
	PingCount      int
	PingTimeout    time.Duration
	PingPrivileged bool

	Logger *slog.Logger
}

// DefaultProviders returns the production backends: gopsutil for OS
// counters, nvidia-smi for GPUs, the Docker socket and ICMP.
func DefaultProviders(opts Options) Providers {
	system := NewSystem()
	return Providers{
		Host:       system,
		CPU:        system,
		Memory:     system,
		Disk:       system,
		GPU:        NewNvidiaSMI(0),
		Containers: NewDocker(),
		Pinger:     NewICMPPinger(opts.PingCount, opts.PingTimeout, opts.PingPrivileged),
	}
}

// Tasks builds the collection sequence. Profile, CPU, memory and
// storage always run; the rest depend on opts and available providers.
func Tasks(p Providers, opts Options) []Task {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	profile := NewProfileReader(p.Host)
	cpu := NewCPUReader(p.CPU, opts.SampleWindow)
	memory := NewMemoryReader(p.Memory)
	disk := NewDiskReader(p.Disk, logger)

	tasks := []Task{
		{Name: models.KindProfile, Collect: func(ctx context.Context) (models.Record, error) {
			return profile.Read(ctx)
		}},
		{Name: models.KindCPU, Collect: func(ctx context.Context) (models.Record, error) {
			return cpu.Read(ctx)
		}},
		{Name: models.KindMemory, Collect: func(ctx context.Context) (models.Record, error) {
			return memory.Read(ctx)
		}},
		{Name: models.KindStorage, Collect: func(ctx context.Context) (models.Record, error) {
			return disk.Read(ctx)
		}},
	}

	if opts.GPU && p.GPU != nil {
		gpu := NewGPUReader(p.GPU, logger)
		tasks = append(tasks, Task{Name: models.KindGPU, Collect: func(ctx context.Context) (models.Record, error) {
			return gpu.Read(ctx), nil
		}})
	}

	if opts.Containers && p.Containers != nil {
		containers := NewContainerReader(p.Containers)
		tasks = append(tasks, Task{Name: models.KindContainers, Collect: func(ctx context.Context) (models.Record, error) {
			return containers.Read(ctx)
		}})
	}

	if len(opts.PingTargets) > 0 && p.Pinger != nil {
		latency := NewLatencyReader(p.Pinger, opts.PingTargets, logger)
		tasks = append(tasks, Task{Name: models.KindLatency, Collect: func(ctx context.Context) (models.Record, error) {
			return latency.Read(ctx), nil
		}})
	}

	return tasks
}
