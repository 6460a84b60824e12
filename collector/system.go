package collector

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// System is the gopsutil-backed provider for host, CPU, memory and
// disk counters.
type System struct {
	// sysRoot is the sysfs mount used for cpufreq. Overridden in tests.
	sysRoot string
}

// NewSystem returns a provider reading the live OS.
func NewSystem() *System {
	return &System{sysRoot: "/sys"}
}

// HostFacts gathers OS identity and core counts
func (s *System) HostFacts(ctx context.Context) (HostFacts, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return HostFacts{}, fmt.Errorf("host info: %w", err)
	}

	physical, err := cpu.CountsWithContext(ctx, false)
	if err != nil {
		return HostFacts{}, fmt.Errorf("physical core count: %w", err)
	}
	logical, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return HostFacts{}, fmt.Errorf("logical core count: %w", err)
	}

	cpuInfo, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return HostFacts{}, fmt.Errorf("cpu info: %w", err)
	}
	processor := ""
	if len(cpuInfo) > 0 {
		processor = cpuInfo[0].ModelName
	}

	version := kernelBuildVersion()
	if version == "" {
		version = strings.TrimSpace(info.Platform + " " + info.PlatformVersion)
	}

	return HostFacts{
		OS:            osName(info.OS),
		Hostname:      info.Hostname,
		Release:       info.KernelVersion,
		Version:       version,
		Machine:       info.KernelArch,
		Processor:     processor,
		PhysicalCores: physical,
		LogicalCores:  logical,
	}, nil
}

// Frequency reads max/min/current MHz. cpufreq sysfs values win over the
// /proc/cpuinfo figure gopsutil reports when they exist.
func (s *System) Frequency(ctx context.Context) (Frequency, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return Frequency{}, fmt.Errorf("cpu info: %w", err)
	}
	if len(infos) == 0 {
		return Frequency{}, errors.New("cpu info: no processors reported")
	}

	var sum float64
	for _, info := range infos {
		sum += info.Mhz
	}
	// /proc/cpuinfo only knows the current clock; limits come from
	// cpufreq or stay 0.
	freq := Frequency{CurrentMHz: sum / float64(len(infos))}

	if sysfs, ok := readSysfsFrequency(s.sysRoot); ok {
		if sysfs.MaxMHz > 0 {
			freq.MaxMHz = sysfs.MaxMHz
		}
		freq.MinMHz = sysfs.MinMHz
		if sysfs.CurrentMHz > 0 {
			freq.CurrentMHz = sysfs.CurrentMHz
		}
	}

	if freq.MaxMHz == 0 && freq.CurrentMHz == 0 {
		return Frequency{}, errors.New("cpu frequency not reported")
	}
	return freq, nil
}

// Utilization blocks for window while gopsutil diffs /proc/stat (or the
// platform equivalent).
func (s *System) Utilization(ctx context.Context, window time.Duration) (float64, error) {
	percent, err := cpu.PercentWithContext(ctx, window, false)
	if err != nil {
		return 0, fmt.Errorf("cpu percent: %w", err)
	}
	if len(percent) == 0 {
		return 0, errors.New("cpu percent: empty sample")
	}
	return percent[0], nil
}

func (s *System) VirtualMemory(ctx context.Context) (VirtualMemory, error) {
	memInfo, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return VirtualMemory{}, fmt.Errorf("virtual memory: %w", err)
	}
	return VirtualMemory{
		Total:       memInfo.Total,
		Available:   memInfo.Available,
		Used:        memInfo.Used,
		UsedPercent: memInfo.UsedPercent,
	}, nil
}

func (s *System) SwapMemory(ctx context.Context) (SwapMemory, error) {
	swapInfo, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return SwapMemory{}, fmt.Errorf("swap memory: %w", err)
	}
	return SwapMemory{
		Total:       swapInfo.Total,
		Free:        swapInfo.Free,
		Used:        swapInfo.Used,
		UsedPercent: swapInfo.UsedPercent,
	}, nil
}

// Partitions lists physical mounts only (all=false), like df.
func (s *System) Partitions(ctx context.Context) ([]Partition, error) {
	stats, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("disk partitions: %w", err)
	}
	partitions := make([]Partition, 0, len(stats))
	for _, stat := range stats {
		partitions = append(partitions, Partition{
			Device:     stat.Device,
			Mountpoint: stat.Mountpoint,
			FSType:     stat.Fstype,
		})
	}
	return partitions, nil
}

func (s *System) Usage(ctx context.Context, mountpoint string) (Usage, error) {
	usage, err := disk.UsageWithContext(ctx, mountpoint)
	if err != nil {
		return Usage{}, fmt.Errorf("disk usage %s: %w", mountpoint, err)
	}
	return Usage{
		Total:       usage.Total,
		Used:        usage.Used,
		Free:        usage.Free,
		UsedPercent: usage.UsedPercent,
	}, nil
}

// readSysfsFrequency reads cpufreq limits from cpu0 and averages
// scaling_cur_freq over every core. Values in sysfs are kHz.
func readSysfsFrequency(sysRoot string) (Frequency, bool) {
	base := filepath.Join(sysRoot, "devices/system/cpu")

	maxKHz, hasMax := readKHz(filepath.Join(base, "cpu0/cpufreq/cpuinfo_max_freq"))
	minKHz, hasMin := readKHz(filepath.Join(base, "cpu0/cpufreq/cpuinfo_min_freq"))

	paths, _ := filepath.Glob(filepath.Join(base, "cpu[0-9]*/cpufreq/scaling_cur_freq"))
	var sum float64
	var count int
	for _, path := range paths {
		if khz, ok := readKHz(path); ok {
			sum += khz
			count++
		}
	}

	if !hasMax && !hasMin && count == 0 {
		return Frequency{}, false
	}

	freq := Frequency{MaxMHz: maxKHz / 1000, MinMHz: minKHz / 1000}
	if count > 0 {
		freq.CurrentMHz = sum / float64(count) / 1000
	}
	return freq, true
}

// osName maps GOOS-style names to the capitalized form uname reports.
func osName(goos string) string {
	switch goos {
	case "linux":
		return "Linux"
	case "darwin":
		return "Darwin"
	case "windows":
		return "Windows"
	case "freebsd":
		return "FreeBSD"
	case "netbsd":
		return "NetBSD"
	case "openbsd":
		return "OpenBSD"
	case "":
		return ""
	}
	return strings.ToUpper(goos[:1]) + goos[1:]
}

func readKHz(path string) (float64, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
