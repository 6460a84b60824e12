package collector

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"server-monitor/models"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeHost struct {
	facts HostFacts
	err   error
}

func (f fakeHost) HostFacts(context.Context) (HostFacts, error) { return f.facts, f.err }

type fakeCPU struct {
	freq       Frequency
	freqErr    error
	usage      float64
	usageErr   error
	gotWindow  time.Duration
	sampleCall int
}

func (f *fakeCPU) Frequency(context.Context) (Frequency, error) { return f.freq, f.freqErr }

func (f *fakeCPU) Utilization(_ context.Context, window time.Duration) (float64, error) {
	f.gotWindow = window
	f.sampleCall++
	return f.usage, f.usageErr
}

type fakeMemory struct {
	virtual VirtualMemory
	swap    SwapMemory
	err     error
	swapErr error
}

func (f fakeMemory) VirtualMemory(context.Context) (VirtualMemory, error) { return f.virtual, f.err }
func (f fakeMemory) SwapMemory(context.Context) (SwapMemory, error)       { return f.swap, f.swapErr }

type fakeDisk struct {
	partitions []Partition
	listErr    error
	usage      map[string]Usage
	usageErr   map[string]error
}

func (f fakeDisk) Partitions(context.Context) ([]Partition, error) { return f.partitions, f.listErr }

func (f fakeDisk) Usage(_ context.Context, mountpoint string) (Usage, error) {
	if err := f.usageErr[mountpoint]; err != nil {
		return Usage{}, err
	}
	usage, ok := f.usage[mountpoint]
	if !ok {
		return Usage{}, errors.New("no such mountpoint")
	}
	return usage, nil
}

type fakeGPU struct {
	devices []GPUDevice
	err     error
}

func (f fakeGPU) GPUs(context.Context) ([]GPUDevice, error) { return f.devices, f.err }

type fakeContainers struct {
	containers []models.ContainerInfo
	err        error
}

func (f fakeContainers) Containers(context.Context) ([]models.ContainerInfo, error) {
	return f.containers, f.err
}

type fakePinger struct {
	results map[string]PingResult
	errs    map[string]error
}

func (f fakePinger) Ping(_ context.Context, target string) (PingResult, error) {
	if err := f.errs[target]; err != nil {
		return PingResult{}, err
	}
	return f.results[target], nil
}

const gib = 1024 * 1024 * 1024
