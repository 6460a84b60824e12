package collector

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const nvidiaQuery = "index,name,memory.total,memory.used,memory.free,temperature.gpu"

// NvidiaSMI reads GPU memory and temperature through nvidia-smi.
type NvidiaSMI struct {
	binary  string
	timeout time.Duration
}

// NewNvidiaSMI returns a provider that runs the nvidia-smi found on PATH.
func NewNvidiaSMI(timeout time.Duration) *NvidiaSMI {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &NvidiaSMI{binary: "nvidia-smi", timeout: timeout}
}

// GPUs returns errGPUDriverUnavailable when nvidia-smi is not installed.
func (n *NvidiaSMI) GPUs(ctx context.Context) ([]GPUDevice, error) {
	path, err := exec.LookPath(n.binary)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errGPUDriverUnavailable, err)
	}

	out, err := runCmdWithErr(ctx, n.timeout, path,
		"--query-gpu="+nvidiaQuery,
		"--format=csv,noheader,nounits")
	if err != nil {
		return nil, err
	}
	return parseNvidiaSMI(out)
}

// parseNvidiaSMI parses one CSV row per GPU. The name column may itself
// contain commas, so the numeric columns are taken from the right.
func parseNvidiaSMI(out string) ([]GPUDevice, error) {
	var gpus []GPUDevice
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) < 6 {
			return nil, fmt.Errorf("nvidia-smi: unexpected row %q", line)
		}
		n := len(parts)
		name := strings.TrimSpace(strings.Join(parts[1:n-4], ","))

		gpu := GPUDevice{
			ID:            strings.TrimSpace(parts[0]),
			Name:          name,
			MemoryTotalMB: parseFloat(parts[n-4]),
			MemoryUsedMB:  parseFloat(parts[n-3]),
			MemoryFreeMB:  parseFloat(parts[n-2]),
			TemperatureC:  parseFloat(parts[n-1]),
		}
		if gpu.MemoryTotalMB > 0 {
			gpu.MemoryUtil = gpu.MemoryUsedMB / gpu.MemoryTotalMB
		}
		gpus = append(gpus, gpu)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("nvidia-smi: %w", err)
	}
	return gpus, nil
}
