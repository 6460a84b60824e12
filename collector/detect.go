package collector

import (
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
)

const dockerSocket = "/var/run/docker.sock"

// Capabilities records which optional backends exist on this host.
type Capabilities struct {
	HasDockerSocket bool
	HasNvidiaSMI    bool
	HasCPUFreq      bool
}

// DetectCapabilities probes the host once and logs the result.
func DetectCapabilities(logger *slog.Logger) Capabilities {
	return detectCapabilities(logger, "/sys")
}

func detectCapabilities(logger *slog.Logger, sysRoot string) Capabilities {
	caps := Capabilities{
		HasDockerSocket: os.Getenv("DOCKER_HOST") != "" || fileExists(dockerSocket),
		HasNvidiaSMI:    commandExists("nvidia-smi"),
		HasCPUFreq:      fileExists(filepath.Join(sysRoot, "devices/system/cpu/cpu0/cpufreq")),
	}

	logCap(logger, "docker", caps.HasDockerSocket, "container inventory")
	logCap(logger, "nvidia-smi", caps.HasNvidiaSMI, "gpu memory and temperature")
	logCap(logger, "cpufreq", caps.HasCPUFreq, "cpu min/max frequency")
	return caps
}

func logCap(logger *slog.Logger, name string, available bool, desc string) {
	status := "unavailable"
	if available {
		status = "enabled"
	}
	logger.Info("capability", "name", name, "status", status, "provides", desc)
}

func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
