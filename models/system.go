package models

// Record is a point-in-time snapshot handed to a sink. Kind names the
// metric category and selects the destination table.
type Record interface {
	Kind() string
}

// Record kinds.
const (
	KindProfile    = "system_profile"
	KindCPU        = "cpu_stats"
	KindMemory     = "ram_stats"
	KindStorage    = "storage_stats"
	KindGPU        = "gpu_stats"
	KindContainers = "container_stats"
	KindLatency    = "latency_stats"
)

// SystemProfile holds static host identity and core counts
type SystemProfile struct {
	OS            string `json:"os"`
	SystemName    string `json:"system_name"`
	OSRelease     string `json:"os_release"`
	OSVersion     string `json:"os_version"`
	ProcessorArch string `json:"processor_arch"`
	ProcessorType string `json:"processor_type"`
	PhysicalCores int    `json:"physical_cores"`
	LogicalCores  int    `json:"logical_cores"`
}

func (SystemProfile) Kind() string { return KindProfile }

// CPUStats holds frequency in GHz and sampled utilization
type CPUStats struct {
	MaxFreqGHz     float64 `json:"max_cpu_freq_ghz"`
	MinFreqGHz     float64 `json:"min_cpu_freq_ghz"`
	CurrentFreqGHz float64 `json:"current_cpu_freq_ghz"`
	UsagePercent   float64 `json:"cpu_usage_percent"`
}

func (CPUStats) Kind() string { return KindCPU }

// MemoryStats holds RAM and Swap stats in GB
type MemoryStats struct {
	TotalRAMGB       float64 `json:"total_ram_gb"`
	FreeRAMGB        float64 `json:"free_ram_gb"`
	UsedRAMGB        float64 `json:"used_ram_gb"`
	RAMUsagePercent  float64 `json:"ram_usage_percent"`
	TotalSwapGB      float64 `json:"total_swap_gb"`
	FreeSwapGB       float64 `json:"free_swap_gb"`
	UsedSwapGB       float64 `json:"used_swap_gb"`
	SwapUsagePercent float64 `json:"swap_usage_percent"`
}

func (MemoryStats) Kind() string { return KindMemory }
