package models

// PartitionStats is the usage of one mounted filesystem
type PartitionStats struct {
	Name         string  `json:"name"`
	Mountpoint   string  `json:"mountpoint"`
	FSType       string  `json:"fstype"`
	TotalGB      float64 `json:"total_gb"`
	UsedGB       float64 `json:"used_gb"`
	FreeGB       float64 `json:"free_gb"`
	UsagePercent float64 `json:"usage_percent"`
}

// DiskStats aggregates all readable partitions.
// Totals are summed in bytes before conversion.
type DiskStats struct {
	Partitions          []PartitionStats `json:"partitions"`
	PartitionsCount     int              `json:"partitions_count"`
	TotalStorageGB      float64          `json:"total_storage_gb"`
	UsedStorageGB       float64          `json:"used_storage_gb"`
	FreeStorageGB       float64          `json:"free_storage_gb"`
	StorageUsagePercent float64          `json:"storage_usage_percent"`
}

func (DiskStats) Kind() string { return KindStorage }

// GPUStats is the memory and thermal state of one GPU.
// UsagePercent is not rounded.
type GPUStats struct {
	Name          string  `json:"name"`
	ID            string  `json:"id"`
	TotalMemoryGB float64 `json:"total_memory_gb"`
	UsedMemoryGB  float64 `json:"used_memory_gb"`
	FreeMemoryGB  float64 `json:"free_memory_gb"`
	UsagePercent  float64 `json:"usage_percent"`
	Temperature   float64 `json:"temperature"`
}

// GPUSummary aggregates all GPUs on the host
type GPUSummary struct {
	GPUs            []GPUStats `json:"gpus"`
	GPUsCount       int        `json:"gpus_count"`
	MaxTemperature  float64    `json:"max_temperature"`
	TotalGPUGB      float64    `json:"total_gpu_gb"`
	TotalUsedGPUGB  float64    `json:"total_used_gpu_gb"`
	TotalFreeGPUGB  float64    `json:"total_free_gpu_gb"`
	GPUUsagePercent float64    `json:"gpu_usage_percent"`
}

func (GPUSummary) Kind() string { return KindGPU }
