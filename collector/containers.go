package collector

import (
	"context"
	"fmt"

	"server-monitor/models"
)

// ContainerReader reports the local container inventory.
type ContainerReader struct {
	provider ContainerProvider
}

func NewContainerReader(provider ContainerProvider) *ContainerReader {
	return &ContainerReader{provider: provider}
}

func (r *ContainerReader) Read(ctx context.Context) (models.ContainerStats, error) {
	containers, err := r.provider.Containers(ctx)
	if err != nil {
		return models.ContainerStats{}, fmt.Errorf("%w: %w", ErrOSQuery, err)
	}
	if containers == nil {
		containers = []models.ContainerInfo{}
	}

	running := 0
	for _, c := range containers {
		if c.State == "running" {
			running++
		}
	}

	return models.ContainerStats{
		Containers:      containers,
		ContainersCount: len(containers),
		RunningCount:    running,
	}, nil
}
