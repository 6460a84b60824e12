package collector

import (
	"context"
	"fmt"
	"os"
	"strings"

	"server-monitor/models"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
)

// Docker lists containers through the local Engine API.
type Docker struct {
	socketPath string
}

func NewDocker() *Docker {
	return &Docker{socketPath: dockerSocket}
}

// Containers returns running and stopped containers. A host without a
// Docker socket (and no DOCKER_HOST) has an empty inventory.
func (d *Docker) Containers(ctx context.Context) ([]models.ContainerInfo, error) {
	if os.Getenv("DOCKER_HOST") == "" && !fileExists(d.socketPath) {
		return nil, nil
	}

	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("docker client: %w", err)
	}
	defer cli.Close()

	// All: true = include stopped
	list, err := cli.ContainerList(ctx, container.ListOptions{All: true})
	if err != nil {
		return nil, fmt.Errorf("docker list: %w", err)
	}

	result := make([]models.ContainerInfo, 0, len(list))
	for _, c := range list {
		name := ""
		if len(c.Names) > 0 {
			name = strings.TrimPrefix(c.Names[0], "/")
		}

		result = append(result, models.ContainerInfo{
			ID:      shortID(c.ID),
			Name:    name,
			Image:   c.Image,
			Status:  c.Status,
			State:   string(c.State),
			Created: c.Created,
		})
	}
	return result, nil
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
