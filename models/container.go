package models

// ContainerInfo holds Docker container details
type ContainerInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Image   string `json:"image"`
	Status  string `json:"status"`
	State   string `json:"state"`
	Created int64  `json:"created"`
}

type ContainerStats struct {
	Containers      []ContainerInfo `json:"containers"`
	ContainersCount int             `json:"containers_count"`
	RunningCount    int             `json:"running_count"`
}

func (ContainerStats) Kind() string { return KindContainers }
