package collector

import (
	"context"
	"fmt"

	"server-monitor/models"
)

// ProfileReader reports static host identity.
type ProfileReader struct {
	provider HostProvider
}

func NewProfileReader(provider HostProvider) *ProfileReader {
	return &ProfileReader{provider: provider}
}

// Read passes host facts through unchanged. There are no defaults: a
// failed query is ErrProfileUnavailable.
func (r *ProfileReader) Read(ctx context.Context) (models.SystemProfile, error) {
	facts, err := r.provider.HostFacts(ctx)
	if err != nil {
		return models.SystemProfile{}, fmt.Errorf("%w: %w", ErrProfileUnavailable, err)
	}

	return models.SystemProfile{
		OS:            facts.OS,
		SystemName:    facts.Hostname,
		OSRelease:     facts.Release,
		OSVersion:     facts.Version,
		ProcessorArch: facts.Machine,
		ProcessorType: facts.Processor,
		PhysicalCores: facts.PhysicalCores,
		LogicalCores:  facts.LogicalCores,
	}, nil
}
