package static

import (
	"context"

	"github.com/rios0rios0/msgforge/internal/domain/entities"
	"github.com/rios0rios0/msgforge/internal/domain/repositories"
)

const finderName = "static"

// StaticMetadataRepository serves the metadata entries carried inline by the
// change set itself, with no remote lookups.
type StaticMetadataRepository struct {
	entries map[string]entities.DependencyMetadata
}

var _ repositories.MetadataRepository = (*StaticMetadataRepository)(nil)

// NewMetadataRepository creates a finder over inline change set entries.
func NewMetadataRepository(
	entries map[string]entities.DependencyMetadata,
) *StaticMetadataRepository {
	return &StaticMetadataRepository{entries: entries}
}

func (p *StaticMetadataRepository) Name() string { return finderName }

func (p *StaticMetadataRepository) MatchesURL(_ string) bool { return true }

// Lookup returns the inline entry for the dependency, defaulting the source
// URL to the one the dependency itself carries.
func (p *StaticMetadataRepository) Lookup(
	_ context.Context,
	dependency entities.Dependency,
) (entities.DependencyMetadata, error) {
	meta := p.entries[dependency.Name]
	if meta.SourceURL == "" {
		meta.SourceURL = dependency.SourceURL
	}
	return meta, nil
}
