//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations without mock
// frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/msgforge/internal/domain/entities"
	"github.com/rios0rios0/msgforge/internal/domain/repositories"
)

// SpyMetadataRepository implements repositories.MetadataRepository as a
// configurable spy.
type SpyMetadataRepository struct {
	// --- identity ---
	FinderName string

	// --- MatchesURL ---
	MatchingURLs map[string]bool // nil matches every URL

	// --- Lookup ---
	MetadataByName map[string]entities.DependencyMetadata
	LookupErr      error
	// spy: dependency names that were looked up
	LookupCalls []string
}

var _ repositories.MetadataRepository = (*SpyMetadataRepository)(nil)

func (p *SpyMetadataRepository) Name() string {
	if p.FinderName != "" {
		return p.FinderName
	}
	return "spy"
}

func (p *SpyMetadataRepository) MatchesURL(rawURL string) bool {
	if p.MatchingURLs != nil {
		return p.MatchingURLs[rawURL]
	}
	return true
}

func (p *SpyMetadataRepository) Lookup(
	_ context.Context,
	dependency entities.Dependency,
) (entities.DependencyMetadata, error) {
	p.LookupCalls = append(p.LookupCalls, dependency.Name)
	if p.LookupErr != nil {
		return entities.DependencyMetadata{}, p.LookupErr
	}
	if p.MetadataByName != nil {
		if meta, found := p.MetadataByName[dependency.Name]; found {
			return meta, nil
		}
	}
	return entities.DependencyMetadata{}, nil
}

// DummyMetadataRepository is a no-op implementation of
// repositories.MetadataRepository.
type DummyMetadataRepository struct{}

var _ repositories.MetadataRepository = (*DummyMetadataRepository)(nil)

func (d *DummyMetadataRepository) Name() string             { return "dummy" }
func (d *DummyMetadataRepository) MatchesURL(_ string) bool { return false }

func (d *DummyMetadataRepository) Lookup(
	_ context.Context,
	_ entities.Dependency,
) (entities.DependencyMetadata, error) {
	return entities.DependencyMetadata{}, nil
}
