package repositories

import (
	"context"

	"github.com/rios0rios0/msgforge/internal/domain/entities"
	domainRepos "github.com/rios0rios0/msgforge/internal/domain/repositories"
)

const resolverName = "resolver"

// MetadataResolver routes a dependency to the first finder matching its
// source URL, falling back to the inline change set entries when no finder
// matches or the dependency has no source URL.
type MetadataResolver struct {
	finders  []domainRepos.MetadataRepository
	fallback domainRepos.MetadataRepository
}

var _ domainRepos.MetadataRepository = (*MetadataResolver)(nil)

// NewMetadataResolver creates a resolver over the given finders.
func NewMetadataResolver(
	finders []domainRepos.MetadataRepository,
	fallback domainRepos.MetadataRepository,
) *MetadataResolver {
	return &MetadataResolver{
		finders:  finders,
		fallback: fallback,
	}
}

func (r *MetadataResolver) Name() string { return resolverName }

func (r *MetadataResolver) MatchesURL(_ string) bool { return true }

// Lookup resolves the links for one dependency through the matching finder.
func (r *MetadataResolver) Lookup(
	ctx context.Context,
	dependency entities.Dependency,
) (entities.DependencyMetadata, error) {
	if dependency.SourceURL != "" {
		for _, finder := range r.finders {
			if finder.MatchesURL(dependency.SourceURL) {
				return finder.Lookup(ctx, dependency)
			}
		}
	}
	return r.fallback.Lookup(ctx, dependency)
}
