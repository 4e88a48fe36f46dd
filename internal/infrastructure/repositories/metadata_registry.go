package repositories

import (
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/msgforge/internal/domain/entities"
	domainRepos "github.com/rios0rios0/msgforge/internal/domain/repositories"
	staticRepo "github.com/rios0rios0/msgforge/internal/infrastructure/repositories/static"
)

// MetadataFactory is a constructor function that creates a MetadataRepository
// given an auth token and an optional self-hosted base URL.
type MetadataFactory func(token, baseURL string) domainRepos.MetadataRepository

// MetadataRegistry manages all registered metadata finder implementations.
type MetadataRegistry struct {
	finders map[string]MetadataFactory
}

// NewMetadataRegistry creates an empty metadata registry.
func NewMetadataRegistry() *MetadataRegistry {
	return &MetadataRegistry{
		finders: make(map[string]MetadataFactory),
	}
}

// Register adds a finder factory under the given name (e.g. "github").
func (r *MetadataRegistry) Register(name string, factory MetadataFactory) {
	r.finders[name] = factory
}

// Get returns a configured finder instance for the given name, token, and
// base URL.
func (r *MetadataRegistry) Get(name, token, baseURL string) (domainRepos.MetadataRepository, error) {
	factory, ok := r.finders[name]
	if !ok {
		return nil, fmt.Errorf("unknown metadata finder type: %q", name)
	}
	return factory(token, baseURL), nil
}

// Names returns the list of registered finder names.
func (r *MetadataRegistry) Names() []string {
	names := make([]string, 0, len(r.finders))
	for name := range r.finders {
		names = append(names, name)
	}
	return names
}

// ResolverFor assembles the metadata lookup for one change set: every
// configured provider finder, falling back to the inline change set entries.
// Providers that fail to initialize are skipped with a warning, since a
// message can still render without enrichment.
func (r *MetadataRegistry) ResolverFor(
	settings *entities.Settings,
	set entities.ChangeSet,
) domainRepos.MetadataRepository {
	finders := make([]domainRepos.MetadataRepository, 0, len(settings.Providers))
	for _, provider := range settings.Providers {
		finder, err := r.Get(provider.Type, provider.Token, provider.BaseURL)
		if err != nil {
			logger.Warnf("Failed to initialize metadata finder %q: %v", provider.Type, err)
			continue
		}
		finders = append(finders, finder)
	}

	return NewMetadataResolver(finders, staticRepo.NewMetadataRepository(set.Metadata))
}
