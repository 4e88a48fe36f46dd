package repositories

import (
	"fmt"

	"github.com/rios0rios0/msgforge/internal/domain/entities"
	domainRepos "github.com/rios0rios0/msgforge/internal/domain/repositories"
)

// PrefixFactory is a constructor function that creates a PrefixRepository
// from the prefix configuration.
type PrefixFactory func(cfg entities.PrefixConfig) domainRepos.PrefixRepository

// PrefixRegistry manages all registered title prefix conventions.
type PrefixRegistry struct {
	styles map[string]PrefixFactory
}

// NewPrefixRegistry creates an empty prefix registry.
func NewPrefixRegistry() *PrefixRegistry {
	return &PrefixRegistry{
		styles: make(map[string]PrefixFactory),
	}
}

// Register adds a prefix factory under the given style name (e.g. "gitmoji").
func (r *PrefixRegistry) Register(style string, factory PrefixFactory) {
	r.styles[style] = factory
}

// Get returns a configured prefix convention for the given configuration.
// An empty style selects the "none" convention.
func (r *PrefixRegistry) Get(cfg entities.PrefixConfig) (domainRepos.PrefixRepository, error) {
	style := cfg.Style
	if style == "" {
		style = entities.PrefixStyleNone
	}

	factory, ok := r.styles[style]
	if !ok {
		return nil, fmt.Errorf("unknown prefix style: %q", style)
	}
	return factory(cfg), nil
}

// Names returns the list of registered style names.
func (r *PrefixRegistry) Names() []string {
	names := make([]string, 0, len(r.styles))
	for name := range r.styles {
		names = append(names, name)
	}
	return names
}
