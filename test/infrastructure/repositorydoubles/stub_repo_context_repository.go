//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/msgforge/internal/domain/entities"
	"github.com/rios0rios0/msgforge/internal/domain/repositories"
)

// StubRepoContextRepository implements repositories.RepoContextRepository
// with canned responses.
type StubRepoContextRepository struct {
	Context    entities.RepoContext
	ResolveErr error
	// spy: directories that were resolved
	ResolvedDirs []string
}

var _ repositories.RepoContextRepository = (*StubRepoContextRepository)(nil)

func (p *StubRepoContextRepository) Resolve(dir string) (entities.RepoContext, error) {
	p.ResolvedDirs = append(p.ResolvedDirs, dir)
	if p.ResolveErr != nil {
		return entities.RepoContext{}, p.ResolveErr
	}
	return p.Context, nil
}
