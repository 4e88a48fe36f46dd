package repositories

import (
	"github.com/rios0rios0/msgforge/internal/domain/entities"
	domainRepos "github.com/rios0rios0/msgforge/internal/domain/repositories"
	adoRepo "github.com/rios0rios0/msgforge/internal/infrastructure/repositories/azuredevops"
	ghRepo "github.com/rios0rios0/msgforge/internal/infrastructure/repositories/github"
	glRepo "github.com/rios0rios0/msgforge/internal/infrastructure/repositories/gitlab"
	localgitRepo "github.com/rios0rios0/msgforge/internal/infrastructure/repositories/localgit"
	prefixRepo "github.com/rios0rios0/msgforge/internal/infrastructure/repositories/prefix"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register metadata registry with all finder factories
	if err := container.Provide(func() *MetadataRegistry {
		reg := NewMetadataRegistry()
		reg.Register("github", ghRepo.NewMetadataRepository)
		reg.Register("gitlab", glRepo.NewMetadataRepository)
		reg.Register("azuredevops", adoRepo.NewMetadataRepository)
		return reg
	}); err != nil {
		return err
	}

	// Register prefix registry with all style implementations
	if err := container.Provide(func() *PrefixRegistry {
		reg := NewPrefixRegistry()
		reg.Register(entities.PrefixStyleNone, prefixRepo.NewNonePrefixRepository)
		reg.Register(entities.PrefixStyleConventional, prefixRepo.NewConventionalPrefixRepository)
		reg.Register(entities.PrefixStyleGitmoji, prefixRepo.NewGitmojiPrefixRepository)
		return reg
	}); err != nil {
		return err
	}

	// Register the local git context resolver
	if err := container.Provide(localgitRepo.NewLocalGitRepository); err != nil {
		return err
	}
	if err := container.Provide(func(repo *localgitRepo.LocalGitRepository) domainRepos.RepoContextRepository {
		return repo
	}); err != nil {
		return err
	}

	return nil
}
