// Package localgit resolves repository context from a local working copy.
package localgit

import (
	"fmt"

	git "github.com/go-git/go-git/v5"

	"github.com/rios0rios0/msgforge/internal/domain/entities"
	"github.com/rios0rios0/msgforge/internal/domain/repositories"
)

const originRemote = "origin"

// LocalGitRepository reads the current branch and remote URL from the
// working copy's Git metadata.
type LocalGitRepository struct{}

var _ repositories.RepoContextRepository = (*LocalGitRepository)(nil)

func NewLocalGitRepository() *LocalGitRepository {
	return &LocalGitRepository{}
}

func (p *LocalGitRepository) Resolve(dir string) (entities.RepoContext, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return entities.RepoContext{}, fmt.Errorf("failed to open git repository at %q: %w", dir, err)
	}

	head, err := repo.Head()
	if err != nil {
		return entities.RepoContext{}, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	repoContext := entities.RepoContext{Branch: head.Name().Short()}

	// The remote is optional, local-only repositories have none.
	remote, err := repo.Remote(originRemote)
	if err == nil && len(remote.Config().URLs) > 0 {
		repoContext.RemoteURL = remote.Config().URLs[0]
	}

	return repoContext, nil
}
