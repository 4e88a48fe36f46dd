package repositories

import (
	"github.com/rios0rios0/msgforge/internal/domain/entities"
)

// RepoContextRepository abstracts access to the state of a local Git
// repository, used to derive pull request branch targets.
type RepoContextRepository interface {
	// Resolve reads the current branch and origin remote of the repository
	// rooted at dir.
	Resolve(dir string) (entities.RepoContext, error)
}
