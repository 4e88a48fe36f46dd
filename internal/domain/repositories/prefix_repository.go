package repositories

import (
	"context"

	"github.com/rios0rios0/msgforge/internal/domain/entities"
)

// PrefixRepository abstracts a title prefix convention (Conventional
// Commits, gitmoji, or none). Implementations compute the prefix applied to
// pull request titles and commit subjects.
type PrefixRepository interface {
	// Name returns the convention identifier (e.g. "conventional", "gitmoji").
	Name() string

	// Prefix resolves the title prefix policy for one change set.
	Prefix(ctx context.Context, set entities.ChangeSet) (entities.PrefixPolicy, error)
}
