package repositories

import (
	"context"

	"github.com/rios0rios0/msgforge/internal/domain/entities"
)

// MetadataRepository abstracts a source of dependency metadata (GitHub,
// GitLab, Azure DevOps, or inline change set entries). Implementations
// discover the project links rendered into message bodies.
type MetadataRepository interface {
	// Name returns the finder identifier (e.g. "github", "gitlab").
	Name() string

	// MatchesURL returns true if this finder can resolve metadata for a
	// dependency hosted at the given source URL.
	MatchesURL(rawURL string) bool

	// Lookup resolves the project links for one dependency. Missing links
	// are returned as empty fields, a failed lookup as an error.
	Lookup(ctx context.Context, dependency entities.Dependency) (entities.DependencyMetadata, error)
}
