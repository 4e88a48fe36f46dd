//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/msgforge/internal/domain/entities"
	"github.com/rios0rios0/msgforge/internal/domain/repositories"
)

// SpyPrefixRepository implements repositories.PrefixRepository as a
// configurable spy.
type SpyPrefixRepository struct {
	// --- identity ---
	StyleName string

	// --- Prefix ---
	Policy    entities.PrefixPolicy
	PrefixErr error
	// spy: number of Prefix invocations
	Calls int
}

var _ repositories.PrefixRepository = (*SpyPrefixRepository)(nil)

func (p *SpyPrefixRepository) Name() string {
	if p.StyleName != "" {
		return p.StyleName
	}
	return "spy"
}

func (p *SpyPrefixRepository) Prefix(
	_ context.Context,
	_ entities.ChangeSet,
) (entities.PrefixPolicy, error) {
	p.Calls++
	if p.PrefixErr != nil {
		return entities.PrefixPolicy{}, p.PrefixErr
	}
	return p.Policy, nil
}

// DummyPrefixRepository is a no-op implementation of
// repositories.PrefixRepository.
type DummyPrefixRepository struct{}

var _ repositories.PrefixRepository = (*DummyPrefixRepository)(nil)

func (d *DummyPrefixRepository) Name() string { return "dummy" }

func (d *DummyPrefixRepository) Prefix(
	_ context.Context,
	_ entities.ChangeSet,
) (entities.PrefixPolicy, error) {
	return entities.PrefixPolicy{}, nil
}
