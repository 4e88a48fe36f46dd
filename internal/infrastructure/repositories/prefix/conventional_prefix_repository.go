package prefix

import (
	"context"

	"github.com/rios0rios0/msgforge/internal/domain/entities"
	"github.com/rios0rios0/msgforge/internal/domain/repositories"
)

const conventionalDefault = "chore(deps)"

// ConventionalPrefixRepository prefixes titles following the Conventional
// Commits convention.
type ConventionalPrefixRepository struct {
	config entities.PrefixConfig
}

var _ repositories.PrefixRepository = (*ConventionalPrefixRepository)(nil)

func NewConventionalPrefixRepository(config entities.PrefixConfig) repositories.PrefixRepository {
	return &ConventionalPrefixRepository{config: config}
}

func (p *ConventionalPrefixRepository) Name() string { return entities.PrefixStyleConventional }

func (p *ConventionalPrefixRepository) Prefix(
	_ context.Context,
	_ entities.ChangeSet,
) (entities.PrefixPolicy, error) {
	value := p.config.Value
	if value == "" {
		value = conventionalDefault
	}
	return entities.PrefixPolicy{
		Prefix:              terminatePrefix(value),
		CapitalizeFirstWord: p.config.Capitalize,
	}, nil
}
