package prefix

import (
	"context"

	"github.com/rios0rios0/msgforge/internal/domain/entities"
	"github.com/rios0rios0/msgforge/internal/domain/repositories"
)

// NonePrefixRepository applies no prefix unless the configuration carries a
// custom value.
type NonePrefixRepository struct {
	config entities.PrefixConfig
}

var _ repositories.PrefixRepository = (*NonePrefixRepository)(nil)

func NewNonePrefixRepository(config entities.PrefixConfig) repositories.PrefixRepository {
	return &NonePrefixRepository{config: config}
}

func (p *NonePrefixRepository) Name() string { return entities.PrefixStyleNone }

func (p *NonePrefixRepository) Prefix(
	_ context.Context,
	_ entities.ChangeSet,
) (entities.PrefixPolicy, error) {
	return entities.PrefixPolicy{
		Prefix:              terminatePrefix(p.config.Value),
		CapitalizeFirstWord: p.config.Capitalize,
	}, nil
}
