//go:build unit

package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/msgforge/internal/domain/entities"
	domainRepos "github.com/rios0rios0/msgforge/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/msgforge/internal/infrastructure/repositories"
	doubles "github.com/rios0rios0/msgforge/test/infrastructure/repositorydoubles"
)

func TestPrefixRegistryGet(t *testing.T) {
	t.Parallel()

	t.Run("should build a registered style with its configuration", func(t *testing.T) {
		// given
		registry := infraRepos.NewPrefixRegistry()
		var gotConfig entities.PrefixConfig
		registry.Register(entities.PrefixStyleConventional,
			func(cfg entities.PrefixConfig) domainRepos.PrefixRepository {
				gotConfig = cfg
				return &doubles.SpyPrefixRepository{StyleName: entities.PrefixStyleConventional}
			})
		config := entities.PrefixConfig{
			Style:      entities.PrefixStyleConventional,
			Value:      "build(deps)",
			Capitalize: true,
		}

		// when
		repo, err := registry.Get(config)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.PrefixStyleConventional, repo.Name())
		assert.Equal(t, config, gotConfig)
	})

	t.Run("should default an empty style to none", func(t *testing.T) {
		// given
		registry := infraRepos.NewPrefixRegistry()
		registry.Register(entities.PrefixStyleNone,
			func(_ entities.PrefixConfig) domainRepos.PrefixRepository {
				return &doubles.SpyPrefixRepository{StyleName: entities.PrefixStyleNone}
			})

		// when
		repo, err := registry.Get(entities.PrefixConfig{})

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.PrefixStyleNone, repo.Name())
	})

	t.Run("should reject an unknown style", func(t *testing.T) {
		// given
		registry := infraRepos.NewPrefixRegistry()

		// when
		_, err := registry.Get(entities.PrefixConfig{Style: "shouting"})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown prefix style: "shouting"`)
	})
}
