//go:build unit

package static_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/msgforge/internal/domain/entities"
	"github.com/rios0rios0/msgforge/internal/infrastructure/repositories/static"
)

func TestStaticMetadataRepositoryLookup(t *testing.T) {
	t.Parallel()

	t.Run("should serve the inline entry", func(t *testing.T) {
		// given
		finder := static.NewMetadataRepository(map[string]entities.DependencyMetadata{
			"foo": {
				SourceURL:    "https://github.com/acme/foo",
				ChangelogURL: "https://github.com/acme/foo/blob/main/CHANGELOG.md",
			},
		})
		dep := entities.Dependency{Name: "foo"}

		// when
		meta, err := finder.Lookup(context.Background(), dep)

		// then
		require.NoError(t, err)
		assert.Equal(t, "https://github.com/acme/foo", meta.SourceURL)
		assert.Equal(t, "https://github.com/acme/foo/blob/main/CHANGELOG.md", meta.ChangelogURL)
	})

	t.Run("should default the source URL to the dependency's own", func(t *testing.T) {
		// given
		finder := static.NewMetadataRepository(nil)
		dep := entities.Dependency{Name: "foo", SourceURL: "https://github.com/acme/foo"}

		// when
		meta, err := finder.Lookup(context.Background(), dep)

		// then
		require.NoError(t, err)
		assert.Equal(t, "https://github.com/acme/foo", meta.SourceURL)
		assert.Empty(t, meta.ChangelogURL)
	})

	t.Run("should match every URL", func(t *testing.T) {
		// given
		finder := static.NewMetadataRepository(nil)

		// when / then
		assert.True(t, finder.MatchesURL("https://anywhere.example.com/repo"))
		assert.Equal(t, "static", finder.Name())
	})
}
