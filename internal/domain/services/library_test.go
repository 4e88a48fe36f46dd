//go:build unit

package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/msgforge/internal/domain/entities"
	"github.com/rios0rios0/msgforge/internal/domain/services"
	builders "github.com/rios0rios0/msgforge/test/domain/entitybuilders"
)

func TestIsLibrary(t *testing.T) {
	t.Parallel()

	t.Run("should detect a package spec changed at the root", func(t *testing.T) {
		// given
		set := builders.NewChangeSetBuilder().
			WithFiles(entities.ChangedFile{Path: "/foo.gemspec"}).
			BuildChangeSet()

		// when
		library := services.IsLibrary(set)

		// then
		assert.True(t, library)
	})

	t.Run("should detect a package spec without a leading slash", func(t *testing.T) {
		// given
		set := builders.NewChangeSetBuilder().
			WithFiles(entities.ChangedFile{Path: "foo.gemspec"}).
			BuildChangeSet()

		// when
		library := services.IsLibrary(set)

		// then
		assert.True(t, library)
	})

	t.Run("should ignore a package spec below the root", func(t *testing.T) {
		// given
		set := builders.NewChangeSetBuilder().
			WithFiles(entities.ChangedFile{Path: "/sub/foo.gemspec"}).
			BuildChangeSet()

		// when
		library := services.IsLibrary(set)

		// then
		assert.False(t, library)
	})

	t.Run("should detect a dependency without a previous version", func(t *testing.T) {
		// given
		dep := builders.NewDependencyBuilder().WithPreviousVersion("").BuildDependency()
		set := builders.NewChangeSetBuilder().WithDependencies(dep).BuildChangeSet()

		// when
		library := services.IsLibrary(set)

		// then
		assert.True(t, library)
	})

	t.Run("should classify a fully versioned update as an application", func(t *testing.T) {
		// given
		set := builders.NewChangeSetBuilder().BuildChangeSet()

		// when
		library := services.IsLibrary(set)

		// then
		assert.False(t, library)
	})
}
