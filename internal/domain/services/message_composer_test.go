//go:build unit

package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/msgforge/internal/domain/entities"
	"github.com/rios0rios0/msgforge/internal/domain/services"
	builders "github.com/rios0rios0/msgforge/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/msgforge/test/infrastructure/repositorydoubles"
)

func TestMessageComposerMessage(t *testing.T) {
	t.Parallel()

	t.Run("should render all three artifacts for a single dependency update", func(t *testing.T) {
		// given
		dep := builders.NewDependencyBuilder().
			WithName("foo").
			WithPreviousVersion("1.0.0").
			WithVersion("1.1.0").
			WithSourceURL("https://github.com/acme/foo").
			BuildDependency()
		set := builders.NewChangeSetBuilder().WithDependencies(dep).BuildChangeSet()

		spy := &doubles.SpyMetadataRepository{
			MetadataByName: map[string]entities.DependencyMetadata{
				"foo": {
					SourceURL:       "https://github.com/acme/foo",
					ReleaseNotesURL: "https://github.com/acme/foo/releases",
					ChangelogURL:    "https://github.com/acme/foo/blob/main/CHANGELOG.md",
					CommitsURL:      "https://github.com/acme/foo/compare/v1.0.0...v1.1.0",
				},
			},
		}

		signoff := &entities.SignoffDetails{Name: "Bot", Email: "bot@example.com"}
		options := entities.MessageOptions{Commit: entities.CommitOptions{Signoff: signoff}}

		composer := services.NewMessageComposer(set, options, nil, spy)

		// when
		message, err := composer.Message(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, "bump foo from 1.0.0 to 1.1.0", message.Title)
		assert.Equal(t,
			"Bumps [foo](https://github.com/acme/foo) from 1.0.0 to 1.1.0."+
				"\n- [Release notes](https://github.com/acme/foo/releases)"+
				"\n- [Changelog](https://github.com/acme/foo/blob/main/CHANGELOG.md)"+
				"\n- [Commits](https://github.com/acme/foo/compare/v1.0.0...v1.1.0)",
			message.Body,
		)
		assert.Equal(t,
			"bump foo from 1.0.0 to 1.1.0"+
				"\n\nBumps [foo](https://github.com/acme/foo) from 1.0.0 to 1.1.0."+
				"\n- [Release notes](https://github.com/acme/foo/releases)"+
				"\n- [Changelog](https://github.com/acme/foo/blob/main/CHANGELOG.md)"+
				"\n- [Commits](https://github.com/acme/foo/compare/v1.0.0...v1.1.0)"+
				"\n\nSigned-off-by: Bot <bot@example.com>",
			message.CommitMessage,
		)
	})

	t.Run("should wrap the body in the configured header and footer", func(t *testing.T) {
		// given
		set := builders.NewChangeSetBuilder().BuildChangeSet()
		options := entities.MessageOptions{
			Header: "Automated update.",
			Footer: "Reviewed by the platform team.",
		}
		composer := services.NewMessageComposer(set, options, nil, &doubles.SpyMetadataRepository{})

		// when
		body, err := composer.PRBody(context.Background())

		// then
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(body, "Automated update.\n\n"))
		assert.True(t, strings.HasSuffix(body, "\n\nReviewed by the platform team."))
	})

	t.Run("should degrade the body to header and footer when the metadata lookup fails", func(t *testing.T) {
		// given
		set := builders.NewChangeSetBuilder().BuildChangeSet()
		spy := &doubles.SpyMetadataRepository{LookupErr: errors.New("api unreachable")}
		options := entities.MessageOptions{Header: "Header.", Footer: "Footer."}
		composer := services.NewMessageComposer(set, options, nil, spy)

		// when
		message, err := composer.Message(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, "Header.\n\n\n\nFooter.", message.Body)
		assert.Equal(t, "bump test-dependency from 1.0.0 to 2.0.0", message.CommitMessage)
	})

	t.Run("should keep the trailers when the commit details degrade", func(t *testing.T) {
		// given
		set := builders.NewChangeSetBuilder().BuildChangeSet()
		spy := &doubles.SpyMetadataRepository{LookupErr: errors.New("api unreachable")}
		options := entities.MessageOptions{
			Commit: entities.CommitOptions{
				Signoff: &entities.SignoffDetails{Name: "Bot", Email: "bot@example.com"},
			},
		}
		composer := services.NewMessageComposer(set, options, nil, spy)

		// when
		commitMessage, err := composer.CommitMessage(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t,
			"bump test-dependency from 1.0.0 to 2.0.0"+
				"\n\nSigned-off-by: Bot <bot@example.com>",
			commitMessage,
		)
	})

	t.Run("should propagate contract violations instead of degrading", func(t *testing.T) {
		// given
		set := builders.NewChangeSetBuilder().WithDependencies().BuildChangeSet()
		composer := services.NewMessageComposer(set, entities.MessageOptions{}, nil, nil)

		// when
		_, err := composer.Message(context.Background())

		// then
		require.Error(t, err)
		assert.True(t, entities.IsContractError(err))
	})

	t.Run("should fail when a library update has no resolvable requirement", func(t *testing.T) {
		// given: two updated requirements and no package-spec one
		dep := builders.NewDependencyBuilder().
			WithName("foo").
			WithPreviousVersion("").
			WithRequirements(
				entities.Requirement{File: "Gemfile", Requirement: ">= 1.0"},
				entities.Requirement{File: "other/Gemfile", Requirement: ">= 1.1"},
			).
			BuildDependency()
		set := builders.NewChangeSetBuilder().
			WithDependencies(dep).
			WithFiles(entities.ChangedFile{Path: "/Gemfile"}).
			BuildChangeSet()
		composer := services.NewMessageComposer(set, entities.MessageOptions{}, nil, nil)

		// when
		_, err := composer.Message(context.Background())

		// then
		require.Error(t, err)
		assert.True(t, entities.IsContractError(err))
	})

	t.Run("should truncate the body to the configured maximum length", func(t *testing.T) {
		// given
		dep := builders.NewDependencyBuilder().
			WithName("a-dependency-with-a-fairly-long-name").
			BuildDependency()
		set := builders.NewChangeSetBuilder().WithDependencies(dep).BuildChangeSet()
		options := entities.MessageOptions{MaxBodyLength: 60}
		composer := services.NewMessageComposer(set, options, nil, &doubles.SpyMetadataRepository{})

		// when
		body, err := composer.PRBody(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, 60, utf8.RuneCountInString(body))
		assert.True(t, strings.HasSuffix(body, "...\n\n_Description has been truncated_"))
	})

	t.Run("should not truncate a body within the maximum length", func(t *testing.T) {
		// given
		set := builders.NewChangeSetBuilder().BuildChangeSet()
		options := entities.MessageOptions{MaxBodyLength: 10_000}
		composer := services.NewMessageComposer(set, options, nil, &doubles.SpyMetadataRepository{})

		// when
		body, err := composer.PRBody(context.Background())

		// then
		require.NoError(t, err)
		assert.NotContains(t, body, "_Description has been truncated_")
	})

	t.Run("should cache metadata and prefix lookups across renders", func(t *testing.T) {
		// given
		set := builders.NewChangeSetBuilder().BuildChangeSet()
		metadataSpy := &doubles.SpyMetadataRepository{}
		prefixSpy := &doubles.SpyPrefixRepository{
			Policy: entities.PrefixPolicy{Prefix: "chore(deps): "},
		}
		composer := services.NewMessageComposer(set, entities.MessageOptions{}, prefixSpy, metadataSpy)

		// when
		first, err := composer.Message(context.Background())
		require.NoError(t, err)
		second, err := composer.Message(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Len(t, metadataSpy.LookupCalls, 1)
		assert.Equal(t, 1, prefixSpy.Calls)
	})

	t.Run("should render without collaborators", func(t *testing.T) {
		// given
		set := builders.NewChangeSetBuilder().BuildChangeSet()
		composer := services.NewMessageComposer(set, entities.MessageOptions{}, nil, nil)

		// when
		message, err := composer.Message(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, "bump test-dependency from 1.0.0 to 2.0.0", message.Title)
		assert.Equal(t, "Bumps test-dependency from 1.0.0 to 2.0.0.", message.Body)
	})
}

func TestMessageComposerPRBody(t *testing.T) {
	t.Parallel()

	t.Run("should cascade change lines and link blocks for multiple dependencies", func(t *testing.T) {
		// given
		depA := builders.NewDependencyBuilder().
			WithName("alpha").WithSourceURL("https://github.com/acme/alpha").
			BuildDependency()
		depB := builders.NewDependencyBuilder().
			WithName("beta").WithSourceURL("https://github.com/acme/beta").
			BuildDependency()
		set := builders.NewChangeSetBuilder().WithDependencies(depA, depB).BuildChangeSet()

		spy := &doubles.SpyMetadataRepository{
			MetadataByName: map[string]entities.DependencyMetadata{
				"alpha": {
					SourceURL:  "https://github.com/acme/alpha",
					CommitsURL: "https://github.com/acme/alpha/commits",
				},
				"beta": {
					SourceURL:  "https://github.com/acme/beta",
					CommitsURL: "https://github.com/acme/beta/commits",
				},
			},
		}
		composer := services.NewMessageComposer(set, entities.MessageOptions{}, nil, spy)

		// when
		body, err := composer.PRBody(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t,
			"Bumps [alpha](https://github.com/acme/alpha) and [beta](https://github.com/acme/beta)."+
				" These dependencies needed to be updated together."+
				"\n\nUpdates `alpha` from 1.0.0 to 2.0.0"+
				"\n- [Commits](https://github.com/acme/alpha/commits)"+
				"\n\nUpdates `beta` from 1.0.0 to 2.0.0"+
				"\n- [Commits](https://github.com/acme/beta/commits)",
			body,
		)
	})

	t.Run("should flag fixed vulnerabilities in the intro", func(t *testing.T) {
		// given
		dep := builders.NewDependencyBuilder().WithName("openssl").BuildDependency()
		set := builders.NewChangeSetBuilder().
			WithDependencies(dep).
			WithVulnerabilities(entities.VulnerabilityIndex{
				"openssl": {{ID: "CVE-2026-0001", Severity: "high"}},
			}).
			BuildChangeSet()
		composer := services.NewMessageComposer(set, entities.MessageOptions{}, nil, nil)

		// when
		body, err := composer.PRBody(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t,
			"Bumps openssl from 1.0.0 to 2.0.0. **This update includes a security fix.**",
			body,
		)
	})

	t.Run("should note the switch from a pinned commit to a release", func(t *testing.T) {
		// given
		sha := strings.Repeat("a", 40)
		dep := builders.NewDependencyBuilder().
			WithName("foo").
			WithPreviousVersion(sha).
			WithVersion("1.1.0").
			BuildDependency()
		set := builders.NewChangeSetBuilder().WithDependencies(dep).BuildChangeSet()
		composer := services.NewMessageComposer(set, entities.MessageOptions{}, nil, nil)

		// when
		body, err := composer.PRBody(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t,
			"Bumps foo from `aaaaaaa` to 1.1.0. This release includes the previously tagged commit.",
			body,
		)
	})

	t.Run("should render the removed-transitive intro with removal lines", func(t *testing.T) {
		// given: the removed dependency leads, its ancestor follows
		removed := builders.NewDependencyBuilder().
			WithName("left-pad").WithTransitive().WithRemoved().
			WithPreviousVersion("0.1.0").WithVersion("").
			BuildDependency()
		ancestor := builders.NewDependencyBuilder().
			WithName("builder").
			WithPreviousVersion("3.0.0").WithVersion("4.0.0").
			BuildDependency()
		set := builders.NewChangeSetBuilder().WithDependencies(removed, ancestor).BuildChangeSet()
		composer := services.NewMessageComposer(set, entities.MessageOptions{}, nil, nil)

		// when
		body, err := composer.PRBody(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t,
			"Removes left-pad. It's no longer used after updating ancestor dependency builder."+
				" These dependencies need to be updated together."+
				"\n\nRemoves `left-pad`"+
				"\n\nUpdates `builder` from 3.0.0 to 4.0.0",
			body,
		)
	})

	t.Run("should render the library intro for package-spec updates", func(t *testing.T) {
		// given
		dep := builders.NewDependencyBuilder().
			WithName("rubocop").
			WithRequirements(entities.Requirement{File: "rubocop.gemspec", Requirement: ">= 1.0, < 2.1"}).
			WithPreviousRequirements(entities.Requirement{File: "rubocop.gemspec", Requirement: ">= 1.0, < 2.0"}).
			BuildDependency()
		set := builders.NewChangeSetBuilder().
			WithDependencies(dep).
			WithFiles(entities.ChangedFile{Path: "rubocop.gemspec"}).
			BuildChangeSet()
		composer := services.NewMessageComposer(set, entities.MessageOptions{}, nil, nil)

		// when
		body, err := composer.PRBody(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, "Updates the requirements on rubocop to permit the latest version.", body)
	})

	t.Run("should render the grouped intro with per-dependency cascades", func(t *testing.T) {
		// given
		depA := builders.NewDependencyBuilder().WithName("alpha").BuildDependency()
		depB := builders.NewDependencyBuilder().WithName("beta").BuildDependency()
		set := builders.NewChangeSetBuilder().
			WithDependencies(depA, depB).
			WithGroup("backend").
			BuildChangeSet()
		composer := services.NewMessageComposer(set, entities.MessageOptions{}, nil, nil)

		// when
		body, err := composer.PRBody(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t,
			"Bumps the backend group with 2 updates: alpha and beta."+
				"\n\nUpdates `alpha` from 1.0.0 to 2.0.0"+
				"\n\nUpdates `beta` from 1.0.0 to 2.0.0",
			body,
		)
	})
}
