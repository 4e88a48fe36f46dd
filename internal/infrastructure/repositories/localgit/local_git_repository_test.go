//go:build unit

package localgit_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/msgforge/internal/infrastructure/repositories/localgit"
)

func initRepository(t *testing.T) (string, *git.Repository) {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	path := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(path, []byte("readme\n"), 0o600))

	worktree, err := repo.Worktree()
	require.NoError(t, err)
	_, err = worktree.Add("README.md")
	require.NoError(t, err)

	_, err = worktree.Commit("initial commit", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "tester",
			Email: "tester@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return dir, repo
}

func TestLocalGitRepositoryResolve(t *testing.T) {
	t.Parallel()

	t.Run("should read the current branch", func(t *testing.T) {
		// given
		dir, _ := initRepository(t)
		repository := localgit.NewLocalGitRepository()

		// when
		repoContext, err := repository.Resolve(dir)

		// then
		require.NoError(t, err)
		assert.Equal(t, "master", repoContext.Branch)
		assert.Empty(t, repoContext.RemoteURL)
	})

	t.Run("should read the origin remote when present", func(t *testing.T) {
		// given
		dir, repo := initRepository(t)
		_, err := repo.CreateRemote(&gitconfig.RemoteConfig{
			Name: "origin",
			URLs: []string{"https://github.com/acme/foo.git"},
		})
		require.NoError(t, err)
		repository := localgit.NewLocalGitRepository()

		// when
		repoContext, err := repository.Resolve(dir)

		// then
		require.NoError(t, err)
		assert.Equal(t, "https://github.com/acme/foo.git", repoContext.RemoteURL)
	})

	t.Run("should resolve from a subdirectory", func(t *testing.T) {
		// given
		dir, _ := initRepository(t)
		subDir := filepath.Join(dir, "services", "billing")
		require.NoError(t, os.MkdirAll(subDir, 0o750))
		repository := localgit.NewLocalGitRepository()

		// when
		repoContext, err := repository.Resolve(subDir)

		// then
		require.NoError(t, err)
		assert.Equal(t, "master", repoContext.Branch)
	})

	t.Run("should fail outside a git repository", func(t *testing.T) {
		// given
		repository := localgit.NewLocalGitRepository()

		// when
		_, err := repository.Resolve(t.TempDir())

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open git repository")
	})
}
