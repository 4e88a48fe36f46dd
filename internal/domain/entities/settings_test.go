//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/msgforge/internal/domain/entities"
)

func writeSettingsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "msgforge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewSettings(t *testing.T) {
	t.Run("should load a complete settings file", func(t *testing.T) {
		// given
		path := writeSettingsFile(t, `message:
  header: Automated update.
  footer: Reviewed by the platform team.
  max_body_length: 4000
  commit:
    trailers:
      Ticket: OPS-1234
    signoff:
      name: Bot
      email: bot@example.com
prefix:
  style: conventional
  capitalize: true
providers:
  - type: github
    token: inline-token
auto_complete: true
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "Automated update.", settings.Message.Header)
		assert.Equal(t, 4000, settings.Message.MaxBodyLength)
		require.Len(t, settings.Message.Commit.Trailers, 1)
		assert.Equal(t, "Ticket", settings.Message.Commit.Trailers[0].Key)
		require.NotNil(t, settings.Message.Commit.Signoff)
		assert.Equal(t, "Bot", settings.Message.Commit.Signoff.Name)
		assert.Equal(t, entities.PrefixStyleConventional, settings.Prefix.Style)
		assert.True(t, settings.Prefix.Capitalize)
		require.Len(t, settings.Providers, 1)
		assert.Equal(t, "inline-token", settings.Providers[0].Token)
		assert.True(t, settings.AutoComplete)
	})

	t.Run("should expand environment variables in tokens", func(t *testing.T) {
		// given
		t.Setenv("MSGFORGE_TEST_TOKEN", "from-env")
		path := writeSettingsFile(t, `providers:
  - type: github
    token: ${MSGFORGE_TEST_TOKEN}
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "from-env", settings.Providers[0].Token)
	})

	t.Run("should read the token from a file path", func(t *testing.T) {
		// given
		tokenPath := filepath.Join(t.TempDir(), "token")
		require.NoError(t, os.WriteFile(tokenPath, []byte("from-file\n"), 0o600))
		path := writeSettingsFile(t, `providers:
  - type: gitlab
    token: `+tokenPath+`
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "from-file", settings.Providers[0].Token)
	})

	t.Run("should reject an unsupported prefix style", func(t *testing.T) {
		// given
		path := writeSettingsFile(t, `prefix:
  style: shouting
`)

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), `prefix.style "shouting" is not supported`)
	})

	t.Run("should require a provider type", func(t *testing.T) {
		// given
		path := writeSettingsFile(t, `providers:
  - token: some-token
`)

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "providers[0].type is required")
	})

	t.Run("should require a provider token", func(t *testing.T) {
		// given
		path := writeSettingsFile(t, `providers:
  - type: github
`)

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "providers[0].token is required")
	})

	t.Run("should fail on a missing file", func(t *testing.T) {
		// given
		path := filepath.Join(t.TempDir(), "absent.yaml")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read settings file")
	})

	t.Run("should fail on malformed YAML", func(t *testing.T) {
		// given
		path := writeSettingsFile(t, "prefix: [")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse settings file")
	})
}
