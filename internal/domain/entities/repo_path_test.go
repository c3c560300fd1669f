//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depstatus/internal/domain/entities"
)

func TestNewRepoPath(t *testing.T) {
	t.Parallel()

	t.Run("should reject an empty qualifier", func(t *testing.T) {
		t.Parallel()

		// given / when
		_, err := entities.NewRepoPath(entities.RepoSiteGitHub, "  ", "cargo")

		// then
		require.ErrorIs(t, err, entities.ErrEmptyQualifier)
	})

	t.Run("should reject an empty name", func(t *testing.T) {
		t.Parallel()

		// given / when
		_, err := entities.NewRepoPath(entities.RepoSiteGitHub, "rust-lang", "")

		// then
		require.ErrorIs(t, err, entities.ErrEmptyName)
	})

	t.Run("should build origin URL and display name", func(t *testing.T) {
		t.Parallel()

		// given
		path, err := entities.NewRepoPath(entities.RepoSiteGitLab, "group", "project")
		require.NoError(t, err)

		// when
		origin := path.OriginURL()
		display := path.DisplayName()

		// then
		assert.Equal(t, "https://gitlab.com/group/project", origin)
		assert.Equal(t, "group / project", display)
		assert.Equal(t, "gitlab/group/project", path.String())
	})
}

func TestParseRepoPath(t *testing.T) {
	t.Parallel()

	t.Run("should parse site, qualifier and name", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "github/rust-lang/cargo"

		// when
		path, err := entities.ParseRepoPath(raw)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.RepoSiteGitHub, path.Site())
		assert.Equal(t, "rust-lang", path.Qualifier())
		assert.Equal(t, "cargo", path.Name())
	})

	t.Run("should tolerate surrounding slashes", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "/bitbucket/owner/repo/"

		// when
		path, err := entities.ParseRepoPath(raw)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.RepoSiteBitbucket, path.Site())
	})

	t.Run("should fail when a segment is missing", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "github/rust-lang"

		// when
		_, err := entities.ParseRepoPath(raw)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "<site>/<qualifier>/<name>")
	})

	t.Run("should fail for an unknown site", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "codeberg/forgejo/forgejo"

		// when
		_, err := entities.ParseRepoPath(raw)

		// then
		require.ErrorIs(t, err, entities.ErrUnknownRepoSite)
	})
}
