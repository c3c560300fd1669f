//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/depstatus/internal/domain/entities"
	"github.com/rios0rios0/depstatus/test/domain/entitybuilders"
)

func latest(raw string) *entities.Version {
	v := entities.MustParseVersion(raw)
	return &v
}

func TestAnalyzedDependencyIsOutdated(t *testing.T) {
	t.Parallel()

	t.Run("should not be outdated when the requirement admits the latest version", func(t *testing.T) {
		t.Parallel()

		// given
		dep := entities.NewAnalyzedDependency(entities.MustParseVersionReq("^1.0"), latest("1.0.200"))

		// when
		outdated := dep.IsOutdated()

		// then
		assert.False(t, outdated)
	})

	t.Run("should be outdated when the latest version is outside the requirement", func(t *testing.T) {
		t.Parallel()

		// given
		dep := entities.NewAnalyzedDependency(entities.MustParseVersionReq("^0.3"), latest("0.4.1"))

		// when
		outdated := dep.IsOutdated()

		// then
		assert.True(t, outdated)
	})

	t.Run("should treat a bare requirement as caret", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			required string
			latest   string
			outdated bool
		}{
			{required: "1.0", latest: "1.5.0", outdated: false},
			{required: "1.2.3", latest: "1.9.0", outdated: false},
			{required: "0.4", latest: "0.5.0", outdated: true},
			{required: "0.0.3", latest: "0.0.4", outdated: true},
			{required: ">=0.3, 0.4", latest: "0.4.9", outdated: false},
			{required: "1.*", latest: "1.7.0", outdated: false},
		}

		for _, tt := range tests {
			// given
			dep := entities.NewAnalyzedDependency(entities.MustParseVersionReq(tt.required), latest(tt.latest))

			// when
			outdated := dep.IsOutdated()

			// then
			assert.Equal(t, tt.outdated, outdated, "requirement %s with latest %s", tt.required, tt.latest)
			assert.Equal(t, tt.required, dep.Required.String())
		}
	})

	t.Run("should never be outdated when the latest version is unknown", func(t *testing.T) {
		t.Parallel()

		// given
		requirements := []string{"^1.0", "=0.1.0", "~2.3", "<0.0.1"}

		for _, raw := range requirements {
			// when
			dep := entities.NewAnalyzedDependency(entities.MustParseVersionReq(raw), nil)

			// then
			assert.False(t, dep.IsOutdated(), "requirement %s", raw)
		}
	})
}

func TestAnalyzedDependencies(t *testing.T) {
	t.Parallel()

	t.Run("should be empty when all categories are empty", func(t *testing.T) {
		t.Parallel()

		// given
		deps := entitybuilders.NewDependenciesBuilder().BuildDependencies()

		// when
		empty := deps.IsEmpty()

		// then
		assert.True(t, empty)
		assert.Zero(t, deps.CountTotal())
	})

	t.Run("should count outdated dependencies across categories", func(t *testing.T) {
		t.Parallel()

		// given
		deps := entitybuilders.NewDependenciesBuilder().
			WithMain("serde", "^1.0", "1.0.200").
			WithMain("rand", "^0.7", "0.8.5").
			WithDev("tempfile", "^2.0", "3.10.0").
			WithBuild("cc", "^1.0", "").
			BuildDependencies()

		// when
		outdated := deps.CountOutdated()

		// then
		assert.Equal(t, 2, outdated)
		assert.Equal(t, 4, deps.CountTotal())
		assert.True(t, deps.AnyOutdated())
	})

	t.Run("should title every category", func(t *testing.T) {
		t.Parallel()

		// given / when / then
		assert.Equal(t, "Dependencies", entities.CategoryMain.Title())
		assert.Equal(t, "Dev dependencies", entities.CategoryDev.Title())
		assert.Equal(t, "Build dependencies", entities.CategoryBuild.Title())
		assert.Panics(t, func() { _ = entities.DependencyCategory(3).Title() })
	})
}

func TestVersion(t *testing.T) {
	t.Parallel()

	t.Run("should render canonical text and compare", func(t *testing.T) {
		t.Parallel()

		// given
		a := entities.MustParseVersion("v1.2")
		b := entities.MustParseVersion("1.10.0")

		// when / then
		assert.Equal(t, "1.2.0", a.String())
		assert.Equal(t, -1, a.Compare(b))
		assert.Equal(t, 1, b.Compare(a))
		assert.True(t, a.Equal(entities.MustParseVersion("1.2.0")))
	})

	t.Run("should keep the requirement text verbatim", func(t *testing.T) {
		t.Parallel()

		// given
		raw := ">=0.3, <0.5"

		// when
		req := entities.MustParseVersionReq(raw)

		// then
		assert.Equal(t, raw, req.String())
		assert.True(t, req.Matches(entities.MustParseVersion("0.4.2")))
		assert.False(t, req.Matches(entities.MustParseVersion("0.5.0")))
	})

	t.Run("should reject an empty crate name", func(t *testing.T) {
		t.Parallel()

		// given / when
		_, err := entities.NewCrateName(" ")

		// then
		assert.ErrorIs(t, err, entities.ErrEmptyCrateName)
	})
}
