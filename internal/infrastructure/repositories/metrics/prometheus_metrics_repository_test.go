//go:build unit

package metrics_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depstatus/internal/infrastructure/repositories/metrics"
	"github.com/rios0rios0/depstatus/test/domain/entitybuilders"
)

func TestPrometheusMetricsRepositoryObserveRender(t *testing.T) {
	t.Parallel()

	t.Run("should count rendered pages by variant", func(t *testing.T) {
		t.Parallel()

		// given
		repository := metrics.NewPrometheusMetricsRepository()
		outcome := entitybuilders.NewOutcomeBuilder().
			WithCrate("cargo", entitybuilders.NewDependenciesBuilder().
				WithMain("rand", "^0.7", "0.8.5").
				WithMain("serde", "^1.0", "1.0.200").
				BuildDependencies()).
			BuildOutcome()

		// when
		repository.ObserveRender(outcome, 20*time.Millisecond)
		repository.ObserveRender(nil, 5*time.Millisecond)
		repository.ObserveRender(nil, 5*time.Millisecond)

		// then
		count, err := testutil.GatherAndCount(repository.Registry(), "depstatus_pages_rendered_total")
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("should keep the gauges of the last successful page", func(t *testing.T) {
		t.Parallel()

		// given
		repository := metrics.NewPrometheusMetricsRepository()
		outcome := entitybuilders.NewOutcomeBuilder().
			WithCrate("cargo", entitybuilders.NewDependenciesBuilder().
				WithMain("rand", "^0.7", "0.8.5").
				WithDev("criterion", "^0.5", "0.5.1").
				WithBuild("cc", "^1", "").
				BuildDependencies()).
			BuildOutcome()

		// when
		repository.ObserveRender(outcome, time.Second)
		repository.ObserveRender(nil, time.Second)

		// then
		expected := `
# HELP depstatus_dependencies Number of dependencies on the last successfully rendered page.
# TYPE depstatus_dependencies gauge
depstatus_dependencies 3
# HELP depstatus_outdated_dependencies Number of outdated dependencies on the last successfully rendered page.
# TYPE depstatus_outdated_dependencies gauge
depstatus_outdated_dependencies 1
`
		require.NoError(t, testutil.GatherAndCompare(
			repository.Registry(),
			strings.NewReader(expected),
			"depstatus_dependencies", "depstatus_outdated_dependencies",
		))
	})
}

func TestPrometheusMetricsRepositoryFlush(t *testing.T) {
	t.Parallel()

	t.Run("should write the collected metrics to a textfile", func(t *testing.T) {
		t.Parallel()

		// given
		repository := metrics.NewPrometheusMetricsRepository()
		repository.ObserveRender(nil, 10*time.Millisecond)
		target := filepath.Join(t.TempDir(), "depstatus.prom")

		// when
		err := repository.Flush(target)

		// then
		require.NoError(t, err)
		content, readErr := os.ReadFile(target)
		require.NoError(t, readErr)
		assert.Contains(t, string(content), `depstatus_pages_rendered_total{variant="failure"} 1`)
		assert.Contains(t, string(content), "depstatus_render_duration_seconds_count 1")
	})

	t.Run("should fail when the target directory does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		repository := metrics.NewPrometheusMetricsRepository()
		target := filepath.Join(t.TempDir(), "missing", "depstatus.prom")

		// when
		err := repository.Flush(target)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to write metrics")
	})
}
