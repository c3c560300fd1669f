//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"time"

	"github.com/rios0rios0/depstatus/internal/domain/entities"
	"github.com/rios0rios0/depstatus/internal/domain/repositories"
)

// SpyMetricsRepository implements repositories.MetricsRepository as a configurable spy.
type SpyMetricsRepository struct {
	// --- ObserveRender ---
	Observed []*entities.AnalyzeDependenciesOutcome

	// --- Flush ---
	FlushErr     error
	FlushedPaths []string
}

var _ repositories.MetricsRepository = (*SpyMetricsRepository)(nil)

func (s *SpyMetricsRepository) ObserveRender(outcome *entities.AnalyzeDependenciesOutcome, _ time.Duration) {
	s.Observed = append(s.Observed, outcome)
}

func (s *SpyMetricsRepository) Flush(path string) error {
	s.FlushedPaths = append(s.FlushedPaths, path)
	return s.FlushErr
}
