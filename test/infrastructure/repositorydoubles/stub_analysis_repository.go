//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/depstatus/internal/domain/entities"
	"github.com/rios0rios0/depstatus/internal/domain/repositories"
)

// StubAnalysisRepository implements repositories.AnalysisRepository with a canned result.
type StubAnalysisRepository struct {
	Outcome *entities.AnalyzeDependenciesOutcome
	Err     error
	// spy: paths that were analyzed
	AnalyzedPaths []entities.RepoPath
}

var _ repositories.AnalysisRepository = (*StubAnalysisRepository)(nil)

func (s *StubAnalysisRepository) Analyze(
	_ context.Context, path entities.RepoPath,
) (*entities.AnalyzeDependenciesOutcome, error) {
	s.AnalyzedPaths = append(s.AnalyzedPaths, path)
	return s.Outcome, s.Err
}
