package repositories

import (
	"context"

	"github.com/rios0rios0/depstatus/internal/domain/entities"
)

// AnalysisRepository abstracts the engine that analyzes a repository's dependencies.
// Implementations return a fully resolved outcome; rendering never resolves versions.
type AnalysisRepository interface {
	// Analyze returns the outcome for the repository, or an error when the
	// repository could not be analyzed.
	Analyze(ctx context.Context, path entities.RepoPath) (*entities.AnalyzeDependenciesOutcome, error)
}
