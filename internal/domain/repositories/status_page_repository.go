package repositories

import "github.com/rios0rios0/depstatus/internal/domain/entities"

// StatusPageRepository renders the HTML status page of a repository.
type StatusPageRepository interface {
	// Render produces the success page when outcome is non-nil and the failure
	// page otherwise. It never fails.
	Render(outcome *entities.AnalyzeDependenciesOutcome, path entities.RepoPath) entities.Document
}
