//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/depstatus/internal/domain/entities"
	"github.com/rios0rios0/depstatus/internal/domain/repositories"
)

// SpyStatusPageRepository implements repositories.StatusPageRepository as a configurable spy.
type SpyStatusPageRepository struct {
	Body  []byte
	Calls []RenderCall
}

// RenderCall records a single invocation of Render.
type RenderCall struct {
	Outcome *entities.AnalyzeDependenciesOutcome
	Path    entities.RepoPath
}

var _ repositories.StatusPageRepository = (*SpyStatusPageRepository)(nil)

func (s *SpyStatusPageRepository) Render(
	outcome *entities.AnalyzeDependenciesOutcome, path entities.RepoPath,
) entities.Document {
	s.Calls = append(s.Calls, RenderCall{Outcome: outcome, Path: path})
	return entities.Document{ContentType: entities.HTMLContentType, Body: s.Body}
}
