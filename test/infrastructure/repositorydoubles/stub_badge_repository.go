//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/depstatus/internal/domain/entities"
	"github.com/rios0rios0/depstatus/internal/domain/repositories"
)

// StubBadgeRepository implements repositories.BadgeRepository with a fixed image.
type StubBadgeRepository struct {
	SVG []byte
	// spy: outcomes the badge was requested for
	RenderedOutcomes []*entities.AnalyzeDependenciesOutcome
}

var _ repositories.BadgeRepository = (*StubBadgeRepository)(nil)

func (s *StubBadgeRepository) Render(outcome *entities.AnalyzeDependenciesOutcome) entities.Badge {
	s.RenderedOutcomes = append(s.RenderedOutcomes, outcome)
	svg := s.SVG
	if svg == nil {
		svg = []byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`)
	}
	return entities.Badge{SVG: svg}
}
