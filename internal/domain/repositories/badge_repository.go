package repositories

import "github.com/rios0rios0/depstatus/internal/domain/entities"

// BadgeRepository renders the status badge image.
type BadgeRepository interface {
	// Render draws the badge for an outcome. A nil outcome yields the failure badge.
	Render(outcome *entities.AnalyzeDependenciesOutcome) entities.Badge
}
