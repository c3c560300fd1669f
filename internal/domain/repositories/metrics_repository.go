package repositories

import (
	"time"

	"github.com/rios0rios0/depstatus/internal/domain/entities"
)

// MetricsRepository records what was rendered.
type MetricsRepository interface {
	// ObserveRender records one rendered page. outcome is nil for failure pages.
	ObserveRender(outcome *entities.AnalyzeDependenciesOutcome, elapsed time.Duration)
	// Flush writes the collected metrics to the given file.
	Flush(path string) error
}
