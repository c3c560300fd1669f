package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/depstatus/internal/domain/repositories"
	"github.com/rios0rios0/depstatus/internal/infrastructure/repositories/analysis"
	"github.com/rios0rios0/depstatus/internal/infrastructure/repositories/badge"
	"github.com/rios0rios0/depstatus/internal/infrastructure/repositories/git"
	"github.com/rios0rios0/depstatus/internal/infrastructure/repositories/metrics"
	"github.com/rios0rios0/depstatus/internal/infrastructure/repositories/views"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register repository constructors
	if err := container.Provide(analysis.NewFileAnalysisRepository); err != nil {
		return err
	}
	if err := container.Provide(badge.NewSVGBadgeRepository); err != nil {
		return err
	}
	if err := container.Provide(git.NewRemoteRepository); err != nil {
		return err
	}
	if err := container.Provide(metrics.NewPrometheusMetricsRepository); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *analysis.FileAnalysisRepository) domainRepos.AnalysisRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *badge.SVGBadgeRepository) domainRepos.BadgeRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *git.RemoteRepository) domainRepos.RemoteRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *metrics.PrometheusMetricsRepository) domainRepos.MetricsRepository {
		return impl
	}); err != nil {
		return err
	}

	// Status page renderer
	if err := container.Provide(views.NewStatusPageRepository); err != nil {
		return err
	}
	if err := container.Provide(func(impl *views.StatusPageRepository) domainRepos.StatusPageRepository {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
