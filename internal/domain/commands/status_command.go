package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depstatus/internal/domain/entities"
	"github.com/rios0rios0/depstatus/internal/domain/repositories"
)

// Status is the interface for the status command.
type Status interface {
	Execute(ctx context.Context, opts StatusOptions) error
}

// StatusOptions holds runtime options for rendering one status page.
type StatusOptions struct {
	Path    entities.RepoPath
	Output  io.Writer
	Verbose bool
}

// StatusCommand fetches the analysis outcome of a repository and renders its
// status page. A failed analysis still produces a page: the failure variant.
type StatusCommand struct {
	settings *entities.Settings
	analysis repositories.AnalysisRepository
	pages    repositories.StatusPageRepository
	metrics  repositories.MetricsRepository
}

// NewStatusCommand creates a new StatusCommand.
func NewStatusCommand(
	settings *entities.Settings,
	analysis repositories.AnalysisRepository,
	pages repositories.StatusPageRepository,
	metrics repositories.MetricsRepository,
) *StatusCommand {
	return &StatusCommand{
		settings: settings,
		analysis: analysis,
		pages:    pages,
		metrics:  metrics,
	}
}

// Execute renders the status page of opts.Path into opts.Output.
func (it *StatusCommand) Execute(ctx context.Context, opts StatusOptions) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	started := time.Now()
	logger.Infof("Analyzing %s...", opts.Path)

	outcome, err := it.analysis.Analyze(ctx, opts.Path)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if err != nil {
		logger.Warnf("Analysis of %s failed, rendering failure page: %v", opts.Path, err)
		outcome = nil
	}

	doc := it.pages.Render(outcome, opts.Path)
	it.metrics.ObserveRender(outcome, time.Since(started))

	if _, writeErr := opts.Output.Write(doc.Body); writeErr != nil {
		return fmt.Errorf("failed to write status page: %w", writeErr)
	}

	if outcome != nil {
		logger.Infof(
			"Rendered %s: %d crates, %d dependencies, %d outdated",
			opts.Path, outcome.Crates.Len(), outcome.CountTotal(), outcome.CountOutdated(),
		)
	}

	if it.settings.MetricsFile != "" {
		if flushErr := it.metrics.Flush(it.settings.MetricsFile); flushErr != nil {
			return flushErr
		}
		logger.Debugf("Metrics written to %q", it.settings.MetricsFile)
	}

	return nil
}
