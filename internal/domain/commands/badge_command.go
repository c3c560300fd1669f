package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depstatus/internal/domain/entities"
	"github.com/rios0rios0/depstatus/internal/domain/repositories"
)

// Snippet formats accepted by the badge command.
const (
	FormatAll      = "all"
	FormatMarkdown = "markdown"
	FormatAsciidoc = "asciidoc"
)

// Badge is the interface for the badge command.
type Badge interface {
	Execute(ctx context.Context, opts BadgeOptions) error
}

// BadgeOptions holds runtime options for printing badge snippets.
type BadgeOptions struct {
	Target string // local checkout directory or "site/qualifier/name"
	Format string
	Output io.Writer
}

// BadgeCommand prints the canonical links and embed snippets of a repository badge.
type BadgeCommand struct {
	settings *entities.Settings
	remote   repositories.RemoteRepository
}

// NewBadgeCommand creates a new BadgeCommand.
func NewBadgeCommand(settings *entities.Settings, remote repositories.RemoteRepository) *BadgeCommand {
	return &BadgeCommand{settings: settings, remote: remote}
}

// Execute resolves the target repository and writes the requested snippets.
func (it *BadgeCommand) Execute(ctx context.Context, opts BadgeOptions) error {
	path, err := it.resolvePath(ctx, opts.Target)
	if err != nil {
		return err
	}
	logger.Debugf("Generating badge snippets for %s", path)

	links := entities.NewBadgeLinks(it.settings.BaseURL, path)

	var out string
	switch opts.Format {
	case FormatMarkdown:
		out = links.Markdown()
	case FormatAsciidoc:
		out = links.Asciidoc()
	case FormatAll, "":
		out = fmt.Sprintf(
			"Status page: %s\nBadge image: %s\n\nMarkdown:\n%s\nAsciidoc:\n%s",
			links.SelfURL, links.StatusImageURL, links.Markdown(), links.Asciidoc(),
		)
	default:
		return fmt.Errorf(
			"unsupported format %q (expected %s, %s or %s)",
			opts.Format, FormatAll, FormatMarkdown, FormatAsciidoc,
		)
	}

	if _, writeErr := io.WriteString(opts.Output, out); writeErr != nil {
		return fmt.Errorf("failed to write badge snippets: %w", writeErr)
	}
	return nil
}

// resolvePath reads the git remote when target is a directory and parses it as
// "site/qualifier/name" otherwise.
func (it *BadgeCommand) resolvePath(ctx context.Context, target string) (entities.RepoPath, error) {
	if target == "" {
		target = "."
	}

	if info, statErr := os.Stat(target); statErr == nil && info.IsDir() {
		path, err := it.remote.Resolve(ctx, target)
		if err != nil {
			return entities.RepoPath{}, fmt.Errorf("failed to detect repository from %q: %w", target, err)
		}
		logger.Infof("Detected repository %s from git remote", path)
		return path, nil
	}

	return entities.ParseRepoPath(target)
}
