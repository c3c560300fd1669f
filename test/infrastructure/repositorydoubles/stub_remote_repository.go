//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/depstatus/internal/domain/entities"
	"github.com/rios0rios0/depstatus/internal/domain/repositories"
)

// StubRemoteRepository implements repositories.RemoteRepository with a canned result.
type StubRemoteRepository struct {
	Path entities.RepoPath
	Err  error
	// spy: directories that were resolved
	ResolvedDirs []string
}

var _ repositories.RemoteRepository = (*StubRemoteRepository)(nil)

func (s *StubRemoteRepository) Resolve(_ context.Context, repoDir string) (entities.RepoPath, error) {
	s.ResolvedDirs = append(s.ResolvedDirs, repoDir)
	return s.Path, s.Err
}
