package repositories

import (
	"context"

	"github.com/rios0rios0/depstatus/internal/domain/entities"
)

// RemoteRepository resolves which hosted repository a local checkout belongs to.
type RemoteRepository interface {
	Resolve(ctx context.Context, repoDir string) (entities.RepoPath, error)
}
