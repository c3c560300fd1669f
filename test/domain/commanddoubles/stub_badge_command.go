//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/depstatus/internal/domain/commands"
)

// StubBadgeCommand is a stub implementation of commands.Badge.
type StubBadgeCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.BadgeOptions
}

var _ commands.Badge = (*StubBadgeCommand)(nil)

func (s *StubBadgeCommand) Execute(_ context.Context, opts commands.BadgeOptions) error {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteErr
}
