//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/depstatus/internal/domain/commands"
)

// StubStatusCommand is a stub implementation of commands.Status.
type StubStatusCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.StatusOptions
	// Body is written to the output on every call
	Body string
}

var _ commands.Status = (*StubStatusCommand)(nil)

func (s *StubStatusCommand) Execute(_ context.Context, opts commands.StatusOptions) error {
	s.ExecuteCallCount++
	s.LastOpts = opts
	if s.Body != "" && opts.Output != nil {
		_, _ = opts.Output.Write([]byte(s.Body))
	}
	return s.ExecuteErr
}
