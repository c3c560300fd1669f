//go:build unit

package controllers_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depstatus/internal/domain/commands"
	"github.com/rios0rios0/depstatus/internal/infrastructure/controllers"
	"github.com/rios0rios0/depstatus/test/domain/commanddoubles"
)

func TestBadgeController_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should default the target to the current directory", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubBadgeCommand{}
		controller := controllers.NewBadgeController(stub)
		cmd, out := newCobraCommand(controller.AddFlags)

		// when
		controller.Execute(cmd, []string{})

		// then
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, ".", stub.LastOpts.Target)
		assert.Equal(t, commands.FormatAll, stub.LastOpts.Format)
		assert.Same(t, out, stub.LastOpts.Output)
	})

	t.Run("should forward the target and format", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubBadgeCommand{}
		controller := controllers.NewBadgeController(stub)
		cmd, _ := newCobraCommand(controller.AddFlags)
		require.NoError(t, cmd.Flags().Set("format", commands.FormatAsciidoc))

		// when
		controller.Execute(cmd, []string{"bitbucket/team/repo"})

		// then
		assert.Equal(t, "bitbucket/team/repo", stub.LastOpts.Target)
		assert.Equal(t, commands.FormatAsciidoc, stub.LastOpts.Format)
	})
}

func TestBadgeController_AddFlags(t *testing.T) {
	t.Parallel()

	t.Run("should register the format flag defaulting to all", func(t *testing.T) {
		t.Parallel()

		// given
		controller := controllers.NewBadgeController(&commanddoubles.StubBadgeCommand{})
		cmd := &cobra.Command{Use: "badge"}

		// when
		controller.AddFlags(cmd)

		// then
		flag := cmd.Flags().Lookup("format")
		require.NotNil(t, flag)
		assert.Equal(t, "f", flag.Shorthand)
		assert.Equal(t, commands.FormatAll, flag.DefValue)
	})
}

func TestNewControllers(t *testing.T) {
	t.Parallel()

	t.Run("should aggregate the status and badge controllers", func(t *testing.T) {
		t.Parallel()

		// given
		status := controllers.NewStatusController(&commanddoubles.StubStatusCommand{})
		badge := controllers.NewBadgeController(&commanddoubles.StubBadgeCommand{})

		// when
		all := controllers.NewControllers(status, badge)

		// then
		require.Len(t, *all, 2)
		assert.Equal(t, "status <site>/<qualifier>/<name>", (*all)[0].GetBind().Use)
		assert.Equal(t, "badge [path | <site>/<qualifier>/<name>]", (*all)[1].GetBind().Use)
	})
}
