//go:build unit

package controllers_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depstatus/internal/infrastructure/controllers"
	"github.com/rios0rios0/depstatus/test/domain/commanddoubles"
)

// newCobraCommand builds a command carrying the persistent flags of the root
// command plus the controller flags.
func newCobraCommand(addFlags func(*cobra.Command)) (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().BoolP("verbose", "v", false, "")
	addFlags(cmd)
	var out bytes.Buffer
	cmd.SetOut(&out)
	return cmd, &out
}

func TestStatusController_GetBind(t *testing.T) {
	t.Parallel()

	t.Run("should bind the status subcommand", func(t *testing.T) {
		t.Parallel()

		// given
		controller := controllers.NewStatusController(&commanddoubles.StubStatusCommand{})

		// when
		bind := controller.GetBind()

		// then
		assert.Equal(t, "status <site>/<qualifier>/<name>", bind.Use)
		assert.NotEmpty(t, bind.Short)
		assert.NotEmpty(t, bind.Long)
	})
}

func TestStatusController_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should pass the parsed repository and write to stdout", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubStatusCommand{Body: "<html>page</html>"}
		controller := controllers.NewStatusController(stub)
		cmd, out := newCobraCommand(controller.AddFlags)

		// when
		controller.Execute(cmd, []string{"github/rust-lang/cargo"})

		// then
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, "github/rust-lang/cargo", stub.LastOpts.Path.String())
		assert.False(t, stub.LastOpts.Verbose)
		assert.Equal(t, "<html>page</html>", out.String())
	})

	t.Run("should write the page to the output file", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubStatusCommand{Body: "<html>file</html>"}
		controller := controllers.NewStatusController(stub)
		cmd, out := newCobraCommand(controller.AddFlags)
		target := filepath.Join(t.TempDir(), "cargo.html")
		require.NoError(t, cmd.Flags().Set("output", target))
		require.NoError(t, cmd.Flags().Set("verbose", "true"))

		// when
		controller.Execute(cmd, []string{"gitlab/group/project"})

		// then
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.True(t, stub.LastOpts.Verbose)
		assert.Empty(t, out.String())
		content, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "<html>file</html>", string(content))
	})

	t.Run("should not call the command for an invalid repository", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubStatusCommand{}
		controller := controllers.NewStatusController(stub)
		cmd, _ := newCobraCommand(controller.AddFlags)

		// when
		controller.Execute(cmd, []string{"codeberg/user/repo"})

		// then
		assert.Equal(t, 0, stub.ExecuteCallCount)
	})

	t.Run("should not call the command without exactly one argument", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubStatusCommand{}
		controller := controllers.NewStatusController(stub)
		cmd, _ := newCobraCommand(controller.AddFlags)

		// when
		controller.Execute(cmd, []string{})

		// then
		assert.Equal(t, 0, stub.ExecuteCallCount)
	})

	t.Run("should not panic when the command fails", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubStatusCommand{ExecuteErr: errors.New("boom")}
		controller := controllers.NewStatusController(stub)
		cmd, _ := newCobraCommand(controller.AddFlags)

		// when / then
		assert.NotPanics(t, func() {
			controller.Execute(cmd, []string{"github/rust-lang/cargo"})
		})
		assert.Equal(t, 1, stub.ExecuteCallCount)
	})
}

func TestStatusController_AddFlags(t *testing.T) {
	t.Parallel()

	t.Run("should register the output flag", func(t *testing.T) {
		t.Parallel()

		// given
		controller := controllers.NewStatusController(&commanddoubles.StubStatusCommand{})
		cmd := &cobra.Command{Use: "status"}

		// when
		controller.AddFlags(cmd)

		// then
		flag := cmd.Flags().Lookup("output")
		require.NotNil(t, flag)
		assert.Equal(t, "o", flag.Shorthand)
		assert.Empty(t, flag.DefValue)
	})
}
