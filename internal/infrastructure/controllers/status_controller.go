package controllers

import (
	"context"
	"io"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depstatus/internal/domain/commands"
	"github.com/rios0rios0/depstatus/internal/domain/entities"
)

// StatusController handles the "status" subcommand.
type StatusController struct {
	command commands.Status
}

// NewStatusController creates a new StatusController.
func NewStatusController(command commands.Status) *StatusController {
	return &StatusController{command: command}
}

// GetBind returns the Cobra command metadata for the status controller.
func (it *StatusController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "status <site>/<qualifier>/<name>",
		Short: "Render the dependency status page of a repository",
		Long: `Render the HTML dependency status page of a repository.

The analysis report is read from the configured analysis directory.
When the repository could not be analyzed, the failure page is rendered instead.

Example:
  depstatus status github/rust-lang/cargo --output cargo.html`,
	}
}

// Execute renders the page to stdout or to the --output file.
func (it *StatusController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	if len(args) != 1 {
		logger.Errorf("expected exactly one repository, got %d arguments", len(args))
		return
	}

	path, err := entities.ParseRepoPath(args[0])
	if err != nil {
		logger.Errorf("Invalid repository: %v", err)
		return
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	outputPath, _ := cmd.Flags().GetString("output")

	var output io.Writer = cmd.OutOrStdout()
	if outputPath != "" {
		file, createErr := os.Create(outputPath)
		if createErr != nil {
			logger.Errorf("failed to create output file: %v", createErr)
			return
		}
		defer file.Close()
		output = file
	}

	if execErr := it.command.Execute(ctx, commands.StatusOptions{
		Path:    path,
		Output:  output,
		Verbose: verbose,
	}); execErr != nil {
		logger.Errorf("Status rendering failed: %v", execErr)
		return
	}

	if outputPath != "" {
		logger.Infof("Status page written to %s", outputPath)
	}
}

// AddFlags adds the status-specific flags to the given Cobra command.
func (it *StatusController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Write the page to this file instead of stdout")
}
