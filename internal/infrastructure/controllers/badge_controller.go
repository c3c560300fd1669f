package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depstatus/internal/domain/commands"
	"github.com/rios0rios0/depstatus/internal/domain/entities"
)

// BadgeController handles the "badge" subcommand.
type BadgeController struct {
	command commands.Badge
}

// NewBadgeController creates a new BadgeController.
func NewBadgeController(command commands.Badge) *BadgeController {
	return &BadgeController{command: command}
}

// GetBind returns the Cobra command metadata for the badge controller.
func (it *BadgeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "badge [path | <site>/<qualifier>/<name>]",
		Short: "Print badge links and README snippets",
		Long: `Print the status page URL, the badge image URL and copy-paste
snippets embedding the badge in Markdown or Asciidoc documents.

With a directory (default "."), the repository is detected from
the origin remote of the local Git checkout.`,
	}
}

// Execute prints the snippets for the given target.
func (it *BadgeController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	format, _ := cmd.Flags().GetString("format")

	target := "."
	if len(args) > 0 {
		target = args[0]
	}

	if err := it.command.Execute(ctx, commands.BadgeOptions{
		Target: target,
		Format: format,
		Output: cmd.OutOrStdout(),
	}); err != nil {
		logger.Errorf("Badge generation failed: %v", err)
	}
}

// AddFlags adds the badge-specific flags to the given Cobra command.
func (it *BadgeController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", commands.FormatAll,
		fmt.Sprintf("Snippet format (%s, %s, %s)", commands.FormatAll, commands.FormatMarkdown, commands.FormatAsciidoc),
	)
}
