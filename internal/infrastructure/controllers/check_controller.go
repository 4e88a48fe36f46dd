package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/msgforge/internal/domain/commands"
	"github.com/rios0rios0/msgforge/internal/domain/entities"
)

// CheckController handles the "check" subcommand (change set validation).
type CheckController struct {
	command commands.Check
}

// NewCheckController creates a new CheckController.
func NewCheckController(command commands.Check) *CheckController {
	return &CheckController{command: command}
}

// GetBind returns the Cobra command metadata for the check controller.
func (it *CheckController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check [change-set]",
		Short: "Validate a change set file",
		Long: `Validate a dependency change set file without rendering anything.

Contract violations such as an empty change set, a missing property
name, or an unresolvable requirement surface here before a pipeline
tries to open a pull request.`,
	}
}

// Execute validates the given change set file.
func (it *CheckController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	verbose, _ := cmd.Flags().GetBool("verbose")

	if len(args) == 0 {
		logger.Error("missing change set file argument")
		return
	}

	result, err := it.command.Execute(ctx, commands.CheckOptions{
		ChangeSetPath: args[0],
		Verbose:       verbose,
	})
	if err != nil {
		logger.Fatalf("Check failed: %v", err)
	}

	logger.Infof(
		"[check] %q is a valid %s update (%d dependencies)",
		args[0], result.Scenario, result.Dependencies,
	)
	if result.Library {
		logger.Info("[check] The update targets library requirements")
	}
}
