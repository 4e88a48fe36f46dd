package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/msgforge/internal/domain/entities"
	"github.com/rios0rios0/msgforge/internal/domain/services"
)

// Check is the interface for the check command (change set validation).
type Check interface {
	Execute(ctx context.Context, opts CheckOptions) (*CheckResult, error)
}

// CheckOptions holds runtime options for a single check run.
type CheckOptions struct {
	ChangeSetPath string
	Verbose       bool
}

// CheckResult describes a validated change set.
type CheckResult struct {
	Scenario     string
	Dependencies int
	Library      bool
}

// CheckCommand validates a change set without rendering anything, so
// contract violations surface before a pipeline tries to open a pull
// request.
type CheckCommand struct{}

// NewCheckCommand creates a new CheckCommand.
func NewCheckCommand() *CheckCommand {
	return &CheckCommand{}
}

// Execute validates and classifies one change set.
func (it *CheckCommand) Execute(_ context.Context, opts CheckOptions) (*CheckResult, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	set, err := entities.LoadChangeSet(opts.ChangeSetPath)
	if err != nil {
		return nil, err
	}

	if validateErr := services.ValidateChangeSet(set); validateErr != nil {
		return nil, validateErr
	}

	scenario, err := services.ClassifyChangeSet(set)
	if err != nil {
		return nil, err
	}

	return &CheckResult{
		Scenario:     scenario.String(),
		Dependencies: len(set.Dependencies),
		Library:      services.IsLibrary(set),
	}, nil
}
