package controllers

import (
	"github.com/rios0rios0/msgforge/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewComposeController); err != nil {
		return err
	}
	if err := container.Provide(NewCheckController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	composeController *ComposeController,
	checkController *CheckController,
) *[]entities.Controller {
	return &[]entities.Controller{
		composeController,
		checkController,
	}
}
