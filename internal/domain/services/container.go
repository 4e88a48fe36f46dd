package services

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all service providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	return nil // MessageComposer is built per change set by the commands layer
}
