package internal

import "github.com/rios0rios0/msgforge/internal/domain/entities"

// AppInternal aggregates the application's controllers.
type AppInternal struct {
	controllers *[]entities.Controller
}

// NewAppInternal creates the application aggregate from the controller slice.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: controllers}
}

// GetControllers returns all registered controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return *it.controllers
}
