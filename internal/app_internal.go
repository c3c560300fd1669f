package internal

import "github.com/rios0rios0/depstatus/internal/domain/entities"

// AppInternal holds everything the entry point needs after dependency injection.
type AppInternal struct {
	controllers []entities.Controller
}

// NewAppInternal creates the AppInternal from the registered controllers.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: *controllers}
}

// GetControllers returns the controllers to expose as subcommands.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
