package internal

import (
	"github.com/rios0rios0/depstatus/internal/domain/commands"
	"github.com/rios0rios0/depstatus/internal/domain/entities"
	"github.com/rios0rios0/depstatus/internal/infrastructure/controllers"
	"github.com/rios0rios0/depstatus/internal/infrastructure/repositories"
	"go.uber.org/dig"
)

// RegisterProviders wires every layer bottom-up and then the application itself.
// The caller must provide an entities.ConfigPath.
func RegisterProviders(container *dig.Container) error {
	layers := []func(*dig.Container) error{
		repositories.RegisterProviders,
		entities.RegisterProviders,
		commands.RegisterProviders,
		controllers.RegisterProviders,
	}
	for _, register := range layers {
		if err := register(container); err != nil {
			return err
		}
	}

	return container.Provide(NewAppInternal)
}
