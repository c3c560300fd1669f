package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewStatusCommand); err != nil {
		return err
	}
	if err := container.Provide(NewBadgeCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *StatusCommand) Status {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *BadgeCommand) Badge {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
