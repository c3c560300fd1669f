package entities

import (
	"go.uber.org/dig"
)

// ConfigPath is the --config flag value; empty means auto-detect.
type ConfigPath string

// RegisterProviders registers all entity providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Settings are loaded once and shared by every layer
	return container.Provide(func(path ConfigPath) (*Settings, error) {
		return NewSettings(string(path))
	})
}
