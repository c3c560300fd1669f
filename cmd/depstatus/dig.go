package main

import (
	"github.com/rios0rios0/depstatus/internal"
	"github.com/rios0rios0/depstatus/internal/domain/entities"
	"go.uber.org/dig"
)

func injectAppContext(configPath string) *internal.AppInternal {
	container := dig.New()

	if err := container.Provide(func() entities.ConfigPath {
		return entities.ConfigPath(configPath)
	}); err != nil {
		panic(err)
	}

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	// Invoke to get AppInternal
	var appInternal *internal.AppInternal
	if err := container.Invoke(func(ai *internal.AppInternal) {
		appInternal = ai
	}); err != nil {
		panic(err)
	}

	return appInternal
}
