package main

import (
	"github.com/rios0rios0/msgforge/internal"
	"github.com/rios0rios0/msgforge/internal/infrastructure/controllers"
	"go.uber.org/dig"
)

func injectAppContext() *internal.AppInternal {
	container := dig.New()

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

func injectComposeController() *controllers.ComposeController {
	container := dig.New()

	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	var composeController *controllers.ComposeController
	if err := container.Invoke(func(cc *controllers.ComposeController) {
		composeController = cc
	}); err != nil {
		panic(err)
	}

	return composeController
}
