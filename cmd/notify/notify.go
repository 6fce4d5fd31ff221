package main

import (
	"context"

	"github.com/tss-calculator/build-notifier/pkg/notifier/infrastructure/dependency"
)

func notify(ctx context.Context) error {
	dependencyContainer, err := dependency.ContainerFromContext(ctx)
	if err != nil {
		return err
	}
	return dependencyContainer.Notifier().Notify(ctx)
}
