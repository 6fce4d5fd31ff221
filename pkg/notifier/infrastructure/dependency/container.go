package dependency

import (
	"context"
	"errors"

	applogger "github.com/tss-calculator/go-lib/pkg/application/logger"

	"github.com/tss-calculator/build-notifier/pkg/notifier/application/model"
	"github.com/tss-calculator/build-notifier/pkg/notifier/application/service"
	"github.com/tss-calculator/build-notifier/pkg/notifier/infrastructure/config"
	"github.com/tss-calculator/build-notifier/pkg/notifier/infrastructure/travis"
)

type containerKey struct{}

type Container interface {
	Notifier() service.Notifier
	CIProvider() service.CIProvider
}

func NewDependencyContainer(
	logger applogger.Logger,
	cfg config.Config,
) Container {
	provider := travis.NewClient(cfg.APIURL, cfg.APIToken, logger)
	notifierService := service.NewNotifierService(model.DefaultTrigger(), logger, provider)

	return &container{
		notifier: notifierService,
		provider: provider,
	}
}

type container struct {
	notifier service.Notifier
	provider service.CIProvider
}

func (c *container) Notifier() service.Notifier {
	return c.notifier
}

func (c *container) CIProvider() service.CIProvider {
	return c.provider
}

func ContainerFromContext(ctx context.Context) (Container, error) {
	v := ctx.Value(containerKey{})
	if c, ok := v.(Container); ok {
		return c, nil
	}
	return nil, errors.New("dependency container not found")
}

func ContainerToContext(ctx context.Context, c Container) context.Context {
	return context.WithValue(ctx, containerKey{}, c)
}
