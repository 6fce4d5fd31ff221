package service

import (
	"context"
	"fmt"
	"time"

	applogger "github.com/tss-calculator/go-lib/pkg/application/logger"

	"github.com/tss-calculator/build-notifier/pkg/notifier/application/model"
)

type CIProvider interface {
	TriggerBuild(ctx context.Context, repository model.RepositorySlug, request model.BuildRequest) error
}

type Notifier interface {
	Notify(ctx context.Context) error
}

func NewNotifierService(
	trigger model.Trigger,
	logger applogger.Logger,
	provider CIProvider,
) Notifier {
	return &notifier{
		trigger:  trigger,
		logger:   logger,
		provider: provider,
	}
}

type notifier struct {
	trigger model.Trigger

	logger   applogger.Logger
	provider CIProvider
}

// Notify sends exactly one build request, any failure is returned as *model.NotificationFailure.
func (service notifier) Notify(ctx context.Context) error {
	service.logger.Info(fmt.Sprintf("trigger build of \"%v\" on branch \"%v\"...", service.trigger.Target, service.trigger.Branch))
	start := time.Now()
	defer func() {
		service.logger.Debug(fmt.Sprintf("done in %v", time.Since(start).String()))
	}()

	err := service.provider.TriggerBuild(ctx, service.trigger.Target, service.trigger.BuildRequest())
	if err != nil {
		return &model.NotificationFailure{Target: service.trigger.Target, Err: err}
	}
	service.logger.Info(fmt.Sprintf(
		"triggered build on behalf of \"%v\" at \"%v\"", service.trigger.Origin, service.trigger.Target,
	))
	return nil
}
