package travis

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	applogger "github.com/tss-calculator/go-lib/pkg/application/logger"

	"github.com/tss-calculator/build-notifier/pkg/notifier/application/model"
	"github.com/tss-calculator/build-notifier/pkg/notifier/application/service"
)

const (
	apiVersion   = "3"
	requestsPath = "/repo/{slug}/requests"
)

type requestBody struct {
	Request buildRequest `json:"request"`
}

type buildRequest struct {
	Message string `json:"message"`
	Branch  string `json:"branch"`
}

func NewClient(apiURL, token string, logger applogger.Logger) service.CIProvider {
	return &client{
		logger: logger,
		client: resty.New().
			SetLogger(restyLogger{logger: logger}).
			SetBaseURL(apiURL).
			SetHeaders(map[string]string{
				"Content-Type":       "application/json",
				"Accept":             "application/json",
				"Travis-API-Version": apiVersion,
				// sent even when token is empty, the API is the one to reject it
				"Authorization": "token " + token,
			}),
	}
}

type client struct {
	logger applogger.Logger
	client *resty.Client
}

// TriggerBuild creates a build request on the target repository.
// The slug is escaped as a single path segment, owner%2Frepo.
func (c *client) TriggerBuild(ctx context.Context, repository model.RepositorySlug, request model.BuildRequest) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("slug", repository).
		SetBody(requestBody{
			Request: buildRequest{
				Message: request.Message,
				Branch:  request.Branch,
			},
		}).
		Post(requestsPath)
	if resp != nil && resp.Request != nil {
		c.logger.WithFields(applogger.Fields{
			"method": resp.Request.Method,
			"url":    resp.Request.URL,
		}).Debug("build request sent")
	}
	if err != nil {
		return errors.Wrapf(err, "failed to send build request for %v", repository)
	}
	if !resp.IsSuccess() {
		return errors.Errorf("travis responded with HTTP %d: %v", resp.StatusCode(), resp.String())
	}
	return nil
}

// restyLogger keeps resty's own messages at debug level, failures reach
// the caller as the returned error.
type restyLogger struct {
	logger applogger.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, v...))
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, v...))
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, v...))
}
