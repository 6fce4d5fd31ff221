package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/tss-calculator/build-notifier/pkg/notifier/infrastructure/config"
	"github.com/tss-calculator/build-notifier/pkg/notifier/infrastructure/dependency"
	"github.com/tss-calculator/build-notifier/pkg/notifier/infrastructure/logger"

	"github.com/urfave/cli/v2"
)

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	ctx = listenOSKillSignalsContext(ctx)
	mainLogger := logger.NewTextLogger(stdout, stderr)

	app := &cli.App{
		Name:      "notify",
		Usage:     "trigger the downstream Travis CI build",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Value: ".env",
			},
			&cli.StringFlag{
				Name: "api-url",
			},
		},
		// exit code is decided by run only
		ExitErrHandler: func(*cli.Context, error) {},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("env-file"))
			if err != nil {
				return err
			}
			mainLogger.SetDebug(cfg.Debug)
			if apiURL := c.String("api-url"); apiURL != "" {
				cfg.APIURL = apiURL
			}
			container := dependency.NewDependencyContainer(mainLogger, cfg)
			return notify(dependency.ContainerToContext(c.Context, container))
		},
	}
	err := app.RunContext(ctx, args)
	if err != nil {
		mainLogger.Error(err, "failed execute command "+strings.Join(args, " "))
		return 1
	}
	return 0
}

func listenOSKillSignalsContext(ctx context.Context) context.Context {
	var cancelFunc context.CancelFunc
	ctx, cancelFunc = context.WithCancel(ctx)
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT)
		defer signal.Stop(ch)
		select {
		case <-ch:
			cancelFunc()
		case <-ctx.Done():
			return
		}
	}()
	return ctx
}
