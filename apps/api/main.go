package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/trezcool/masomo-admin/apps/api/echo"
	"github.com/trezcool/masomo-admin/core"
	"github.com/trezcool/masomo-admin/services/logger"
)

func main() {
	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile), conf)
	defer logger.Close()

	if err := run(conf, logger); err != nil {
		logger.Fatal("api server failed", err)
	}
}

func run(conf *core.Config, logger core.Logger) error {
	ctx := context.Background()

	c, err := newContainer(ctx, conf, logger)
	if err != nil {
		return err
	}
	return c.Invoke(func(app echoapi.Server, closer io.Closer) error {
		defer func() {
			if err := closer.Close(); err != nil {
				logger.Error("closing database", err)
			}
		}()
		return serve(ctx, conf, logger, app)
	})
}

func serve(ctx context.Context, conf *core.Config, logger core.Logger, app echoapi.Server) error {
	logger.Info("Application initializing : version " + conf.Build)
	defer logger.Info("Application stopped")

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("api server listening on " + conf.Server.Address)
		serverErrors <- app.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return errors.Wrap(err, "server error")
	case sig := <-shutdown:
		logger.Info("shutting down: " + sig.String())

		ctx, cancel := context.WithTimeout(ctx, conf.Server.ShutdownTimeout)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			return errors.Wrap(err, "could not stop server gracefully")
		}
	}
	return nil
}
