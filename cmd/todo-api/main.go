package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"todo-api/configs"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/resource"
)

func main() {
	env := configs.Load()
	resource.Init(env.PropertiesFilePath)
	msg.Init(env.MessagesFilePath)
	log.Init(env.ApplicationName, resource.GetString("app.log.level"))
	defer log.Sync()

	log.Info(msg.GetMessage("app.start"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := newApplication(ctx)
	if err != nil {
		log.Fatal(msg.GetMessage("app.init-failed", "application", err), zap.Error(err))
	}

	port := resource.GetStringOrDefault("app.server.port", "8080")
	serverErr := make(chan error, 1)
	go func() {
		if err := app.echo.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()
	log.Infow(msg.GetMessage("app.started", port),
		"port", port,
		"context_path", resource.GetString("app.server.context-path"),
	)

	select {
	case <-ctx.Done():
		log.Info(msg.GetMessage("app.stopping", "SIGTERM/SIGINT"))
	case err := <-serverErr:
		log.Error(msg.GetMessage("app.init-failed", "server", err), zap.Error(err))
	}

	shutdown(app)
	log.Info(msg.GetMessage("app.stopped"))
}

func shutdown(app *application) {
	timeout := resource.GetDuration("app.server.shutdown-timeout")
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := app.echo.Shutdown(ctx); err != nil {
		log.Errorw(msg.GetMessage("app.shutdown-failed", err), "timeout", timeout.String(), "error", err)
	}

	select {
	case <-app.scheduler.Stop().Done():
	case <-ctx.Done():
	}

	app.close()
}
