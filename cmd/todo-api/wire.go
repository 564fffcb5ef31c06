package main

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"

	"todo-api/internal/application/controller"
	"todo-api/internal/application/middleware"
	"todo-api/internal/application/schedule"
	"todo-api/internal/domain/gateway/cache"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/usecase/health"
	"todo-api/internal/domain/usecase/todo"
	awsinfra "todo-api/internal/infra/aws"
	"todo-api/internal/infra/database"
	gormdb "todo-api/internal/infra/database/gorm"
	"todo-api/internal/infra/database/sqldb"
	redisinfra "todo-api/internal/infra/redis"
	"todo-api/pkg/redis"
	"todo-api/pkg/resource"
)

type application struct {
	echo      *echo.Echo
	scheduler *schedule.TodoSummaryScheduler
	closers   []func() error
}

type storage struct {
	todos  db.TodoGateway
	health db.HealthDBGateway
	close  func() error
}

func newApplication(ctx context.Context) (app *application, err error) {
	app = &application{}
	defer func() {
		if err != nil {
			app.close()
		}
	}()

	// Init storage
	dbConfig := database.ConfigFromProperties()
	store, err := openStorage(dbConfig)
	if err != nil {
		return app, fmt.Errorf("database: %w", err)
	}
	app.closers = append(app.closers, store.close)
	todoGateway := store.todos

	// Init cache
	var (
		cacheHealth cache.HealthGateway
		locker      redis.Locker
	)
	if resource.GetBool("app.cache.enabled") {
		redisConfig := redisinfra.ConfigFromProperties()
		client, err := redisinfra.NewClient(ctx, redisConfig)
		if err != nil {
			return app, fmt.Errorf("cache: %w", err)
		}
		app.closers = append(app.closers, client.Close)

		todoCache := cache.NewRedisTodoCache(client, redisConfig.TTLFor(cache.TodoCacheName))
		todoGateway = db.NewCachedTodoGateway(todoGateway, todoCache)
		cacheHealth = cache.NewRedisHealthGateway(client)
		locker = client
	}

	// Init events
	var (
		eventGateway queue.TodoEventGateway = queue.NoopTodoEventGateway{}
		queueHealth  queue.HealthGateway
	)
	if resource.GetBool("app.todo.events.enabled") {
		cloudConfig := awsinfra.ConfigFromProperties()
		awsConfig, err := awsinfra.LoadConfig(ctx, cloudConfig)
		if err != nil {
			return app, fmt.Errorf("queue: %w", err)
		}
		sender := awsinfra.NewSQSSender(awsinfra.NewSqsClient(awsConfig, cloudConfig.Endpoint))
		queueGateway := queue.NewQueueTodoEventGateway(sender, resource.GetString("app.todo.events.queue"))
		eventGateway = queueGateway
		queueHealth = queueGateway
	}

	// Init UseCase
	healthUseCase := health.NewHealthUseCase(store.health, cacheHealth, queueHealth)
	todoUseCase := todo.NewTodoUseCase(todoGateway, eventGateway)

	// Init Controller
	app.echo = echo.New()
	app.echo.HideBanner = true
	app.echo.HidePort = true
	middleware.SetupRequestID(app.echo)
	middleware.SetupRecover(app.echo)
	middleware.SetupRequestLogger(app.echo)

	api := app.echo.Group(resource.GetStringOrDefault("app.server.context-path", "/api/v1"))
	controller.NewHealthController(api, healthUseCase).InitHealthRoutes()
	controller.NewTodoController(api, todoUseCase, resource.GetBool("app.todo.delete.strict-not-found")).InitTodoRoutes()

	// Init Schedule
	app.scheduler = schedule.NewTodoSummaryScheduler(todoUseCase, locker, resource.GetDuration("app.todo.summary.lock-ttl"))
	if err := app.scheduler.InitSummaryScheduleTasks(resource.GetString("app.todo.summary.cron")); err != nil {
		return app, fmt.Errorf("schedule: %w", err)
	}

	return app, nil
}

func openStorage(config database.Config) (*storage, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if config.Client == database.ClientGorm {
		gdb, err := gormdb.Open(config)
		if err != nil {
			return nil, err
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, err
		}
		return &storage{
			todos:  db.NewGormTodoGateway(gdb),
			health: db.NewGormHealthDBGateway(gdb),
			close:  sqlDB.Close,
		}, nil
	}

	sqlDB, err := sqldb.Open(config)
	if err != nil {
		return nil, err
	}
	return &storage{
		todos:  db.NewSQLTodoGateway(sqlDB, config.Driver),
		health: db.NewSQLHealthDBGateway(sqlDB),
		close:  sqlDB.Close,
	}, nil
}

// close releases resources in reverse order of acquisition
func (app *application) close() {
	for i := len(app.closers) - 1; i >= 0; i-- {
		_ = app.closers[i]()
	}
	app.closers = nil
}
