package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"todo-api/internal/domain/usecase/todo"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/redis"
)

const (
	summaryLockKey    = "todo_summary_scheduler"
	defaultSummaryTTL = 30 * time.Second
)

// TodoSummaryScheduler periodically logs how many todo items are completed and pending.
// When a locker is set, only the instance holding the lock runs a given tick.
type TodoSummaryScheduler struct {
	cron        *cron.Cron
	useCase     todo.UseCase
	locker      redis.Locker
	lockOptions *redis.LockOptions
	timeout     time.Duration
}

// NewTodoSummaryScheduler builds the scheduler. lockTTL bounds both the lock and a single run; zero means 30s.
func NewTodoSummaryScheduler(useCase todo.UseCase, locker redis.Locker, lockTTL time.Duration) *TodoSummaryScheduler {
	if lockTTL <= 0 {
		lockTTL = defaultSummaryTTL
	}
	return &TodoSummaryScheduler{
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		useCase: useCase,
		locker:  locker,
		lockOptions: redis.NewLockOptions().
			WithTTL(lockTTL).
			WithMaxRetries(0).
			WithLockNamespace("schedules"),
		timeout: lockTTL,
	}
}

// InitSummaryScheduleTasks registers the summary job and starts the cron. An empty expression disables it.
func (scheduler *TodoSummaryScheduler) InitSummaryScheduleTasks(cronExpression string) error {
	if cronExpression == "" {
		log.Info(msg.GetMessage("todo.summary.disabled"))
		return nil
	}

	if _, err := scheduler.cron.AddFunc(cronExpression, scheduler.SummarizeTodoItems); err != nil {
		return err
	}

	scheduler.cron.Start()
	log.Info(msg.GetMessage("todo.summary.started", cronExpression))
	return nil
}

// Stop halts the cron; the returned context is done once a running job finishes
func (scheduler *TodoSummaryScheduler) Stop() context.Context {
	return scheduler.cron.Stop()
}

func (scheduler *TodoSummaryScheduler) SummarizeTodoItems() {
	ctx, cancel := context.WithTimeout(context.Background(), scheduler.timeout)
	defer cancel()

	ran, err := scheduler.runSummary(ctx)
	switch {
	case !ran && errors.Is(err, redis.ErrLockNotAcquired):
		log.Debug(msg.GetMessage("todo.summary.skipped"))
	case !ran && err != nil:
		log.Error(msg.GetMessage("todo.summary.lock-failed"), zap.Error(err))
	case err != nil:
		log.Warn(msg.GetMessage("todo.summary.release-failed"), zap.Error(err))
	}
}

// runSummary reports whether this instance ran the summary and any lock acquire or release error
func (scheduler *TodoSummaryScheduler) runSummary(ctx context.Context) (bool, error) {
	if scheduler.locker == nil {
		scheduler.summarize(ctx)
		return true, nil
	}

	ran := false
	err := redis.LockWithFunc(ctx, scheduler.locker, summaryLockKey, scheduler.lockOptions, func(ctx context.Context) error {
		ran = true
		scheduler.summarize(ctx)
		return nil
	})
	return ran, err
}

func (scheduler *TodoSummaryScheduler) summarize(ctx context.Context) {
	summary, err := scheduler.useCase.SummarizeTodoItems(ctx)
	if err != nil {
		log.Error(msg.GetMessage("todo.summary.failed"), zap.Error(err))
		return
	}

	log.Info(msg.GetMessage("todo.summary.result", summary.Total, summary.Completed, summary.Pending),
		zap.Int("total", summary.Total),
		zap.Int("completed", summary.Completed),
		zap.Int("pending", summary.Pending),
	)
}
