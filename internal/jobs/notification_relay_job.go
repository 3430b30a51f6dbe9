package jobs

import (
	"context"
	"log/slog"

	"shop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultRelaySchedule runs the relay every five seconds.
const DefaultRelaySchedule = "*/5 * * * * *"

// maxBatchesPerRun bounds one run so a large backlog cannot starve the next tick.
const maxBatchesPerRun = 20

type relayHandler interface {
	Handle(ctx context.Context, cmd commands.RelayNotificationsCommand) (int, error)
}

// NotificationRelayJob moves pending outbox messages to the notification
// publisher on a cron schedule with seconds precision.
type NotificationRelayJob struct {
	handler   relayHandler
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewNotificationRelayJob(handler relayHandler, schedule string, batchSize int, logger *slog.Logger) *NotificationRelayJob {
	if schedule == "" {
		schedule = DefaultRelaySchedule
	}
	return &NotificationRelayJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "notification_relay_job"),
	}
}

func (j *NotificationRelayJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification relay job started", "schedule", j.schedule)
	return nil
}

// RunOnce relays batches until the outbox has fewer pending messages than one
// batch. It returns the number of messages delivered.
func (j *NotificationRelayJob) RunOnce(ctx context.Context) int {
	cmd, err := commands.NewRelayNotificationsCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification relay job misconfigured", "error", err)
		return 0
	}

	total := 0
	for range maxBatchesPerRun {
		n, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Notification relay job failed", "error", err, "delivered", total)
			return total
		}
		total += n
		if n < j.batchSize {
			break
		}
	}

	if total > 0 {
		j.logger.DebugContext(ctx, "Notifications relayed", "count", total)
	}
	return total
}

// Stop waits for a running relay to finish.
func (j *NotificationRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Notification relay job stopped")
}
