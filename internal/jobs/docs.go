// Package jobs provides scheduled background tasks.
//
// Jobs use github.com/robfig/cron/v3 with seconds precision and run outside the
// status change path: nothing an order operation does waits for them.
//
// # Available Jobs
//
// NotificationRelayJob publishes pending outbox messages. The schedule and the
// batch size come from configuration (RELAY_SCHEDULE, RELAY_BATCH_SIZE).
// Overlapping ticks are skipped while a run is still in progress.
//
// # Usage
//
//	jobManager := jobs.NewJobManager()
//	jobManager.Register("notification relay", jobs.NewNotificationRelayJob(&relayHandler, schedule, 100, logger))
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed relay is logged and retried on the next tick. Messages stay pending
// until the publisher acknowledges them, so consumers must tolerate duplicates.
package jobs
