package jobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"shop/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRelayHandler struct{ mock.Mock }

func (m *mockRelayHandler) Handle(ctx context.Context, cmd commands.RelayNotificationsCommand) (int, error) {
	args := m.Called(ctx, cmd.BatchSize())
	return args.Int(0), args.Error(1)
}

func newTestLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func TestNotificationRelayJob_RunOnceDrainsFullBatches(t *testing.T) {
	handler := new(mockRelayHandler)
	mock.InOrder(
		handler.On("Handle", mock.Anything, 10).Return(10, nil).Once(),
		handler.On("Handle", mock.Anything, 10).Return(10, nil).Once(),
		handler.On("Handle", mock.Anything, 10).Return(3, nil).Once(),
	)
	logger, _ := newTestLogger()

	n := NewNotificationRelayJob(handler, "", 10, logger).RunOnce(t.Context())

	assert.Equal(t, 23, n)
	handler.AssertExpectations(t)
}

func TestNotificationRelayJob_RunOnceStopsAtBound(t *testing.T) {
	handler := new(mockRelayHandler)
	handler.On("Handle", mock.Anything, 1).Return(1, nil)
	logger, _ := newTestLogger()

	n := NewNotificationRelayJob(handler, "", 1, logger).RunOnce(t.Context())

	assert.Equal(t, maxBatchesPerRun, n)
	handler.AssertNumberOfCalls(t, "Handle", maxBatchesPerRun)
}

func TestNotificationRelayJob_RunOnceLogsFailure(t *testing.T) {
	handler := new(mockRelayHandler)
	handler.On("Handle", mock.Anything, 5).Return(0, errors.New("broker down")).Once()
	logger, logs := newTestLogger()

	n := NewNotificationRelayJob(handler, "", 5, logger).RunOnce(t.Context())

	assert.Zero(t, n)
	assert.Contains(t, logs.String(), "Notification relay job failed")
	assert.Contains(t, logs.String(), "broker down")
	assert.Contains(t, logs.String(), "component=notification_relay_job")
}

func TestNotificationRelayJob_RunOnceRejectsBadBatchSize(t *testing.T) {
	handler := new(mockRelayHandler)
	logger, logs := newTestLogger()

	n := NewNotificationRelayJob(handler, "", 0, logger).RunOnce(t.Context())

	assert.Zero(t, n)
	assert.Contains(t, logs.String(), "misconfigured")
	handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestNotificationRelayJob_InvalidSchedule(t *testing.T) {
	logger, _ := newTestLogger()
	job := NewNotificationRelayJob(new(mockRelayHandler), "every tuesday", 10, logger)

	require.Error(t, job.Start())
}

type fakeJob struct {
	name     string
	startErr error
	events   *[]string
}

func (f fakeJob) Start() error {
	*f.events = append(*f.events, "start "+f.name)
	return f.startErr
}

func (f fakeJob) Stop() {
	*f.events = append(*f.events, "stop "+f.name)
}

func TestJobManager_StartAndStopOrder(t *testing.T) {
	var events []string
	jm := NewJobManager()
	jm.Register("a", fakeJob{name: "a", events: &events})
	jm.Register("b", fakeJob{name: "b", events: &events})

	require.NoError(t, jm.StartAll())
	jm.StopAll()

	assert.Equal(t, []string{"start a", "start b", "stop b", "stop a"}, events)
}

func TestJobManager_FailedStartStopsStartedJobs(t *testing.T) {
	var events []string
	jm := NewJobManager()
	jm.Register("a", fakeJob{name: "a", events: &events})
	jm.Register("b", fakeJob{name: "b", startErr: errors.New("bad schedule"), events: &events})

	err := jm.StartAll()

	require.EqualError(t, err, "failed to start b job: bad schedule")
	assert.Equal(t, []string{"start a", "start b", "stop a"}, events)
}
