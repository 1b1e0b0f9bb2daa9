package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/mkarneev/homestock/internal/mock"
)

func TestStatusPollJob_StartAndStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncSvc := mock.NewMockSyncService(ctrl)

	called := make(chan struct{}, 1)
	syncSvc.EXPECT().CheckRemoteStatus(gomock.Any()).DoAndReturn(
		func(context.Context) error {
			select {
			case called <- struct{}{}:
			default:
			}
			return nil
		}).MinTimes(1)

	job := NewStatusPollJob(syncSvc)
	job.Start(context.Background(), 10*time.Millisecond)

	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("poller never ran")
	}

	job.Stop()
}

func TestStatusPollJob_StopWithoutStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := NewStatusPollJob(mock.NewMockSyncService(ctrl))

	// Must not panic or block.
	job.Stop()
	job.Stop()
}

func TestStatusPollJob_RestartReplacesJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncSvc := mock.NewMockSyncService(ctrl)
	syncSvc.EXPECT().CheckRemoteStatus(gomock.Any()).Return(nil).AnyTimes()

	job := NewStatusPollJob(syncSvc)
	job.Start(context.Background(), 10*time.Millisecond)
	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()
}

func TestStatusPollJob_ContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncSvc := mock.NewMockSyncService(ctrl)
	syncSvc.EXPECT().CheckRemoteStatus(gomock.Any()).Return(nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	job := NewStatusPollJob(syncSvc)
	job.Start(ctx, 10*time.Millisecond)

	cancel()
	time.Sleep(30 * time.Millisecond)

	// Stop after context cancellation must still return promptly.
	job.Stop()
}
