package cli

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestBackgroundTasksStopWaitsForWorkers(t *testing.T) {
	logger := logrus.New()
	logger.Out = io.Discard
	tasks := newBackgroundTasks(context.Background(), logger)

	var finished atomic.Int32
	for range 2 {
		tasks.Go("slow worker", func(ctx context.Context) error {
			<-ctx.Done()
			time.Sleep(50 * time.Millisecond)
			finished.Add(1)
			return nil
		})
	}
	tasks.Go("failing worker", func(context.Context) error {
		finished.Add(1)
		return errors.New("broker unreachable")
	})

	tasks.Stop()
	if got := finished.Load(); got != 3 {
		t.Fatalf("expected Stop to wait for all 3 workers, %d finished", got)
	}
}

func TestBackgroundTasksFollowParentContext(t *testing.T) {
	logger := logrus.New()
	logger.Out = io.Discard
	parent, cancel := context.WithCancel(context.Background())
	tasks := newBackgroundTasks(parent, logger)

	done := make(chan struct{})
	tasks.Go("watcher", func(ctx context.Context) error {
		<-ctx.Done()
		close(done)
		return nil
	})

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("expected worker to stop when the parent context is cancelled")
	}
	tasks.Stop()
}
