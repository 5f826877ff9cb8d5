package cli

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// backgroundTasks runs long-lived workers next to the server. Stop cancels
// them and blocks until every worker has returned.
type backgroundTasks struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	logger logrus.FieldLogger
}

func newBackgroundTasks(parent context.Context, logger logrus.FieldLogger) *backgroundTasks {
	ctx, cancel := context.WithCancel(parent)
	return &backgroundTasks{
		ctx:    ctx,
		cancel: cancel,
		logger: logger,
	}
}

func (tasks *backgroundTasks) Go(name string, run func(ctx context.Context) error) {
	tasks.wg.Add(1)
	go func() {
		defer tasks.wg.Done()
		if err := run(tasks.ctx); err != nil {
			tasks.logger.WithError(err).WithField("task", name).Error("background task stopped")
		}
	}()
}

func (tasks *backgroundTasks) Stop() {
	tasks.cancel()
	tasks.wg.Wait()
}
