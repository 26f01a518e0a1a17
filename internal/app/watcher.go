package app

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/five82/docshell/internal/watch"
)

const watchDebounce = 200 * time.Millisecond

// StartWatcher launches a background goroutine reporting changed documents
// under root. It returns immediately; the channel closes when ctx is done.
// A watcher that cannot start is logged and yields nil, which disables
// live reload without failing startup.
func StartWatcher(ctx context.Context, root string, logger logrus.FieldLogger) <-chan string {
	w, err := watch.New(root, watchDebounce, logger)
	if err != nil {
		logger.WithError(err).WithField("root", root).Warn("live reload disabled")
		return nil
	}
	go w.Run(ctx)
	logger.WithField("root", root).Debug("watching docs for changes")
	return w.Changes()
}
