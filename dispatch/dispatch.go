package dispatch

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Dispatcher hands an emergency summary off to whoever needs to know about it.
type Dispatcher interface {
	Dispatch(ctx context.Context, summary string) error
}

// LogDispatcher only logs the summary. Nothing leaves the process.
type LogDispatcher struct {
	logg *zap.SugaredLogger

	mu   sync.Mutex
	sent int
	last string
}

func NewLogDispatcher(logg *zap.SugaredLogger) *LogDispatcher {
	return &LogDispatcher{logg: logg}
}

func (d *LogDispatcher) Dispatch(ctx context.Context, summary string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.sent++
	d.last = summary
	d.logg.Infow("Emergency alert dispatched", "count", d.sent, "summary", summary)

	return nil
}

// Sent returns how many summaries were dispatched & the most recent one.
func (d *LogDispatcher) Sent() (int, string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sent, d.last
}
