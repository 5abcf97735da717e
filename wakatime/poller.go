package wakatime

import (
	"context"
	"time"
)

// StartPolling performs an immediate fetch-and-deliver, then repeats every
// interval until the returned stop function is called. Cycles are
// serialized: the next fetch is only scheduled after the previous delivery
// returns, so deliveries never overlap. Stopping does not abort an in-flight
// fetch; its result is discarded instead of delivered, and the timer is
// released on every exit path.
func (c *Client) StartPolling(callback func(Snapshot), interval time.Duration) (stop func()) {
	ctx, cancel := context.WithCancel(context.Background())
	go c.pollLoop(ctx, callback, interval)
	return cancel
}

func (c *Client) pollLoop(ctx context.Context, callback func(Snapshot), interval time.Duration) {
	for {
		snap := c.FetchSnapshot(ctx)
		if ctx.Err() != nil {
			return
		}
		c.deliver(callback, snap)

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

// deliver isolates subscriber panics so one bad callback cannot kill the
// polling loop.
func (c *Client) deliver(callback func(Snapshot), snap Snapshot) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error().Interface("panic", r).Msg("Activity subscriber panicked")
		}
	}()
	callback(snap)
}
