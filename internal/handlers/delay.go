package handlers

import (
	"context"
	"time"
)

// sleepFor simulates processing latency before a response is written. It
// returns early when the client goes away; results are never affected.
func sleepFor(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
