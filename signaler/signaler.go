package signaler

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/thrasher-corp/eventbacktester/log"
)

// WaitForInterrupt returns a channel which receives interrupt and terminate
// signals sent to the process
func WaitForInterrupt() <-chan os.Signal {
	return notify()
}

func notify() chan os.Signal {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	return c
}

// WithInterrupt returns a context that is cancelled the first time the
// process is interrupted, allowing a run to stop between events
func WithInterrupt(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	sigC := notify()
	go func() {
		defer signal.Stop(sigC)
		select {
		case sig := <-sigC:
			log.Warnf(log.Global, "received %v, cancelling backtest", sig)
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}
