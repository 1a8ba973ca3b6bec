package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/golang/glog"
)

var shutdownSignals = []os.Signal{os.Interrupt}

// setupSignalContext returns a context which is canceled upon receiving the
// interrupt signal (Ctrl-C), if a second interrupt signal is received, the
// program is forced to terminate.
func setupSignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	c := make(chan os.Signal, 2)
	signal.Notify(c, shutdownSignals...)
	go func() {
		select {
		case <-c:
			glog.Info("interrupt received, stopping")
			cancel()
		case <-ctx.Done():
			signal.Stop(c)
			return
		}
		<-c
		os.Exit(1)
	}()

	return ctx, cancel
}
