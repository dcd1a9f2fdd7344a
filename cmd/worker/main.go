package main

import (
    "context"
    "errors"
    "os"
    "os/signal"
    "syscall"

    "github.com/sirupsen/logrus"

    "github.com/iliyamo/table-reservation/internal/config"
    "github.com/iliyamo/table-reservation/internal/queue"
)

// The worker consumes reservation and order events and appends one line
// per event to EVENT_LOG_DIR/events.log.
func main() {
    cfg := config.Load() // same env as the server

    ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
    defer stop()

    sink := queue.EventLog{Dir: cfg.EventLogDir}
    logrus.WithFields(logrus.Fields{"queue": queue.EventsQueue, "dir": cfg.EventLogDir}).Info("event worker started")
    if err := queue.Consume(ctx, cfg.AMQPURL, sink.Handle); err != nil && !errors.Is(err, context.Canceled) {
        logrus.WithError(err).Fatal("event worker stopped")
    }
    logrus.Info("event worker stopped")
}
