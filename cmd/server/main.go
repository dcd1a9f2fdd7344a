package main

import (
    "context"
    "errors"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"
    _ "time/tzdata"

    "github.com/labstack/echo/v4"
    echomw "github.com/labstack/echo/v4/middleware"
    "github.com/redis/go-redis/v9"
    "github.com/sirupsen/logrus"

    "github.com/iliyamo/table-reservation/internal/config"
    "github.com/iliyamo/table-reservation/internal/handler"
    "github.com/iliyamo/table-reservation/internal/middleware"
    "github.com/iliyamo/table-reservation/internal/queue"
    "github.com/iliyamo/table-reservation/internal/repository"
    "github.com/iliyamo/table-reservation/internal/router"
    "github.com/iliyamo/table-reservation/internal/service"
    "github.com/iliyamo/table-reservation/internal/storage"
)

func main() {
    logrus.SetFormatter(&logrus.JSONFormatter{})
    cfg := config.Load() // env + optional .env
    if cfg.Env == "dev" {
        logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
        logrus.SetLevel(logrus.DebugLevel)
    }

    ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
    defer stop()

    store, err := storage.Open(ctx, cfg.Storage) // driver from STORAGE_DRIVER
    if err != nil {
        logrus.WithError(err).Fatal("storage open failed")
    }
    defer store.Close()

    var events queue.Publisher = queue.Noop{}
    if cfg.EventsEnabled {
        pub := queue.NewAMQPPublisher(cfg.AMQPURL)
        pub.DialTimeout = cfg.AMQPDialTimeout
        events = pub
        logrus.WithField("queue", queue.EventsQueue).Info("publishing events")
    }

    reservations := repository.NewReservationRepo(store,
        repository.WithLocation(cfg.Location),
        repository.WithStatusWriteBack(cfg.StatusWriteBack),
    )
    orders := repository.NewOrderRepo(store)

    rs := service.NewReservationService(reservations, events, time.Now, cfg.Location, cfg.Limits)
    ordersSvc := service.NewOrderService(orders, events, time.Now)

    // Redis is optional here: without it the cache and the rate limiter
    // are pass-throughs.
    var rdb *redis.Client
    if c, err := config.NewRedisClient(); err != nil {
        logrus.WithError(err).Warn("redis unavailable; cache and rate limit disabled")
    } else {
        rdb = c
        defer rdb.Close()
    }

    e := echo.New()          // Echo instance
    e.HideBanner = true
    e.Use(echomw.Logger())   // request log
    e.Use(echomw.Recover())  // panics become 500s

    router.RegisterRoutes(e, router.Handlers{
        Catalog:      handler.NewCatalogHandler(cfg.Limits),
        Reservations: handler.NewReservationHandler(rs),
        Orders:       handler.NewOrderHandler(ordersSvc),
        Cache:        middleware.NewRedisCache(config.LoadCacheConfig(), rdb),
        RateLimit:    middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
    })

    addr := ":" + cfg.Port // listen address
    go func() {
        logrus.WithFields(logrus.Fields{"addr": addr, "env": cfg.Env, "driver": cfg.Storage.Driver}).Info("listening")
        if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
            logrus.WithError(err).Fatal("server failed")
        }
    }()

    <-ctx.Done()
    shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()
    if err := e.Shutdown(shutdownCtx); err != nil {
        logrus.WithError(err).Error("shutdown failed")
    }
}
