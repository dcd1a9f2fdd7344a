package storage

import (
    "context"
    "fmt"

    "github.com/sirupsen/logrus"

    "github.com/iliyamo/table-reservation/internal/config"
    "github.com/iliyamo/table-reservation/internal/database"
)

// Open returns the store selected by cfg.Driver.
func Open(ctx context.Context, cfg config.StorageConfig) (Store, error) {
    log := logrus.WithField("driver", cfg.Driver)
    switch cfg.Driver {
    case config.DriverMemory:
        log.Warn("storage: in-memory driver, data is lost on restart")
        return NewMemory(), nil
    case config.DriverFile, "":
        log.WithField("path", cfg.FilePath).Info("storage: file driver")
        return NewFile(cfg.FilePath)
    case config.DriverRedis:
        rdb, err := config.NewRedisClient()
        if err != nil {
            return nil, err
        }
        log.WithField("prefix", cfg.RedisPrefix).Info("storage: redis driver")
        return NewRedis(rdb, cfg.RedisPrefix), nil
    case config.DriverMySQL:
        if err := database.Migrate(cfg); err != nil {
            return nil, err
        }
        db, err := database.Open(ctx, cfg)
        if err != nil {
            return nil, err
        }
        log.WithField("host", cfg.DBHost).Info("storage: mysql driver")
        return NewMySQL(db), nil
    }
    return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}
