package database

import (
    "embed"
    "errors"
    "fmt"

    "github.com/golang-migrate/migrate/v4"
    _ "github.com/golang-migrate/migrate/v4/database/mysql"
    "github.com/golang-migrate/migrate/v4/source/iofs"
    "github.com/sirupsen/logrus"

    "github.com/iliyamo/table-reservation/internal/config"
)

//go:embed migrations/*.sql
var migrations embed.FS

// MigrationURL is the golang-migrate database URL for cfg.
func MigrationURL(cfg config.StorageConfig) string { return "mysql://" + DSN(cfg) }

// Migrate applies the embedded schema migrations.  It uses its own
// connection, closed before returning.
func Migrate(cfg config.StorageConfig) error {
    src, err := iofs.New(migrations, "migrations")
    if err != nil {
        return fmt.Errorf("migrations source: %w", err)
    }
    m, err := migrate.NewWithSourceInstance("iofs", src, MigrationURL(cfg))
    if err != nil {
        return fmt.Errorf("migrate init: %w", err)
    }
    defer func() {
        if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
            logrus.WithFields(logrus.Fields{"source": srcErr, "db": dbErr}).Warn("migrate: close failed")
        }
    }()
    if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
        return fmt.Errorf("migrate up: %w", err)
    }
    v, _, _ := m.Version()
    logrus.WithField("version", v).Info("migrate: schema up to date")
    return nil
}
