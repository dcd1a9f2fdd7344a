package database

import (
    "context"
    "database/sql"
    "fmt"
    "time"

    _ "github.com/go-sql-driver/mysql"

    "github.com/iliyamo/table-reservation/internal/config"
)

// DSN builds the MySQL data source name for cfg.
func DSN(cfg config.StorageConfig) string {
    auth := cfg.DBUser
    if cfg.DBPass != "" {
        auth = fmt.Sprintf("%s:%s", cfg.DBUser, cfg.DBPass)
    }
    // parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
    return fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
        auth, cfg.DBHost, cfg.DBPort, cfg.DBName)
}

// Open connects to MySQL and verifies the connection.  The document store
// issues one statement per request, so the pool stays small.
func Open(ctx context.Context, cfg config.StorageConfig) (*sql.DB, error) {
    db, err := sql.Open("mysql", DSN(cfg))
    if err != nil {
        return nil, err
    }

    // Pool settings
    db.SetMaxOpenConns(10)
    db.SetMaxIdleConns(5)
    db.SetConnMaxLifetime(30 * time.Minute)

    // Ping with timeout
    ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
    defer cancel()
    if err := db.PingContext(ctx); err != nil {
        _ = db.Close()
        return nil, fmt.Errorf("mysql ping: %w", err)
    }
    return db, nil
}
