package database

import (
    "testing"

    "github.com/stretchr/testify/assert"

    "github.com/iliyamo/table-reservation/internal/config"
)

func TestDSN(t *testing.T) {
    cfg := config.StorageConfig{DBUser: "app", DBHost: "db", DBPort: "3306", DBName: "reservas"}
    assert.Equal(t, "app@tcp(db:3306)/reservas?charset=utf8mb4&parseTime=true&loc=UTC", DSN(cfg))

    cfg.DBPass = "secret"
    assert.Equal(t, "app:secret@tcp(db:3306)/reservas?charset=utf8mb4&parseTime=true&loc=UTC", DSN(cfg))
}

func TestMigrationsEmbedded(t *testing.T) {
    entries, err := migrations.ReadDir("migrations")
    assert.NoError(t, err)
    var names []string
    for _, e := range entries {
        names = append(names, e.Name())
    }
    assert.Contains(t, names, "000001_kv_documents.up.sql")
    assert.Contains(t, names, "000001_kv_documents.down.sql")

    cfg := config.StorageConfig{DBUser: "app", DBHost: "db", DBPort: "3306", DBName: "reservas"}
    assert.Equal(t, "mysql://app@tcp(db:3306)/reservas?charset=utf8mb4&parseTime=true&loc=UTC", MigrationURL(cfg))
}
