package storage

import (
    "context"
    "database/sql"
    "errors"
)

// MySQL keeps documents in the kv_documents table created by the
// database migrations.  Every Set is a single upsert statement.
type MySQL struct {
    db *sql.DB
}

// NewMySQL returns a store bound to db.
func NewMySQL(db *sql.DB) *MySQL { return &MySQL{db: db} }

func (m *MySQL) Get(ctx context.Context, key string) ([]byte, error) {
    const q = `SELECT doc_value FROM kv_documents WHERE doc_key = ?`
    var v string
    err := m.db.QueryRowContext(ctx, q, key).Scan(&v)
    if errors.Is(err, sql.ErrNoRows) {
        return nil, ErrKeyNotFound
    }
    if err != nil {
        return nil, err
    }
    return []byte(v), nil
}

func (m *MySQL) Set(ctx context.Context, key string, value []byte) error {
    const q = `INSERT INTO kv_documents (doc_key, doc_value) VALUES (?, ?)
               ON DUPLICATE KEY UPDATE doc_value = VALUES(doc_value)`
    _, err := m.db.ExecContext(ctx, q, key, string(value))
    return err
}

func (m *MySQL) Close() error { return m.db.Close() }
