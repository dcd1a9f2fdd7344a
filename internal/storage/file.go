package storage

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "sync"
)

// File persists all keys in a single JSON object on disk, the server-side
// analog of the browser's local storage.  Writes go to a temporary file
// that is renamed over the original, so a crash leaves either the old or the
// new content.
type File struct {
    mu   sync.Mutex
    path string
}

// NewFile returns a store backed by path.  The parent directory is created
// when missing; the file itself is created on first write.
func NewFile(path string) (*File, error) {
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
        return nil, fmt.Errorf("create storage dir: %w", err)
    }
    return &File{path: path}, nil
}

func (f *File) Get(_ context.Context, key string) ([]byte, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    docs, err := f.read()
    if err != nil {
        return nil, err
    }
    v, ok := docs[key]
    if !ok {
        return nil, ErrKeyNotFound
    }
    return v, nil
}

func (f *File) Set(_ context.Context, key string, value []byte) error {
    if !json.Valid(value) {
        return fmt.Errorf("storage file: value for %q is not valid JSON", key)
    }
    f.mu.Lock()
    defer f.mu.Unlock()
    docs, err := f.read()
    if err != nil {
        return err
    }
    docs[key] = json.RawMessage(append([]byte(nil), value...))
    out, err := json.MarshalIndent(docs, "", "  ")
    if err != nil {
        return fmt.Errorf("storage file: encode: %w", err)
    }
    tmp, err := os.CreateTemp(filepath.Dir(f.path), ".store-*.json")
    if err != nil {
        return fmt.Errorf("storage file: temp file: %w", err)
    }
    defer func() { _ = os.Remove(tmp.Name()) }()
    if _, err := tmp.Write(out); err != nil {
        _ = tmp.Close()
        return fmt.Errorf("storage file: write: %w", err)
    }
    if err := tmp.Close(); err != nil {
        return fmt.Errorf("storage file: close: %w", err)
    }
    if err := os.Rename(tmp.Name(), f.path); err != nil {
        return fmt.Errorf("storage file: rename: %w", err)
    }
    return nil
}

func (f *File) Close() error { return nil }

func (f *File) read() (map[string]json.RawMessage, error) {
    docs := map[string]json.RawMessage{}
    b, err := os.ReadFile(f.path)
    if errors.Is(err, os.ErrNotExist) {
        return docs, nil
    }
    if err != nil {
        return nil, fmt.Errorf("storage file: read: %w", err)
    }
    if len(b) == 0 {
        return docs, nil
    }
    if err := json.Unmarshal(b, &docs); err != nil {
        return nil, fmt.Errorf("storage file: decode %s: %w", f.path, err)
    }
    return docs, nil
}
