package config

import (
    "os"
    "strconv"
    "strings"
    "time"
)

// Helper functions shared by the loaders in this package.  Each returns
// the default when the variable is unset or cannot be parsed.

// getenv returns the variable or def when unset
func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

// envBool accepts 1/0, true/false, yes/no, on/off
func envBool(k string, d bool) bool {
    v := os.Getenv(k)
    if v == "" { return d }
    switch strings.ToLower(v) {
    case "1", "true", "yes", "on": return true
    case "0", "false", "no", "off": return false
    }
    return d
}

func envInt(k string, d int) int {
    v := os.Getenv(k); if v == "" { return d }
    if n, err := strconv.Atoi(v); err == nil { return n }
    return d
}

// envDur parses Go durations such as "5m" or "250ms"
func envDur(k string, d time.Duration) time.Duration {
    v := os.Getenv(k); if v == "" { return d }
    if dur, err := time.ParseDuration(v); err == nil { return dur }
    return d
}
