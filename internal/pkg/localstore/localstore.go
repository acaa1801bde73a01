// Package localstore is a file-backed JSON snapshot store. It exists purely
// to shorten cold-start latency and is never a source of truth once a remote
// pull succeeds, so write failures are logged and swallowed.
package localstore

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Snapshot keys. Session-scoped variants append a principal suffix.
const (
	KeyUser        = "qs_user"
	KeyOrders      = "qs_cache_orders"
	KeyRestaurants = "qs_cache_restaurants"
	KeyLocations   = "qs_cache_locations"
	KeyDismissed   = "qs_dismissed_orders"
)

// SessionKey derives a per-principal variant of a snapshot key.
func SessionKey(key, sessionKey string) string {
	return key + "." + sessionKey
}

// Store writes JSON snapshots under a single directory, one file per key.
type Store struct {
	dir    string
	logger *slog.Logger
	mu     sync.Mutex
}

// New creates the snapshot directory if needed and returns a store.
func New(dir string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Save serializes v under key. Failures are logged, never surfaced.
func (s *Store) Save(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Warn("snapshot marshal failed", slog.String("key", key), slog.String("error", err.Error()))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		s.logger.Warn("snapshot write failed", slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		s.logger.Warn("snapshot rename failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// Load reads the snapshot for key into dest and reports whether it existed
// and parsed. A missing file is not an error.
func (s *Store) Load(key string, dest any) bool {
	s.mu.Lock()
	data, err := os.ReadFile(s.path(key))
	s.mu.Unlock()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("snapshot read failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		s.logger.Warn("snapshot corrupt, ignoring", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}
	return true
}

// Delete removes the snapshot for key, if present.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.logger.Warn("snapshot delete failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

func (s *Store) path(key string) string {
	// Keys come from the fixed constant set plus session suffixes, but
	// sanitize anyway so a key can never escape the snapshot directory.
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '_' || r == '-' || r == '.':
			return r
		default:
			return '_'
		}
	}, key)
	return filepath.Join(s.dir, safe+".json")
}
