package cache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kristiankunc/generate-gitignore/internal/logging/events"
)

const appDir = "generate-gitignore"

// ErrInvalidKey is returned for keys escaping the cache directory.
var ErrInvalidKey = errors.New("invalid cache key")

// Store keeps cached documents as files below Dir.
type Store struct {
	Dir string
	now func() time.Time
}

// DefaultDir returns the per-user cache directory for the application.
func DefaultDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("locate user cache dir: %w", err)
	}
	return filepath.Join(base, appDir), nil
}

// New returns a store rooted at dir, or at DefaultDir when dir is empty.
func New(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	return &Store{Dir: dir, now: time.Now}, nil
}

// Get returns the cached document for key. A document older than ttl counts
// as a miss; ttl <= 0 never expires.
func (s *Store) Get(key string, ttl time.Duration) ([]byte, bool, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, false, err
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		events.Cache.Miss(key, "absent")
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("stat cache entry: %w", err)
	}
	if ttl > 0 && s.clock().Sub(info.ModTime()) > ttl {
		events.Cache.Miss(key, "expired")
		return nil, false, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("read cache entry: %w", err)
	}
	if len(data) == 0 {
		events.Cache.Miss(key, "empty")
		return nil, false, nil
	}
	events.Cache.Hit(key)
	return data, true, nil
}

// Put stores data under key, replacing any previous document atomically.
func (s *Store) Put(key string, data []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("create cache entry: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write cache entry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close cache entry: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("commit cache entry: %w", err)
	}
	events.Cache.Store(key, len(data))
	return nil
}

// Clear removes every cached document.
func (s *Store) Clear() error {
	if err := os.RemoveAll(s.Dir); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	return nil
}

func (s *Store) path(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if key == "" || filepath.IsAbs(clean) || clean == "." || strings.HasPrefix(clean, "..") {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(s.Dir, clean), nil
}

func (s *Store) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}
