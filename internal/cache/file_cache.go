// Package cache stores live API responses on disk so repeated identical
// searches within the TTL skip the network.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const entryExt = ".json"

// FileCache is a directory of JSON entries, one file per key, each with its
// own expiry.
type FileCache struct {
	dir string
	ttl time.Duration
	now func() time.Time
}

type entry struct {
	Key       string    `json:"key"`
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewFileCache creates the cache directory if needed.
func NewFileCache(dir string, ttl time.Duration) (*FileCache, error) {
	if dir == "" {
		dir = DefaultCacheDir()
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, err
	}

	return &FileCache{
		dir: dir,
		ttl: ttl,
		now: time.Now,
	}, nil
}

// DefaultCacheDir returns $XDG_CACHE_HOME/flights, ~/.cache/flights, or a
// temp directory as a last resort.
func DefaultCacheDir() string {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return filepath.Join(xdgCache, "flights")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "flights-cache")
	}

	return filepath.Join(home, ".cache", "flights")
}

// Dir returns the cache directory
func (c *FileCache) Dir() string { return c.dir }

func (c *FileCache) path(key string) string {
	hash := sha256.Sum256([]byte(key))
	return filepath.Join(c.dir, hex.EncodeToString(hash[:])+entryExt)
}

// read loads an entry; corrupt and expired entries are removed and reported
// as missing.
func (c *FileCache) read(filename string) (entry, bool) {
	// #nosec G304 -- filename is a hash inside the cache directory
	data, err := os.ReadFile(filename)
	if err != nil {
		return entry{}, false
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		_ = os.Remove(filename)
		return entry{}, false
	}
	if !c.now().Before(e.ExpiresAt) {
		_ = os.Remove(filename)
		return entry{}, false
	}
	return e, true
}

// Get returns the cached value for key if present and not expired
func (c *FileCache) Get(key string) ([]byte, bool) {
	e, ok := c.read(c.path(key))
	if !ok || e.Key != key {
		return nil, false
	}
	return e.Data, true
}

// Set stores value under key until the TTL elapses
func (c *FileCache) Set(key string, value []byte) error {
	data, err := json.Marshal(entry{
		Key:       key,
		Data:      value,
		ExpiresAt: c.now().Add(c.ttl),
	})
	if err != nil {
		return err
	}
	return os.WriteFile(c.path(key), data, 0600)
}

// Delete removes key; deleting a missing key is not an error
func (c *FileCache) Delete(key string) error {
	err := os.Remove(c.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Clear removes all cache entries
func (c *FileCache) Clear() error {
	return c.sweep(func(string) bool { return true })
}

// Cleanup removes expired and corrupt entries
func (c *FileCache) Cleanup() error {
	return c.sweep(func(filename string) bool {
		_, ok := c.read(filename)
		return !ok
	})
}

func (c *FileCache) sweep(remove func(filename string) bool) error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}

	for _, de := range entries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), entryExt) {
			continue
		}
		filename := filepath.Join(c.dir, de.Name())
		if remove(filename) {
			_ = os.Remove(filename)
		}
	}
	return nil
}
