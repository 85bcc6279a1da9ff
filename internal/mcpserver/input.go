package mcpserver

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/erraggy/rad2oas/rad"
)

// sourceInput represents the two ways a document can be provided to a tool.
// Exactly one of File or Content must be set.
type sourceInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to the document on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline document content"`
}

// check enforces the exactly-one rule and the inline size limit.
func (s sourceInput) check() error {
	if (s.File == "") == (s.Content == "") {
		return fmt.Errorf("exactly one of file or content must be provided")
	}
	if s.Content != "" && int64(len(s.Content)) > cfg.MaxInlineSize {
		return fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set RAD2OAS_MAX_INLINE_SIZE to increase",
			len(s.Content), cfg.MaxInlineSize)
	}
	return nil
}

// cacheEntry holds a cached parse result with LRU ordering and TTL expiry.
type cacheEntry struct {
	result    *rad.ParseResult
	insertAt  time.Time
	expiresAt time.Time
}

// radCacheStore caches parsed RAD documents for the lifetime of the server.
// File inputs are keyed by (absolutePath, modTime); content inputs by a
// SHA-256 hash. Expired entries are removed when they are next looked up.
type radCacheStore struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
	maxSize int
}

var radCache = &radCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns a cached result or nil.
func (c *radCacheStore) get(key string) *rad.ParseResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil
	}
	if time.Now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil
	}
	e.insertAt = time.Now()
	return e.result
}

// put stores a result, evicting the least recently used entry if at capacity.
func (c *radCacheStore) put(key string, result *rad.ParseResult, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{result: result, insertAt: now, expiresAt: now.Add(ttl)}

	if _, ok := c.entries[key]; ok {
		c.entries[key] = entry
		return
	}

	if len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldestTime time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.insertAt.Before(oldestTime) {
				oldestKey = k
				oldestTime = e.insertAt
			}
		}
		delete(c.entries, oldestKey)
	}

	c.entries[key] = entry
}

// reset clears all cached entries. Used in tests.
func (c *radCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// size returns the number of cached entries.
func (c *radCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// cacheKey returns the cache key for s, or "" when s cannot be cached.
func (s sourceInput) cacheKey() string {
	switch {
	case s.File != "":
		absPath, err := filepath.Abs(s.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano())
	case s.Content != "":
		h := sha256.Sum256([]byte(s.Content))
		return "content:" + hex.EncodeToString(h[:])
	default:
		return ""
	}
}

// resolveRAD parses the RAD document from whichever input was provided,
// consulting the cache when it is enabled.
func (s sourceInput) resolveRAD() (*rad.ParseResult, error) {
	if err := s.check(); err != nil {
		return nil, err
	}

	var key string
	if cfg.CacheEnabled {
		key = s.cacheKey()
	}
	if key != "" {
		if cached := radCache.get(key); cached != nil {
			return cached, nil
		}
	}

	var result *rad.ParseResult
	var err error
	if s.File != "" {
		result, err = rad.ParseWithOptions(rad.WithFilePath(s.File))
	} else {
		result, err = rad.ParseWithOptions(
			rad.WithBytes([]byte(s.Content)),
			rad.WithSourceName("<content>"),
		)
	}
	if err != nil {
		return nil, err
	}

	if key != "" {
		radCache.put(key, result, cfg.CacheTTL)
	}
	return result, nil
}
