package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const cacheFileName = "response_cache.json"

// Result is a previously computed summarization outcome for one article URL.
type Result struct {
	Summary   string `json:"summary"`
	Sentiment string `json:"sentiment"`
}

// Stats counts cache lookups over the lifetime of the process. The counters
// are never persisted.
type Stats struct {
	Hits   int
	Misses int
}

// HitRate returns the hit percentage, 0 when no lookups have happened.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// ResponseCache is a file-backed cache of LLM results keyed by article URL.
// Every write flushes the full cache to disk. Not safe for concurrent use;
// one process owns the backing file.
type ResponseCache struct {
	dir     string
	path    string
	entries map[string]Result
	stats   Stats
}

// Open loads the cache backed by <dir>/response_cache.json. Recovery policy
// for the backing file: missing, unreadable or unparseable content yields an
// empty cache, never an error.
func Open(dir string) *ResponseCache {
	c := &ResponseCache{
		dir:  dir,
		path: filepath.Join(dir, cacheFileName),
	}
	c.entries = c.load()
	return c
}

func (c *ResponseCache) load() map[string]Result {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return map[string]Result{}
	}

	var entries map[string]Result
	if err := json.Unmarshal(data, &entries); err != nil || entries == nil {
		return map[string]Result{}
	}
	return entries
}

func (c *ResponseCache) save() error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("creating cache dir: %w", err)
	}

	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding cache: %w", err)
	}

	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("writing cache file: %w", err)
	}
	return nil
}

// Get returns the stored result for url, recording a hit or a miss.
func (c *ResponseCache) Get(url string) (Result, bool) {
	result, ok := c.entries[url]
	if !ok {
		c.stats.Misses++
		return Result{}, false
	}
	c.stats.Hits++
	return result, true
}

// Set stores result under url and persists the whole cache, overwriting any
// prior value for the same key.
func (c *ResponseCache) Set(url string, result Result) error {
	c.entries[url] = result
	return c.save()
}

// Clear empties the cache and persists the empty state.
func (c *ResponseCache) Clear() error {
	c.entries = map[string]Result{}
	return c.save()
}

// Stats returns the lookup counters accumulated since Open.
func (c *ResponseCache) Stats() Stats {
	return c.stats
}
