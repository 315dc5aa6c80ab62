package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestGet_MissReturnsAbsent(t *testing.T) {
	c := Open(t.TempDir())

	_, ok := c.Get("https://example.com/article")

	assert.Equal(t, false, ok)
	assert.Equal(t, 0, c.Stats().Hits)
	assert.Equal(t, 1, c.Stats().Misses)
}

func TestSetAndGet(t *testing.T) {
	c := Open(t.TempDir())
	result := Result{Summary: "Test summary", Sentiment: "positive"}

	err := c.Set("https://example.com/article", result)
	assert.Equal(t, nil, err)

	got, ok := c.Get("https://example.com/article")
	assert.Equal(t, true, ok)
	assert.Equal(t, result, got)
	assert.Equal(t, 1, c.Stats().Hits)
}

func TestSet_OverwritesPriorValue(t *testing.T) {
	c := Open(t.TempDir())

	c.Set("https://example.com/article", Result{Summary: "first"})
	c.Set("https://example.com/article", Result{Summary: "second"})

	got, ok := c.Get("https://example.com/article")
	assert.Equal(t, true, ok)
	assert.Equal(t, "second", got.Summary)
}

func TestPersistenceAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	c1 := Open(dir)
	err := c1.Set("https://example.com/article", Result{Summary: "cached"})
	assert.Equal(t, nil, err)

	c2 := Open(dir)
	got, ok := c2.Get("https://example.com/article")
	assert.Equal(t, true, ok)
	assert.Equal(t, "cached", got.Summary)
}

func TestCorruptFileRecovery(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, cacheFileName), []byte("not valid json{{{"), 0o644)
	assert.Equal(t, nil, err)

	c := Open(dir)

	_, ok := c.Get("https://example.com")
	assert.Equal(t, false, ok)
}

func TestClear(t *testing.T) {
	c := Open(t.TempDir())
	c.Set("https://example.com/article", Result{Summary: "value"})

	err := c.Clear()
	assert.Equal(t, nil, err)

	_, ok := c.Get("https://example.com/article")
	assert.Equal(t, false, ok)
}

func TestDirectoryCreation(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")

	c := Open(dir)
	err := c.Set("https://example.com", Result{Summary: "value"})

	assert.Equal(t, nil, err)

	_, statErr := os.Stat(dir)
	assert.Equal(t, nil, statErr)
}

func TestHitRate(t *testing.T) {
	tests := []struct {
		name   string
		hits   int
		misses int
		want   float64
	}{
		{name: "no lookups", hits: 0, misses: 0, want: 0},
		{name: "mostly hits", hits: 3, misses: 1, want: 75},
		{name: "only misses", hits: 0, misses: 4, want: 0},
		{name: "even split", hits: 1, misses: 1, want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Stats{Hits: tt.hits, Misses: tt.misses}
			assert.Equal(t, tt.want, s.HitRate())
		})
	}
}
