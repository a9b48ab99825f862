// Package banlist loads curated card lists and matches deck tables against
// them.
package banlist

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/edhtools/deckwarden/internal/deck"
)

// Set holds lowercased card names for exact-name matching.
type Set map[string]struct{}

// Contains reports whether the set holds the card name, ignoring case.
func (s Set) Contains(name string) bool {
	_, ok := s[strings.ToLower(name)]
	return ok
}

// Hit is a deck card found on a curated list.
type Hit struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// entry caches one loaded file together with its load error, so every run
// can surface a missing list, not only the first.
type entry struct {
	set Set
	err error
}

// Cache loads list files once per process and serves them from memory.
// Edits to a file after the first load are not observed until restart.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	logger  *zap.Logger
}

// NewCache creates an empty list cache.
func NewCache(logger *zap.Logger) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		logger:  logger,
	}
}

// Load returns the name set for the given list file, reading it on first
// use. A missing or unreadable file yields an empty, still-usable set along
// with the read error; callers treat that as a degraded pass, not a failure.
func (c *Cache) Load(path string) (Set, error) {
	key, err := filepath.Abs(path)
	if err != nil {
		key = path
	}

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return e.set, e.err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another goroutine may have populated the entry while we waited.
	if e, ok := c.entries[key]; ok {
		return e.set, e.err
	}

	set, err := readList(key)
	if err != nil {
		c.logger.Warn("list file unavailable",
			zap.String("path", path),
			zap.Error(err))
	} else {
		c.logger.Debug("list file loaded",
			zap.String("path", path),
			zap.Int("names", len(set)))
	}

	c.entries[key] = entry{set: set, err: err}
	return set, err
}

// Match returns the deck cards whose names appear on the list at path, in
// table order. The commander row participates like any other. The error
// mirrors Load's: non-nil when the file could not be read, with the empty
// set applied.
func (c *Cache) Match(path string, cards []deck.Card) ([]Hit, error) {
	set, err := c.Load(path)

	var hits []Hit
	for _, card := range cards {
		if set.Contains(card.Name) {
			hits = append(hits, Hit{Name: card.Name, Quantity: card.Quantity})
		}
	}

	return hits, err
}

// readList parses one name per line, lowercased and trimmed, skipping
// blank lines.
func readList(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, err
	}

	set := make(Set)
	for _, line := range strings.Split(string(data), "\n") {
		name := strings.ToLower(strings.TrimSpace(line))
		if name == "" {
			continue
		}
		set[name] = struct{}{}
	}

	return set, nil
}
