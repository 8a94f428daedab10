package api

import (
	"os"
	"strconv"
	"sync"
)

// AssessmentCache is a thread-safe LRU cache of recently computed assessments.
type AssessmentCache struct {
	mu      sync.Mutex
	maxSize int
	entries map[string]*StoredAssessment
	order   []string // oldest first
}

// NewAssessmentCache creates a cache with the given maximum number of entries.
// If maxSize <= 0, it defaults to 100.
func NewAssessmentCache(maxSize int) *AssessmentCache {
	if maxSize <= 0 {
		maxSize = 100
	}
	return &AssessmentCache{
		maxSize: maxSize,
		entries: make(map[string]*StoredAssessment),
	}
}

// NewAssessmentCacheFromEnv creates a cache with size from ASSESSMENT_CACHE_SIZE env var.
func NewAssessmentCacheFromEnv() *AssessmentCache {
	size := 100
	if v := os.Getenv("ASSESSMENT_CACHE_SIZE"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			size = parsed
		}
	}
	return NewAssessmentCache(size)
}

// Len returns the number of cached assessments.
func (c *AssessmentCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Get retrieves an assessment from the cache, or nil if not found.
func (c *AssessmentCache) Get(id string) *StoredAssessment {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[id]
	if !ok {
		return nil
	}

	// Move to end (most recently used)
	c.moveToEnd(id)
	return entry
}

// Put adds an assessment to the cache, evicting the oldest if full.
func (c *AssessmentCache) Put(a *StoredAssessment) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[a.ID]; ok {
		c.entries[a.ID] = a
		c.moveToEnd(a.ID)
		return
	}

	// Evict oldest if at capacity
	for len(c.entries) >= c.maxSize && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[a.ID] = a
	c.order = append(c.order, a.ID)
}

func (c *AssessmentCache) moveToEnd(id string) {
	for i, k := range c.order {
		if k == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, id)
			return
		}
	}
}
