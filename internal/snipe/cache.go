package snipe

import (
	"sync"
	"time"
)

// Record is a snapshot of the most recently deleted message in a channel.
type Record struct {
	Content   string
	AuthorTag string
	AvatarURL string
	ImageURL  string
	DeletedAt time.Time
}

// Qualifies reports whether a deleted message is worth keeping: it must carry
// text or an attachment.
func (r Record) Qualifies() bool {
	return r.Content != "" || r.ImageURL != ""
}

// Cache keeps at most one record per channel for the lifetime of the process.
// When the channel count exceeds the cap, the stalest record is evicted.
type Cache struct {
	mu      sync.Mutex
	cap     int
	records map[string]Record
}

func NewCache(channelCap int) *Cache {
	if channelCap <= 0 {
		channelCap = 512
	}
	return &Cache{cap: channelCap, records: make(map[string]Record)}
}

// Store remembers the snapshot, overwriting any previous one for the channel.
func (c *Cache) Store(channelID string, record Record) {
	if !record.Qualifies() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.records[channelID]; !exists && len(c.records) >= c.cap {
		c.evictOldest()
	}
	c.records[channelID] = record
}

// Get returns the latest snapshot without removing it, so repeated snipes on
// the same channel see the same record until a newer delete supersedes it.
func (c *Cache) Get(channelID string) (Record, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	record, ok := c.records[channelID]
	return record, ok
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

func (c *Cache) evictOldest() {
	oldestID := ""
	var oldestAt time.Time
	for channelID, record := range c.records {
		if oldestID == "" || record.DeletedAt.Before(oldestAt) {
			oldestID = channelID
			oldestAt = record.DeletedAt
		}
	}
	if oldestID != "" {
		delete(c.records, oldestID)
	}
}
