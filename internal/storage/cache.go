package storage

import "github.com/Radha57/Pcod-Tracker/internal/models"

// SnapshotCache holds the last Log read from disk until a write invalidates it.
// Callers always receive clones so a cached snapshot is never mutated.
type SnapshotCache struct {
	log   models.Log
	valid bool
}

func NewSnapshotCache() *SnapshotCache {
	return &SnapshotCache{}
}

func (c *SnapshotCache) Get() (models.Log, bool) {
	if !c.valid {
		return nil, false
	}
	return c.log.Clone(), true
}

func (c *SnapshotCache) Put(log models.Log) {
	c.log = log.Clone()
	c.valid = true
}

func (c *SnapshotCache) Invalidate() {
	c.log = nil
	c.valid = false
}
