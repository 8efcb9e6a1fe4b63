package jump

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// cacheEntry is the marker set for one search prefix. ids keeps the
// labeling order; set answers membership and set differences.
type cacheEntry struct {
	ids []int
	set *roaring.Bitmap
}

func newCacheEntry(ids []int) *cacheEntry {
	set := roaring.New()
	for _, id := range ids {
		set.Add(uint32(id))
	}
	return &cacheEntry{ids: ids, set: set}
}

// minus returns the ids in e that are not in other
func (e *cacheEntry) minus(other *cacheEntry) []int {
	diff := roaring.AndNot(e.set, other.set)
	out := make([]int, 0, diff.GetCardinality())
	it := diff.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}

// subsetOf reports whether every id in e is also in other
func (e *cacheEntry) subsetOf(other *cacheEntry) bool {
	return roaring.AndNot(e.set, other.set).IsEmpty()
}

// prefixCache maps each search prefix typed during a session to the markers
// valid for it. Appending a character only ever removes markers, so the
// entry for p is a subset of the entry for p minus its last rune.
type prefixCache struct {
	entries map[string]*cacheEntry
}

func newPrefixCache() *prefixCache {
	return &prefixCache{entries: make(map[string]*cacheEntry)}
}

func (c *prefixCache) get(prefix string) (*cacheEntry, bool) {
	e, ok := c.entries[prefix]
	return e, ok
}

func (c *prefixCache) put(prefix string, ids []int) *cacheEntry {
	e := newCacheEntry(ids)
	c.entries[prefix] = e
	return e
}

func (c *prefixCache) len() int {
	return len(c.entries)
}

func (c *prefixCache) clear() {
	c.entries = make(map[string]*cacheEntry)
}
