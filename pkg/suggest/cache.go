package suggest

import (
	"sync"

	"github.com/charmbracelet/log"
)

// ResultCache keeps ranked suggestions for recently queried words so
// the server does not rescore the whole dictionary on repeats.
type ResultCache struct {
	entries     map[string][]Candidate
	accessTime  map[string]int64
	accessCount int64
	maxEntries  int
	mu          sync.RWMutex
}

func NewResultCache(maxEntries int) *ResultCache {
	return &ResultCache{
		entries:    make(map[string][]Candidate, maxEntries),
		accessTime: make(map[string]int64, maxEntries),
		maxEntries: maxEntries,
	}
}

func (rc *ResultCache) Get(word string) ([]Candidate, bool) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	cs, ok := rc.entries[word]
	if ok {
		rc.markAccessed(word)
	}
	return cs, ok
}

func (rc *ResultCache) Put(word string, cs []Candidate) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if _, ok := rc.entries[word]; !ok && len(rc.entries) >= rc.maxEntries {
		rc.evictLRU()
	}

	rc.entries[word] = cs
	rc.markAccessed(word)
}

func (rc *ResultCache) Stats() map[string]int {
	rc.mu.RLock()
	defer rc.mu.RUnlock()

	return map[string]int{
		"cachedWords": len(rc.entries),
		"maxEntries":  rc.maxEntries,
		"cacheHits":   int(rc.accessCount),
	}
}

func (rc *ResultCache) markAccessed(word string) {
	rc.accessTime[word] = rc.getNextAccessTime()
}

func (rc *ResultCache) getNextAccessTime() int64 {
	rc.accessCount++
	return rc.accessCount
}

func (rc *ResultCache) evictLRU() {
	var oldestWord string
	var oldestTime int64 = 9223372036854775807

	for word, accessTime := range rc.accessTime {
		if accessTime < oldestTime {
			oldestTime = accessTime
			oldestWord = word
		}
	}

	if oldestWord != "" {
		delete(rc.entries, oldestWord)
		delete(rc.accessTime, oldestWord)
		log.Debugf("Evicted word '%s' from result cache", oldestWord)
	}
}
