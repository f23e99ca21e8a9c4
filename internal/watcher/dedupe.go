package watcher

import (
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/SmsAuto_Go/internal/domain"
)

// Deduper remembers recently seen notifications. A notification is identified
// by its source, its key and what it says, so an app that updates a
// notification in place under the same key still gets through.
type Deduper struct {
	mu   sync.Mutex
	seen *expirable.LRU[string, struct{}]
}

// NewDeduper keeps up to size keys, each for ttl.
func NewDeduper(size int, ttl time.Duration) *Deduper {
	if size < 1 {
		size = DefaultDedupeSize
	}
	if ttl <= 0 {
		ttl = DefaultDedupeTTL
	}
	return &Deduper{seen: expirable.NewLRU[string, struct{}](size, nil, ttl)}
}

// FirstSeen records n and reports whether it was new. Notifications without
// a key cannot be matched and always count as new.
func (d *Deduper) FirstSeen(n domain.Notification) bool {
	if n.Key == "" {
		return true
	}
	key := identity(n)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.seen.Contains(key) {
		return false
	}
	d.seen.Add(key, struct{}{})
	return true
}

// identity is source|key|hash(title, text, bigText).
func identity(n domain.Notification) string {
	h := fnv.New64a()
	for _, part := range []string{n.Title, n.Text, n.BigText} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return n.Source + "|" + n.Key + "|" + strconv.FormatUint(h.Sum64(), 16)
}

// Len returns the number of remembered notifications.
func (d *Deduper) Len() int {
	return d.seen.Len()
}
