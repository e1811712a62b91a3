// Package cache provides a small LRU with optional TTL. The service keeps
// one for suggestion lists and the locale package one for skippable-word
// verdicts; both are re-asked constantly while the user types.
package cache

import (
	"container/list"
	"sync"
	"time"
)

type Cache struct {
	mu   sync.Mutex
	cap  int
	ttl  time.Duration
	ll   *list.List
	data map[string]*list.Element
}

type entry struct {
	key   string
	value any
	exp   time.Time
}

// New creates a cache holding up to capacity entries. A zero ttl means
// entries never expire.
func New(capacity int, ttl time.Duration) *Cache {
	if capacity <= 0 {
		capacity = 256
	}
	return &Cache{
		cap:  capacity,
		ttl:  ttl,
		ll:   list.New(),
		data: make(map[string]*list.Element),
	}
}

func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ele, ok := c.data[key]
	if !ok {
		return nil, false
	}
	e := ele.Value.(*entry)
	if c.ttl > 0 && time.Now().After(e.exp) {
		c.ll.Remove(ele)
		delete(c.data, key)
		return nil, false
	}
	c.ll.MoveToFront(ele)
	return e.value, true
}

func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ele, ok := c.data[key]; ok {
		c.ll.MoveToFront(ele)
		e := ele.Value.(*entry)
		e.value = value
		e.exp = c.expiry()
		return
	}
	ele := c.ll.PushFront(&entry{key: key, value: value, exp: c.expiry()})
	c.data[key] = ele
	if c.ll.Len() > c.cap {
		if last := c.ll.Back(); last != nil {
			c.ll.Remove(last)
			delete(c.data, last.Value.(*entry).key)
		}
	}
}

// Purge drops every entry. Called when the engine set changes and cached
// suggestions may no longer reflect the loaded dictionaries.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ll.Init()
	c.data = make(map[string]*list.Element)
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

func (c *Cache) expiry() time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return time.Now().Add(c.ttl)
}
