// Package cache holds recent search results in a bounded, expiring LRU.
package cache

import (
	"container/list"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/honeycarbs/career-hunter/internal/domain"
)

const (
	DefaultMaxSize = 100
	DefaultTTL     = time.Hour
)

// Option configures Cache
type Option func(*Cache)

// WithClock sets a custom clock
func WithClock(clock func() time.Time) Option {
	return func(c *Cache) {
		c.clock = clock
	}
}

// Cache is safe for concurrent use; every operation holds one mutex for O(1) work
type Cache struct {
	mu      sync.Mutex
	maxSize int
	ttl     time.Duration
	clock   func() time.Time

	order   *list.List // front = most recently used
	entries map[string]*list.Element
}

type entry struct {
	key       string
	listings  []domain.JobListing
	createdAt time.Time
}

// New builds a cache; non-positive sizes and TTLs fall back to the defaults
func New(maxSize int, ttl time.Duration, opts ...Option) *Cache {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	c := &Cache{
		maxSize: maxSize,
		ttl:     ttl,
		clock:   time.Now,
		order:   list.New(),
		entries: make(map[string]*list.Element, maxSize),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Key fingerprints the case- and whitespace-normalized query fields
func (c *Cache) Key(q domain.SearchQuery) string {
	return Fingerprint(q)
}

// Fingerprint is the hex xxhash of the normalized query fields
func Fingerprint(q domain.SearchQuery) string {
	norm := func(s string) string {
		return strings.ToLower(strings.Join(strings.Fields(s), " "))
	}

	var b strings.Builder
	b.WriteString(norm(q.Role))
	b.WriteByte('|')
	b.WriteString(strings.ToUpper(strings.TrimSpace(q.Country)))
	b.WriteByte('|')
	b.WriteString(norm(q.Location))
	b.WriteByte('|')
	b.WriteString(norm(q.Salary))
	b.WriteByte('|')
	b.WriteString(norm(string(q.WorkType)))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(q.Limit))

	return strconv.FormatUint(xxhash.Sum64String(b.String()), 16)
}

// Get returns a copy of the cached listings; expired entries are evicted and reported as a miss
func (c *Cache) Get(q domain.SearchQuery) ([]domain.JobListing, bool) {
	key := c.Key(q)

	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	e := el.Value.(*entry)
	if c.clock().Sub(e.createdAt) >= c.ttl {
		c.removeElement(el)
		return nil, false
	}

	c.order.MoveToFront(el)
	return domain.CloneListings(e.listings), true
}

// Put stores a copy of listings as the most recently used entry
func (c *Cache) Put(q domain.SearchQuery, listings []domain.JobListing) {
	key := c.Key(q)
	stored := domain.CloneListings(listings)
	if stored == nil {
		stored = []domain.JobListing{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock()

	if el, ok := c.entries[key]; ok {
		e := el.Value.(*entry)
		e.listings = stored
		e.createdAt = now
		c.order.MoveToFront(el)
		return
	}

	if c.order.Len() >= c.maxSize {
		if oldest := c.order.Back(); oldest != nil {
			c.removeElement(oldest)
		}
	}

	c.entries[key] = c.order.PushFront(&entry{
		key:       key,
		listings:  stored,
		createdAt: now,
	})
}

// Clear drops every entry and returns how many were removed
func (c *Cache) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := c.order.Len()
	c.order.Init()
	c.entries = make(map[string]*list.Element, c.maxSize)
	return n
}

// PurgeExpired drops entries past their TTL and returns how many were removed
func (c *Cache) PurgeExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock()
	removed := 0
	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		if now.Sub(el.Value.(*entry).createdAt) >= c.ttl {
			c.removeElement(el)
			removed++
		}
		el = prev
	}
	return removed
}

// Len returns the number of stored entries, expired or not
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *Cache) removeElement(el *list.Element) {
	c.order.Remove(el)
	delete(c.entries, el.Value.(*entry).key)
}
