// Package keyspace implements the in-memory store of keys to scalar strings
// and streams, with lazy TTL expiry and a single exclusive lock matching the
// server's one-mutex concurrency model.
package keyspace

import (
	"sync"
	"time"

	"github.com/kprasad-dev/respkv/internal/resp"
)

// Kind reports the TYPE of a stored value.
type Kind string

const (
	KindNone   Kind = "none"
	KindString Kind = "string"
	KindStream Kind = "stream"
)

// cell holds one key's value plus its optional expiry deadline.
type cell struct {
	kind    Kind
	str     string
	stream  []resp.StreamEntry
	hasTTL  bool
	expires time.Time
}

func (c *cell) expired(now time.Time) bool {
	return c.hasTTL && !now.Before(c.expires)
}

// Keyspace is the store of all keys. All methods are safe to call
// concurrently; callers that need a composite read-modify-write across
// multiple Keyspace calls must hold a lock of their own around them (the
// command dispatcher does this via the shared process mutex, so Keyspace's own
// lock exists for its unit tests and for callers outside the dispatcher).
type Keyspace struct {
	mu    sync.Mutex
	cells map[string]*cell
}

// New returns an empty Keyspace.
func New() *Keyspace {
	return &Keyspace{cells: make(map[string]*cell)}
}

// get returns the live cell for key, deleting and ignoring it first if its
// TTL has lapsed. Must be called with mu held.
func (k *Keyspace) get(key string, now time.Time) (*cell, bool) {
	c, ok := k.cells[key]
	if !ok {
		return nil, false
	}
	if c.expired(now) {
		delete(k.cells, key)
		return nil, false
	}
	return c, true
}

// Set stores key as a string value. If ttl is non-nil, the key expires
// ttl after now.
func (k *Keyspace) Set(key, value string, ttl *time.Duration, now time.Time) {
	k.mu.Lock()
	defer k.mu.Unlock()
	c := &cell{kind: KindString, str: value}
	if ttl != nil {
		c.hasTTL = true
		c.expires = now.Add(*ttl)
	}
	k.cells[key] = c
}

// Get returns the string value stored at key. ok is false if the key is
// absent, expired, or not a string.
func (k *Keyspace) Get(key string, now time.Time) (string, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	c, ok := k.get(key, now)
	if !ok || c.kind != KindString {
		return "", false
	}
	return c.str, true
}

// Remove deletes key if present, reporting whether it existed and was live.
func (k *Keyspace) Remove(key string, now time.Time) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	_, ok := k.get(key, now)
	if ok {
		delete(k.cells, key)
	}
	return ok
}

// Keys returns all live key names. Order is unspecified.
func (k *Keyspace) Keys(now time.Time) []string {
	k.mu.Lock()
	defer k.mu.Unlock()
	out := make([]string, 0, len(k.cells))
	for name := range k.cells {
		if c := k.cells[name]; !c.expired(now) {
			out = append(out, name)
		}
	}
	return out
}

// Type reports the TYPE of key: "string", "stream", or "none".
func (k *Keyspace) Type(key string, now time.Time) Kind {
	k.mu.Lock()
	defer k.mu.Unlock()
	c, ok := k.get(key, now)
	if !ok {
		return KindNone
	}
	return c.kind
}

// LoadString installs key as a string value unconditionally, expiring at
// expiresAt when it is non-nil; used by the snapshot loader to populate a
// freshly created Keyspace.
func (k *Keyspace) LoadString(key, value string, expiresAt *time.Time) {
	k.mu.Lock()
	defer k.mu.Unlock()
	c := &cell{kind: KindString, str: value}
	if expiresAt != nil {
		c.hasTTL = true
		c.expires = *expiresAt
	}
	k.cells[key] = c
}
