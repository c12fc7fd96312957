package session

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Store holds sessions. Lock serialises read-modify-write cycles for a key;
// callers hold it for the whole handling of one inbound action.
type Store interface {
	Get(key Key) (Session, bool)
	Put(key Key, s Session)
	Clear(key Key)
	Lock(key Key) (unlock func())
}

const stripes = 256

// MemoryStore is an in-memory Store with optional idle expiry.
type MemoryStore struct {
	cache *expirable.LRU[Key, Session]
	locks [stripes]sync.Mutex
}

// NewMemoryStore creates a store holding at most capacity sessions, each
// dropped after ttl without a write. Zero capacity or ttl disables that limit.
func NewMemoryStore(capacity int, ttl time.Duration) *MemoryStore {
	return &MemoryStore{cache: expirable.NewLRU[Key, Session](capacity, nil, ttl)}
}

func (s *MemoryStore) Get(key Key) (Session, bool) {
	v, ok := s.cache.Get(key)
	if !ok {
		return Session{}, false
	}
	return v.Clone(), true
}

// Put stores sess, or clears the key when sess is idle.
func (s *MemoryStore) Put(key Key, sess Session) {
	if sess.State == Idle {
		s.cache.Remove(key)
		return
	}
	s.cache.Add(key, sess.Clone())
}

func (s *MemoryStore) Clear(key Key) {
	s.cache.Remove(key)
}

func (s *MemoryStore) Len() int {
	return s.cache.Len()
}

// Lock takes the stripe lock for key. Keys sharing a stripe serialise with
// each other, so a holder must never take a second key's lock.
func (s *MemoryStore) Lock(key Key) func() {
	m := &s.locks[stripe(key)]
	m.Lock()
	return m.Unlock
}

func stripe(k Key) uint64 {
	h := uint64(k.ChatID)*0x9E3779B97F4A7C15 ^ uint64(k.UserID)
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	return h % stripes
}
