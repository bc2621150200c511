package session

import (
	"hash/fnv"
	"sync"
)

const shardCount = 16

// Store keeps sessions keyed by customer id, sharded to spread lock
// contention across customers. Acquire hands out exclusive access to one
// customer's session; two near-simultaneous messages from the same phone
// serialize on the entry lock while different customers proceed in parallel.
type Store struct {
	shards [shardCount]storeShard
}

type storeShard struct {
	mu      sync.Mutex
	entries map[string]*storeEntry
}

type storeEntry struct {
	mu   sync.Mutex
	sess *Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	store := &Store{}
	for i := range store.shards {
		store.shards[i].entries = make(map[string]*storeEntry)
	}
	return store
}

// Acquire returns the customer's session, creating an empty one on first
// contact, locked for exclusive use. The caller must call release when done
// mutating the session; holding it across blocking calls stalls only that
// customer's conversation.
func (s *Store) Acquire(customerID string) (*Session, func()) {
	shard := s.shard(customerID)

	shard.mu.Lock()
	entry, ok := shard.entries[customerID]
	if !ok {
		entry = &storeEntry{sess: newSession(customerID)}
		shard.entries[customerID] = entry
	}
	shard.mu.Unlock()

	entry.mu.Lock()
	return entry.sess, entry.mu.Unlock
}

// Remove drops the customer's session, typically after an order reached a
// terminal state. A later Acquire starts a fresh session. Safe to call while
// still holding the session from Acquire.
func (s *Store) Remove(customerID string) {
	shard := s.shard(customerID)

	shard.mu.Lock()
	delete(shard.entries, customerID)
	shard.mu.Unlock()
}

// Len returns the number of live sessions across all shards.
func (s *Store) Len() int {
	total := 0
	for i := range s.shards {
		s.shards[i].mu.Lock()
		total += len(s.shards[i].entries)
		s.shards[i].mu.Unlock()
	}
	return total
}

func (s *Store) shard(customerID string) *storeShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(customerID))
	return &s.shards[h.Sum32()%shardCount]
}
