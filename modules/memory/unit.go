package memory

import (
	"errors"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrCapacity is returned by Remember when the store is full.
var ErrCapacity = errors.New("memory capacity exceeded")

// Unit is the recall store handle. It is safe for concurrent use so other
// units can write observations into it from their own goroutines.
type Unit struct {
	mu       sync.RWMutex
	capacity int
	facts    map[string]string
}

// NewUnit creates an empty store. A capacity of zero means unbounded.
func NewUnit(capacity int) *Unit {
	return &Unit{
		capacity: capacity,
		facts:    make(map[string]string),
	}
}

// Remember stores a fact under a key, overwriting any previous value.
func (u *Unit) Remember(key, value string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, exists := u.facts[key]; !exists && u.capacity > 0 && len(u.facts) >= u.capacity {
		return ErrCapacity
	}
	u.facts[key] = value
	return nil
}

// Recall retrieves a fact by key.
func (u *Unit) Recall(key string) (string, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	value, ok := u.facts[key]
	return value, ok
}

// Forget removes a fact. Forgetting an unknown key is a no-op.
func (u *Unit) Forget(key string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.facts, key)
}

// Len returns the number of stored facts.
func (u *Unit) Len() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return len(u.facts)
}

// Snapshot encodes the stored facts into a compact binary blob.
func (u *Unit) Snapshot() ([]byte, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return msgpack.Marshal(u.facts)
}

// Restore replaces the stored facts with the contents of a snapshot.
func (u *Unit) Restore(snapshot []byte) error {
	var facts map[string]string
	if err := msgpack.Unmarshal(snapshot, &facts); err != nil {
		return err
	}
	if facts == nil {
		facts = make(map[string]string)
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.facts = facts
	return nil
}
