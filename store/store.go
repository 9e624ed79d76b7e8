// Package store keeps parsed equations in memory, deduplicated by their
// structural hash.
package store

import (
	"sort"
	"sync"

	"github.com/akeriat/equations"
)

// Entity is a stored equation. Entities are created once and never modified.
type Entity struct {
	// ID is assigned on first insert. IDs increase monotonically and are
	// never reused.
	ID int64
	// Infix is the stored source text, trimmed of surrounding whitespace.
	Infix string
	// Postfix is the token type sequence of the postfix form, a record of
	// structure that is not used for re-evaluation.
	Postfix []equations.Token
	// Hash is the structural hash the entity is deduplicated by.
	Hash string
}

// Memory is an in-memory equation store safe for concurrent use.
type Memory struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]*Entity
	byHash map[string]*Entity
}

// NewMemory creates an empty store.
func NewMemory() *Memory {
	return &Memory{
		nextID: 1,
		byID:   make(map[int64]*Entity),
		byHash: make(map[string]*Entity),
	}
}

// Insert stores a new equation and returns it. If an entity with the same
// hash already exists, the existing entity is returned unchanged: at most one
// entity ever exists per structural hash, even under racing callers.
func (m *Memory) Insert(infix string, postfix []equations.Token, hash string) *Entity {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.byHash[hash]; ok {
		return e
	}
	e := &Entity{
		ID:      m.nextID,
		Infix:   infix,
		Postfix: postfix,
		Hash:    hash,
	}
	m.nextID++
	m.byID[e.ID] = e
	m.byHash[hash] = e
	return e
}

// ByHash returns the entity with the given structural hash, if any.
func (m *Memory) ByHash(hash string) (*Entity, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.byHash[hash]
	return e, ok
}

// ByID returns the entity with the given id, if any.
func (m *Memory) ByID(id int64) (*Entity, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.byID[id]
	return e, ok
}

// All returns every stored entity in id order.
func (m *Memory) All() []*Entity {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Entity, 0, len(m.byID))
	for _, e := range m.byID {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of stored entities.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byID)
}
