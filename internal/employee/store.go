package employee

import (
	"context"
	"errors"
	"slices"
	"sync"

	"employee-admin/internal/kv"
)

// DefaultKey is the storage key the collection lives under.
const DefaultKey = "employees"

// Store owns the ordered employee collection. Every successful mutation
// rewrites the whole snapshot before the lock is released, so readers never
// observe memory ahead of storage unless the write itself failed.
type Store struct {
	mu      sync.RWMutex
	backend kv.Store
	key     string
	ids     IDGenerator
	items   []Employee
}

type Option func(*Store)

func WithIDGenerator(g IDGenerator) Option {
	return func(s *Store) { s.ids = g }
}

func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

func NewStore(backend kv.Store, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		key:     DefaultKey,
		ids:     NewClockIDs(nil),
		items:   []Employee{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the collection with the persisted snapshot. A missing
// snapshot yields an empty collection. An unreadable or corrupt snapshot also
// yields an empty collection, and the cause is returned as *PersistenceError.
// A decodable snapshot breaking the record constraints is repaired and the
// changes are returned as *RepairError.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = []Employee{}
	b, err := s.backend.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil
		}
		return &PersistenceError{Op: "read", Err: err}
	}
	list, err := Decode(b)
	if err != nil {
		return &PersistenceError{Op: "decode", Err: err}
	}

	var max int64
	kept := make([]Employee, 0, len(list))
	repair := &RepairError{Reassigned: map[int64][]int64{}}
	for _, e := range list {
		if Validate(e) != nil {
			repair.Dropped = append(repair.Dropped, e)
			continue
		}
		if e.ID > max {
			max = e.ID
		}
		kept = append(kept, e)
	}
	s.ids.Seed(max)

	seen := make(map[int64]bool, len(kept))
	for i, e := range kept {
		if seen[e.ID] {
			kept[i].ID = s.ids.Next()
			repair.Reassigned[e.ID] = append(repair.Reassigned[e.ID], kept[i].ID)
		}
		seen[kept[i].ID] = true
	}
	s.items = kept

	if len(repair.Dropped) > 0 || len(repair.Reassigned) > 0 {
		return repair
	}
	return nil
}

// List returns a copy of the collection in insertion order.
func (s *Store) List() []Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

func (s *Store) Get(id int64) (Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return Employee{}, ErrNotFound
	}
	return s.items[i], nil
}

// Filter applies c to the current collection without modifying it.
func (s *Store) Filter(c Criteria) []Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return c.Apply(s.items)
}

func (s *Store) Summary() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Summarize(s.items)
}

// Add validates in, assigns a fresh id and appends the record.
func (s *Store) Add(ctx context.Context, in Input) (Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := in.record(0)
	if err := Validate(e); err != nil {
		return Employee{}, err
	}
	e.ID = s.ids.Next()
	for s.indexOf(e.ID) >= 0 {
		e.ID = s.ids.Next()
	}
	s.items = append(s.items, e)
	return e, s.persist(ctx)
}

// Update applies p to the record with the given id. The id never changes and
// the record keeps its position.
func (s *Store) Update(ctx context.Context, id int64, p Patch) (Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Employee{}, ErrNotFound
	}
	e := p.apply(s.items[i])
	e.ID = id
	if err := Validate(e); err != nil {
		return Employee{}, err
	}
	s.items[i] = e
	return e, s.persist(ctx)
}

func (s *Store) Remove(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.items = slices.Delete(s.items, i, i+1)
	return s.persist(ctx)
}

func (s *Store) SetActive(ctx context.Context, id int64, active bool) (Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setActiveLocked(ctx, id, func(bool) bool { return active })
}

// Toggle flips the active flag of the record.
func (s *Store) Toggle(ctx context.Context, id int64) (Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setActiveLocked(ctx, id, func(cur bool) bool { return !cur })
}

func (s *Store) setActiveLocked(ctx context.Context, id int64, next func(bool) bool) (Employee, error) {
	i := s.indexOf(id)
	if i < 0 {
		return Employee{}, ErrNotFound
	}
	s.items[i].IsActive = next(s.items[i].IsActive)
	return s.items[i], s.persist(ctx)
}

func (s *Store) indexOf(id int64) int {
	return slices.IndexFunc(s.items, func(e Employee) bool { return e.ID == id })
}

// persist writes the whole collection. When it fails the in-memory change
// stands and callers get the mutated record alongside a *PersistenceError.
func (s *Store) persist(ctx context.Context) error {
	b, err := Encode(s.items)
	if err != nil {
		return &PersistenceError{Op: "encode", Err: err}
	}
	if err := s.backend.Put(ctx, s.key, b); err != nil {
		return &PersistenceError{Op: "write", Err: err}
	}
	return nil
}
