// Package state is the process wide observable store shared by the delivery layers.
// Values are addressed through typed keys so readers never type-assert at the call site.
package state

import (
	"sort"
	"sync"
)

// Key names a slot in the store holding values of type T
type Key[T any] struct {
	name string
}

func NewKey[T any](name string) Key[T] {
	return Key[T]{name: name}
}

func (k Key[T]) Name() string {
	return k.name
}

// Change is delivered to subscribers after every write
type Change struct {
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
}

type subscriber struct {
	id  uint64
	key string // empty for catch-all subscribers
	fn  func(Change)
}

type Store struct {
	mutex  sync.RWMutex
	values map[string]interface{}
	subs   []subscriber
	nextId uint64
}

func New() *Store {
	return &Store{
		values: make(map[string]interface{}),
	}
}

// Get returns the value stored under k and whether it was ever set
func Get[T any](s *Store, k Key[T]) (T, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	var zero T
	v, ok := s.values[k.name]
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// Set writes v under k. Concurrent writers race, the last one wins.
func Set[T any](s *Store, k Key[T], v T) {
	s.mutex.Lock()
	s.values[k.name] = v
	subs := s.matching(k.name)
	s.mutex.Unlock()

	notify(subs, Change{Key: k.name, Value: v})
}

// Subscribe calls fn with every value written under k until the returned cancel is called
func Subscribe[T any](s *Store, k Key[T], fn func(T)) (cancel func()) {
	return s.subscribe(k.name, func(c Change) {
		if v, ok := c.Value.(T); ok {
			fn(v)
			return
		}
		var zero T
		fn(zero)
	})
}

// SubscribeAll calls fn for every write to any key
func (s *Store) SubscribeAll(fn func(Change)) (cancel func()) {
	return s.subscribe("", fn)
}

// Snapshot copies the current values
func (s *Store) Snapshot() map[string]interface{} {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	res := make(map[string]interface{}, len(s.values))
	for k, v := range s.values {
		res[k] = v
	}
	return res
}

// Reset drops every value and notifies subscribers of each dropped key with a nil value
func (s *Store) Reset() {
	s.mutex.Lock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	s.values = make(map[string]interface{})
	pending := make([][]subscriber, len(keys))
	for i, k := range keys {
		pending[i] = s.matching(k)
	}
	s.mutex.Unlock()

	for i, k := range keys {
		notify(pending[i], Change{Key: k})
	}
}

func (s *Store) subscribe(key string, fn func(Change)) func() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.nextId++
	id := s.nextId
	s.subs = append(s.subs, subscriber{id: id, key: key, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mutex.Lock()
			defer s.mutex.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// matching must be called with the mutex held
func (s *Store) matching(key string) []subscriber {
	res := make([]subscriber, 0, len(s.subs))
	for _, sub := range s.subs {
		if sub.key == "" || sub.key == key {
			res = append(res, sub)
		}
	}
	return res
}

func notify(subs []subscriber, c Change) {
	for _, sub := range subs {
		sub.fn(c)
	}
}
