package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"sync"

	"go.uber.org/zap"
)

// Namespaces used in the persistence backend.
const (
	NamespaceSession = "session"
	NamespaceBadges  = "badges"
)

// Listener receives the new value of a key after it changes.
type Listener func(value any, key Key)

type subscription struct {
	id int
	fn Listener
}

// Store is the keyed session state container. Every mutation is persisted
// immediately; persistence failures are logged and the in-memory state
// stays authoritative.
type Store struct {
	mu       sync.Mutex
	state    State
	defaults State
	backend  Backend
	logger   *zap.Logger

	subMu  sync.Mutex
	subs   map[Key][]subscription
	nextID int
}

// Open loads the session namespace from backend and merges it over
// defaults. A missing or corrupt blob yields the defaults.
func Open(ctx context.Context, backend Backend, defaults State, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	if backend == nil {
		backend = NewMemoryBackend()
	}

	s := &Store{
		defaults: defaults.Clone(),
		backend:  backend,
		logger:   logger,
		subs:     make(map[Key][]subscription),
	}
	s.state = s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) State {
	state := s.defaults.Clone()

	data, err := s.backend.Load(ctx, NamespaceSession)
	if errors.Is(err, ErrNotFound) {
		return state
	}
	if err != nil {
		s.logger.Warn("load session state failed, using defaults", zap.Error(err))
		return state
	}

	if err := json.Unmarshal(data, &state); err != nil {
		s.logger.Warn("session state is corrupt, using defaults", zap.Error(err))
		return s.defaults.Clone()
	}
	state, rejected := sanitize(state, s.defaults)
	if len(rejected) > 0 {
		s.logger.Warn("session state has invalid fields, using defaults for them",
			zap.Any("keys", rejected))
	}
	return state
}

// Get returns the current value of key, or nil for an unknown key.
// Maps and slices are returned as copies.
func (s *Store) Get(key Key) any {
	f, ok := fields[key]
	if !ok {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return f.get(&s.state)
}

// Set overwrites key, persists, and notifies subscribers of key and of
// the wildcard.
func (s *Store) Set(key Key, value any) error {
	f, ok := fields[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}

	s.mu.Lock()
	if err := f.set(&s.state, value); err != nil {
		s.mu.Unlock()
		return err
	}
	newValue := f.get(&s.state)
	s.persistLocked()
	s.mu.Unlock()

	s.notify(key, newValue)
	return nil
}

// Patch applies several keys at once. Either every value is applied or
// none is. Subscribers are notified once per key whose value changed,
// after the whole patch is visible.
func (s *Store) Patch(values map[Key]any) error {
	keys := make([]Key, 0, len(values))
	for _, k := range Keys() {
		if _, ok := values[k]; ok {
			keys = append(keys, k)
		}
	}
	if len(keys) != len(values) {
		for k := range values {
			if _, ok := fields[k]; !ok {
				return fmt.Errorf("%w: %q", ErrUnknownKey, k)
			}
		}
	}

	s.mu.Lock()
	next := s.state.Clone()
	for _, k := range keys {
		if err := fields[k].set(&next, values[k]); err != nil {
			s.mu.Unlock()
			return err
		}
	}
	changed := changedKeys(&s.state, &next, keys)
	s.state = next
	updates := make(map[Key]any, len(changed))
	for _, k := range changed {
		updates[k] = fields[k].get(&s.state)
	}
	s.persistLocked()
	s.mu.Unlock()

	for _, k := range changed {
		s.notify(k, updates[k])
	}
	return nil
}

// Reset restores the defaults, keeping the parent PIN, persists, and
// notifies wildcard subscribers with the new snapshot.
func (s *Store) Reset() {
	s.mu.Lock()
	pin := s.state.ParentPIN
	s.state = s.defaults.Clone()
	s.state.ParentPIN = pin
	snap := s.state.Clone()
	s.persistLocked()
	s.mu.Unlock()

	for _, sub := range s.listeners(Wildcard) {
		sub.fn(snap, Wildcard)
	}
}

// Subscribe registers fn for changes to key, or to every key when key is
// Wildcard. The returned function removes the subscription.
func (s *Store) Subscribe(key Key, fn Listener) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	s.nextID++
	id := s.nextID
	s.subs[key] = append(s.subs[key], subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			defer s.subMu.Unlock()
			subs := s.subs[key]
			for i, sub := range subs {
				if sub.id == id {
					s.subs[key] = append(subs[:i:i], subs[i+1:]...)
					break
				}
			}
		})
	}
}

func (s *Store) listeners(key Key) []subscription {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	out := make([]subscription, len(s.subs[key]))
	copy(out, s.subs[key])
	return out
}

// notify runs outside the state lock so listeners may read the store.
func (s *Store) notify(key Key, value any) {
	for _, sub := range s.listeners(key) {
		sub.fn(value, key)
	}
	for _, sub := range s.listeners(Wildcard) {
		sub.fn(value, key)
	}
}

// persistLocked writes the state to the backend. s.mu must be held.
func (s *Store) persistLocked() {
	data, err := json.Marshal(s.state)
	if err != nil {
		s.logger.Warn("marshal session state failed", zap.Error(err))
		return
	}
	if err := s.backend.Save(context.Background(), NamespaceSession, data); err != nil {
		s.logger.Warn("persist session state failed", zap.Error(err))
	}
}

// Snapshot returns a deep copy of the whole state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Int returns an integer key, or 0 if key is not an integer field.
func (s *Store) Int(key Key) int {
	n, _ := s.Get(key).(int)
	return n
}

// String returns a string key, or "" if key is not a string field.
func (s *Store) String(key Key) string {
	str, _ := s.Get(key).(string)
	return str
}

// Bool returns a boolean key, or false if key is not a boolean field.
func (s *Store) Bool(key Key) bool {
	b, _ := s.Get(key).(bool)
	return b
}

// Float returns a float key, or 0 if key is not a float field.
func (s *Store) Float(key Key) float64 {
	f, _ := s.Get(key).(float64)
	return f
}

// WordStats returns a copy of every word statistic.
func (s *Store) WordStats() map[string]WordStat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneWordStats(s.state.WordStats)
}

// WordStat returns the statistic for one word.
func (s *Store) WordStat(id string) (WordStat, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ws, ok := s.state.WordStats[id]
	if ok && ws.LastSeen != nil {
		t := *ws.LastSeen
		ws.LastSeen = &t
	}
	return ws, ok
}

// GroupMastery returns a copy of the group mastery map.
func (s *Store) GroupMastery() map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := maps.Clone(s.state.GroupMastery)
	if m == nil {
		m = map[string]float64{}
	}
	return m
}

// History returns up to n most recent entries, newest first. n <= 0
// returns the whole history.
func (s *Store) History(n int) []HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := s.state.History
	if n > 0 && len(h) > n {
		h = h[:n]
	}
	out := make([]HistoryEntry, len(h))
	copy(out, h)
	return out
}

// Backend returns the persistence backend.
func (s *Store) Backend() Backend {
	return s.backend
}

// Close closes the persistence backend.
func (s *Store) Close() error {
	return s.backend.Close()
}
