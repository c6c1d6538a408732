// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package auth

import (
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

type memoryEntry struct {
	expiredAt int64
	payload   []byte
}

// MemoryStore is an in-process Store for development and tests. Payloads are
// kept serialized so callers never share a *Session with the store.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore creates an empty store. Zero ttl selects DefaultSessionTTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &MemoryStore{sessions: make(map[string]memoryEntry), ttl: ttl, now: time.Now}
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, sid string) (*Session, error) {
	s.mu.RLock()
	entry, ok := s.sessions[sid]
	s.mu.RUnlock()
	if !ok || entry.expiredAt <= s.now().UnixMilli() {
		return nil, nil
	}

	var sess Session
	if err := json.Unmarshal(entry.payload, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Set implements Store and drops every other expired entry.
func (s *MemoryStore) Set(_ context.Context, sid string, sess *Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sid] = memoryEntry{expiredAt: expiresAt(now, sess, s.ttl), payload: payload}
	for id, e := range s.sessions {
		if id != sid && e.expiredAt <= now.UnixMilli() {
			delete(s.sessions, id)
		}
	}
	return nil
}

// Destroy implements Store.
func (s *MemoryStore) Destroy(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sid)
	return nil
}

// Touch implements Store.
func (s *MemoryStore) Touch(_ context.Context, sid string, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.sessions[sid]; ok {
		e.expiredAt = expiresAt(s.now(), sess, s.ttl)
		s.sessions[sid] = e
	}
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
