/*
Copyright Avast Software. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sessionstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/anbesabank/fyda-otp/pkg/restapi/resterr"
	"github.com/anbesabank/fyda-otp/pkg/service/otpflow"
)

type entry struct {
	data     []byte
	expireAt time.Time
}

// Store keeps sessions in process memory. Expired entries are removed on access and by Purge.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	nowF    func() time.Time
}

// New creates a new instance of Store.
func New(ttl time.Duration) *Store {
	return &Store{
		entries: map[string]entry{},
		ttl:     ttl,
		nowF:    time.Now,
	}
}

func (s *Store) Create(_ context.Context, session *otpflow.Session) error {
	return s.put(session, false)
}

func (s *Store) Get(_ context.Context, id string) (*otpflow.Session, error) {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()

	if !ok {
		return nil, resterr.ErrDataNotFound
	}

	if !e.expireAt.After(s.nowF()) {
		s.mu.Lock()
		delete(s.entries, id)
		s.mu.Unlock()

		return nil, resterr.ErrDataNotFound
	}

	session := &otpflow.Session{}
	if err := json.Unmarshal(e.data, session); err != nil {
		return nil, fmt.Errorf("session decode: %w", err)
	}

	return session, nil
}

// Update replaces the stored session and extends its expiry.
// Returns resterr.ErrDataNotFound when the session has already expired.
func (s *Store) Update(_ context.Context, session *otpflow.Session) error {
	return s.put(session, true)
}

// Purge removes expired sessions and returns how many were removed.
func (s *Store) Purge() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowF()
	removed := 0

	for id, e := range s.entries {
		if !e.expireAt.After(now) {
			delete(s.entries, id)
			removed++
		}
	}

	return removed
}

// Run purges expired sessions every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Purge()
		}
	}
}

func (s *Store) put(session *otpflow.Session, mustExist bool) error {
	b, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowF()

	if mustExist {
		e, ok := s.entries[session.ID]
		if !ok || !e.expireAt.After(now) {
			delete(s.entries, session.ID)

			return resterr.ErrDataNotFound
		}
	}

	s.entries[session.ID] = entry{
		data:     b,
		expireAt: now.Add(s.ttl),
	}

	return nil
}
