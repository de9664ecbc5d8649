/*
Copyright Avast Software. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package otpflow

import "sync"

// sessionLocks serializes read-modify-write cycles per session ID within the process.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*refLock
}

type refLock struct {
	sync.Mutex
	refs int
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{locks: map[string]*refLock{}}
}

// lock acquires the lock for id and returns the function that releases it.
func (l *sessionLocks) lock(id string) func() {
	l.mu.Lock()

	rl, ok := l.locks[id]
	if !ok {
		rl = &refLock{}
		l.locks[id] = rl
	}

	rl.refs++

	l.mu.Unlock()

	rl.Lock()

	return func() {
		rl.Unlock()

		l.mu.Lock()
		defer l.mu.Unlock()

		rl.refs--

		if rl.refs == 0 {
			delete(l.locks, id)
		}
	}
}
