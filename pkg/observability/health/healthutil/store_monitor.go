/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthutil

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/alexliesenfeld/health"
)

// SessionStoreCheck is the name of the session store check.
const SessionStoreCheck = "session_store"

// StoreMonitor records the outcome and timing of session store checks and writes the /health report.
type StoreMonitor struct {
	storeType string

	mu      sync.Mutex
	samples int
	last    time.Duration
	avg     time.Duration
	lastErr error
}

type healthReport struct {
	Status       health.AvailabilityStatus `json:"status"`
	SessionStore *storeReport              `json:"session_store"`
}

type storeReport struct {
	Type                string                    `json:"type"`
	Status              health.AvailabilityStatus `json:"status"`
	Error               string                    `json:"error,omitempty"`
	Checks              int                       `json:"checks,omitempty"`
	LastResponseTime    string                    `json:"last_response_time,omitempty"`
	AverageResponseTime string                    `json:"avg_response_time,omitempty"`
}

// NewStoreMonitor returns a monitor for the session store of the given type (mem, redis).
func NewStoreMonitor(storeType string) *StoreMonitor {
	return &StoreMonitor{storeType: storeType}
}

// Wrap returns check timed and recorded by the monitor.
func (m *StoreMonitor) Wrap(check func(ctx context.Context) error) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		st := time.Now()
		err := check(ctx)

		m.record(time.Since(st), err)

		return err
	}
}

func (m *StoreMonitor) record(elapsed time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.samples++
	m.last = elapsed
	m.avg += (elapsed - m.avg) / time.Duration(m.samples)
	m.lastErr = err
}

// Write renders the checker result with the session store details.
func (m *StoreMonitor) Write(result *health.CheckerResult, status int, w http.ResponseWriter, _ *http.Request) error {
	store := &storeReport{
		Type:   m.storeType,
		Status: result.Status,
	}

	if cr, ok := result.Details[SessionStoreCheck]; ok {
		store.Status = cr.Status
	}

	m.mu.Lock()

	if m.samples > 0 {
		store.Checks = m.samples
		store.LastResponseTime = m.last.String()
		store.AverageResponseTime = m.avg.String()
	}

	if m.lastErr != nil {
		store.Error = m.lastErr.Error()
	}

	m.mu.Unlock()

	b, err := json.Marshal(&healthReport{Status: result.Status, SessionStore: store})
	if err != nil {
		return fmt.Errorf("marshal health report: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_, err = w.Write(b)

	return err
}
