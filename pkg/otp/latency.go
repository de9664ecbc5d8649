/*
Copyright Avast Software. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package otp

import (
	"context"
	"time"
)

// Latency stands in for the round trip of a delivery or verification backend.
type Latency interface {
	Wait(ctx context.Context) error
}

// FixedLatency waits for the configured duration or until ctx is done.
type FixedLatency time.Duration

func (l FixedLatency) Wait(ctx context.Context) error {
	if l <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(time.Duration(l))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NoLatency completes immediately.
var NoLatency Latency = FixedLatency(0) //nolint:gochecknoglobals
