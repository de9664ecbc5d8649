/*
Copyright Avast Software. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package otp

import (
	"context"
	"fmt"

	"github.com/anbesabank/fyda-otp/internal/pkg/log"
)

var logger = log.New("otp")

// SimulatedSender pretends to deliver an OTP. Nothing leaves the process.
type SimulatedSender struct {
	latency Latency
}

// NewSimulatedSender returns a sender that completes after latency.
func NewSimulatedSender(latency Latency) *SimulatedSender {
	return &SimulatedSender{latency: latency}
}

func (s *SimulatedSender) Send(ctx context.Context, _ string) error {
	if err := s.latency.Wait(ctx); err != nil {
		return fmt.Errorf("simulated delivery: %w", err)
	}

	logger.Debugc(ctx, "Simulated OTP delivery completed")

	return nil
}
