/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package noop

import (
	"time"

	"github.com/anbesabank/fyda-otp/pkg/observability/metrics"
)

// NoMetrics provides default no operation implementation for the Metrics interface.
type NoMetrics struct{}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	return &NoMetrics{}
}

func (n *NoMetrics) OTPRequested()                 {}
func (n *NoMetrics) OTPVerification(_ bool)        {}
func (n *NoMetrics) SendOTPTime(_ time.Duration)   {}
func (n *NoMetrics) VerifyOTPTime(_ time.Duration) {}
func (n *NoMetrics) CallbackDispatched(_ bool)     {}
func (n *NoMetrics) CallbackTime(_ time.Duration)  {}
