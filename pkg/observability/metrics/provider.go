/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"time"

	"github.com/anbesabank/fyda-otp/internal/pkg/log"
)

// Logger used by different metrics provider.
var Logger = log.New("metrics-provider")

// Constants used by different metrics provider.
const (
	// Namespace Organization namespace.
	Namespace = "fyda_otp"

	// OTP simulated delivery and verification.
	OTP                   = "otp"
	OTPRequestedMetric    = "requested_total"
	OTPVerificationMetric = "verification_total"
	OTPSendTimeMetric     = "send_seconds"
	OTPVerifyTimeMetric   = "verify_seconds"

	// Callback relay notifications.
	Callback               = "callback"
	CallbackDispatchMetric = "dispatched_total"
	CallbackTimeMetric     = "duration_seconds"

	ResultLabel = "result"
)

// Provider is an interface for metrics provider.
type Provider interface {
	// Create creates a metrics provider instance
	Create() error
	// Destroy destroys the metrics provider instance
	Destroy() error
	// Metrics providers metrics
	Metrics() Metrics
}

// Metrics is an interface for the metrics to be supported by the provider.
type Metrics interface {
	OTPRequested()
	OTPVerification(success bool)
	SendOTPTime(value time.Duration)
	VerifyOTPTime(value time.Duration)
	CallbackDispatched(success bool)
	CallbackTime(value time.Duration)
}
