/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/anbesabank/fyda-otp/internal/pkg/log"
	"github.com/anbesabank/fyda-otp/pkg/observability/metrics"
)

var logger = metrics.Logger

var (
	createOnce sync.Once       //nolint:gochecknoglobals
	instance   metrics.Metrics //nolint:gochecknoglobals
)

const (
	resultSuccess = "success"
	resultFailure = "failure"
)

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type promProvider struct {
	router router
}

// NewPrometheusProvider creates new instance of Prometheus Metrics Provider.
// The /metrics endpoint is registered on router by Create.
func NewPrometheusProvider(r router) metrics.Provider {
	return &promProvider{router: r}
}

// Create creates/initializes the prometheus metrics provider.
func (pp *promProvider) Create() error {
	h := NewHandler()

	pp.router.GET(h.Path(), echo.WrapHandler(h.Handler()))

	return nil
}

// Metrics returns supported metrics.
func (pp *promProvider) Metrics() metrics.Metrics {
	return GetMetrics()
}

// Destroy destroys the prometheus metrics provider.
func (pp *promProvider) Destroy() error {
	return nil
}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	createOnce.Do(func() {
		instance = NewMetrics()
	})

	return instance
}

// PromMetrics manages the metrics for the OTP form.
type PromMetrics struct {
	otpRequested       prometheus.Counter
	otpVerification    *prometheus.CounterVec
	sendOTPTime        prometheus.Histogram
	verifyOTPTime      prometheus.Histogram
	callbackDispatched *prometheus.CounterVec
	callbackTime       prometheus.Histogram
}

// NewMetrics creates instance of prometheus metrics.
func NewMetrics() metrics.Metrics {
	pm := &PromMetrics{
		otpRequested: newCounter(
			metrics.OTP, metrics.OTPRequestedMetric,
			"The number of OTPs requested for a valid Fyda number.",
			nil,
		),
		otpVerification: newCounterVec(
			metrics.OTP, metrics.OTPVerificationMetric,
			"The number of OTP verifications by result.",
			metrics.ResultLabel,
		),
		sendOTPTime: newHistogram(
			metrics.OTP, metrics.OTPSendTimeMetric,
			"The time (in seconds) it takes to send an OTP.",
			nil,
		),
		verifyOTPTime: newHistogram(
			metrics.OTP, metrics.OTPVerifyTimeMetric,
			"The time (in seconds) it takes to verify an OTP.",
			nil,
		),
		callbackDispatched: newCounterVec(
			metrics.Callback, metrics.CallbackDispatchMetric,
			"The number of relay callbacks by transport result.",
			metrics.ResultLabel,
		),
		callbackTime: newHistogram(
			metrics.Callback, metrics.CallbackTimeMetric,
			"The time (in seconds) it takes to complete a relay callback.",
			nil,
		),
	}

	registerMetrics(pm)

	return pm
}

// OTPRequested counts an OTP request.
func (pm *PromMetrics) OTPRequested() {
	pm.otpRequested.Inc()
}

// OTPVerification counts a verification outcome.
func (pm *PromMetrics) OTPVerification(success bool) {
	pm.otpVerification.WithLabelValues(result(success)).Inc()
}

// SendOTPTime records the time for sending an OTP.
func (pm *PromMetrics) SendOTPTime(value time.Duration) {
	pm.sendOTPTime.Observe(value.Seconds())

	logger.Debug("send OTP time", log.WithDuration(value))
}

// VerifyOTPTime records the time for verifying an OTP.
func (pm *PromMetrics) VerifyOTPTime(value time.Duration) {
	pm.verifyOTPTime.Observe(value.Seconds())

	logger.Debug("verify OTP time", log.WithDuration(value))
}

// CallbackDispatched counts a relay callback by transport result.
func (pm *PromMetrics) CallbackDispatched(success bool) {
	pm.callbackDispatched.WithLabelValues(result(success)).Inc()
}

// CallbackTime records the duration of a relay callback.
func (pm *PromMetrics) CallbackTime(value time.Duration) {
	pm.callbackTime.Observe(value.Seconds())

	logger.Debug("callback time", log.WithDuration(value))
}

func result(success bool) string {
	if success {
		return resultSuccess
	}

	return resultFailure
}

func registerMetrics(pm *PromMetrics) {
	prometheus.MustRegister(
		pm.otpRequested, pm.otpVerification, pm.sendOTPTime,
		pm.verifyOTPTime, pm.callbackDispatched, pm.callbackTime,
	)
}

func newCounter(subsystem, name, help string, labels prometheus.Labels) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}

func newCounterVec(subsystem, name, help string, labelNames ...string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	}, labelNames)
}

func newHistogram(subsystem, name, help string, labels prometheus.Labels) prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}
