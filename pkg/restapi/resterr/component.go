/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

type Component string

const (
	OTPFlowSvcComponent       Component = "otpflow-service"
	SessionStoreComponent     Component = "session-store"
	CallbackNotifierComponent Component = "callback-notifier"
	RedisComponent            Component = "redis-service"
)
