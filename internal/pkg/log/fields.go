/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package log

import (
	"time"

	"go.uber.org/zap"
)

// Log Fields.
const (
	FieldSessionID    = "sessionID"
	FieldStep         = "step"
	FieldURL          = "url"
	FieldHostURL      = "hostURL"
	FieldHTTPStatus   = "httpStatus"
	FieldDuration     = "duration"
	FieldUserLogLevel = "userLogLevel"
	FieldMissing      = "missingParams"
	FieldStore        = "store"
	FieldTraceID      = "traceID"
	FieldSpanID       = "spanID"
)

// WithError sets the error field.
func WithError(err error) zap.Field {
	return zap.Error(err)
}

// WithSessionID sets the session id field.
func WithSessionID(id string) zap.Field {
	return zap.String(FieldSessionID, id)
}

// WithStep sets the form step field.
func WithStep(step string) zap.Field {
	return zap.String(FieldStep, step)
}

// WithURL sets the url field.
func WithURL(url string) zap.Field {
	return zap.String(FieldURL, url)
}

// WithHostURL sets the hostURL field.
func WithHostURL(hostURL string) zap.Field {
	return zap.String(FieldHostURL, hostURL)
}

// WithHTTPStatus sets the httpStatus field.
func WithHTTPStatus(status int) zap.Field {
	return zap.Int(FieldHTTPStatus, status)
}

// WithDuration sets the duration field.
func WithDuration(d time.Duration) zap.Field {
	return zap.Duration(FieldDuration, d)
}

// WithUserLogLevel sets the user log level field.
func WithUserLogLevel(level string) zap.Field {
	return zap.String(FieldUserLogLevel, level)
}

// WithMissingParams sets the missing query parameters field.
func WithMissingParams(names []string) zap.Field {
	return zap.Strings(FieldMissing, names)
}

// WithStore sets the session store type field.
func WithStore(store string) zap.Field {
	return zap.String(FieldStore, store)
}
