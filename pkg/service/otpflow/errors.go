/*
Copyright Avast Software. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package otpflow

import "errors"

var (
	ErrMissingParameters   = errors.New("required url parameters are missing")
	ErrInvalidStep         = errors.New("operation not allowed in current step")
	ErrInvalidIdentifier   = errors.New("invalid fyda number")
	ErrInvalidDigit        = errors.New("otp field accepts a single decimal digit")
	ErrInvalidDigitIndex   = errors.New("otp field index out of range")
	ErrIncompleteOTP       = errors.New("otp is incomplete")
	ErrOperationInProgress = errors.New("another operation is in progress")
)
