/*
Copyright Avast Software. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package otpflow

import (
	"fmt"
	"net/url"
	"time"
)

// Session is the form state of one page load.
type Session struct {
	ID            string     `json:"id"`
	Query         url.Values `json:"query"`
	MissingParams []string   `json:"missing_params,omitempty"`
	Identifier    string     `json:"identifier"`
	Step          Step       `json:"step"`
	OTP           Digits     `json:"otp"`
	Focus         int        `json:"focus"`
	Loading       bool       `json:"loading"`
	Message       string     `json:"message"`
	CreatedAt     time.Time  `json:"created_at"`
}

// URLError returns the blocking message for a page load with missing parameters.
func (s *Session) URLError() string {
	return MissingParamsMessage(s.MissingParams)
}

// State returns the state parameter captured at page load.
func (s *Session) State() string {
	return s.Query.Get(StateParam)
}

// CanVerify reports whether the manual verify action is enabled.
func (s *Session) CanVerify() bool {
	return len(s.MissingParams) == 0 && s.Step == StepEnteringOTP && !s.Loading && s.OTP.Complete()
}

func (s *Session) checkActive(expected Step) error {
	if len(s.MissingParams) > 0 {
		return ErrMissingParameters
	}

	if s.Loading {
		return ErrOperationInProgress
	}

	if s.Step != expected {
		return fmt.Errorf("%w: session is %v, expected %v", ErrInvalidStep, s.Step, expected)
	}

	return nil
}
