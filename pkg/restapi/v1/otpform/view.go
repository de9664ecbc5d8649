/*
Copyright Avast Software. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package otpform

import (
	"github.com/anbesabank/fyda-otp/pkg/service/otpflow"
)

const pageTitle = "Fyda OTP Verification"

// SessionView is the client-facing state of a session.
type SessionView struct {
	Step       string   `json:"step"`
	Identifier string   `json:"identifier"`
	OTP        []string `json:"otp"`
	Focus      int      `json:"focus"`
	Loading    bool     `json:"loading"`
	Message    string   `json:"message"`
	URLError   string   `json:"url_error,omitempty"`
	CanVerify  bool     `json:"can_verify"`
}

type page struct {
	*SessionView
	Title string
}

func newSessionView(sess *otpflow.Session) *SessionView {
	digits := sess.OTP

	return &SessionView{
		Step:       sess.Step.String(),
		Identifier: sess.Identifier,
		OTP:        digits[:],
		Focus:      sess.Focus,
		Loading:    sess.Loading,
		Message:    sess.Message,
		URLError:   sess.URLError(),
		CanVerify:  sess.CanVerify(),
	}
}
