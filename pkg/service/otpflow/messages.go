/*
Copyright Avast Software. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package otpflow

// Messages shown to the user.
const (
	MsgInvalidIdentifier = "Fyda number is required and should be 12 digits."
	MsgOTPSent           = "OTP sent successfully."
	MsgOTPVerified       = "✅ OTP verified successfully."
	MsgInvalidOTP        = "❌ Invalid OTP."
	MsgMissingParamsFmt  = "Missing URL parameter(s): %s"
)
