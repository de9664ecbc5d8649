/*
Copyright Avast Software. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package otpflow

import (
	"strings"

	"github.com/samber/lo"
)

// OTPLength is the number of OTP input fields.
const OTPLength = 6

// Digits holds the OTP fields; each is empty or a single decimal digit.
type Digits [OTPLength]string

// ValidDigit reports whether value may be stored in an OTP field.
func ValidDigit(value string) bool {
	return value == "" || (len(value) == 1 && value[0] >= '0' && value[0] <= '9')
}

// With returns a copy of d with field index set to value.
func (d Digits) With(index int, value string) (Digits, error) {
	if index < 0 || index >= OTPLength {
		return d, ErrInvalidDigitIndex
	}

	if !ValidDigit(value) {
		return d, ErrInvalidDigit
	}

	d[index] = value

	return d, nil
}

// Complete reports whether every field holds a digit.
func (d Digits) Complete() bool {
	return lo.EveryBy(d[:], func(v string) bool { return v != "" })
}

// Code joins the fields into the code string.
func (d Digits) Code() string {
	return strings.Join(d[:], "")
}
