/*
Copyright Avast Software. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package otpflow

import (
	"strings"
	"unicode/utf8"
)

// IdentifierLength is the number of digits in a Fyda number.
const IdentifierLength = 12

// ValidateIdentifier checks that the trimmed value is exactly IdentifierLength decimal digits.
func ValidateIdentifier(value string) error {
	trimmed := strings.TrimSpace(value)

	if utf8.RuneCountInString(trimmed) != IdentifierLength {
		return ErrInvalidIdentifier
	}

	for _, r := range trimmed {
		if r < '0' || r > '9' {
			return ErrInvalidIdentifier
		}
	}

	return nil
}
