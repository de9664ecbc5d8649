/*
Copyright Avast Software. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package otp

import (
	"context"
	"crypto/subtle"
	"fmt"
)

// StaticVerifier accepts exactly one configured code.
type StaticVerifier struct {
	acceptedCode []byte
	latency      Latency
}

// NewStaticVerifier returns a verifier that answers after latency.
func NewStaticVerifier(acceptedCode string, latency Latency) *StaticVerifier {
	return &StaticVerifier{
		acceptedCode: []byte(acceptedCode),
		latency:      latency,
	}
}

func (v *StaticVerifier) Verify(ctx context.Context, code string) (bool, error) {
	if err := v.latency.Wait(ctx); err != nil {
		return false, fmt.Errorf("simulated verification: %w", err)
	}

	return subtle.ConstantTimeCompare([]byte(code), v.acceptedCode) == 1, nil
}
