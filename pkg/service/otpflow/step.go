/*
Copyright Avast Software. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package otpflow

import (
	"fmt"
)

// Step is the position of a session in the verification flow.
type Step int16

const (
	StepUnknown     = Step(0)
	StepEnteringID  = Step(1)
	StepEnteringOTP = Step(2)
	StepVerified    = Step(3)
)

var stepNames = map[Step]string{ //nolint:gochecknoglobals
	StepUnknown:     "unknown",
	StepEnteringID:  "entering_id",
	StepEnteringOTP: "entering_otp",
	StepVerified:    "verified",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}

	return fmt.Sprintf("Step(%d)", int16(s))
}

// MarshalText encodes the step by name.
func (s Step) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a step name.
func (s *Step) UnmarshalText(b []byte) error {
	for step, name := range stepNames {
		if name == string(b) {
			*s = step

			return nil
		}
	}

	return fmt.Errorf("unknown step %q", string(b))
}

// validateStepTransition allows only the forward edges of the flow.
func validateStepTransition(oldStep, newStep Step) error {
	if oldStep == StepEnteringID && newStep == StepEnteringOTP {
		return nil
	}

	if oldStep == StepEnteringOTP && newStep == StepVerified {
		return nil
	}

	return fmt.Errorf("%w: unexpected transition from %v to %v", ErrInvalidStep, oldStep, newStep)
}
