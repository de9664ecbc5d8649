/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrDataNotFound = errors.New("data not found")

type ErrorCode string

const (
	SystemError     ErrorCode = "system-error"
	InvalidValue    ErrorCode = "invalid-value"
	BadRequest      ErrorCode = "bad-request"
	DoesntExist     ErrorCode = "doesnt-exist"
	ConditionNotMet ErrorCode = "condition-not-met"
	Conflict        ErrorCode = "conflict"
)

func (c ErrorCode) Name() string {
	return string(c)
}

func (c ErrorCode) httpStatus() int {
	switch c {
	case InvalidValue, BadRequest:
		return http.StatusBadRequest
	case DoesntExist:
		return http.StatusNotFound
	case ConditionNotMet:
		return http.StatusPreconditionFailed
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// CustomError is an error with a code that maps to an HTTP status.
type CustomError struct {
	Code           ErrorCode
	IncorrectValue string
	Component      Component
	Operation      string
	Err            error
}

func NewCustomError(code ErrorCode, err error) *CustomError {
	return &CustomError{
		Code: code,
		Err:  err,
	}
}

func NewValidationError(code ErrorCode, incorrectValue string, err error) *CustomError {
	return &CustomError{
		Code:           code,
		IncorrectValue: incorrectValue,
		Err:            err,
	}
}

func NewSystemError(component Component, operation string, err error) *CustomError {
	return &CustomError{
		Code:      SystemError,
		Component: component,
		Operation: operation,
		Err:       err,
	}
}

func (e *CustomError) Error() string {
	switch {
	case e.IncorrectValue != "":
		return fmt.Sprintf("%s[%s]: %v", e.Code, e.IncorrectValue, e.Err)
	case e.Component != "":
		return fmt.Sprintf("%s[%s, %s]: %v", e.Code, e.Component, e.Operation, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

func (e *CustomError) HTTPCodeMsg() (int, interface{}) {
	resp := map[string]interface{}{
		"code":    e.Code.Name(),
		"message": e.Err.Error(),
	}

	if e.IncorrectValue != "" {
		resp["incorrectValue"] = e.IncorrectValue
	}

	return e.Code.httpStatus(), resp
}

// GetErrorDetails returns the message, code and component of err.
func GetErrorDetails(err error) (string, string, Component) {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Err.Error(), ce.Code.Name(), ce.Component
	}

	return err.Error(), "", ""
}
