/*
Copyright Avast Software. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package otpflow

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/samber/lo"
)

// StateParam is the query parameter echoed back to the relay on success.
const StateParam = "state"

// RequiredParams lists, in display order, the query keys a page load must carry.
var RequiredParams = []string{ //nolint:gochecknoglobals
	"nonce",
	StateParam,
	"client_id",
	"redirect_uri",
	"scope",
	"response_type",
	"acr_values",
	"claims",
	"claims_locales",
	"display",
	"ui_locales",
}

// MissingParams returns the required keys absent from params, in RequiredParams order.
// Only key presence counts; an empty value satisfies the check.
func MissingParams(params url.Values) []string {
	missing := lo.Filter(RequiredParams, func(name string, _ int) bool {
		return !params.Has(name)
	})

	if len(missing) == 0 {
		return nil
	}

	return missing
}

// MissingParamsMessage formats the blocking error shown instead of the form.
func MissingParamsMessage(missing []string) string {
	if len(missing) == 0 {
		return ""
	}

	return fmt.Sprintf(MsgMissingParamsFmt, strings.Join(missing, ", "))
}

func cloneValues(params url.Values) url.Values {
	out := make(url.Values, len(params))

	for k, v := range params {
		out[k] = append([]string(nil), v...)
	}

	return out
}
