/*
Copyright Avast Software. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sessionstore

import (
	"encoding/json"
	"time"

	"github.com/anbesabank/fyda-otp/pkg/service/otpflow"
)

type redisDocument struct {
	ExpireAt time.Time        `json:"expireAt"`
	Session  *otpflow.Session `json:"session"`
}

func (d *redisDocument) MarshalBinary() ([]byte, error) {
	return json.Marshal(d)
}

func (d *redisDocument) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, d)
}
